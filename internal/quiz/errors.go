package quiz

import "fmt"

// CollaboratorKind classifies a backend failure.
type CollaboratorKind string

const (
	// KindAuth covers missing or rejected credentials.
	KindAuth CollaboratorKind = "auth"
	// KindTransport covers network-level failures.
	KindTransport CollaboratorKind = "transport"
	// KindRemote covers well-formed but unsuccessful backend responses.
	KindRemote CollaboratorKind = "remote"
	// KindInput covers content the backend cannot work with, such as
	// an empty fragment or an unsupported document type.
	KindInput CollaboratorKind = "input"
)

// CollaboratorError is any failure from a quiz backend. It is fatal to
// the current step only; the session keeps its last valid state and the
// user may retry.
type CollaboratorError struct {
	Kind CollaboratorKind
	Op   string
	Err  error
}

func (e *CollaboratorError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s failure", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s failure: %v", e.Op, e.Kind, e.Err)
}

func (e *CollaboratorError) Unwrap() error { return e.Err }
