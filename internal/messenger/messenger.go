// Package messenger is a named request/response bus connecting the UI,
// the page worker, and the background worker. Each action has exactly
// one handler, which runs on its own goroutine so callers never execute
// worker code inline.
package messenger

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var (
	ErrUnknownAction   = errors.New("messenger: no handler for action")
	ErrDuplicateAction = errors.New("messenger: action already registered")
	ErrClosed          = errors.New("messenger: bus closed")
)

// Handler services one request. The returned value is delivered to the
// requester as-is.
type Handler func(ctx context.Context, payload any) (any, error)

type envelope struct {
	ctx     context.Context
	payload any
	reply   chan result
}

type result struct {
	value any
	err   error
}

// Bus routes requests by action name.
type Bus struct {
	mu      sync.RWMutex
	actions map[string]chan envelope
	done    chan struct{}
	closed  bool
	wg      sync.WaitGroup
}

func New() *Bus {
	return &Bus{
		actions: make(map[string]chan envelope),
		done:    make(chan struct{}),
	}
}

// Register binds a handler to an action and starts its worker
// goroutine. One handler per action.
func (b *Bus) Register(action string, h Handler) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrClosed
	}
	if _, ok := b.actions[action]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateAction, action)
	}
	ch := make(chan envelope)
	b.actions[action] = ch
	b.wg.Add(1)
	go b.serve(action, ch, h)
	return nil
}

func (b *Bus) serve(action string, ch chan envelope, h Handler) {
	defer b.wg.Done()
	for {
		select {
		case env := <-ch:
			value, err := call(h, env.ctx, env.payload)
			select {
			case env.reply <- result{value: value, err: err}:
			case <-env.ctx.Done():
			}
		case <-b.done:
			return
		}
	}
}

// call contains handler panics so one misbehaving worker cannot take
// down the process.
func call(h Handler, ctx context.Context, payload any) (value any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("messenger: handler panic: %v", r)
		}
	}()
	return h(ctx, payload)
}

// Request sends payload to the action's handler and waits for its
// response or context cancellation.
func (b *Bus) Request(ctx context.Context, action string, payload any) (any, error) {
	b.mu.RLock()
	ch, ok := b.actions[action]
	closed := b.closed
	b.mu.RUnlock()
	if closed {
		return nil, ErrClosed
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	env := envelope{ctx: ctx, payload: payload, reply: make(chan result, 1)}
	select {
	case ch <- env:
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-b.done:
		return nil, ErrClosed
	}
	select {
	case res := <-env.reply:
		return res.value, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-b.done:
		return nil, ErrClosed
	}
}

// Close stops all worker goroutines. Outstanding requests receive
// ErrClosed.
func (b *Bus) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	close(b.done)
	b.mu.Unlock()
	b.wg.Wait()
}
