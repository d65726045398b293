package messenger

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestRequest_RoundTrip(t *testing.T) {
	b := New()
	defer b.Close()

	err := b.Register("upper", func(_ context.Context, payload any) (any, error) {
		return strings.ToUpper(payload.(string)), nil
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	got, err := b.Request(context.Background(), "upper", "hello")
	if err != nil {
		t.Fatalf("Request: %v", err)
	}
	if got != "HELLO" {
		t.Fatalf("Request = %v, want HELLO", got)
	}
}

func TestRequest_UnknownAction(t *testing.T) {
	b := New()
	defer b.Close()

	if _, err := b.Request(context.Background(), "missing", nil); !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("err = %v, want ErrUnknownAction", err)
	}
}

func TestRegister_DuplicateAction(t *testing.T) {
	b := New()
	defer b.Close()

	noop := func(context.Context, any) (any, error) { return nil, nil }
	if err := b.Register("a", noop); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if err := b.Register("a", noop); !errors.Is(err, ErrDuplicateAction) {
		t.Fatalf("second Register err = %v, want ErrDuplicateAction", err)
	}
}

func TestRequest_HandlerError(t *testing.T) {
	b := New()
	defer b.Close()

	boom := errors.New("boom")
	_ = b.Register("fail", func(context.Context, any) (any, error) {
		return nil, boom
	})

	if _, err := b.Request(context.Background(), "fail", nil); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
}

func TestRequest_HandlerPanicContained(t *testing.T) {
	b := New()
	defer b.Close()

	_ = b.Register("panic", func(context.Context, any) (any, error) {
		panic("unexpected")
	})

	if _, err := b.Request(context.Background(), "panic", nil); err == nil {
		t.Fatal("expected an error from a panicking handler")
	}

	// The worker must survive its own panic.
	_ = b.Register("ok", func(context.Context, any) (any, error) { return 1, nil })
	if _, err := b.Request(context.Background(), "ok", nil); err != nil {
		t.Fatalf("bus unusable after handler panic: %v", err)
	}
}

func TestRequest_ContextCancellation(t *testing.T) {
	b := New()
	defer b.Close()

	release := make(chan struct{})
	_ = b.Register("slow", func(ctx context.Context, _ any) (any, error) {
		select {
		case <-release:
			return nil, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := b.Request(ctx, "slow", nil); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want DeadlineExceeded", err)
	}
}

func TestClose_RejectsFurtherUse(t *testing.T) {
	b := New()
	b.Close()
	b.Close() // idempotent

	if err := b.Register("a", func(context.Context, any) (any, error) { return nil, nil }); !errors.Is(err, ErrClosed) {
		t.Fatalf("Register after Close err = %v, want ErrClosed", err)
	}
	if _, err := b.Request(context.Background(), "a", nil); !errors.Is(err, ErrClosed) {
		t.Fatalf("Request after Close err = %v, want ErrClosed", err)
	}
}
