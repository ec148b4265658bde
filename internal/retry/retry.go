// Package retry re-runs idempotent operations that failed for transient
// reasons, with capped exponential backoff and full jitter.
package retry

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"net"
	"syscall"
	"time"
)

// Predicate reports whether an error is worth another attempt.
type Predicate func(error) bool

// Policy controls how many attempts are made and how long to wait between
// them.
type Policy struct {
	Attempts  int
	BaseDelay time.Duration
	MaxDelay  time.Duration
}

// DefaultPolicy is used for read requests against the API.
func DefaultPolicy() Policy {
	return Policy{
		Attempts:  3,
		BaseDelay: 250 * time.Millisecond,
		MaxDelay:  4 * time.Second,
	}
}

// Waiter is implemented by errors that carry a server-requested delay,
// such as a Retry-After header. The returned delay replaces the backoff
// for that attempt, still capped by MaxDelay.
type Waiter interface {
	RetryAfter() (time.Duration, bool)
}

// Do runs fn until it succeeds, the predicate rejects its error, the
// attempts are exhausted or ctx is done. The last error from fn is
// returned; a done context yields ctx.Err().
func Do(ctx context.Context, p Policy, shouldRetry Predicate, fn func() error) error {
	if p.Attempts <= 0 {
		p.Attempts = 1
	}
	if shouldRetry == nil {
		shouldRetry = Transient
	}

	var err error
	for attempt := 1; attempt <= p.Attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if err = fn(); err == nil {
			return nil
		}
		if attempt == p.Attempts || !shouldRetry(err) {
			return err
		}

		if !sleep(ctx, delayFor(err, p, attempt)) {
			return ctx.Err()
		}
	}
	return err
}

// Transient reports whether err looks like a dropped connection.
// Cancellation and timeouts are never transient.
func Transient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return false
	}
	return errors.Is(err, syscall.ECONNRESET) || errors.Is(err, io.ErrUnexpectedEOF)
}

func delayFor(err error, p Policy, attempt int) time.Duration {
	var w Waiter
	if errors.As(err, &w) {
		if d, ok := w.RetryAfter(); ok {
			if p.MaxDelay > 0 && d > p.MaxDelay {
				d = p.MaxDelay
			}
			return d
		}
	}
	return backoff(p.BaseDelay, p.MaxDelay, attempt)
}

func backoff(base, max time.Duration, attempt int) time.Duration {
	if base <= 0 {
		return 0
	}
	if attempt < 1 {
		attempt = 1
	}

	delay := base << (attempt - 1)
	if delay <= 0 || (max > 0 && delay > max) {
		delay = max
	}
	return time.Duration(rand.Int63n(int64(delay) + 1))
}

func sleep(ctx context.Context, delay time.Duration) bool {
	if delay <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
