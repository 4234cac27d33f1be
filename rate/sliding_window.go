package rate

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// SlidingWindow is a blocking sliding-window-log rate limiter.
//
// It keeps the admission timestamp of every request still inside the
// trailing window and admits a caller only while fewer than limit
// admissions happened within the last window duration. Callers over the
// limit block inside Acquire until the oldest admission ages out; they
// are never rejected.
//
// The log reflects admission attempts, not request outcomes: a permit
// consumed by a request that later fails is not returned.
//
// Expiry is lazy. No background goroutine prunes the log; whichever
// caller next contends for a permit (or whichever waiter wakes) removes
// the aged-out prefix. Admission order among concurrent waiters is not
// FIFO; any waiter may win the next free slot.
//
// All log access happens under a single mutex. The mutex is released
// for the whole wait phase, so waiting callers never block admitted
// ones.
type SlidingWindow struct {
	mu     sync.Mutex
	window time.Duration
	limit  int
	stamps []time.Time
	head   int
	wake   chan struct{}
	now    func() time.Time
}

var _ Limiter = &SlidingWindow{}

// NewSlidingWindow creates a limiter admitting at most limit requests
// within any trailing window. Both arguments must be positive.
func NewSlidingWindow(limit int, window time.Duration) (*SlidingWindow, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("rate: limit must be positive, got %d", limit)
	}
	if window <= 0 {
		return nil, fmt.Errorf("rate: window must be positive, got %v", window)
	}
	return &SlidingWindow{
		window: window,
		limit:  limit,
		stamps: make([]time.Time, 0, limit),
		wake:   make(chan struct{}),
		now:    time.Now,
	}, nil
}

// Acquire blocks until the caller may start a request under the window
// limit, recording the admission timestamp as a side effect. It returns
// ctx.Err() if ctx is done before a permit frees up; a cancelled wait
// records nothing.
func (l *SlidingWindow) Acquire(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for {
		l.mu.Lock()
		now := l.now()
		l.pruneLocked(now)

		// The size check and the append happen under the same lock
		// so two racing callers can never both take the last slot.
		if len(l.stamps)-l.head < l.limit {
			l.stamps = append(l.stamps, now)
			l.mu.Unlock()
			return nil
		}

		wait := l.stamps[l.head].Add(l.window).Sub(now)
		wake := l.wake
		l.mu.Unlock()

		if wait <= 0 {
			// The oldest entry already expired between the prune and
			// the wait computation; re-run the loop without sleeping.
			continue
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		case <-wake:
			// Woken early by Notify. Time may not have advanced by
			// the full wait, so the loop re-validates instead of
			// assuming a permit is free.
			timer.Stop()
		}
	}
}

// Notify wakes every caller currently blocked in Acquire so they
// re-evaluate promptly. Safe to call from any goroutine at any time.
func (l *SlidingWindow) Notify() {
	l.mu.Lock()
	close(l.wake)
	l.wake = make(chan struct{})
	l.mu.Unlock()
}

// pruneLocked drops every admission that aged out of the window.
// Expired entries are always a contiguous prefix because admissions are
// appended in non-decreasing time order. Caller must hold l.mu.
func (l *SlidingWindow) pruneLocked(now time.Time) {
	for l.head < len(l.stamps) && !l.stamps[l.head].Add(l.window).After(now) {
		l.head++
	}
	if l.head > 0 && l.head*2 >= len(l.stamps) {
		l.stamps = append(l.stamps[:0], l.stamps[l.head:]...)
		l.head = 0
	}
}

// size reports the number of admissions currently inside the window,
// pruning first.
func (l *SlidingWindow) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pruneLocked(l.now())
	return len(l.stamps) - l.head
}
