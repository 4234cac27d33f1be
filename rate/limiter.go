package rate

import "context"

// Limiter controls the request rate of the CRPT client.
//
// The Limiter interface decouples the client from a particular admission
// strategy. The bundled SlidingWindow limiter reproduces the CRPT contract
// of "at most N requests within any trailing window", but implementations
// can use different strategies such as:
//   - Token bucket algorithm
//   - Fixed window counting
//   - Sliding window log
//   - Leaky bucket algorithm
//
// Acquire is called before each request and blocks the caller until a
// permit is available. Notify is called after each request completes
// (successfully or not) so that blocked waiters can re-evaluate early
// instead of sleeping out their full timeout; implementations for which
// this makes no sense may implement it as a no-op.
type Limiter interface {
	// Acquire blocks until the caller is admitted or ctx is done.
	// On admission it returns nil and the request counts toward the
	// limit. If ctx is cancelled while waiting, Acquire returns the
	// context's error and the attempt leaves no trace in the
	// admission history.
	Acquire(ctx context.Context) error

	// Notify wakes blocked waiters so they can re-check for a free
	// permit. Purely a latency optimization; waiters make progress on
	// their own timers without it.
	Notify()
}
