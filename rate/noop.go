package rate

import "context"

type NoopLimiter struct {
}

var _ Limiter = &NoopLimiter{}

func (n NoopLimiter) Acquire(_ context.Context) error {
	return nil
}

func (n NoopLimiter) Notify() {
}
