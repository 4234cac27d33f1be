package rate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_NoopLimiter(t *testing.T) {
	l := &NoopLimiter{}

	for i := 0; i < 100; i++ {
		assert.NoError(t, l.Acquire(context.Background()))
	}
	l.Notify()
}
