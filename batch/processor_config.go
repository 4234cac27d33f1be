package batch

import (
	"time"

	"github.com/Freusturz/crpt-go/logger"
	"github.com/Freusturz/crpt-go/retry"
)

type ProcessorConfig struct {
	// FlushQueueSize defines the maximum number of messages
	// to accumulate before triggering a flush
	// default: 100
	FlushQueueSize int

	// FlushInterval specifies the maximum time to wait
	// before flushing, even if FlushQueueSize hasn't been reached
	// default: 5 seconds
	FlushInterval time.Duration

	// MaxRetries sets the maximum number of attempts
	// for a message that fails with a transient error
	// default: 1
	MaxRetries int

	// Retry configures the retry strategy (exponential backoff, delays, etc.)
	// for failed submissions
	// default: retry.NewExponentialRetry
	Retry retry.Retry

	// MaxBufferSize determines the buffer size of the internal request channel
	// to prevent blocking on Add() calls
	// default: 2000
	MaxBufferSize int

	// MaxConcurrentSubmits limits the number of goroutines submitting
	// messages at the same time. Submissions still serialize on the
	// client's rate limiter; this only caps goroutines blocked there.
	// default: 10
	MaxConcurrentSubmits int

	// Logger provides logging functionality for debugging
	// and monitoring processing operations
	// default: logger.Noop
	Logger logger.Logger
}

func defaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		FlushQueueSize: 100,
		FlushInterval:  5 * time.Second,
		MaxRetries:     1,
		Retry: retry.NewExponentialRetry(
			retry.WithInitialDuration(100*time.Millisecond),
			retry.WithLogger(&logger.Noop{}),
		),
		MaxBufferSize:        2000,
		MaxConcurrentSubmits: 10,
		Logger:               &logger.Noop{},
	}
}

func applyProcessorConfig(inConfig ProcessorConfig) ProcessorConfig {
	outConfig := defaultProcessorConfig()
	if inConfig.FlushQueueSize > 0 {
		outConfig.FlushQueueSize = inConfig.FlushQueueSize
	}
	if inConfig.FlushInterval > 0 {
		outConfig.FlushInterval = inConfig.FlushInterval
	}
	if inConfig.MaxRetries > 0 {
		outConfig.MaxRetries = inConfig.MaxRetries
	}
	if inConfig.Retry != nil {
		outConfig.Retry = inConfig.Retry
	}
	if inConfig.MaxBufferSize > 0 {
		outConfig.MaxBufferSize = inConfig.MaxBufferSize
	}
	if inConfig.MaxConcurrentSubmits > 0 {
		outConfig.MaxConcurrentSubmits = inConfig.MaxConcurrentSubmits
	}
	if inConfig.Logger != nil {
		outConfig.Logger = inConfig.Logger
	}

	return outConfig
}
