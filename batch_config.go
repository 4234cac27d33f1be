package crpt_go

import (
	"time"

	"github.com/Freusturz/crpt-go/batch"
	"github.com/Freusturz/crpt-go/logger"
	"github.com/Freusturz/crpt-go/retry"
)

type batchConfig struct {
	// flushQueueSize sets the maximum number of messages
	// to accumulate before triggering a flush
	// (maps to ProcessorConfig.FlushQueueSize)
	// default: 100
	flushQueueSize int

	// flushInterval specifies the maximum time to wait
	// before flushing, even if flushQueueSize hasn't been reached
	// (maps to ProcessorConfig.FlushInterval)
	// default: 5 seconds
	flushInterval time.Duration

	// bufferSize determines the buffer size of the internal request channel
	// to prevent blocking on Add() calls
	// (maps to ProcessorConfig.MaxBufferSize)
	// default: 500
	bufferSize int

	// retryTimes sets the maximum number of attempts for submissions
	// that fail with a transient error
	// (maps to ProcessorConfig.MaxRetries)
	// default: 1
	retryTimes int

	// retry configures the retry strategy
	// (exponential backoff, delays, etc.) for failed submissions
	// (maps to ProcessorConfig.Retry)
	// default: retry.NewExponentialRetry()
	retry retry.Retry

	// concurrentSubmits caps the number of goroutines submitting
	// queued documents at the same time
	// (maps to ProcessorConfig.MaxConcurrentSubmits)
	// default: 10
	concurrentSubmits int

	// logger provides logging functionality for debugging
	// and monitoring batch submissions
	// (maps to ProcessorConfig.Logger)
	// default: logger.Noop
	logger logger.Logger

	// responseChan is an optional channel for receiving
	// submission responses and errors
	// (passed to each processor for response handling).
	// If nil - the caller won't get any responses
	// from the batch client.
	// default: nil
	responseChan chan<- batch.Response
}

func defaultBatchConfig() batchConfig {
	return batchConfig{
		flushQueueSize:    100,
		flushInterval:     5 * time.Second,
		bufferSize:        500,
		retryTimes:        1,
		retry:             retry.NewExponentialRetry(),
		concurrentSubmits: 10,
		logger:            logger.Noop{},
	}
}

type BatchConfigOption func(c *batchConfig)

func WithBatchFlushQueueSize(size int) BatchConfigOption {
	return func(c *batchConfig) {
		c.flushQueueSize = size
	}
}

func WithBatchFlushInterval(interval time.Duration) BatchConfigOption {
	return func(c *batchConfig) {
		c.flushInterval = interval
	}
}

func WithBatchBufferSize(size int) BatchConfigOption {
	return func(c *batchConfig) {
		c.bufferSize = size
	}
}

func WithBatchRetryTimes(times int) BatchConfigOption {
	return func(c *batchConfig) {
		c.retryTimes = times
	}
}

func WithBatchRetry(retry retry.Retry) BatchConfigOption {
	return func(c *batchConfig) {
		c.retry = retry
	}
}

func WithBatchConcurrentSubmits(n int) BatchConfigOption {
	return func(c *batchConfig) {
		c.concurrentSubmits = n
	}
}

func WithBatchLogger(logger logger.Logger) BatchConfigOption {
	return func(c *batchConfig) {
		c.logger = logger
	}
}

func WithBatchResponseListener(responseChan chan<- batch.Response) BatchConfigOption {
	return func(c *batchConfig) {
		c.responseChan = responseChan
	}
}
