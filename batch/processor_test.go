package batch

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Freusturz/crpt-go/logger"
	"github.com/Freusturz/crpt-go/retry"
)

func Test_Processor_flush_by_size(t *testing.T) {
	respChan := make(chan Response, 10)
	p := NewProcessor(NewTestBatchHandler(), respChan, ProcessorConfig{
		FlushQueueSize: 3,
		FlushInterval:  time.Hour,
	})
	p.Start()
	defer p.Stop()

	p.Add(Message{Document: SuccessfulTestData, MetaData: 1})
	p.Add(Message{Document: SuccessfulTestData, MetaData: 2})
	p.Add(Message{Document: SuccessfulTestData, MetaData: 3})

	for i := 0; i < 3; i++ {
		res := waitForResponse(t, respChan)
		assert.NoError(t, res.Error)
		assert.Equal(t, "ok", res.Body)
	}
}

func Test_Processor_flush_by_interval(t *testing.T) {
	respChan := make(chan Response, 10)
	p := NewProcessor(NewTestBatchHandler(), respChan, ProcessorConfig{
		FlushQueueSize: 100,
		FlushInterval:  50 * time.Millisecond,
	})
	p.Start()
	defer p.Stop()

	p.Add(Message{Document: SuccessfulTestData})
	p.Add(Message{Document: SuccessfulTestData})

	for i := 0; i < 2; i++ {
		res := waitForResponse(t, respChan)
		assert.NoError(t, res.Error)
	}
}

func Test_Processor_stop_flushes_remaining(t *testing.T) {
	respChan := make(chan Response, 10)
	p := NewProcessor(NewTestBatchHandler(), respChan, ProcessorConfig{
		FlushQueueSize: 100,
		FlushInterval:  time.Hour,
	})
	p.Start()

	p.Add(Message{Document: SuccessfulTestData})
	p.Add(Message{Document: SuccessfulTestData})
	p.Stop()

	assert.Equal(t, 2, len(respChan))
}

func Test_Processor_retries_transient_failures(t *testing.T) {
	respChan := make(chan Response, 10)
	handler := &flakyHandler{failFirst: 2}
	p := NewProcessor(handler, respChan, ProcessorConfig{
		FlushQueueSize: 1,
		FlushInterval:  time.Hour,
		MaxRetries:     3,
		Retry:          retry.NewExponentialRetry(retry.WithInitialDuration(0)),
	})
	p.Start()
	defer p.Stop()

	p.Add(Message{Document: SuccessfulTestData})

	res := waitForResponse(t, respChan)
	assert.NoError(t, res.Error)
	assert.EqualValues(t, 3, handler.attempts.Load())
}

func Test_Processor_does_not_retry_permanent_failures(t *testing.T) {
	respChan := make(chan Response, 10)
	handler := &countingHandler{inner: NewTestBatchHandler()}
	p := NewProcessor(handler, respChan, ProcessorConfig{
		FlushQueueSize: 1,
		FlushInterval:  time.Hour,
		MaxRetries:     5,
		Retry:          retry.NewExponentialRetry(retry.WithInitialDuration(0)),
	})
	p.Start()
	defer p.Stop()

	p.Add(Message{Document: FailTestData})

	res := waitForResponse(t, respChan)
	assert.Error(t, res.Error)
	assert.False(t, res.Retry)
	assert.EqualValues(t, 1, handler.attempts.Load())
}

func Test_Processor_exhausted_retries_reports_last_failure(t *testing.T) {
	respChan := make(chan Response, 10)
	handler := &countingHandler{inner: NewTestBatchHandler()}
	p := NewProcessor(handler, respChan, ProcessorConfig{
		FlushQueueSize: 1,
		FlushInterval:  time.Hour,
		MaxRetries:     2,
		Retry:          retry.NewExponentialRetry(retry.WithInitialDuration(0)),
	})
	p.Start()
	defer p.Stop()

	p.Add(Message{Document: RetryTestData})

	res := waitForResponse(t, respChan)
	assert.Error(t, res.Error)
	assert.True(t, res.Retry)
	assert.EqualValues(t, 2, handler.attempts.Load())
}

func Test_Processor_start_stop_idempotent(t *testing.T) {
	respChan := make(chan Response, 10)
	p := NewProcessor(NewTestBatchHandler(), respChan, ProcessorConfig{
		FlushQueueSize: 1,
		FlushInterval:  time.Hour,
	})

	p.Start()
	p.Start()
	p.Stop()
	p.Stop()

	// restart works after a full stop
	p.Start()
	p.Add(Message{Document: SuccessfulTestData})
	res := waitForResponse(t, respChan)
	assert.NoError(t, res.Error)
	p.Stop()
}

func Test_Processor_nil_response_chan(t *testing.T) {
	handler := &countingHandler{inner: NewTestBatchHandler()}
	p := NewProcessor(handler, nil, ProcessorConfig{
		FlushQueueSize: 1,
		FlushInterval:  time.Hour,
	})
	p.Start()

	p.Add(Message{Document: SuccessfulTestData})
	p.Stop()

	assert.EqualValues(t, 1, handler.attempts.Load())
}

func Test_applyProcessorConfig_defaults(t *testing.T) {
	cfg := applyProcessorConfig(ProcessorConfig{})

	assert.Equal(t, 100, cfg.FlushQueueSize)
	assert.Equal(t, 5*time.Second, cfg.FlushInterval)
	assert.Equal(t, 1, cfg.MaxRetries)
	assert.NotNil(t, cfg.Retry)
	assert.Equal(t, 2000, cfg.MaxBufferSize)
	assert.Equal(t, 10, cfg.MaxConcurrentSubmits)
	assert.Equal(t, &logger.Noop{}, cfg.Logger)
}

func waitForResponse(t *testing.T, respChan <-chan Response) Response {
	t.Helper()
	select {
	case res := <-respChan:
		return res
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a batch response")
		return Response{}
	}
}

// flakyHandler fails the first failFirst attempts with a transient
// error and succeeds afterwards.
type flakyHandler struct {
	failFirst int32
	attempts  atomic.Int32
}

func (h *flakyHandler) ProcessOne(message Message) Response {
	n := h.attempts.Add(1)
	if n <= h.failFirst {
		return NewTestBatchHandler().ProcessOne(Message{
			Document:  RetryTestData,
			Signature: message.Signature,
			MetaData:  message.MetaData,
		})
	}
	return Response{Body: "ok", OriginalReq: message}
}

type countingHandler struct {
	inner    Handler
	attempts atomic.Int32
}

func (h *countingHandler) ProcessOne(message Message) Response {
	h.attempts.Add(1)
	return h.inner.ProcessOne(message)
}

var _ Handler = &flakyHandler{}
var _ Handler = &countingHandler{}

func Test_TestBatchHandler(t *testing.T) {
	h := NewTestBatchHandler()

	ok := h.ProcessOne(Message{Document: SuccessfulTestData})
	require.NoError(t, ok.Error)
	assert.Equal(t, "ok", ok.Body)

	transient := h.ProcessOne(Message{Document: RetryTestData})
	require.Error(t, transient.Error)
	assert.True(t, transient.Retry)

	permanent := h.ProcessOne(Message{Document: FailTestData})
	require.Error(t, permanent.Error)
	assert.False(t, permanent.Retry)
}
