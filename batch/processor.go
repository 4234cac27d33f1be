package batch

import (
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Freusturz/crpt-go/logger"
	"github.com/Freusturz/crpt-go/retry"
)

// Processor queues document submissions and drains them in the
// background. Messages accumulate until FlushQueueSize is reached or
// FlushInterval elapses, then each message in the flushed batch is
// submitted through the Handler with bounded concurrency. CRPT has no
// bulk submission endpoint, so every message is one rate-limited
// request; the value of the processor is the buffering, per-message
// retry of transient failures, and the response channel.
//
// Usage Example:
//
//	processor := batch.NewProcessor(
//	    batch.NewDocumentsHandler(client.Documents(), myLogger),
//	    responseChan,
//	    batch.ProcessorConfig{
//	        FlushQueueSize: 50,
//	        FlushInterval:  5 * time.Second,
//	        MaxRetries:     3,
//	    },
//	)
//
//	processor.Start()
//	processor.Add(batch.Message{Document: doc, Signature: sig})
//	// ...
//	processor.Stop()
type Processor interface {
	// Start begins the processing loop. The processor will start
	// listening for messages and flush them when FlushQueueSize is
	// reached or FlushInterval elapses.
	// This method is idempotent - calling Start() multiple times
	// has no effect if already running.
	Start()

	// Stop gracefully shuts down the processor. It closes the message
	// channel, waits for all in-flight submissions to complete, and
	// prepares for potential restart.
	// This method is idempotent - calling Stop() multiple times
	// has no effect if already stopped.
	Stop()

	// Add queues a message for submission.
	// This method is thread-safe and will block if the internal
	// buffer is full.
	Add(req Message)
}

type processor struct {
	handler  Handler
	reqChan  chan Message
	respChan chan<- Response
	config   ProcessorConfig
	logger   logger.Logger
	retry    retry.Retry
	inFlight errgroup.Group
	mu       sync.RWMutex
	running  bool
}

func NewProcessor(
	handler Handler,
	respChan chan<- Response,
	config ProcessorConfig,
) Processor {
	config = applyProcessorConfig(config)

	p := &processor{
		handler:  handler,
		reqChan:  make(chan Message, config.MaxBufferSize),
		respChan: respChan,
		config:   config,
		logger:   config.Logger,
		retry:    config.Retry,
	}
	return p
}

func (p *processor) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		return
	}

	// One slot of the group belongs to the listener, the rest submit.
	p.inFlight.SetLimit(p.config.MaxConcurrentSubmits + 1)
	p.inFlight.Go(func() error {
		p.listen()
		return nil
	})
	p.running = true
}

func (p *processor) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running {
		return
	}

	// initiate exit from the "listen" loop
	close(p.reqChan)

	// wait for the listener and all in-flight submissions
	err := p.inFlight.Wait()
	if err != nil {
		p.logger.Errorf("batch.Processor: failed to wait for in-flight submissions: %v", err)
	}

	// override reqChan to handle a Start->Stop->Start case
	// as next call to Add() will panic if the channel is closed
	p.reqChan = make(chan Message, p.config.MaxBufferSize)
	p.running = false
	p.logger.Debugf("batch.Processor: drained the queue")
}

func (p *processor) Add(req Message) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	p.reqChan <- req
}

func (p *processor) listen() {
	var pending []Message
	t := time.NewTicker(p.config.FlushInterval)
	defer t.Stop()

	p.logger.Debugf("batch.Processor: listening...")

	for {
		select {
		case req, ok := <-p.reqChan:
			if !ok {
				p.flush(pending)
				return
			}
			pending = append(pending, req)
			if len(pending) >= p.config.FlushQueueSize {
				p.flush(pending)
				pending = nil
				t.Reset(p.config.FlushInterval)
			}
		case <-t.C:
			if len(pending) > 0 {
				p.flush(pending)
				pending = nil
			}
		}
	}
}

func (p *processor) flush(pending []Message) {
	if len(pending) == 0 {
		return
	}
	p.logger.Debugf("batch.Processor: flushing %d messages", len(pending))
	for _, msg := range pending {
		msg := msg
		p.inFlight.Go(func() error {
			p.submitOne(msg)
			return nil
		})
	}
}

// submitOne pushes a single message through the handler, retrying
// transient failures per the configured policy. Every attempt goes back
// through the client's rate limiter and consumes its own permit.
func (p *processor) submitOne(msg Message) {
	var res Response
	_ = p.retry.Do(
		p.config.MaxRetries,
		"batch.Processor.submitOne",
		func(attempt int) (error, retry.ExitStrategy) {
			res = p.handler.ProcessOne(msg)
			if res.Error == nil {
				return nil, retry.StopNow
			}
			if res.Retry {
				return res.Error, retry.Continue
			}
			return res.Error, retry.StopNow
		},
	)
	p.sendResponse(res)
}

func (p *processor) sendResponse(r Response) {
	if p.respChan != nil {
		p.respChan <- r
	}
}
