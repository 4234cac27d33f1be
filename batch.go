package crpt_go

import (
	"github.com/Freusturz/crpt-go/batch"
)

// Batch bundles the background submission processors of a Client.
// Documents queued through it are submitted asynchronously, under the
// same rate limiter the Client uses for direct calls.
type Batch struct {
	config    batchConfig
	client    *Client
	documents batch.Processor
}

func NewBatch(client *Client, opts ...BatchConfigOption) *Batch {
	bConfig := defaultBatchConfig()
	for _, o := range opts {
		o(&bConfig)
	}

	pConfig := batch.ProcessorConfig{
		FlushQueueSize:       bConfig.flushQueueSize,
		FlushInterval:        bConfig.flushInterval,
		MaxRetries:           bConfig.retryTimes,
		Retry:                bConfig.retry,
		MaxBufferSize:        bConfig.bufferSize,
		MaxConcurrentSubmits: bConfig.concurrentSubmits,
		Logger:               bConfig.logger,
	}

	return &Batch{
		config: bConfig,
		client: client,
		documents: batch.NewProcessor(
			batch.NewDocumentsHandler(client.Documents(), bConfig.logger),
			bConfig.responseChan,
			pConfig,
		),
	}
}

func (b *Batch) Documents() batch.Processor {
	return b.documents
}

func (b *Batch) StartAll() {
	for _, p := range b.all() {
		p.Start()
	}
}

func (b *Batch) StopAll() {
	for _, p := range b.all() {
		p.Stop()
	}
}

func (b *Batch) all() []batch.Processor {
	return []batch.Processor{
		b.documents,
	}
}
