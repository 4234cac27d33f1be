package batch

// Message represents one queued document submission. It carries the
// document, its detached signature, and optional metadata the caller
// can use to correlate the eventual Response with what was queued.
//
// Usage Example:
//
//	message := batch.Message{
//	    Document:  doc,            // any value the client's serializer understands
//	    Signature: signature,      // detached signature for the signature header
//	    MetaData:  "order-123",    // optional tracking identifier
//	}
//	processor.Add(message)
type Message struct {
	// Document is the document payload submitted to CRPT.
	Document any
	// Signature is the detached signature sent alongside the document.
	Signature string
	// MetaData holds optional contextual information that
	// can be used for tracking, correlation, or response handling
	MetaData any
}

// Response represents the outcome of one queued submission. It keeps a
// reference to the original Message for correlation.
type Response struct {
	// Body is the raw response body of a successful submission,
	// empty if an error occurred.
	Body string
	// OriginalReq holds a reference to the original Message that was processed
	OriginalReq Message
	// Error contains the submission error, or nil on success.
	Error error
	// Retry indicates whether the failure was transient and worth
	// retrying (only relevant when Error is not nil).
	Retry bool
}

// Handler submits a single queued message. The bundled documents
// handler drives api.Documents; tests substitute their own.
type Handler interface {
	// ProcessOne submits one message and reports the outcome,
	// including whether a failure is retriable.
	ProcessOne(message Message) Response
}
