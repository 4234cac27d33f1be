package batch

import (
	"context"
	"net/http"

	"github.com/Freusturz/crpt-go/api"
	crpt_errors "github.com/Freusturz/crpt-go/errors"
	"github.com/Freusturz/crpt-go/logger"
)

type documentsHandler struct {
	client *api.Documents
	logger logger.Logger
}

var _ Handler = &documentsHandler{}

// NewDocumentsHandler submits queued messages through the document API,
// one request per message.
func NewDocumentsHandler(client *api.Documents, logger logger.Logger) Handler {
	return &documentsHandler{
		client: client,
		logger: logger,
	}
}

func (h *documentsHandler) ProcessOne(msg Message) Response {
	body, err := h.client.Create(context.Background(), msg.Document, msg.Signature)
	if err != nil {
		h.logger.Debugf("batch.documentsHandler: submission failed: %v", err)
		return Response{
			OriginalReq: msg,
			Error:       err,
			Retry:       shouldRetry(err),
		}
	}
	return Response{
		Body:        body,
		OriginalReq: msg,
	}
}

// shouldRetry reports whether a submission failure is transient.
// Network errors, 429 and 5xx responses are; everything else (bad
// documents, auth failures, cancelled waits) is not.
func shouldRetry(err error) bool {
	apiErr, ok := err.(*crpt_errors.ApiError)
	if !ok {
		return false
	}
	if apiErr.Type == crpt_errors.TYPE_IO {
		return true
	}
	if apiErr.HttpStatusCode == http.StatusTooManyRequests {
		return true
	}
	return apiErr.HttpStatusCode >= 500
}
