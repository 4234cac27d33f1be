package api

import (
	"context"
	"net/http"

	"github.com/Freusturz/crpt-go/logger"
	"github.com/Freusturz/crpt-go/rate"
	"github.com/Freusturz/crpt-go/types"
)

var (
	PathDocumentsCreate = "lk/documents/create"
)

// Documents implements the document-submission API of CRPT.
//
// Every call consumes one permit from the configured rate limiter and
// may block inside the limiter until the submission is allowed. The
// detached signature travels in the configured signature header; the
// document itself becomes the JSON request body.
type Documents struct {
	api *apiClient
}

func NewDocumentsApi(
	baseUrl string,
	signatureHeader string,
	httpClient *http.Client,
	logger logger.Logger,
	limiter rate.Limiter,
	serializer Serializer,
) *Documents {
	return &Documents{
		api: newApiClient(baseUrl, signatureHeader, httpClient, logger, limiter, serializer),
	}
}

// Create submits an arbitrary document value and returns the raw
// response body of a successful (2xx) submission. The document can be
// any value the configured serializer understands: a types.Document, a
// map, a custom tagged struct.
func (d *Documents) Create(ctx context.Context, document any, signature string) (string, error) {
	body, err := d.api.postDocument(ctx, PathDocumentsCreate, document, signature)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// CreateIntroduceGoods submits an LP_INTRODUCE_GOODS document and
// decodes the registered document identifier from the response.
func (d *Documents) CreateIntroduceGoods(
	ctx context.Context,
	document types.Document,
	signature string,
) (*types.CreateDocumentResponse, error) {
	var res types.CreateDocumentResponse
	return toNilErr(&res, d.api.postJson(
		ctx, PathDocumentsCreate, &document, signature, &res,
	))
}
