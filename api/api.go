package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Freusturz/crpt-go/errors"
	"github.com/Freusturz/crpt-go/logger"
	"github.com/Freusturz/crpt-go/parsers"
	"github.com/Freusturz/crpt-go/rate"
)

type apiClient struct {
	baseUrl         string
	signatureHeader string
	httpClient      *http.Client
	logger          logger.Logger
	limiter         rate.Limiter
	serializer      Serializer
}

func newApiClient(
	baseUrl string,
	signatureHeader string,
	httpClient *http.Client,
	logger logger.Logger,
	limiter rate.Limiter,
	serializer Serializer,
) *apiClient {
	return &apiClient{
		baseUrl:         baseUrl,
		signatureHeader: signatureHeader,
		httpClient:      httpClient,
		logger:          logger,
		limiter:         limiter,
		serializer:      serializer,
	}
}

func (c *apiClient) postJson(
	ctx context.Context,
	path string,
	document any,
	signature string,
	resData any,
) *errors.ApiError {
	body, err := c.postDocument(ctx, path, document, signature)
	if err != nil {
		if len(err.Body) > 0 {
			// Best effort to return some data
			_ = json.Unmarshal(err.Body, resData)
		}
		return err
	}
	jsonErr := json.Unmarshal(body, resData)
	if jsonErr != nil {
		return &errors.ApiError{
			Stage:          errors.STAGE_AFTER_REQUEST,
			Type:           errors.TYPE_JSON_PARSE,
			SourceErr:      jsonErr,
			Body:           body,
			HttpStatusCode: http.StatusOK,
		}
	}
	return nil
}

// postDocument performs one rate-limited document submission:
// acquire a permit (blocking), serialize, POST, interpret the status.
//
// The permit is consumed the moment the caller is admitted and is never
// returned, whatever happens to the request afterwards. The admission
// history counts attempts, not successes.
func (c *apiClient) postDocument(
	ctx context.Context,
	path string,
	document any,
	signature string,
) ([]byte, *errors.ApiError) {
	if document == nil {
		return nil, &errors.ApiError{
			Stage:     errors.STAGE_BEFORE_REQUEST,
			Type:      errors.TYPE_INVALID_DATA,
			SourceErr: fmt.Errorf("document must not be nil"),
		}
	}

	if err := c.limiter.Acquire(ctx); err != nil {
		c.logger.Debugf("crpt.api: wait for a permit cancelled: %v", err)
		return nil, &errors.ApiError{
			Stage:     errors.STAGE_BEFORE_REQUEST,
			Type:      errors.TYPE_CANCELLED,
			SourceErr: err,
		}
	}
	// Wake blocked waiters once this request is done so they re-check
	// the window instead of sleeping out their full timeout.
	defer c.limiter.Notify()

	data, serErr := c.serializer.Serialize(document)
	if serErr != nil {
		return nil, &errors.ApiError{
			Stage:     errors.STAGE_BEFORE_REQUEST,
			Type:      errors.TYPE_JSON_PARSE,
			SourceErr: serErr,
		}
	}

	endpoint := c.baseUrl + "/" + path
	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, endpoint, bytes.NewBuffer(data),
	)
	if err != nil {
		return nil, &errors.ApiError{
			Stage:     errors.STAGE_BEFORE_REQUEST,
			Type:      errors.TYPE_REQUEST_PREP,
			SourceErr: err,
		}
	}

	req.Header.Add("Content-Type", "application/json")
	req.Header.Add(c.signatureHeader, signature)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &errors.ApiError{
			Stage:     errors.STAGE_REQUEST,
			Type:      errors.TYPE_IO,
			SourceErr: err,
		}
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		var body []byte
		if res.Body != nil {
			body, _ = io.ReadAll(res.Body)
			defer func() { _ = res.Body.Close() }()
		}
		apiErr := &errors.ApiError{
			Stage:          errors.STAGE_AFTER_REQUEST,
			Type:           errors.TYPE_HTTP_STATUS,
			Body:           body,
			HttpStatusCode: res.StatusCode,
		}
		if crptErr, ok := parsers.ErrorResponseFromBytes(body); ok {
			apiErr.CrptCode = crptErr.Code
		}
		return body, apiErr
	}

	body, err := io.ReadAll(res.Body)
	defer func() { _ = res.Body.Close() }()
	if err != nil {
		return body, &errors.ApiError{
			Stage:          errors.STAGE_AFTER_REQUEST,
			Type:           errors.TYPE_IO,
			Body:           body,
			HttpStatusCode: res.StatusCode,
			SourceErr:      err,
		}
	}

	return body, nil
}

// toNilErr converts a *errors.ApiError type to be a true nil interface.
// Internally, a Go interface has a Type and Value.
// An interface value is nil only if the V and T are both unset.
// See: https://go.dev/doc/faq#nil_error
func toNilErr[T any](r T, e *errors.ApiError) (T, error) {
	if e != nil {
		return r, e
	}
	return r, nil
}
