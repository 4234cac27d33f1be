package batch

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Freusturz/crpt-go/api"
	crpt_errors "github.com/Freusturz/crpt-go/errors"
	"github.com/Freusturz/crpt-go/logger"
	"github.com/Freusturz/crpt-go/rate"
)

func Test_DocumentsHandler_ProcessOne(t *testing.T) {
	testCases := []struct {
		name        string
		transport   *fakeTransport
		expectErr   bool
		expectRetry bool
		expectBody  string
	}{
		{
			name:       "success",
			transport:  NewFakeTransport(0, 0),
			expectBody: `{"value":"doc-uuid"}`,
		},
		{
			name:        "500 is transient",
			transport:   NewFakeTransport(1, 0),
			expectErr:   true,
			expectRetry: true,
		},
		{
			name:        "429 is transient",
			transport:   NewFakeTransport(0, 1),
			expectErr:   true,
			expectRetry: true,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			docs := api.NewDocumentsApi(
				"https://ismp.crpt.ru/api/v3",
				"X-Signature",
				&http.Client{Transport: tt.transport},
				&logger.Noop{},
				&rate.NoopLimiter{},
				&api.JsonSerializer{},
			)
			h := NewDocumentsHandler(docs, &logger.Noop{})

			msg := Message{
				Document:  map[string]any{"doc_id": "doc-1"},
				Signature: "sig",
			}
			res := h.ProcessOne(msg)

			assert.Equal(t, msg, res.OriginalReq)
			if tt.expectErr {
				require.Error(t, res.Error)
				assert.Equal(t, tt.expectRetry, res.Retry)
			} else {
				require.NoError(t, res.Error)
				assert.Equal(t, tt.expectBody, res.Body)
			}
		})
	}
}

func Test_shouldRetry(t *testing.T) {
	testCases := []struct {
		name   string
		err    error
		expect bool
	}{
		{
			name:   "io error",
			err:    &crpt_errors.ApiError{Type: crpt_errors.TYPE_IO},
			expect: true,
		},
		{
			name:   "429",
			err:    &crpt_errors.ApiError{Type: crpt_errors.TYPE_HTTP_STATUS, HttpStatusCode: 429},
			expect: true,
		},
		{
			name:   "500",
			err:    &crpt_errors.ApiError{Type: crpt_errors.TYPE_HTTP_STATUS, HttpStatusCode: 500},
			expect: true,
		},
		{
			name:   "503",
			err:    &crpt_errors.ApiError{Type: crpt_errors.TYPE_HTTP_STATUS, HttpStatusCode: 503},
			expect: true,
		},
		{
			name:   "400",
			err:    &crpt_errors.ApiError{Type: crpt_errors.TYPE_HTTP_STATUS, HttpStatusCode: 400},
			expect: false,
		},
		{
			name:   "cancelled wait",
			err:    &crpt_errors.ApiError{Type: crpt_errors.TYPE_CANCELLED},
			expect: false,
		},
		{
			name:   "not an ApiError",
			err:    fmt.Errorf("plain"),
			expect: false,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, shouldRetry(tt.err))
		})
	}
}
