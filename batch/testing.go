package batch

import (
	"bytes"
	"io"
	"net/http"

	crpt_errors "github.com/Freusturz/crpt-go/errors"
)

const (
	SuccessfulTestData = "success"
	RetryTestData      = "retry"
	FailTestData       = "fail"
)

// TestBatchHandler resolves messages by their Document value:
// SuccessfulTestData succeeds, RetryTestData fails with a transient
// error, anything else fails permanently.
type TestBatchHandler struct{}

var _ Handler = &TestBatchHandler{}

func NewTestBatchHandler() *TestBatchHandler {
	return &TestBatchHandler{}
}

func (h *TestBatchHandler) ProcessOne(message Message) Response {
	var res Response
	if message.Document == SuccessfulTestData {
		res = Response{
			Body:        "ok",
			OriginalReq: message,
		}
	} else if message.Document == RetryTestData {
		res = Response{
			OriginalReq: message,
			Error: &crpt_errors.ApiError{
				Body:           []byte("fail"),
				HttpStatusCode: 503,
			},
			Retry: true,
		}
	} else {
		res = Response{
			OriginalReq: message,
			Error: &crpt_errors.ApiError{
				Body:           []byte("fail"),
				HttpStatusCode: 400,
			},
		}
	}

	return res
}

type fakeTransport struct {
	setFailCnt      int
	failCnt         int
	setRateLimitCnt int
	rateLimitCnt    int
	reqCnt          int
}

// NewFakeTransport fails the first failCnt requests with a 500, the
// next rateLimitCnt with a 429, and then answers every submission with
// a canned success payload.
func NewFakeTransport(failCnt int, rateLimitCnt int) *fakeTransport {
	return &fakeTransport{
		setFailCnt:      failCnt,
		setRateLimitCnt: rateLimitCnt,
	}
}

func (m *fakeTransport) RoundTrip(_ *http.Request) (*http.Response, error) {
	m.reqCnt++
	if m.failCnt < m.setFailCnt {
		m.failCnt++
		return &http.Response{
			StatusCode: 500,
			Body:       io.NopCloser(bytes.NewReader([]byte(`{"code":"50001","error_message":"internal error"}`))),
		}, nil
	}
	if m.rateLimitCnt < m.setRateLimitCnt {
		m.rateLimitCnt++
		return &http.Response{
			StatusCode: 429,
			Body:       io.NopCloser(bytes.NewReader([]byte(`{"code":"42901","error_message":"too many requests"}`))),
		}, nil
	}

	return &http.Response{
		StatusCode: 200,
		Body:       io.NopCloser(bytes.NewReader([]byte(`{"value":"doc-uuid"}`))),
	}, nil
}
