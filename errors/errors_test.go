package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ApiError_Error(t *testing.T) {
	testCases := []struct {
		name   string
		err    *ApiError
		expect string
	}{
		{
			name: "with source error",
			err: &ApiError{
				Stage:          STAGE_REQUEST,
				Type:           TYPE_IO,
				SourceErr:      fmt.Errorf("connection refused"),
				HttpStatusCode: 0,
			},
			expect: "http request to CRPT failed during 'request' stage with error type 'io', httpStatus: '0'; original err: connection refused",
		},
		{
			name: "without source error uses body",
			err: &ApiError{
				Stage:          STAGE_AFTER_REQUEST,
				Type:           TYPE_HTTP_STATUS,
				Body:           []byte("err"),
				HttpStatusCode: 500,
			},
			expect: "http request to CRPT failed during 'after-request' stage with error type 'not-ok-http-status', httpStatus: '500'; original err: err",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, tt.err.Error())
		})
	}
}

func Test_ApiError_Is(t *testing.T) {
	err := &ApiError{Stage: STAGE_REQUEST, Type: TYPE_IO}

	assert.True(t, errors.Is(errors.Join(err), &ApiError{}))
	assert.False(t, errors.Is(errors.New("other"), &ApiError{}))
}

func Test_ApiError_Unwrap(t *testing.T) {
	err := &ApiError{
		Stage:     STAGE_BEFORE_REQUEST,
		Type:      TYPE_CANCELLED,
		SourceErr: context.Canceled,
	}

	assert.True(t, errors.Is(err, context.Canceled))
}
