package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Freusturz/crpt-go/types"
)

func Test_ErrorResponseFromBytes(t *testing.T) {
	testCases := []struct {
		name     string
		data     []byte
		expect   types.ErrorResponse
		expectOk bool
	}{
		{
			name: "full error body",
			data: []byte(`{"code":"40002","error_message":"bad signature","description":"signature check failed"}`),
			expect: types.ErrorResponse{
				Code:         "40002",
				ErrorMessage: "bad signature",
				Description:  "signature check failed",
			},
			expectOk: true,
		},
		{
			name:     "code only",
			data:     []byte(`{"code":"unauthorized"}`),
			expect:   types.ErrorResponse{Code: "unauthorized"},
			expectOk: true,
		},
		{
			name:     "malformed json",
			data:     []byte(`{"code":`),
			expectOk: false,
		},
		{
			name:     "plain text body",
			data:     []byte(`Too Many Requests`),
			expectOk: false,
		},
		{
			name:     "empty object",
			data:     []byte(`{}`),
			expectOk: false,
		},
		{
			name:     "empty input",
			data:     nil,
			expectOk: false,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			res, ok := ErrorResponseFromBytes(tt.data)
			assert.Equal(t, tt.expectOk, ok)
			assert.Equal(t, tt.expect, res)
		})
	}
}
