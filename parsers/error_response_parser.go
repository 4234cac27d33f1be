package parsers

import (
	"encoding/json"

	"github.com/Freusturz/crpt-go/types"
)

// ErrorResponseFromBytes decodes a CRPT error body. CRPT is not
// consistent about error payloads across endpoints, so a body that is
// not the documented JSON shape simply reports ok=false and callers
// fall back to the raw bytes.
func ErrorResponseFromBytes(data []byte) (types.ErrorResponse, bool) {
	var result types.ErrorResponse
	err := json.Unmarshal(data, &result)
	if err != nil {
		var empty types.ErrorResponse
		return empty, false
	}
	if result.Code == "" && result.ErrorMessage == "" && result.Description == "" {
		var empty types.ErrorResponse
		return empty, false
	}

	return result, true
}
