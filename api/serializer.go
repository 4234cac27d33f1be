package api

import "encoding/json"

// Serializer converts a document value into the request body bytes.
//
// The default JsonSerializer covers structs with json tags, maps,
// slices and scalars via encoding/json. Callers with exotic document
// representations (pre-rendered payloads, canonical field ordering
// requirements, etc.) can substitute their own implementation through
// the client configuration.
type Serializer interface {
	Serialize(v any) ([]byte, error)
}

type JsonSerializer struct {
}

var _ Serializer = &JsonSerializer{}

func (JsonSerializer) Serialize(v any) ([]byte, error) {
	return json.Marshal(v)
}
