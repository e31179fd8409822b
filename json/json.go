// Package json provides JSON codecs for tidy processors.
package json

import (
	"encoding/json"

	"github.com/zoobzio/tidy"
)

// ContentType is the MIME type handled by this package.
const ContentType = "application/json"

// jsonCodec implements tidy.Codec for JSON.
type jsonCodec struct{}

// New returns a JSON codec.
func New() tidy.Codec {
	return &jsonCodec{}
}

// Normalizing returns a JSON codec whose Unmarshal applies field policies
// to the decoded value.
func Normalizing() tidy.Codec {
	return tidy.Normalizing(New())
}

// ContentType returns the MIME type for JSON.
func (c *jsonCodec) ContentType() string {
	return ContentType
}

// Marshal encodes v as JSON.
func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal decodes JSON data into v.
func (c *jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
