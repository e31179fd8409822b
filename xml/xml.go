// Package xml provides XML codecs for tidy processors.
package xml

import (
	"encoding/xml"

	"github.com/zoobzio/tidy"
)

// ContentType is the MIME type handled by this package.
const ContentType = "application/xml"

// xmlCodec implements tidy.Codec for XML.
type xmlCodec struct{}

// New returns a XML codec.
func New() tidy.Codec {
	return &xmlCodec{}
}

// Normalizing returns a XML codec whose Unmarshal applies field policies
// to the decoded value.
func Normalizing() tidy.Codec {
	return tidy.Normalizing(New())
}

// ContentType returns the MIME type for XML.
func (c *xmlCodec) ContentType() string {
	return ContentType
}

// Marshal encodes v as XML.
func (c *xmlCodec) Marshal(v any) ([]byte, error) {
	return xml.Marshal(v)
}

// Unmarshal decodes XML data into v.
func (c *xmlCodec) Unmarshal(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}
