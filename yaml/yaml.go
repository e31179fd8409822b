// Package yaml provides YAML codecs for tidy processors.
package yaml

import (
	"github.com/zoobzio/tidy"
	"gopkg.in/yaml.v3"
)

// ContentType is the MIME type handled by this package.
const ContentType = "application/yaml"

// yamlCodec implements tidy.Codec for YAML.
type yamlCodec struct{}

// New returns a YAML codec.
func New() tidy.Codec {
	return &yamlCodec{}
}

// Normalizing returns a YAML codec whose Unmarshal applies field policies
// to the decoded value.
func Normalizing() tidy.Codec {
	return tidy.Normalizing(New())
}

// ContentType returns the MIME type for YAML.
func (c *yamlCodec) ContentType() string {
	return ContentType
}

// Marshal encodes v as YAML.
func (c *yamlCodec) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// Unmarshal decodes YAML data into v.
func (c *yamlCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}
