package tidy

import "context"

// Codec provides content-type aware marshaling.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

// normalizingCodec normalizes every value it decodes.
type normalizingCodec struct {
	Codec
}

// Normalizing wraps c so that Unmarshal applies field policies to the decoded
// value. Marshal is passed through unchanged.
func Normalizing(c Codec) Codec {
	return &normalizingCodec{Codec: c}
}

// Unmarshal decodes data into v, then normalizes v.
func (c *normalizingCodec) Unmarshal(data []byte, v any) error {
	if err := c.Codec.Unmarshal(data, v); err != nil {
		return err
	}
	return Normalize(context.Background(), v)
}
