// Package msgpack provides MessagePack codecs for tidy processors.
package msgpack

import (
	"github.com/vmihailenco/msgpack/v5"
	"github.com/zoobzio/tidy"
)

// ContentType is the MIME type handled by this package.
const ContentType = "application/msgpack"

// msgpackCodec implements tidy.Codec for MessagePack.
type msgpackCodec struct{}

// New returns a MessagePack codec.
func New() tidy.Codec {
	return &msgpackCodec{}
}

// Normalizing returns a MessagePack codec whose Unmarshal applies field policies
// to the decoded value.
func Normalizing() tidy.Codec {
	return tidy.Normalizing(New())
}

// ContentType returns the MIME type for MessagePack.
func (c *msgpackCodec) ContentType() string {
	return ContentType
}

// Marshal encodes v as MessagePack.
func (c *msgpackCodec) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

// Unmarshal decodes MessagePack data into v.
func (c *msgpackCodec) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}
