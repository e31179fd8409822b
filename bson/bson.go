// Package bson provides BSON codecs for tidy processors.
package bson

import (
	"github.com/zoobzio/tidy"
	"go.mongodb.org/mongo-driver/bson"
)

// ContentType is the MIME type handled by this package.
const ContentType = "application/bson"

// bsonCodec implements tidy.Codec for BSON.
type bsonCodec struct{}

// New returns a BSON codec.
func New() tidy.Codec {
	return &bsonCodec{}
}

// Normalizing returns a BSON codec whose Unmarshal applies field policies
// to the decoded value.
func Normalizing() tidy.Codec {
	return tidy.Normalizing(New())
}

// ContentType returns the MIME type for BSON.
func (c *bsonCodec) ContentType() string {
	return ContentType
}

// Marshal encodes v as BSON.
func (c *bsonCodec) Marshal(v any) ([]byte, error) {
	return bson.Marshal(v)
}

// Unmarshal decodes BSON data into v.
func (c *bsonCodec) Unmarshal(data []byte, v any) error {
	return bson.Unmarshal(data, v)
}
