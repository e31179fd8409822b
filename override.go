package tidy

// Normalizable lets a type bypass reflection-based processing.
// When a type implements it, the Processor and Normalize call this method
// instead of walking the type's tagged fields.
//
// This suits hot paths and generated code: a generator can emit the method
// from the same struct tags, calling Policy.ApplyWith per field.
type Normalizable interface {
	// Normalize rewrites the receiver's fields in place.
	// The transformers map contains all registered transformers keyed by transform.
	Normalize(transformers map[Transform]Transformer) error
}
