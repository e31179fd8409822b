// Package tidy provides declarative, tag-driven normalization of string fields.
//
// Structs declare a policy per field via struct tags. The processor finds
// policy-bearing fields once per type, caches the plan, and rewrites the
// fields in place before business logic sees the value.
//
// # Tag Syntax
//
//	tidy.transform:"{none|upper|lower|words|sentences}"
//	tidy.max:"{bytes}"          - cap length; 0 means no cap
//	tidy.trim:"{bool}"          - strip leading/trailing whitespace (default true)
//	tidy.collapse:"{bool}"      - collapse whitespace runs (default true)
//	tidy.default:"{value}"      - substitute when empty or nil
//	tidy:""                     - policy with all defaults
//
// Any one of these keys marks the field as policy-bearing.
//
// # Basic Usage
//
//	type User struct {
//	    Name    string  `json:"name" tidy.transform:"words" tidy.default:"Unknown User"`
//	    Handle  *string `json:"handle" tidy.transform:"upper"`
//	    Email   string  `json:"email" tidy.transform:"lower" tidy.default:"noemail@example.com"`
//	    Bio     string  `json:"bio" tidy.max:"250" tidy.collapse:"false"`
//	}
//
//	proc, _ := tidy.NewProcessor[User]()
//	err := proc.Process(ctx, &user)
//
// Or, for values whose type is only known at runtime:
//
//	err := tidy.Normalize(ctx, &user)
//
// # Pipeline
//
// Each field goes through the same ordered steps:
//
//  1. empty (or nil) values are replaced with the default
//  2. the transform is applied
//  3. the value is cut to the maximum length
//  4. leading and trailing whitespace is trimmed
//  5. whitespace runs are collapsed to one space
//  6. the result is written back to the same field
//
// # Interception
//
// Intercept wraps an Operation so its argument is normalized before the
// operation body runs. Guard does the same for several arguments, and
// Before/Chain compose it with other middleware.
//
// # Boundaries
//
// With a Codec set, Receive decodes a payload and normalizes the result and
// Send encodes a value. Codecs live in subpackages:
//
//   - json - JSON encoding (application/json)
//   - xml - XML encoding (application/xml)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - bson - BSON encoding (application/bson)
//
// # Override Interface
//
// Types can bypass reflection by implementing Normalizable.
package tidy
