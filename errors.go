package tidy

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrFieldAccess indicates a policy-bearing field cannot be read or written.
	ErrFieldAccess = errors.New("field access denied")

	// ErrInvalidTag indicates a policy tag has an invalid format or value.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrNotStruct indicates a processor was requested for a non-struct type.
	ErrNotStruct = errors.New("type is not a struct")

	// ErrMissingTransformer indicates a field's transform has no registered transformer.
	ErrMissingTransformer = errors.New("missing transformer")

	// ErrNoCodec indicates a boundary operation ran without a codec.
	ErrNoCodec = errors.New("no codec configured")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")
)

// ConfigError represents a policy declaration error.
// It wraps a sentinel error with the field and tag that caused it.
type ConfigError struct {
	Err   error  // Underlying sentinel error (ErrInvalidTag, ErrMissingTransformer, ErrNotStruct)
	Field string // Field name that triggered the error
	Tag   string // Tag key, when the error comes from a tag
	Value string // Offending tag value or transform name
}

func (e *ConfigError) Error() string {
	msg := e.Err.Error()
	if e.Tag != "" {
		msg = fmt.Sprintf("%s %s:%q", msg, e.Tag, e.Value)
	} else if e.Value != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Value)
	}
	if e.Field != "" {
		msg = fmt.Sprintf("%s (field %s)", msg, e.Field)
	}
	return msg
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// FieldAccessError reports that the processor could not read or write a
// field that carries a policy. It is never returned for fields without one.
type FieldAccessError struct {
	Type   string // Type name of the target object
	Field  string // Field name that could not be accessed
	Op     string // "read" or "write"
	Reason string // Why access failed
}

func (e *FieldAccessError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("cannot %s field %s.%s: %s", e.Op, e.Type, e.Field, e.Reason)
	}
	return fmt.Sprintf("cannot %s field %s.%s", e.Op, e.Type, e.Field)
}

func (e *FieldAccessError) Unwrap() error {
	return ErrFieldAccess
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

// newConfigError creates a ConfigError for an invalid declaration.
func newConfigError(sentinel error, field, value string) error {
	return &ConfigError{
		Err:   sentinel,
		Field: field,
		Value: value,
	}
}

// newAccessError creates a FieldAccessError.
func newAccessError(typeName, field, op, reason string) error {
	return &FieldAccessError{
		Type:   typeName,
		Field:  field,
		Op:     op,
		Reason: reason,
	}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}
