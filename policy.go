package tidy

import (
	"reflect"
	"strconv"
)

// Tag keys recognised on struct fields.
const (
	TagPolicy    = "tidy"
	TagTransform = "tidy.transform"
	TagMax       = "tidy.max"
	TagTrim      = "tidy.trim"
	TagCollapse  = "tidy.collapse"
	TagDefault   = "tidy.default"
)

// policyTags lists every tag key that marks a field as policy-bearing.
var policyTags = []string{
	TagPolicy,
	TagTransform,
	TagMax,
	TagTrim,
	TagCollapse,
	TagDefault,
}

// Policy describes how a single string field is normalized.
// Policies are built once per type from struct tags and never change afterwards.
type Policy struct {
	// Transform is the case conversion applied to the value.
	Transform Transform

	// MaxLength caps the value length in bytes. Zero means no cap.
	MaxLength int

	// TrimSpaces strips leading and trailing whitespace.
	TrimSpaces bool

	// TrimMultipleSpaces collapses interior whitespace runs to a single space.
	TrimMultipleSpaces bool

	// Default replaces an absent or empty value. Empty means no substitution.
	Default string
}

// DefaultPolicy returns the policy used for a field whose tags set nothing explicitly.
func DefaultPolicy() Policy {
	return Policy{
		Transform:          TransformNone,
		MaxLength:          0,
		TrimSpaces:         true,
		TrimMultipleSpaces: true,
		Default:            "",
	}
}

// ParsePolicy reads policy tags from a struct tag.
// The boolean result reports whether the tag declares a policy at all.
// Unset attributes resolve to DefaultPolicy values.
func ParsePolicy(tag reflect.StructTag) (Policy, bool, error) {
	return parsePolicy(tag.Lookup)
}

// parsePolicy builds a policy from a tag lookup function.
func parsePolicy(lookup func(string) (string, bool)) (Policy, bool, error) {
	declared := false
	for _, key := range policyTags {
		if _, ok := lookup(key); ok {
			declared = true
			break
		}
	}
	if !declared {
		return Policy{}, false, nil
	}

	p := DefaultPolicy()

	if val, ok := lookup(TagTransform); ok {
		t := Transform(val)
		if t == "" {
			t = TransformNone
		}
		if !IsValidTransform(t) {
			return Policy{}, true, &ConfigError{Err: ErrInvalidTag, Tag: TagTransform, Value: val}
		}
		p.Transform = t
	}

	if val, ok := lookup(TagMax); ok {
		n, err := strconv.Atoi(val)
		if err != nil || n < 0 {
			return Policy{}, true, &ConfigError{Err: ErrInvalidTag, Tag: TagMax, Value: val}
		}
		p.MaxLength = n
	}

	if val, ok := lookup(TagTrim); ok {
		b, err := strconv.ParseBool(val)
		if err != nil {
			return Policy{}, true, &ConfigError{Err: ErrInvalidTag, Tag: TagTrim, Value: val}
		}
		p.TrimSpaces = b
	}

	if val, ok := lookup(TagCollapse); ok {
		b, err := strconv.ParseBool(val)
		if err != nil {
			return Policy{}, true, &ConfigError{Err: ErrInvalidTag, Tag: TagCollapse, Value: val}
		}
		p.TrimMultipleSpaces = b
	}

	if val, ok := lookup(TagDefault); ok {
		p.Default = val
	}

	return p, true, nil
}

// Apply runs the normalization pipeline on value: default substitution,
// transform, length cap, edge trim, then whitespace collapse.
func (p Policy) Apply(value string) string {
	return p.ApplyWith(value, defaultTransformers[p.Transform])
}

// ApplyWith is Apply with an explicit transformer. A nil transformer skips
// the transform step.
func (p Policy) ApplyWith(value string, tr Transformer) string {
	if value == "" {
		value = p.Default
	}

	if tr != nil {
		value = tr.Transform(value)
	}

	if p.MaxLength > 0 && len(value) > p.MaxLength {
		value = truncate(value, p.MaxLength)
	}

	if p.TrimSpaces {
		value = trimSpace(value)
	}

	if p.TrimMultipleSpaces {
		value = collapseSpaces(value)
	}

	return value
}

// ApplyPtr is Apply for optional values. A nil value stays nil unless the
// policy has a default, in which case a new pointer to the processed default
// is returned.
func (p Policy) ApplyPtr(value *string) *string {
	if value == nil {
		if p.Default == "" {
			return nil
		}
		out := p.Apply(p.Default)
		return &out
	}
	out := p.Apply(*value)
	return &out
}
