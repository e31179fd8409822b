package tidy

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestDefaultPolicy(t *testing.T) {
	p := DefaultPolicy()

	if p.Transform != TransformNone {
		t.Errorf("Transform = %q, want %q", p.Transform, TransformNone)
	}
	if p.MaxLength != 0 {
		t.Errorf("MaxLength = %d, want 0", p.MaxLength)
	}
	if !p.TrimSpaces || !p.TrimMultipleSpaces {
		t.Error("trim flags should default to true")
	}
	if p.Default != "" {
		t.Errorf("Default = %q, want empty", p.Default)
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		name     string
		tag      reflect.StructTag
		want     Policy
		declared bool
	}{
		{
			name:     "no policy",
			tag:      `json:"name"`,
			declared: false,
		},
		{
			name:     "marker only",
			tag:      `json:"name" tidy:""`,
			want:     DefaultPolicy(),
			declared: true,
		},
		{
			name:     "empty transform",
			tag:      `tidy.transform:""`,
			want:     DefaultPolicy(),
			declared: true,
		},
		{
			name: "all attributes",
			tag:  `tidy.transform:"words" tidy.max:"40" tidy.trim:"false" tidy.collapse:"false" tidy.default:"Unknown User"`,
			want: Policy{
				Transform:          TransformCapitalizeWords,
				MaxLength:          40,
				TrimSpaces:         false,
				TrimMultipleSpaces: false,
				Default:            "Unknown User",
			},
			declared: true,
		},
		{
			name: "default only",
			tag:  `tidy.default:"N/A"`,
			want: Policy{
				Transform:          TransformNone,
				TrimSpaces:         true,
				TrimMultipleSpaces: true,
				Default:            "N/A",
			},
			declared: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, declared, err := ParsePolicy(tt.tag)
			if err != nil {
				t.Fatalf("ParsePolicy() error: %v", err)
			}
			if declared != tt.declared {
				t.Fatalf("declared = %v, want %v", declared, tt.declared)
			}
			if declared && got != tt.want {
				t.Errorf("ParsePolicy() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParsePolicy_Invalid(t *testing.T) {
	tests := []struct {
		tag     reflect.StructTag
		wantTag string
	}{
		{`tidy.transform:"title"`, TagTransform},
		{`tidy.max:"-1"`, TagMax},
		{`tidy.max:"ten"`, TagMax},
		{`tidy.trim:"yes"`, TagTrim},
		{`tidy.collapse:"nope"`, TagCollapse},
	}

	for _, tt := range tests {
		t.Run(string(tt.tag), func(t *testing.T) {
			_, declared, err := ParsePolicy(tt.tag)
			if !declared {
				t.Error("declared should be true for an invalid policy tag")
			}
			if !errors.Is(err, ErrInvalidTag) {
				t.Fatalf("error = %v, want ErrInvalidTag", err)
			}
			var ce *ConfigError
			if !errors.As(err, &ce) || ce.Tag != tt.wantTag {
				t.Errorf("ConfigError tag = %v, want %q", ce, tt.wantTag)
			}
		})
	}
}

func TestPolicy_Apply(t *testing.T) {
	tests := []struct {
		name   string
		policy Policy
		input  string
		want   string
	}{
		{
			name:   "capitalize words",
			policy: Policy{Transform: TransformCapitalizeWords, TrimSpaces: true, TrimMultipleSpaces: true, Default: "Unknown User"},
			input:  "  john   DOE ",
			want:   "John Doe",
		},
		{
			name:   "lowercase default",
			policy: Policy{Transform: TransformLower, TrimSpaces: true, TrimMultipleSpaces: true, Default: "noemail@example.com"},
			input:  "",
			want:   "noemail@example.com",
		},
		{
			name:   "capitalize sentences",
			policy: Policy{Transform: TransformCapitalizeSentences, TrimSpaces: true, TrimMultipleSpaces: true},
			input:  "hello world. this is fine!",
			want:   "Hello world. This is fine!",
		},
		{
			name:   "uppercase",
			policy: Policy{Transform: TransformUpper, TrimSpaces: true, TrimMultipleSpaces: true},
			input:  " ab-12\tcd ",
			want:   "AB-12 CD",
		},
		{
			name:   "default is transformed",
			policy: Policy{Transform: TransformUpper, TrimSpaces: true, TrimMultipleSpaces: true, Default: "anon"},
			input:  "",
			want:   "ANON",
		},
		{
			name:   "empty without default",
			policy: DefaultPolicy(),
			input:  "",
			want:   "",
		},
		{
			name:   "whitespace only is not empty",
			policy: Policy{TrimSpaces: true, TrimMultipleSpaces: true, Default: "N/A"},
			input:  "   ",
			want:   "",
		},
		{
			name:   "collapse without trim keeps single edge spaces",
			policy: Policy{TrimSpaces: false, TrimMultipleSpaces: true},
			input:  "  a \n\t b  ",
			want:   " a b ",
		},
		{
			name:   "trim without collapse keeps interior runs",
			policy: Policy{TrimSpaces: true, TrimMultipleSpaces: false},
			input:  "  a   b  ",
			want:   "a   b",
		},
		{
			name:   "words normalizes spacing without trim flags",
			policy: Policy{Transform: TransformCapitalizeWords},
			input:  "  mARY   jane  ",
			want:   "Mary Jane",
		},
		{
			name:   "truncate then trim",
			policy: Policy{MaxLength: 6, TrimSpaces: true, TrimMultipleSpaces: true},
			input:  "hello world",
			want:   "hello",
		},
		{
			name:   "no transform, no trim",
			policy: Policy{Transform: TransformNone},
			input:  "  As  Is ",
			want:   "  As  Is ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.policy.Apply(tt.input); got != tt.want {
				t.Errorf("Apply(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPolicy_Apply_MaxLengthPreservesInteriorSpaces(t *testing.T) {
	p := Policy{MaxLength: 250, TrimSpaces: true, TrimMultipleSpaces: false, Default: "N/A"}
	input := strings.Repeat("ab  ", 75)

	got := p.Apply(input)

	if len(got) != 250 {
		t.Fatalf("len = %d, want 250", len(got))
	}
	if !strings.Contains(got, "ab  ab") {
		t.Error("interior double spaces should be preserved")
	}
}

func TestPolicy_Apply_TruncationInvariant(t *testing.T) {
	inputs := []string{
		"",
		"short",
		strings.Repeat("x", 100),
		strings.Repeat("héllo wörld ", 20),
		strings.Repeat("日本語", 30),
		"  spaced   out   words   everywhere  ",
	}
	transforms := []Transform{
		TransformNone, TransformUpper, TransformLower,
		TransformCapitalizeWords, TransformCapitalizeSentences,
	}

	for _, limit := range []int{1, 2, 5, 17, 64} {
		for _, tr := range transforms {
			for _, trim := range []bool{true, false} {
				p := Policy{Transform: tr, MaxLength: limit, TrimSpaces: trim, TrimMultipleSpaces: trim, Default: "fallback value here"}
				for _, in := range inputs {
					if got := p.Apply(in); len(got) > limit {
						t.Errorf("Apply(%q) with %+v = %q (len %d), exceeds %d", in, p, got, len(got), limit)
					}
				}
			}
		}
	}
}

func TestPolicy_Apply_Idempotent(t *testing.T) {
	inputs := []string{
		"  Hello   World  ",
		"MiXeD\tcase\nlines",
		"",
		"already clean",
	}
	policies := []Policy{
		{Transform: TransformUpper, TrimSpaces: true, TrimMultipleSpaces: true},
		{Transform: TransformLower, TrimSpaces: true, TrimMultipleSpaces: true, Default: "Fallback"},
		{Transform: TransformNone, TrimSpaces: false, TrimMultipleSpaces: true},
		{Transform: TransformNone, TrimSpaces: true, TrimMultipleSpaces: true, MaxLength: 8},
	}

	for _, p := range policies {
		for _, in := range inputs {
			once := p.Apply(in)
			twice := p.Apply(once)
			if once != twice {
				t.Errorf("%+v: Apply(%q) = %q, Apply(Apply) = %q", p, in, once, twice)
			}
		}
	}
}

func TestPolicy_Apply_DefaultSubstitution(t *testing.T) {
	transforms := []Transform{
		TransformNone, TransformUpper, TransformLower,
		TransformCapitalizeWords, TransformCapitalizeSentences,
	}

	for _, tr := range transforms {
		p := Policy{Transform: tr, MaxLength: 10, TrimSpaces: true, TrimMultipleSpaces: true, Default: "  unknown   DEFAULT value "}

		want := collapseSpaces(trimSpace(truncate(defaultTransformers[tr].Transform(p.Default), 10)))
		if got := p.Apply(""); got != want {
			t.Errorf("%s: Apply(\"\") = %q, want %q", tr, got, want)
		}
		if got := p.Apply(""); got == p.Default {
			t.Errorf("%s: default returned untransformed", tr)
		}
	}
}

func TestPolicy_ApplyPtr(t *testing.T) {
	upper := Policy{Transform: TransformUpper, TrimSpaces: true, TrimMultipleSpaces: true}

	if got := upper.ApplyPtr(nil); got != nil {
		t.Errorf("ApplyPtr(nil) = %q, want nil", *got)
	}

	withDefault := upper
	withDefault.Default = "anon"
	got := withDefault.ApplyPtr(nil)
	if got == nil || *got != "ANON" {
		t.Errorf("ApplyPtr(nil) with default = %v, want ANON", got)
	}

	in := " abc "
	got = upper.ApplyPtr(&in)
	if got == nil || *got != "ABC" {
		t.Errorf("ApplyPtr(%q) = %v, want ABC", in, got)
	}
	if in != " abc " {
		t.Error("ApplyPtr should not modify the input pointee")
	}
}
