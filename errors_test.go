package tidy

import (
	"errors"
	"testing"
)

func TestConfigError(t *testing.T) {
	tests := []struct {
		name string
		err  *ConfigError
		want string
	}{
		{
			name: "tag with field",
			err:  &ConfigError{Err: ErrInvalidTag, Field: "Name", Tag: TagTransform, Value: "title"},
			want: `invalid tag tidy.transform:"title" (field Name)`,
		},
		{
			name: "value only",
			err:  &ConfigError{Err: ErrMissingTransformer, Field: "Email", Value: "lower"},
			want: `missing transformer "lower" (field Email)`,
		},
		{
			name: "bare",
			err:  &ConfigError{Err: ErrInvalidTag},
			want: "invalid tag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
			if !errors.Is(tt.err, tt.err.Err) {
				t.Error("ConfigError should unwrap to its sentinel")
			}
		})
	}
}

func TestFieldAccessError(t *testing.T) {
	err := newAccessError("tidy.HiddenUser", "secret", "read", "unexported field")

	want := "cannot read field tidy.HiddenUser.secret: unexported field"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, ErrFieldAccess) {
		t.Error("FieldAccessError should unwrap to ErrFieldAccess")
	}

	bare := &FieldAccessError{Type: "T", Field: "F", Op: "write"}
	if bare.Error() != "cannot write field T.F" {
		t.Errorf("Error() = %q", bare.Error())
	}
}

func TestCodecError(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := newCodecError(ErrUnmarshal, cause)

	if err.Error() != "unmarshal failed: unexpected EOF" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, ErrUnmarshal) {
		t.Error("CodecError should match its sentinel")
	}
	if !errors.Is(err, cause) {
		t.Error("CodecError should match its cause")
	}

	bare := newCodecError(ErrMarshal, nil)
	if bare.Error() != "marshal failed" {
		t.Errorf("Error() = %q", bare.Error())
	}
}
