// Package testing provides fixtures and helpers for tidy tests.
package testing

import (
	"strings"
	"testing"

	"github.com/zoobzio/tidy"
)

// SimpleUser is a test type with no policy tags.
type SimpleUser struct {
	ID   string `json:"id" yaml:"id" xml:"id" msgpack:"id" bson:"id"`
	Name string `json:"name" yaml:"name" xml:"name" msgpack:"name" bson:"name"`
}

// Clone implements tidy.Cloner[SimpleUser].
func (u SimpleUser) Clone() SimpleUser { return u }

// ProfileUser carries one field of each transform plus capped details.
type ProfileUser struct {
	FullName     string  `json:"fullName" yaml:"fullName" xml:"fullName" msgpack:"fullName" bson:"fullName" tidy.transform:"words" tidy.default:"Unknown User"`
	UniqueID     *string `json:"uniqueId,omitempty" yaml:"uniqueId,omitempty" xml:"uniqueId,omitempty" msgpack:"uniqueId,omitempty" bson:"uniqueId,omitempty" tidy.transform:"upper"`
	EmailAddress string  `json:"emailAddress" yaml:"emailAddress" xml:"emailAddress" msgpack:"emailAddress" bson:"emailAddress" tidy.transform:"lower" tidy.default:"noemail@example.com"`
	Address      string  `json:"address" yaml:"address" xml:"address" msgpack:"address" bson:"address" tidy.transform:"sentences" tidy.default:"Unknown Address"`
	UserDetails  string  `json:"userDetails" yaml:"userDetails" xml:"userDetails" msgpack:"userDetails" bson:"userDetails" tidy.max:"250" tidy.collapse:"false" tidy.default:"N/A"`
	Age          int     `json:"age" yaml:"age" xml:"age" msgpack:"age" bson:"age" tidy.transform:"upper"`
	Raw          string  `json:"raw" yaml:"raw" xml:"raw" msgpack:"raw" bson:"raw"`
}

// Clone implements tidy.Cloner[ProfileUser].
func (u ProfileUser) Clone() ProfileUser {
	if u.UniqueID != nil {
		id := *u.UniqueID
		u.UniqueID = &id
	}
	return u
}

// Ptr returns a pointer to s.
func Ptr(s string) *string {
	return &s
}

// Details returns a string of n bytes made of words separated by double spaces.
func Details(n int) string {
	var b strings.Builder
	for b.Len() < n {
		b.WriteString("lorem  ")
	}
	return b.String()[:n]
}

// MustProcessor returns a processor for T or fails the test.
func MustProcessor[T any](tb testing.TB) *tidy.Processor[T] {
	tb.Helper()
	proc, err := tidy.NewProcessor[T]()
	if err != nil {
		tb.Fatalf("NewProcessor() error: %v", err)
	}
	return proc
}
