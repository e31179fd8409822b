package tidy

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Transformer applies a case conversion to a value.
type Transformer interface {
	// Transform returns the converted value.
	Transform(value string) string
}

// TransformerFunc adapts a plain function to the Transformer interface.
type TransformerFunc func(value string) string

// Transform calls f(value).
func (f TransformerFunc) Transform(value string) string {
	return f(value)
}

// noneTransformer returns values unchanged.
type noneTransformer struct{}

// NoneTransformer returns a transformer that leaves values as they are.
func NoneTransformer() Transformer {
	return &noneTransformer{}
}

func (t *noneTransformer) Transform(value string) string {
	return value
}

// upperTransformer: john doe -> JOHN DOE
type upperTransformer struct{}

// UpperTransformer returns a transformer that upper-cases every character.
func UpperTransformer() Transformer {
	return &upperTransformer{}
}

func (t *upperTransformer) Transform(value string) string {
	return strings.ToUpper(value)
}

// lowerTransformer: John.Doe@Example.COM -> john.doe@example.com
type lowerTransformer struct{}

// LowerTransformer returns a transformer that lower-cases every character.
func LowerTransformer() Transformer {
	return &lowerTransformer{}
}

func (t *lowerTransformer) Transform(value string) string {
	return strings.ToLower(value)
}

// wordsTransformer: "  john   DOE " -> "John Doe"
type wordsTransformer struct{}

// WordsTransformer returns a transformer that capitalizes each word.
// Words are split on whitespace runs and rejoined with a single space,
// so interior spacing is normalized regardless of the collapse setting.
func WordsTransformer() Transformer {
	return &wordsTransformer{}
}

func (t *wordsTransformer) Transform(value string) string {
	words := strings.Fields(value)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(len(value))

	for i, word := range words {
		if i > 0 {
			b.WriteByte(' ')
		}
		first, size := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(first))
		b.WriteString(strings.ToLower(word[size:]))
	}

	return b.String()
}

// sentencesTransformer: "hello world. this is fine!" -> "Hello world. This is fine!"
type sentencesTransformer struct{}

// SentencesTransformer returns a transformer that capitalizes the first
// letter of each sentence. A sentence starts at the beginning of the input
// and after '.', '?' or '!'. Everything else passes through unchanged.
func SentencesTransformer() Transformer {
	return &sentencesTransformer{}
}

func (t *sentencesTransformer) Transform(value string) string {
	var b strings.Builder
	b.Grow(len(value))

	capitalizeNext := true
	for _, r := range value {
		if capitalizeNext && unicode.IsLetter(r) {
			b.WriteRune(unicode.ToUpper(r))
			capitalizeNext = false
			continue
		}
		b.WriteRune(r)
		if r == '.' || r == '?' || r == '!' {
			capitalizeNext = true
		}
	}

	return b.String()
}

// builtinTransformers returns the default transformer registry.
func builtinTransformers() map[Transform]Transformer {
	return map[Transform]Transformer{
		TransformNone:                NoneTransformer(),
		TransformUpper:               UpperTransformer(),
		TransformLower:               LowerTransformer(),
		TransformCapitalizeWords:     WordsTransformer(),
		TransformCapitalizeSentences: SentencesTransformer(),
	}
}

// defaultTransformers backs Policy.Apply and the untyped Normalize entry point.
var defaultTransformers = builtinTransformers()
