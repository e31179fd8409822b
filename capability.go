package tidy

// Transform represents a supported case conversion.
// Use these constants in struct tags: `tidy.transform:"words"`
type Transform string

const (
	// TransformNone leaves the value unchanged.
	TransformNone Transform = "none"

	// TransformUpper maps every character to upper case.
	TransformUpper Transform = "upper"

	// TransformLower maps every character to lower case.
	TransformLower Transform = "lower"

	// TransformCapitalizeWords upper-cases the first letter of each word and
	// lower-cases the rest. Words are rejoined with single spaces.
	TransformCapitalizeWords Transform = "words"

	// TransformCapitalizeSentences upper-cases the first letter of the input
	// and the first letter following '.', '?' or '!'.
	TransformCapitalizeSentences Transform = "sentences"
)

// validTransforms contains all valid transforms for tag validation.
var validTransforms = map[Transform]bool{
	TransformNone:                true,
	TransformUpper:               true,
	TransformLower:               true,
	TransformCapitalizeWords:     true,
	TransformCapitalizeSentences: true,
}

// IsValidTransform returns true if t is a known transform.
func IsValidTransform(t Transform) bool {
	return validTransforms[t]
}

// String returns the tag value of the transform.
func (t Transform) String() string {
	return string(t)
}
