package errors

import (
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxLabelLength is the longest vertex label, in runes, accepted from
// flags or config files.
const MaxLabelLength = 128

// EdgeSeparator splits the two endpoints of an edge given on the command
// line ("A:B"). It is therefore not allowed inside a label.
const EdgeSeparator = ":"

// ValidateVertexLabel validates a vertex label supplied by the user.
//
// Rules:
//   - Not empty or whitespace-only
//   - No leading or trailing whitespace
//   - At most MaxLabelLength runes
//   - No control characters
//   - No EdgeSeparator
func ValidateVertexLabel(label string) error {
	if strings.TrimSpace(label) == "" {
		return New(ErrCodeInvalidVertex, "vertex label cannot be empty")
	}

	if strings.TrimSpace(label) != label {
		return New(ErrCodeInvalidVertex, "vertex label %q has surrounding whitespace", label)
	}

	if utf8.RuneCountInString(label) > MaxLabelLength {
		return New(ErrCodeInvalidVertex, "vertex label too long (max %d characters)", MaxLabelLength)
	}

	for _, r := range label {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidVertex, "vertex label contains invalid control characters")
		}
	}

	if strings.Contains(label, EdgeSeparator) {
		return New(ErrCodeInvalidVertex, "vertex label %q cannot contain %q", label, EdgeSeparator)
	}

	return nil
}

// ParseEdgeSpec splits an "A:B" edge specification into its endpoints and
// validates both labels. A self-loop ("A:A") is allowed.
func ParseEdgeSpec(spec string) (string, string, error) {
	from, to, ok := strings.Cut(spec, EdgeSeparator)
	if !ok {
		return "", "", New(ErrCodeInvalidEdge, "edge %q must have the form A%sB", spec, EdgeSeparator)
	}
	if err := ValidateVertexLabel(from); err != nil {
		return "", "", Wrap(ErrCodeInvalidEdge, err, "edge %q", spec)
	}
	if err := ValidateVertexLabel(to); err != nil {
		return "", "", Wrap(ErrCodeInvalidEdge, err, "edge %q", spec)
	}
	return from, to, nil
}

// ValidateConfigPath validates the path of a config file before it is
// opened.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
//   - Must have a .toml extension
func ValidateConfigPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "config path cannot be empty")
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "config path contains invalid characters")
		}
	}

	if !strings.EqualFold(filepath.Ext(path), ".toml") {
		return New(ErrCodeInvalidPath, "config path %q must end in .toml", path)
	}

	return nil
}
