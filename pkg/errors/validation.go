package errors

import (
	"math"
	"strings"
	"unicode"
)

// ValidatePositive rejects n <= 0 with an INVALID_PARAMETER error naming the parameter.
func ValidatePositive(name string, n int) error {
	if n <= 0 {
		return New(ErrCodeInvalidParameter, "%s must be positive, got %d", name, n)
	}
	return nil
}

// ValidateOpenUnit rejects values outside the open interval (0, 1).
// NaN is rejected as well.
func ValidateOpenUnit(name string, p float64) error {
	if math.IsNaN(p) || p <= 0 || p >= 1 {
		return New(ErrCodeInvalidParameter, "%s must be strictly between 0 and 1, got %v", name, p)
	}
	return nil
}

// ValidateOutputPath validates an output file path supplied on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
//   - Must not name a directory (trailing separator)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidParameter, "output path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidParameter, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidParameter, "output path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		return New(ErrCodeInvalidParameter, "output path must name a file, not a directory: %q", path)
	}

	return nil
}
