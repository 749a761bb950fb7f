// Package dateutil resolves publication dates for package metadata.
//
// Dates end up in dc:date, which expects the W3CDTF profile of ISO 8601
// (YYYY, YYYY-MM, YYYY-MM-DD or a full timestamp). Users may write a
// literal date, "auto" for today, or "auto:FORMAT" with a preset name or a
// token format such as "YYYY-MM".
package dateutil

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Sentinel errors for date resolution.
var (
	// ErrInvalidDateFormat indicates an invalid date format string.
	ErrInvalidDateFormat = errors.New("invalid date format")

	// ErrInvalidDate indicates a date that is not W3CDTF.
	ErrInvalidDate = errors.New("invalid date")
)

// MaxDateFormatLength limits format string length to prevent abuse.
const MaxDateFormatLength = 50

// DefaultDateFormat is used when "auto" is specified without a format.
const DefaultDateFormat = "YYYY-MM-DD"

// dateTokens maps user-friendly tokens to Go time format components.
// Ordered by length descending for greedy matching.
var dateTokens = []struct {
	token string
	goFmt string
}{
	{"YYYY", "2006"},
	{"MM", "01"},
	{"DD", "02"},
	{"hh", "15"},
	{"mm", "04"},
	{"ss", "05"},
}

// DatePresets provides named shortcuts for common date formats.
var DatePresets = map[string]string{
	"day":      "YYYY-MM-DD",
	"iso":      "YYYY-MM-DD",
	"month":    "YYYY-MM",
	"year":     "YYYY",
	"datetime": "YYYY-MM-DD[T]hh:mm:ss[Z]",
}

// w3cdtf matches the W3C date and time profile.
var w3cdtf = regexp.MustCompile(`^\d{4}(?:-(?:0[1-9]|1[0-2])(?:-(?:0[1-9]|[12]\d|3[01])(?:T(?:[01]\d|2[0-3]):[0-5]\d(?::[0-5]\d(?:\.\d+)?)?(?:Z|[+-](?:[01]\d|2[0-3]):[0-5]\d))?)?)?$`)

// ParseDateFormat converts a user-friendly format string to Go's time format.
// Tokens: YYYY, MM, DD, hh, mm, ss.
// Use brackets to escape literal text: [T] preserves "T" literally.
// Any non-token characters outside brackets are preserved as literals.
// Returns ErrInvalidDateFormat if the format is empty, too long, or has unclosed brackets.
func ParseDateFormat(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var result strings.Builder
	result.Grow(len(format) + 10)

	i := 0
	for i < len(format) {
		if format[i] == '[' {
			end := strings.Index(format[i+1:], "]")
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			result.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}

		matched := false
		for _, t := range dateTokens {
			if strings.HasPrefix(format[i:], t.token) {
				result.WriteString(t.goFmt)
				i += len(t.token)
				matched = true
				break
			}
		}

		if !matched {
			result.WriteByte(format[i])
			i++
		}
	}

	return result.String(), nil
}

// Resolve turns a configured date value into a W3CDTF date.
//   - "" → "" (no date)
//   - "auto" → now as YYYY-MM-DD
//   - "auto:preset" → now using a named preset (day, iso, month, year, datetime)
//   - "auto:FORMAT" → now using a token format
//   - anything else → validated and returned unchanged
//
// Dates derived from now are computed in UTC. Every result is checked
// against W3CDTF and ErrInvalidDate is returned otherwise.
func Resolve(value string, now time.Time) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}

	lower := strings.ToLower(value)
	if !strings.HasPrefix(lower, "auto") {
		return value, Validate(value)
	}

	format := DefaultDateFormat
	if lower != "auto" {
		if !strings.HasPrefix(lower, "auto:") {
			return "", fmt.Errorf("%w: invalid auto syntax %q, use \"auto\" or \"auto:FORMAT\"", ErrInvalidDateFormat, value)
		}
		format = value[len("auto:"):]
		if format == "" {
			return "", fmt.Errorf("%w: format cannot be empty after \"auto:\"", ErrInvalidDateFormat)
		}
		if preset, ok := DatePresets[strings.ToLower(format)]; ok {
			format = preset
		}
	}

	goFmt, err := ParseDateFormat(format)
	if err != nil {
		return "", err
	}

	out := now.UTC().Format(goFmt)
	if err := Validate(out); err != nil {
		return "", fmt.Errorf("format %q: %w", format, err)
	}
	return out, nil
}

// Validate reports whether s is a W3CDTF date.
func Validate(s string) error {
	if !w3cdtf.MatchString(s) {
		return fmt.Errorf("%w: %q is not YYYY, YYYY-MM, YYYY-MM-DD or YYYY-MM-DDThh:mm:ssZ", ErrInvalidDate, s)
	}
	return nil
}
