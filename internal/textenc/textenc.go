// Package textenc decodes manuscript files whose character encoding is not
// declared, by trying a list of candidate encodings in order.
package textenc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

// Sentinel errors for decoding.
var (
	// ErrUnknownEncoding indicates a candidate label is not a known encoding.
	ErrUnknownEncoding = errors.New("unknown encoding")

	// ErrUndecodable indicates no candidate encoding could decode the data.
	ErrUndecodable = errors.New("no candidate encoding matched")
)

// DefaultEncodings are tried when no candidates are configured.
var DefaultEncodings = []string{"utf-8", "shift_jis", "euc-jp", "iso-2022-jp"}

const utf8BOM = "\xef\xbb\xbf"

// Decode returns data as UTF-8 text together with the canonical name of the
// encoding that decoded it. UTF-8 must be valid; other encodings must
// transcode without replacement characters.
func Decode(data []byte, candidates []string) (string, string, error) {
	if len(candidates) == 0 {
		candidates = DefaultEncodings
	}

	for _, label := range candidates {
		enc, name := charset.Lookup(strings.TrimSpace(label))
		if enc == nil {
			return "", "", fmt.Errorf("%w: %q", ErrUnknownEncoding, label)
		}

		if name == "utf-8" {
			if utf8.Valid(data) {
				return strings.TrimPrefix(string(data), utf8BOM), name, nil
			}
			continue
		}

		reader := transform.NewReader(bytes.NewReader(data), enc.NewDecoder())
		decoded, err := io.ReadAll(reader)
		if err != nil || !utf8.Valid(decoded) || bytes.ContainsRune(decoded, utf8.RuneError) {
			continue
		}
		return string(decoded), name, nil
	}

	return "", "", fmt.Errorf("%w (tried %s)", ErrUndecodable, strings.Join(candidates, ", "))
}

// Validate checks that every label names a known encoding.
func Validate(labels []string) error {
	for _, label := range labels {
		if enc, _ := charset.Lookup(strings.TrimSpace(label)); enc == nil {
			return fmt.Errorf("%w: %q", ErrUnknownEncoding, label)
		}
	}
	return nil
}
