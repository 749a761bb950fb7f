package pipeline

import (
	"regexp"
	"strconv"
	"strings"
)

// Paragraph separator widths, in consecutive line breaks.
const (
	DefaultParagraphBreak = 2
	MinParagraphBreak     = 2
	MaxParagraphBreak     = 3
)

// ornamentGlyphs are decorative characters that turn a line into a separator.
const ornamentGlyphs = `◇◆◈❖♢♦☆★✧✦`

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Lines holding only spaces or only ornaments (with spaces)
	whitespaceLine = regexp.MustCompile(`(?m)^[ \t　]+$`)
	ornamentLine   = regexp.MustCompile(`(?m)^[ \t　` + ornamentGlyphs + `]*[` + ornamentGlyphs + `][ \t　` + ornamentGlyphs + `]*$`)

	// Runs of line breaks at or above each separator width
	breakRuns = map[int]*regexp.Regexp{
		2: regexp.MustCompile(`\n{2,}`),
		3: regexp.MustCompile(`\n{3,}`),
	}
)

// ValidParagraphBreak reports whether n is a supported separator width.
func ValidParagraphBreak(n int) bool {
	return n >= MinParagraphBreak && n <= MaxParagraphBreak
}

// NormalizeText prepares raw chapter text for segmentation: line endings
// become \n, blank-looking lines become empty, runs of at least width line
// breaks collapse to exactly width, and surrounding blank lines are trimmed.
func NormalizeText(content string, width int) string {
	if !ValidParagraphBreak(width) {
		width = DefaultParagraphBreak
	}
	content = normalizeLineEndings(content)
	content = blankOrnamentLines(content)
	content = compressBreaks(content, width)
	return strings.Trim(content, "\n")
}

// SplitParagraphs splits normalized text on the separator of the given width.
// Paragraphs holding only whitespace are dropped.
func SplitParagraphs(content string, width int) []string {
	if !ValidParagraphBreak(width) {
		width = DefaultParagraphBreak
	}
	var out []string
	for _, p := range strings.Split(content, strings.Repeat("\n", width)) {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// blankOrnamentLines empties whitespace-only and ornament-only lines.
func blankOrnamentLines(content string) string {
	content = whitespaceLine.ReplaceAllString(content, "")
	return ornamentLine.ReplaceAllString(content, "")
}

// compressBreaks limits consecutive line breaks to width.
func compressBreaks(content string, width int) string {
	re, ok := breakRuns[width]
	if !ok {
		re = regexp.MustCompile(`\n{` + strconv.Itoa(width) + `,}`)
	}
	return re.ReplaceAllString(content, strings.Repeat("\n", width))
}
