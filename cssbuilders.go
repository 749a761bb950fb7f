package txt2epub

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// cssLength matches a non-negative CSS length such as 20px, 1.5em or 0.
var cssLength = regexp.MustCompile(`^(?:0|\d+(?:\.\d+)?(?:px|em|rem|%|vh|vw|pt|mm|cm|in))$`)

func isCSSLength(s string) bool {
	return cssLength.MatchString(strings.TrimSpace(s))
}

// buildTypographyCSS generates the body typography block appended to the
// built-in style. Zero-valued settings use the defaults.
func buildTypographyCSS(c CSSSettings) string {
	font := strings.TrimSpace(c.FontFamily)
	if font == "" {
		font = DefaultFontFamily
	}
	lineHeight := c.LineHeight
	if lineHeight == 0 {
		lineHeight = DefaultLineHeight
	}
	vertical := c.MarginVertical
	if vertical == "" {
		vertical = DefaultMarginVertical
	}
	horizontal := c.MarginHorizontal
	if horizontal == "" {
		horizontal = DefaultMarginHorizontal
	}

	return fmt.Sprintf(`
/* Typography */
body {
  font-family: %s;
  line-height: %s;
  margin: %s %s;
}
`, font, strconv.FormatFloat(lineHeight, 'f', -1, 64), strings.TrimSpace(vertical), strings.TrimSpace(horizontal))
}
