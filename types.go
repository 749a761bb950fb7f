package txt2epub

import (
	"fmt"
	"strings"

	"github.com/alnah/go-txt2epub/internal/epub"
	"github.com/alnah/go-txt2epub/internal/pipeline"
)

// Direction is the page progression direction of the book.
type Direction string

// Direction constants.
const (
	DirectionRTL     Direction = epub.DirectionRTL
	DirectionLTR     Direction = epub.DirectionLTR
	DirectionDefault Direction = epub.DirectionDefault
)

// Defaults applied to zero-valued Input fields.
const (
	DefaultLanguage         = "ja"
	DefaultDirection        = DirectionRTL
	DefaultParagraphBreak   = pipeline.DefaultParagraphBreak
	DefaultLineHeight       = 1.8
	DefaultMarginVertical   = "20px"
	DefaultMarginHorizontal = "30px"
	DefaultFontFamily       = `"游明朝", "Yu Mincho", "Hiragino Mincho ProN", "ヒラギノ明朝 ProN W3", "MS Mincho", "ＭＳ 明朝", serif`
)

// Line height bounds.
const (
	MinLineHeight = 0.5
	MaxLineHeight = 5.0
)

// Validate checks the direction is known. Empty means DefaultDirection.
func (d Direction) Validate() error {
	switch Direction(strings.ToLower(string(d))) {
	case "", DirectionRTL, DirectionLTR, DirectionDefault:
		return nil
	default:
		return fmt.Errorf("%w: %q (must be rtl, ltr, or default)", ErrInvalidDirection, string(d))
	}
}

// normalize lowercases d and applies the default.
func (d Direction) normalize() Direction {
	if d == "" {
		return DefaultDirection
	}
	return Direction(strings.ToLower(string(d)))
}

// Input contains build parameters.
type Input struct {
	InputDir       string      // directory of *.txt chapter files (required)
	Metadata       Metadata    // Title is required
	CoverImage     string      // optional cover image path
	Stylesheet     string      // optional CSS file replacing the built-in style
	CSS            CSSSettings // typography of the built-in style
	Encodings      []string    // candidate encodings, in order; nil = defaults
	ParagraphBreak int         // 2 or 3; 0 = DefaultParagraphBreak
}

// Metadata describes the publication.
type Metadata struct {
	Title       string
	Author      string
	Language    string // BCP 47; empty = DefaultLanguage
	Publisher   string
	Description string
	Date        string // literal W3CDTF date, "auto" or "auto:FORMAT"
	Direction   Direction
}

// CSSSettings tune the built-in vertical stylesheet.
// Zero values fall back to the defaults.
type CSSSettings struct {
	FontFamily       string
	LineHeight       float64
	MarginVertical   string
	MarginHorizontal string
}

// Validate checks that CSS settings are usable.
func (c CSSSettings) Validate() error {
	if c.LineHeight != 0 && (c.LineHeight < MinLineHeight || c.LineHeight > MaxLineHeight) {
		return fmt.Errorf("%w: line height %.2f (must be between %.1f and %.1f)", ErrInvalidCSS, c.LineHeight, MinLineHeight, MaxLineHeight)
	}
	for _, m := range []string{c.MarginVertical, c.MarginHorizontal} {
		if m != "" && !isCSSLength(m) {
			return fmt.Errorf("%w: margin %q", ErrInvalidCSS, m)
		}
	}
	if strings.ContainsAny(c.FontFamily, "{};<>") {
		return fmt.Errorf("%w: font family %q", ErrInvalidCSS, c.FontFamily)
	}
	return nil
}

// Validate checks that required fields are present and valid.
func (in Input) Validate() error {
	if strings.TrimSpace(in.Metadata.Title) == "" {
		return ErrMissingTitle
	}
	if in.InputDir == "" {
		return ErrMissingInputDir
	}
	if err := in.Metadata.Direction.Validate(); err != nil {
		return err
	}
	if in.ParagraphBreak != 0 && in.ParagraphBreak != 2 && in.ParagraphBreak != 3 {
		return fmt.Errorf("%w: %d (must be 2 or 3)", ErrInvalidParagraphBreak, in.ParagraphBreak)
	}
	return in.CSS.Validate()
}

// Chapter summarizes one packaged chapter.
type Chapter struct {
	Index    int
	Title    string
	FileName string // XHTML file name inside the container
	Source   string // source file name
	Encoding string // encoding the source decoded with
}

// Result holds the outcome of a build.
type Result struct {
	EPUB       []byte
	Identifier string
	Chapters   []Chapter
	Assets     int  // illustrations packaged
	HasCover   bool // false when the cover was missing or unusable
}
