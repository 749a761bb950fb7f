package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-txt2epub/internal/dateutil"
	"github.com/alnah/go-txt2epub/internal/fileutil"
	"github.com/alnah/go-txt2epub/internal/textenc"
	"github.com/alnah/go-txt2epub/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound        = errors.New("config file not found")
	ErrEmptyConfigName       = errors.New("config name cannot be empty")
	ErrConfigParse           = errors.New("failed to parse config")
	ErrFieldTooLong          = errors.New("field exceeds maximum length")
	ErrMissingField          = errors.New("missing required field")
	ErrInvalidDirection      = errors.New("invalid page progression direction")
	ErrInvalidParagraphBreak = errors.New("invalid paragraph break")
	ErrInvalidEncoding       = errors.New("invalid encoding")
	ErrInvalidDate           = errors.New("invalid date")
	ErrInvalidCSS            = errors.New("invalid css setting")
)

// AppDirName is the directory under the user config dir searched for configs.
const AppDirName = "go-txt2epub"

// Field length limits.
const (
	MaxTitleLength       = 500
	MaxAuthorLength      = 200
	MaxLanguageLength    = 35 // BCP 47 tags stay well below this
	MaxPublisherLength   = 200
	MaxDescriptionLength = 2000
	MaxDateLength        = 50
	MaxPathLength        = 4096
	MaxFontFamilyLength  = 500
	MaxLengthValueLength = 20 // "20px", "1.5em"
)

// Defaults.
const (
	DefaultLanguage         = "ja"
	DefaultDirection        = "rtl"
	DefaultParagraphBreak   = 2
	DefaultLineHeight       = 1.8
	DefaultMarginVertical   = "20px"
	DefaultMarginHorizontal = "30px"
)

// Config holds all configuration for one book build.
type Config struct {
	Book BookConfig `yaml:"book"`
	CSS  CSSConfig  `yaml:"css"`
}

// BookConfig describes the book and where its sources live.
// Paths are relative to the config file when loaded from disk.
type BookConfig struct {
	Title          string   `yaml:"title"`
	Author         string   `yaml:"author,omitempty"`
	Language       string   `yaml:"language,omitempty"`  // default: ja
	Direction      string   `yaml:"direction,omitempty"` // rtl, ltr or default
	Publisher      string   `yaml:"publisher,omitempty"`
	Description    string   `yaml:"description,omitempty"`
	Date           string   `yaml:"date,omitempty"` // literal, "auto" or "auto:FORMAT"
	InputDirectory string   `yaml:"inputDirectory"`
	OutputFile     string   `yaml:"outputFile"`
	CoverImage     string   `yaml:"coverImage,omitempty"`
	Stylesheet     string   `yaml:"stylesheet,omitempty"` // replaces the embedded style
	Encodings      []string `yaml:"encodings,omitempty"`  // candidate order
	ParagraphBreak int      `yaml:"paragraphBreak,omitempty"`
}

// CSSConfig tunes the embedded vertical stylesheet.
type CSSConfig struct {
	FontFamily       string  `yaml:"fontFamily,omitempty"` // empty = Mincho stack
	LineHeight       float64 `yaml:"lineHeight,omitempty"`
	MarginVertical   string  `yaml:"marginVertical,omitempty"`
	MarginHorizontal string  `yaml:"marginHorizontal,omitempty"`
}

// DefaultConfig returns a configuration with every optional field at its default.
func DefaultConfig() *Config {
	return &Config{
		Book: BookConfig{
			Language:       DefaultLanguage,
			Direction:      DefaultDirection,
			Encodings:      append([]string(nil), textenc.DefaultEncodings...),
			ParagraphBreak: DefaultParagraphBreak,
		},
		CSS: CSSConfig{
			LineHeight:       DefaultLineHeight,
			MarginVertical:   DefaultMarginVertical,
			MarginHorizontal: DefaultMarginHorizontal,
		},
	}
}

// ApplyDefaults fills zero-valued optional fields.
func (c *Config) ApplyDefaults() {
	d := DefaultConfig()
	if c.Book.Language == "" {
		c.Book.Language = d.Book.Language
	}
	if c.Book.Direction == "" {
		c.Book.Direction = d.Book.Direction
	}
	if len(c.Book.Encodings) == 0 {
		c.Book.Encodings = d.Book.Encodings
	}
	if c.Book.ParagraphBreak == 0 {
		c.Book.ParagraphBreak = d.Book.ParagraphBreak
	}
	if c.CSS.LineHeight == 0 {
		c.CSS.LineHeight = d.CSS.LineHeight
	}
	if c.CSS.MarginVertical == "" {
		c.CSS.MarginVertical = d.CSS.MarginVertical
	}
	if c.CSS.MarginHorizontal == "" {
		c.CSS.MarginHorizontal = d.CSS.MarginHorizontal
	}
}

// Validate checks field values and lengths. Empty optional fields are valid;
// required fields are checked separately by RequireFields so that callers
// can merge overrides first.
func (c *Config) Validate() error {
	b := c.Book
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"book.title", b.Title, MaxTitleLength},
		{"book.author", b.Author, MaxAuthorLength},
		{"book.language", b.Language, MaxLanguageLength},
		{"book.publisher", b.Publisher, MaxPublisherLength},
		{"book.description", b.Description, MaxDescriptionLength},
		{"book.date", b.Date, MaxDateLength},
		{"book.inputDirectory", b.InputDirectory, MaxPathLength},
		{"book.outputFile", b.OutputFile, MaxPathLength},
		{"book.coverImage", b.CoverImage, MaxPathLength},
		{"book.stylesheet", b.Stylesheet, MaxPathLength},
		{"css.fontFamily", c.CSS.FontFamily, MaxFontFamilyLength},
		{"css.marginVertical", c.CSS.MarginVertical, MaxLengthValueLength},
		{"css.marginHorizontal", c.CSS.MarginHorizontal, MaxLengthValueLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	switch strings.ToLower(b.Direction) {
	case "", "rtl", "ltr", "default":
	default:
		return fmt.Errorf("%w: book.direction %q (must be rtl, ltr, or default)", ErrInvalidDirection, b.Direction)
	}

	switch b.ParagraphBreak {
	case 0, 2, 3:
	default:
		return fmt.Errorf("%w: book.paragraphBreak %d (must be 2 or 3)", ErrInvalidParagraphBreak, b.ParagraphBreak)
	}

	if err := textenc.Validate(b.Encodings); err != nil {
		return fmt.Errorf("%w: book.encodings: %w", ErrInvalidEncoding, err)
	}

	if b.Date != "" && !strings.HasPrefix(strings.ToLower(b.Date), "auto") {
		if err := dateutil.Validate(strings.TrimSpace(b.Date)); err != nil {
			return fmt.Errorf("%w: book.date: %w", ErrInvalidDate, err)
		}
	}

	if c.CSS.LineHeight < 0 || c.CSS.LineHeight > 5 {
		return fmt.Errorf("%w: css.lineHeight must be between 0 and 5, got %.2f", ErrInvalidCSS, c.CSS.LineHeight)
	}

	return nil
}

// RequireFields reports the first missing required field.
func (c *Config) RequireFields() error {
	required := []struct {
		name  string
		value string
	}{
		{"book.title", c.Book.Title},
		{"book.inputDirectory", c.Book.InputDirectory},
		{"book.outputFile", c.Book.OutputFile},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, r.name)
		}
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Relative paths in the book section are resolved against the directory of
// the config file. Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) || fileutil.FileExists(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := yamlutil.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		if errors.Is(err, yamlutil.ErrInputTooLarge) {
			return nil, fmt.Errorf("%w: %w", ErrConfigParse, err)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s\n%s", ErrConfigParse, configPath, yamlutil.FormatError(err))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.resolvePaths(filepath.Dir(configPath))
	return &cfg, nil
}

// resolvePaths makes relative book paths relative to base.
func (c *Config) resolvePaths(base string) {
	c.Book.InputDirectory = fileutil.ResolvePath(base, c.Book.InputDirectory)
	c.Book.OutputFile = fileutil.ResolvePath(base, c.Book.OutputFile)
	c.Book.CoverImage = fileutil.ResolvePath(base, c.Book.CoverImage)
	c.Book.Stylesheet = fileutil.ResolvePath(base, c.Book.Stylesheet)
}

// SearchPaths lists the candidate files for a config name, in lookup order:
// current directory then ~/.config/go-txt2epub/, .yaml before .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	if ext := filepath.Ext(name); ext == ".yaml" || ext == ".yml" {
		name = strings.TrimSuffix(name, ext)
		extensions = []string{ext}
	}

	paths := make([]string, 0, len(extensions)*2) // 2 locations
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppDirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath searches for a config file by name in standard locations.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
