package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-txt2epub/internal/config"
	"github.com/alnah/go-txt2epub/internal/logger"
)

const envPrefix = "TXT2EPUB_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath     string   // TXT2EPUB_CONFIG: config file name or path
	InputDir       string   // TXT2EPUB_INPUT_DIR: chapter directory
	Output         string   // TXT2EPUB_OUTPUT: output EPUB file
	Author         string   // TXT2EPUB_AUTHOR: author name
	Language       string   // TXT2EPUB_LANG: language tag
	Direction      string   // TXT2EPUB_DIRECTION: rtl, ltr, default
	Publisher      string   // TXT2EPUB_PUBLISHER: publisher name
	Date           string   // TXT2EPUB_DATE: publication date
	Encodings      []string // TXT2EPUB_ENCODINGS: comma-separated candidates
	ParagraphBreak int      // TXT2EPUB_PARAGRAPH_BREAK: 2 or 3
	Style          string   // TXT2EPUB_STYLE: base style name or path
	AssetPath      string   // TXT2EPUB_ASSET_PATH: custom asset directory
	LogLevel       string   // TXT2EPUB_LOG_LEVEL: debug, info, warn, error
}

// knownEnvVars lists valid TXT2EPUB_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"TXT2EPUB_CONFIG":          true,
	"TXT2EPUB_INPUT_DIR":       true,
	"TXT2EPUB_OUTPUT":          true,
	"TXT2EPUB_AUTHOR":          true,
	"TXT2EPUB_LANG":            true,
	"TXT2EPUB_DIRECTION":       true,
	"TXT2EPUB_PUBLISHER":       true,
	"TXT2EPUB_DATE":            true,
	"TXT2EPUB_ENCODINGS":       true,
	"TXT2EPUB_PARAGRAPH_BREAK": true,
	"TXT2EPUB_STYLE":           true,
	"TXT2EPUB_ASSET_PATH":      true,
	"TXT2EPUB_LOG_LEVEL":       true,
}

// loadEnvConfig reads configuration from environment variables.
// Malformed numeric values are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("TXT2EPUB_CONFIG"),
		InputDir:   os.Getenv("TXT2EPUB_INPUT_DIR"),
		Output:     os.Getenv("TXT2EPUB_OUTPUT"),
		Author:     os.Getenv("TXT2EPUB_AUTHOR"),
		Language:   os.Getenv("TXT2EPUB_LANG"),
		Direction:  os.Getenv("TXT2EPUB_DIRECTION"),
		Publisher:  os.Getenv("TXT2EPUB_PUBLISHER"),
		Date:       os.Getenv("TXT2EPUB_DATE"),
		Style:      os.Getenv("TXT2EPUB_STYLE"),
		AssetPath:  os.Getenv("TXT2EPUB_ASSET_PATH"),
		LogLevel:   os.Getenv("TXT2EPUB_LOG_LEVEL"),
	}

	if raw := os.Getenv("TXT2EPUB_ENCODINGS"); raw != "" {
		for _, e := range strings.Split(raw, ",") {
			if e = strings.TrimSpace(e); e != "" {
				cfg.Encodings = append(cfg.Encodings, e)
			}
		}
	}

	if raw := os.Getenv("TXT2EPUB_PARAGRAPH_BREAK"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			cfg.ParagraphBreak = n
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized TXT2EPUB_* variables.
// Helps catch typos like TXT2EPUB_AUTOR instead of TXT2EPUB_AUTHOR.
func warnUnknownEnvVars(log logger.Logger) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				log.Warn("unknown environment variable (typo?)", "name", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty/zero.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	b := &cfg.Book
	setIfEmpty(&b.InputDirectory, env.InputDir)
	setIfEmpty(&b.OutputFile, env.Output)
	setIfEmpty(&b.Author, env.Author)
	setIfEmpty(&b.Language, env.Language)
	setIfEmpty(&b.Direction, env.Direction)
	setIfEmpty(&b.Publisher, env.Publisher)
	setIfEmpty(&b.Date, env.Date)

	if len(env.Encodings) > 0 && len(b.Encodings) == 0 {
		b.Encodings = env.Encodings
	}
	if env.ParagraphBreak != 0 && b.ParagraphBreak == 0 {
		b.ParagraphBreak = env.ParagraphBreak
	}
}

func setIfEmpty(dst *string, value string) {
	if value != "" && *dst == "" {
		*dst = value
	}
}
