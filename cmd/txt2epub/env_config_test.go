package main

// Notes:
// - Tests use t.Setenv() which prevents t.Parallel() at parent level.

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alnah/go-txt2epub/internal/config"
	"github.com/alnah/go-txt2epub/internal/logger"
)

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Environment variable loading
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Setenv("TXT2EPUB_CONFIG", "novel")
	t.Setenv("TXT2EPUB_INPUT_DIR", "/chapters")
	t.Setenv("TXT2EPUB_OUTPUT", "/out/book.epub")
	t.Setenv("TXT2EPUB_AUTHOR", "夏目漱石")
	t.Setenv("TXT2EPUB_LANG", "ja-JP")
	t.Setenv("TXT2EPUB_DIRECTION", "ltr")
	t.Setenv("TXT2EPUB_DATE", "auto")
	t.Setenv("TXT2EPUB_ENCODINGS", "shift_jis, utf-8,,")
	t.Setenv("TXT2EPUB_PARAGRAPH_BREAK", "3")
	t.Setenv("TXT2EPUB_STYLE", "vertical")
	t.Setenv("TXT2EPUB_LOG_LEVEL", "debug")

	cfg := loadEnvConfig()

	checks := map[string][2]string{
		"ConfigPath": {cfg.ConfigPath, "novel"},
		"InputDir":   {cfg.InputDir, "/chapters"},
		"Output":     {cfg.Output, "/out/book.epub"},
		"Author":     {cfg.Author, "夏目漱石"},
		"Language":   {cfg.Language, "ja-JP"},
		"Direction":  {cfg.Direction, "ltr"},
		"Date":       {cfg.Date, "auto"},
		"Style":      {cfg.Style, "vertical"},
		"LogLevel":   {cfg.LogLevel, "debug"},
	}
	for name, c := range checks {
		if c[0] != c[1] {
			t.Errorf("%s = %q, want %q", name, c[0], c[1])
		}
	}
	if strings.Join(cfg.Encodings, ",") != "shift_jis,utf-8" {
		t.Errorf("Encodings = %v, want [shift_jis utf-8]", cfg.Encodings)
	}
	if cfg.ParagraphBreak != 3 {
		t.Errorf("ParagraphBreak = %d, want 3", cfg.ParagraphBreak)
	}
}

func TestLoadEnvConfig_InvalidParagraphBreak(t *testing.T) {
	for _, v := range []string{"abc", "-2", "0"} {
		t.Run(v, func(t *testing.T) {
			t.Setenv("TXT2EPUB_PARAGRAPH_BREAK", v)
			if got := loadEnvConfig().ParagraphBreak; got != 0 {
				t.Errorf("ParagraphBreak = %d, want 0 for %q", got, v)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Setenv("TXT2EPUB_AUTOR", "typo")
	t.Setenv("TXT2EPUB_AUTHOR", "ok")

	var buf bytes.Buffer
	warnUnknownEnvVars(logger.New(&logger.Config{Level: logger.WarnLevel, Output: &buf}))

	out := buf.String()
	if !strings.Contains(out, "TXT2EPUB_AUTOR") {
		t.Errorf("expected warning for TXT2EPUB_AUTOR, got %q", out)
	}
	if strings.Contains(out, "TXT2EPUB_AUTHOR") {
		t.Errorf("known variable should not warn: %q", out)
	}
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - Priority behavior
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("fills empty fields", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Config{}
		applyEnvConfig(&envConfig{
			InputDir:       "chapters",
			Output:         "out.epub",
			Author:         "作者",
			Encodings:      []string{"euc-jp"},
			ParagraphBreak: 3,
		}, cfg)

		if cfg.Book.InputDirectory != "chapters" || cfg.Book.OutputFile != "out.epub" || cfg.Book.Author != "作者" {
			t.Errorf("env values not applied: %+v", cfg.Book)
		}
		if len(cfg.Book.Encodings) != 1 || cfg.Book.Encodings[0] != "euc-jp" {
			t.Errorf("Encodings = %v", cfg.Book.Encodings)
		}
		if cfg.Book.ParagraphBreak != 3 {
			t.Errorf("ParagraphBreak = %d", cfg.Book.ParagraphBreak)
		}
	})

	t.Run("config file wins", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Config{Book: config.BookConfig{Author: "config", ParagraphBreak: 2}}
		applyEnvConfig(&envConfig{Author: "env", ParagraphBreak: 3}, cfg)

		if cfg.Book.Author != "config" {
			t.Errorf("Author = %q, want config", cfg.Book.Author)
		}
		if cfg.Book.ParagraphBreak != 2 {
			t.Errorf("ParagraphBreak = %d, want 2", cfg.Book.ParagraphBreak)
		}
	})
}
