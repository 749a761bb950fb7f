package main

// Notes:
// - mergeFlags: only set flags override config values.
// - buildInput: config fields map onto converter input.
// - hintFor: each hinted sentinel yields its hint, including wrapped errors.

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	txt2epub "github.com/alnah/go-txt2epub"
	"github.com/alnah/go-txt2epub/internal/config"
)

func TestMergeFlags(t *testing.T) {
	t.Parallel()

	t.Run("set flags override", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Config{Book: config.BookConfig{Title: "config", Author: "config", ParagraphBreak: 2}}
		flags := &buildFlags{output: "out.epub"}
		flags.book.title = "flag"
		flags.book.encodings = []string{"shift_jis"}
		flags.book.paragraphBreak = 3
		flags.css.lineHeight = 2.2
		flags.assets.stylesheet = "my.css"

		mergeFlags(flags, cfg)

		if cfg.Book.Title != "flag" {
			t.Errorf("Title = %q, want flag", cfg.Book.Title)
		}
		if cfg.Book.Author != "config" {
			t.Errorf("Author = %q, unset flag must not override", cfg.Book.Author)
		}
		if cfg.Book.OutputFile != "out.epub" || cfg.Book.Stylesheet != "my.css" {
			t.Errorf("paths not merged: %+v", cfg.Book)
		}
		if cfg.Book.ParagraphBreak != 3 || cfg.CSS.LineHeight != 2.2 {
			t.Errorf("numbers not merged: %d %v", cfg.Book.ParagraphBreak, cfg.CSS.LineHeight)
		}
		if len(cfg.Book.Encodings) != 1 || cfg.Book.Encodings[0] != "shift_jis" {
			t.Errorf("Encodings = %v", cfg.Book.Encodings)
		}
	})

	t.Run("zero flags keep config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Book.Title = "title"
		before := *cfg
		mergeFlags(&buildFlags{}, cfg)

		if cfg.Book.Title != before.Book.Title || cfg.Book.ParagraphBreak != before.Book.ParagraphBreak || cfg.CSS.LineHeight != before.CSS.LineHeight {
			t.Errorf("config changed by empty flags: %+v", cfg)
		}
	})
}

func TestBuildInput(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Book.Title = "  門  "
	cfg.Book.InputDirectory = "chapters"
	cfg.Book.Direction = "LTR"
	cfg.Book.CoverImage = "cover.jpg"
	cfg.CSS.FontFamily = "serif"

	in := buildInput(cfg)

	if in.Metadata.Title != "門" {
		t.Errorf("Title = %q", in.Metadata.Title)
	}
	if in.InputDir != "chapters" || in.CoverImage != "cover.jpg" {
		t.Errorf("paths = %q %q", in.InputDir, in.CoverImage)
	}
	if in.Metadata.Direction != txt2epub.Direction("LTR") {
		t.Errorf("Direction = %q", in.Metadata.Direction)
	}
	if in.CSS.FontFamily != "serif" || in.CSS.LineHeight != config.DefaultLineHeight {
		t.Errorf("CSS = %+v", in.CSS)
	}
	if in.ParagraphBreak != config.DefaultParagraphBreak || len(in.Encodings) == 0 {
		t.Errorf("ParagraphBreak = %d, Encodings = %v", in.ParagraphBreak, in.Encodings)
	}
	if err := in.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestHintFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{txt2epub.ErrInputDirNotFound, "inputDirectory"},
		{txt2epub.ErrNoChapters, ".txt"},
		{fmt.Errorf("chapter a.txt: %w", txt2epub.ErrDecode), "--encodings"},
		{txt2epub.ErrAssetPath, "input directory"},
		{fmt.Errorf("chapter 1: %w", txt2epub.ErrAssetRead), "resolved relative to the input directory"},
		{txt2epub.ErrWriteEPUB, "writable"},
		{txt2epub.ErrStyleNotFound, "vertical"},
		{errors.New("other"), ""},
	}

	for _, tt := range tests {
		got := hintFor(tt.err)
		if tt.want == "" {
			if got != "" {
				t.Errorf("hintFor(%v) = %q, want empty", tt.err, got)
			}
			continue
		}
		if !strings.Contains(got, "hint:") || !strings.Contains(got, tt.want) {
			t.Errorf("hintFor(%v) = %q, want hint containing %q", tt.err, got, tt.want)
		}
	}
}
