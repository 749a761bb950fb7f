package hints

import (
	"strings"
	"testing"
)

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		paths    []string
		contains string
	}{
		{
			name:     "empty paths",
			paths:    []string{},
			contains: "--config",
		},
		{
			name:     "suggests init",
			paths:    nil,
			contains: "txt2epub init",
		},
		{
			name:     "with paths",
			paths:    []string{"./novel.yaml", "/home/u/.config/go-txt2epub/novel.yaml"},
			contains: "go-txt2epub/novel.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForConfigNotFound(tt.paths)

			if !strings.Contains(hint, "hint:") {
				t.Error("expected hint prefix")
			}
			if !strings.Contains(hint, tt.contains) {
				t.Errorf("expected hint to contain %q, got %q", tt.contains, hint)
			}
		})
	}
}

func TestForDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		tried    []string
		contains []string
		excludes string
	}{
		{
			name:     "lists tried encodings",
			tried:    []string{"utf-8", "shift_jis"},
			contains: []string{"tried utf-8, shift_jis", "--encodings"},
		},
		{
			name:     "no tried encodings",
			tried:    nil,
			contains: []string{"--encodings"},
			excludes: "tried",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForDecode(tt.tried)
			for _, c := range tt.contains {
				if !strings.Contains(hint, c) {
					t.Errorf("expected hint to contain %q, got %q", c, hint)
				}
			}
			if tt.excludes != "" && strings.Contains(hint, tt.excludes) {
				t.Errorf("expected hint without %q, got %q", tt.excludes, hint)
			}
		})
	}
}

func TestForAssetRead(t *testing.T) {
	t.Parallel()

	got := ForAssetRead()
	for _, want := range []string{"relative to the input directory", "挿絵"} {
		if !strings.Contains(got, want) {
			t.Errorf("ForAssetRead() = %q, want it to contain %q", got, want)
		}
	}
}

func TestForStyleNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		available []string
		wantEmpty bool
		contains  string
	}{
		{
			name:      "empty available",
			available: []string{},
			wantEmpty: true,
		},
		{
			name:      "with styles",
			available: []string{"vertical", "horizontal"},
			contains:  "vertical, horizontal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForStyleNotFound(tt.available)

			if tt.wantEmpty && hint != "" {
				t.Errorf("expected empty hint, got %q", hint)
			}
			if !tt.wantEmpty && !strings.Contains(hint, tt.contains) {
				t.Errorf("expected hint to contain %q, got %q", tt.contains, hint)
			}
		})
	}
}

func TestFormat_Consistency(t *testing.T) {
	t.Parallel()

	// All hints should start with newline, spaces, and "hint:"
	hints := []string{
		ForConfigNotFound(nil),
		ForInputDirectory(),
		ForNoChapters(),
		ForDecode([]string{"utf-8"}),
		ForAssetPath(),
		ForAssetRead(),
		ForCoverImage(),
		ForOutputDirectory(),
		ForStyleNotFound([]string{"vertical"}),
	}

	for _, h := range hints {
		if !strings.HasPrefix(h, "\n  hint: ") {
			t.Errorf("hint format inconsistent: %q", h)
		}
	}
}

func TestFormat_Empty(t *testing.T) {
	t.Parallel()

	if got := format(""); got != "" {
		t.Errorf("format(\"\") = %q, want empty", got)
	}
	if got := formatHints(nil); got != "" {
		t.Errorf("formatHints(nil) = %q, want empty", got)
	}
}
