// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-txt2epub/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/book.yaml or run 'txt2epub init'"

	// Find a user config path (contains .config/go-txt2epub) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-txt2epub") {
			hint += ", or create " + p
			break
		}
	}

	return format(hint)
}

// ForInputDirectory returns hints for missing chapter directories.
func ForInputDirectory() string {
	return format("set book.inputDirectory relative to the config file, or use --input")
}

// ForNoChapters returns hints when the input directory holds no chapters.
func ForNoChapters() string {
	return format("chapter files must use the .txt extension")
}

// ForDecode returns hints for undecodable chapter files.
func ForDecode(tried []string) string {
	var hints []string
	if len(tried) > 0 {
		hints = append(hints, "tried "+strings.Join(tried, ", "))
	}
	hints = append(hints, "use --encodings to add or reorder candidates")
	return formatHints(hints)
}

// ForAssetPath returns hints for illustration paths outside the input directory.
func ForAssetPath() string {
	return format("illustration paths are relative to the input directory and cannot leave it")
}

// ForAssetRead returns hints for illustrations that cannot be read.
func ForAssetRead() string {
	return formatHints([]string{
		"illustration paths are resolved relative to the input directory",
		"check the file name in the ［＃挿絵（...）］ pragma matches the image on disk",
	})
}

// ForCoverImage returns hints for cover image errors.
func ForCoverImage() string {
	return format("supported formats: JPEG, PNG, GIF, WebP, SVG")
}

// ForOutputDirectory returns hints for output file write errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
