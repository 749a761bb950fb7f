package main

import (
	"errors"
	"os"

	txt2epub "github.com/alnah/go-txt2epub"
	"github.com/alnah/go-txt2epub/internal/config"
)

// Exit codes for the txt2epub CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Book written
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // Missing input, undecodable text, missing asset, write failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, txt2epub.ErrInputDirNotFound) ||
		errors.Is(err, txt2epub.ErrNoChapters) ||
		errors.Is(err, txt2epub.ErrReadChapter) ||
		errors.Is(err, txt2epub.ErrDecode) ||
		errors.Is(err, txt2epub.ErrAssetRead) ||
		errors.Is(err, txt2epub.ErrAssetPath) ||
		errors.Is(err, txt2epub.ErrReadStylesheet) ||
		errors.Is(err, txt2epub.ErrWriteEPUB) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrMissingField) ||
		errors.Is(err, config.ErrInvalidDirection) ||
		errors.Is(err, config.ErrInvalidParagraphBreak) ||
		errors.Is(err, config.ErrInvalidEncoding) ||
		errors.Is(err, config.ErrInvalidDate) ||
		errors.Is(err, config.ErrInvalidCSS) ||
		errors.Is(err, txt2epub.ErrMissingTitle) ||
		errors.Is(err, txt2epub.ErrMissingInputDir) ||
		errors.Is(err, txt2epub.ErrInvalidDirection) ||
		errors.Is(err, txt2epub.ErrInvalidParagraphBreak) ||
		errors.Is(err, txt2epub.ErrInvalidCSS) ||
		errors.Is(err, txt2epub.ErrStyleNotFound) ||
		errors.Is(err, txt2epub.ErrTemplateNotFound) ||
		errors.Is(err, txt2epub.ErrInvalidAssetPath) ||
		errors.Is(err, ErrConfigExists) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, ErrUsage) {
		return ExitUsage
	}

	return ExitGeneral
}
