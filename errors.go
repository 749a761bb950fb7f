package txt2epub

import (
	"errors"

	"github.com/alnah/go-txt2epub/internal/epub"
	"github.com/alnah/go-txt2epub/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	// Input validation errors.
	ErrMissingTitle          = errors.New("book title is required")
	ErrMissingInputDir       = errors.New("input directory is required")
	ErrInvalidDirection      = errors.New("invalid page progression direction")
	ErrInvalidParagraphBreak = errors.New("invalid paragraph break")
	ErrInvalidCSS            = errors.New("invalid css setting")

	// Source errors.
	ErrInputDirNotFound = pipeline.ErrInputDirNotFound
	ErrNoChapters       = errors.New("no chapter files found")
	ErrReadChapter      = errors.New("failed to read chapter file")
	ErrDecode           = errors.New("failed to decode chapter file")

	// Illustration errors.
	ErrAssetRead = pipeline.ErrAssetRead
	ErrAssetPath = pipeline.ErrAssetPath

	// Stylesheet errors.
	ErrReadStylesheet = errors.New("failed to read stylesheet")

	// Packaging errors.
	ErrNoSections     = epub.ErrNoSections
	ErrDuplicateAsset = epub.ErrDuplicateAsset
	ErrPackage        = errors.New("EPUB packaging failed")
	ErrWriteEPUB      = errors.New("failed to write EPUB file")

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
