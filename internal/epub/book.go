package epub

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for packaging.
var (
	// ErrNoSections indicates a book without any section.
	ErrNoSections = errors.New("book has no sections")

	// ErrMissingTitle indicates a book without a title.
	ErrMissingTitle = errors.New("book title is required")

	// ErrMissingIdentifier indicates a book without a unique identifier.
	ErrMissingIdentifier = errors.New("book identifier is required")

	// ErrDuplicateAsset indicates two container entries share a path with
	// different content.
	ErrDuplicateAsset = errors.New("conflicting container path")

	// ErrInvalidSection indicates a section without id or file name.
	ErrInvalidSection = errors.New("invalid section")

	// ErrTemplate indicates a packaging template failed to parse or render.
	ErrTemplate = errors.New("template rendering failed")
)

// Page progression directions.
const (
	DirectionRTL     = "rtl"
	DirectionLTR     = "ltr"
	DirectionDefault = "default"
)

// Metadata describes the publication.
type Metadata struct {
	Identifier  string // unique identifier, e.g. urn:uuid:...
	Title       string
	Author      string
	Language    string // BCP 47 tag; empty = und
	Publisher   string
	Description string
	Date        string    // publication date, W3CDTF
	Direction   string    // rtl, ltr or default
	Modified    time.Time // dcterms:modified and zip entry times
}

// Section is one XHTML page of the reading order.
type Section struct {
	ID       string // manifest id
	FileName string // path inside the content directory
	Title    string
	Body     string // XHTML body markup
}

// Asset is a binary resource stored next to the sections.
type Asset struct {
	Path      string // slash-separated path inside the content directory
	MediaType string
	Data      []byte
}

// Book is everything needed to write one EPUB container.
type Book struct {
	Metadata   Metadata
	Stylesheet string
	Cover      *Asset
	Sections   []Section
	Assets     []Asset
}

// Validate checks the book can be packaged.
func (b *Book) Validate() error {
	if b.Metadata.Title == "" {
		return ErrMissingTitle
	}
	if b.Metadata.Identifier == "" {
		return ErrMissingIdentifier
	}
	if len(b.Sections) == 0 {
		return ErrNoSections
	}
	for i, s := range b.Sections {
		if s.ID == "" || s.FileName == "" {
			return fmt.Errorf("%w: section %d needs an id and a file name", ErrInvalidSection, i+1)
		}
	}
	return nil
}
