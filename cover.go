package txt2epub

import (
	"errors"
	"os"
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/alnah/go-txt2epub/internal/epub"
)

// coverDir holds the cover image inside the content directory, apart from
// illustration paths taken from the input directory.
const coverDir = "cover"

// loadCover reads the cover image at p. A missing or non-image file is not
// fatal: it is logged as a warning and the book is built without a cover.
func (c *Converter) loadCover(p string) *epub.Asset {
	if p == "" {
		return nil
	}
	log := c.cfg.logger

	data, err := os.ReadFile(p) // #nosec G304 -- user-provided cover path
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Warn("cover image not found, continuing without cover", "path", p)
		} else {
			log.Warn("cover image unreadable, continuing without cover", "path", p, "err", err)
		}
		return nil
	}

	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		log.Warn("cover is not an image, continuing without cover", "path", p, "type", mt.String())
		return nil
	}

	ext := mt.Extension()
	if ext == "" {
		ext = strings.ToLower(path.Ext(p))
	}
	log.Debug("cover image loaded", "path", p, "type", mt.String(), "bytes", len(data))

	return &epub.Asset{
		Path:      path.Join(coverDir, "cover_image"+ext),
		MediaType: baseMediaType(mt.String()),
		Data:      data,
	}
}

// baseMediaType strips parameters such as "; charset=utf-8".
func baseMediaType(mt string) string {
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		return strings.TrimSpace(mt[:i])
	}
	return mt
}
