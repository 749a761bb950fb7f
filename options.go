package txt2epub

import (
	"time"

	"github.com/google/uuid"

	"github.com/alnah/go-txt2epub/internal/logger"
)

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	newID      func() string
	now        func() time.Time
	logger     logger.Logger
	assetPath  string
	styleInput string
}

func defaultConverterConfig() converterConfig {
	return converterConfig{
		newID:  newUUIDIdentifier,
		now:    time.Now,
		logger: logger.Discard(),
	}
}

// newUUIDIdentifier returns a random urn:uuid identifier.
func newUUIDIdentifier() string {
	return "urn:uuid:" + uuid.NewString()
}

// WithIDGenerator sets the function producing the book identifier.
// Panics if gen is nil (programmer error).
func WithIDGenerator(gen func() string) Option {
	if gen == nil {
		panic("txt2epub: WithIDGenerator requires a non-nil generator")
	}
	return func(c *Converter) {
		c.cfg.newID = gen
	}
}

// WithClock sets the clock used for "auto" dates and the modified timestamp.
// Panics if now is nil (programmer error).
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("txt2epub: WithClock requires a non-nil clock")
	}
	return func(c *Converter) {
		c.cfg.now = now
	}
}

// WithLogger sets the logger for build progress. Nil keeps the silent default.
func WithLogger(l logger.Logger) Option {
	return func(c *Converter) {
		if l != nil {
			c.cfg.logger = l
		}
	}
}

// WithAssetPath sets a directory of custom styles and templates that take
// precedence over the embedded ones.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithAssetLoader sets a custom loader for styles and templates.
// Takes precedence over WithAssetPath.
func WithAssetLoader(loader AssetLoader) Option {
	return func(c *Converter) {
		c.publicAssetLoader = loader
	}
}

// WithStyle selects the base stylesheet by name or file path.
// Names are resolved through the asset loader; default is "vertical".
func WithStyle(nameOrPath string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = nameOrPath
	}
}
