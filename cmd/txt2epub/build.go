package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	txt2epub "github.com/alnah/go-txt2epub"
	"github.com/alnah/go-txt2epub/internal/assets"
	"github.com/alnah/go-txt2epub/internal/config"
	"github.com/alnah/go-txt2epub/internal/hints"
	"github.com/alnah/go-txt2epub/internal/logger"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage        = errors.New("invalid usage")
	ErrConfigExists = errors.New("config file already exists")
)

// runBuild resolves configuration and writes one EPUB.
// Precedence: CLI flags > env vars > config file > defaults.
func runBuild(ctx context.Context, positional []string, flags *buildFlags, env *Environment) error {
	if len(positional) > 1 {
		return fmt.Errorf("%w: expected at most one input directory, got %d", ErrUsage, len(positional))
	}

	envCfg := loadEnvConfig()
	log := newLogger(&flags.common, envCfg.LogLevel, env)
	warnUnknownEnvVars(log)

	cfg, err := loadBuildConfig(flags.common.config, envCfg.ConfigPath)
	if err != nil {
		return err
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if len(positional) == 1 {
		cfg.Book.InputDirectory = positional[0]
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cfg.RequireFields(); err != nil {
		return err
	}
	cfg.ApplyDefaults()

	conv, err := txt2epub.NewConverter(converterOptions(flags, envCfg, env, log)...)
	if err != nil {
		return err
	}

	res, err := conv.BuildFile(ctx, buildInput(cfg), cfg.Book.OutputFile)
	if err != nil {
		return err
	}

	if !flags.common.quiet {
		if cfg.Book.CoverImage != "" && !res.HasCover {
			fmt.Fprintf(env.Stderr, "warning: built without cover%s\n", hints.ForCoverImage())
		}
		fmt.Fprintf(env.Stdout, "%s: %d chapters, %d illustrations\n", cfg.Book.OutputFile, len(res.Chapters), res.Assets)
	}
	return nil
}

// loadBuildConfig loads the named config, or returns an empty one when no
// config is given.
func loadBuildConfig(flagName, envName string) (*config.Config, error) {
	name := flagName
	if name == "" {
		name = envName
	}
	if name == "" {
		return &config.Config{}, nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags applies CLI flags over config values. Only flags that were
// set (non-zero) override.
func mergeFlags(flags *buildFlags, cfg *config.Config) {
	b := &cfg.Book
	f := flags.book

	setIfNotEmpty(&b.InputDirectory, f.input)
	setIfNotEmpty(&b.OutputFile, flags.output)
	setIfNotEmpty(&b.Title, f.title)
	setIfNotEmpty(&b.Author, f.author)
	setIfNotEmpty(&b.Language, f.language)
	setIfNotEmpty(&b.Direction, f.direction)
	setIfNotEmpty(&b.Publisher, f.publisher)
	setIfNotEmpty(&b.Description, f.description)
	setIfNotEmpty(&b.Date, f.date)
	setIfNotEmpty(&b.CoverImage, f.cover)
	setIfNotEmpty(&b.Stylesheet, flags.assets.stylesheet)

	if len(f.encodings) > 0 {
		b.Encodings = f.encodings
	}
	if f.paragraphBreak != paragraphBreakUnset {
		b.ParagraphBreak = f.paragraphBreak
	}

	c := &cfg.CSS
	setIfNotEmpty(&c.FontFamily, flags.css.fontFamily)
	setIfNotEmpty(&c.MarginVertical, flags.css.marginVertical)
	setIfNotEmpty(&c.MarginHorizontal, flags.css.marginHorizontal)
	if flags.css.lineHeight != 0 {
		c.LineHeight = flags.css.lineHeight
	}
}

func setIfNotEmpty(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

// newLogger picks the log level: --quiet, then --verbose, then
// TXT2EPUB_LOG_LEVEL, then info.
func newLogger(f *commonFlags, envLevel string, env *Environment) logger.Logger {
	level := logger.InfoLevel
	switch {
	case f.quiet:
		level = logger.ErrorLevel
	case f.verbose:
		level = logger.DebugLevel
	case envLevel != "":
		if l, err := logger.ParseLevel(envLevel); err == nil {
			level = l
		}
	}

	cfg := logger.DefaultConfig()
	cfg.Level = level
	cfg.Output = env.Stderr
	cfg.JSON = f.logJSON
	return logger.New(cfg)
}

// converterOptions maps CLI state to converter options.
func converterOptions(flags *buildFlags, envCfg *envConfig, env *Environment, log logger.Logger) []txt2epub.Option {
	opts := []txt2epub.Option{
		txt2epub.WithLogger(log),
		txt2epub.WithClock(env.Now),
	}
	if env.NewID != nil {
		opts = append(opts, txt2epub.WithIDGenerator(env.NewID))
	}

	assetPath := flags.assets.assetPath
	if assetPath == "" {
		assetPath = envCfg.AssetPath
	}
	if assetPath != "" {
		opts = append(opts, txt2epub.WithAssetPath(assetPath))
	}

	style := flags.assets.style
	if style == "" {
		style = envCfg.Style
	}
	if style != "" {
		opts = append(opts, txt2epub.WithStyle(style))
	}
	return opts
}

// buildInput converts the resolved config into converter input.
func buildInput(cfg *config.Config) txt2epub.Input {
	b := cfg.Book
	return txt2epub.Input{
		InputDir: b.InputDirectory,
		Metadata: txt2epub.Metadata{
			Title:       strings.TrimSpace(b.Title),
			Author:      b.Author,
			Language:    b.Language,
			Publisher:   b.Publisher,
			Description: b.Description,
			Date:        b.Date,
			Direction:   txt2epub.Direction(b.Direction),
		},
		CoverImage: b.CoverImage,
		Stylesheet: b.Stylesheet,
		CSS: txt2epub.CSSSettings{
			FontFamily:       cfg.CSS.FontFamily,
			LineHeight:       cfg.CSS.LineHeight,
			MarginVertical:   cfg.CSS.MarginVertical,
			MarginHorizontal: cfg.CSS.MarginHorizontal,
		},
		Encodings:      b.Encodings,
		ParagraphBreak: b.ParagraphBreak,
	}
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, txt2epub.ErrInputDirNotFound), errors.Is(err, txt2epub.ErrMissingInputDir):
		return hints.ForInputDirectory()
	case errors.Is(err, txt2epub.ErrNoChapters):
		return hints.ForNoChapters()
	case errors.Is(err, txt2epub.ErrDecode):
		return hints.ForDecode(nil)
	case errors.Is(err, txt2epub.ErrAssetPath):
		return hints.ForAssetPath()
	case errors.Is(err, txt2epub.ErrAssetRead):
		return hints.ForAssetRead()
	case errors.Is(err, txt2epub.ErrWriteEPUB):
		return hints.ForOutputDirectory()
	case errors.Is(err, txt2epub.ErrStyleNotFound):
		return hints.ForStyleNotFound(assets.StyleNames())
	default:
		return ""
	}
}
