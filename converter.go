package txt2epub

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alnah/go-txt2epub/internal/epub"
	"github.com/alnah/go-txt2epub/internal/fileutil"
	"github.com/alnah/go-txt2epub/internal/pipeline"
	"github.com/alnah/go-txt2epub/internal/textenc"
)

// Compile-time interface implementation check.
var _ epub.TemplateLoader = (AssetLoader)(nil)

// File permission for written books.
const filePermissions = 0o644 // rw-r--r--

// Converter builds EPUB books from directories of text chapters.
// Create with NewConverter and reuse it for any number of builds.
type Converter struct {
	cfg               converterConfig
	assetLoader       AssetLoader
	publicAssetLoader AssetLoader // from WithAssetLoader
	writer            *epub.Writer
	baseStyle         string
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithClock, WithAssetPath, WithStyle).
// Returns error if asset loading or template parsing fails.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{cfg: defaultConverterConfig()}

	for _, opt := range opts {
		opt(c)
	}

	switch {
	case c.publicAssetLoader != nil:
		c.assetLoader = c.publicAssetLoader
	default:
		loader, err := NewAssetLoader(c.cfg.assetPath)
		if err != nil {
			return nil, err
		}
		c.assetLoader = loader
	}

	if err := c.resolveStyle(); err != nil {
		return nil, err
	}

	w, err := epub.NewWriter(c.assetLoader)
	if err != nil {
		return nil, fmt.Errorf("loading packaging templates: %w", err)
	}
	c.writer = w

	return c, nil
}

// resolveStyle loads the base stylesheet by file path or asset name.
func (c *Converter) resolveStyle() error {
	input := c.cfg.styleInput
	if input == "" {
		input = DefaultStyle
	}

	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrReadStylesheet, input, err)
		}
		c.baseStyle = string(content)
		return nil
	}

	css, err := c.assetLoader.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, err)
	}
	c.baseStyle = css
	return nil
}

// Build converts every chapter of input.InputDir and packages the book.
// Chapters are processed in natural file-name order. The first failure
// aborts the build; a missing or unusable cover only logs a warning.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Build(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := input.Validate(); err != nil {
		return nil, err
	}
	log := c.cfg.logger

	sources, err := pipeline.DiscoverSources(input.InputDir)
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoChapters, input.InputDir)
	}

	meta, err := c.metadata(input.Metadata)
	if err != nil {
		return nil, err
	}

	env := &pipeline.Env{Assets: pipeline.NewAssetTable(), BaseDir: input.InputDir}
	asm := &pipeline.Assembler{ParagraphBreak: input.ParagraphBreak}

	res := &Result{Identifier: meta.Identifier}
	sections := make([]epub.Section, 0, len(sources))
	for i, src := range sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		section, ch, err := c.buildChapter(ctx, asm, env, src, i+1, input.Encodings)
		if err != nil {
			return nil, err
		}
		sections = append(sections, section)
		res.Chapters = append(res.Chapters, ch)
		log.Info("chapter", "index", ch.Index, "title", ch.Title, "file", ch.FileName, "encoding", ch.Encoding)
	}

	stylesheet, err := c.stylesheet(input)
	if err != nil {
		return nil, err
	}

	cover := c.loadCover(input.CoverImage)
	res.HasCover = cover != nil

	registered := env.Assets.All()
	bookAssets := make([]epub.Asset, len(registered))
	for i, a := range registered {
		bookAssets[i] = epub.Asset{Path: a.Path, MediaType: a.MediaType, Data: a.Data}
	}
	res.Assets = len(bookAssets)

	book := &epub.Book{
		Metadata:   meta,
		Stylesheet: stylesheet,
		Cover:      cover,
		Sections:   sections,
		Assets:     bookAssets,
	}

	var buf bytes.Buffer
	if err := c.writer.Write(&buf, book); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPackage, err)
	}
	res.EPUB = buf.Bytes()

	log.Info("book packaged", "title", meta.Title, "chapters", len(sections), "assets", res.Assets, "cover", res.HasCover, "bytes", len(res.EPUB))
	return res, nil
}

// BuildFile builds the book and writes it to outputPath. The file is
// replaced atomically, so a failed build never leaves a partial EPUB.
func (c *Converter) BuildFile(ctx context.Context, input Input, outputPath string) (*Result, error) {
	if outputPath == "" {
		return nil, fmt.Errorf("%w: output path is empty", ErrWriteEPUB)
	}

	res, err := c.Build(ctx, input)
	if err != nil {
		return nil, err
	}

	if err := fileutil.WriteFileAtomic(outputPath, res.EPUB, filePermissions); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteEPUB, err)
	}
	c.cfg.logger.Info("wrote", "path", outputPath)
	return res, nil
}

// buildChapter decodes and assembles one source file.
func (c *Converter) buildChapter(ctx context.Context, asm pipeline.ChapterAssembler, env *pipeline.Env, src pipeline.Source, index int, encodings []string) (epub.Section, Chapter, error) {
	data, err := os.ReadFile(src.Path) // #nosec G304 -- discovered inside the input directory
	if err != nil {
		return epub.Section{}, Chapter{}, fmt.Errorf("%w: %s: %w", ErrReadChapter, src.Name, err)
	}

	text, encoding, err := textenc.Decode(data, encodings)
	if err != nil {
		return epub.Section{}, Chapter{}, fmt.Errorf("%w: %s: %w", ErrDecode, src.Name, err)
	}

	info := pipeline.NewChapterInfo(src.Name, index)
	body, err := asm.Assemble(ctx, text, env)
	if err != nil {
		return epub.Section{}, Chapter{}, fmt.Errorf("chapter %s: %w", src.Name, err)
	}
	c.cfg.logger.Debug("chapter assembled", "source", src.Name, "encoding", encoding, "bytes", len(body))

	section := epub.Section{
		ID:       info.ID,
		FileName: info.FileName,
		Title:    info.Title,
		Body:     body,
	}
	ch := Chapter{
		Index:    info.Index,
		Title:    info.Title,
		FileName: info.FileName,
		Source:   src.Name,
		Encoding: encoding,
	}
	return section, ch, nil
}

// metadata resolves defaults, the publication date and the identifier.
func (c *Converter) metadata(m Metadata) (epub.Metadata, error) {
	now := c.cfg.now()

	date, err := ResolveDate(m.Date, now)
	if err != nil {
		return epub.Metadata{}, fmt.Errorf("resolving date: %w", err)
	}

	lang := strings.TrimSpace(m.Language)
	if lang == "" {
		lang = DefaultLanguage
	}

	return epub.Metadata{
		Identifier:  c.cfg.newID(),
		Title:       strings.TrimSpace(m.Title),
		Author:      m.Author,
		Language:    lang,
		Publisher:   m.Publisher,
		Description: m.Description,
		Date:        date,
		Direction:   string(m.Direction.normalize()),
		Modified:    now,
	}, nil
}

// stylesheet returns the book CSS: an explicit stylesheet file replaces
// everything, otherwise the base style plus the typography block.
func (c *Converter) stylesheet(input Input) (string, error) {
	if input.Stylesheet != "" {
		content, err := os.ReadFile(input.Stylesheet) // #nosec G304 -- user-provided path
		if err != nil {
			return "", fmt.Errorf("%w: %s: %w", ErrReadStylesheet, input.Stylesheet, err)
		}
		return string(content), nil
	}
	return c.baseStyle + buildTypographyCSS(input.CSS), nil
}
