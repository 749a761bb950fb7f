package pipeline

import (
	"context"
	"fmt"
	"strings"
)

// ChapterAssembler defines the contract for turning chapter text into markup.
type ChapterAssembler interface {
	Assemble(ctx context.Context, content string, env *Env) (string, error)
}

// Assembler segments chapter text into paragraphs and rewrites each line.
type Assembler struct {
	Rewriter       *Rewriter // nil = default rule table
	ParagraphBreak int       // separator width; 0 = DefaultParagraphBreak
}

// Compile-time interface check.
var _ ChapterAssembler = (*Assembler)(nil)

// Assemble converts the full text of a chapter into XHTML body markup.
// Lines inside a paragraph are joined with <br />; headings and scene breaks
// are placed between paragraphs. The result has balanced <p> elements.
func (a *Assembler) Assemble(ctx context.Context, content string, env *Env) (string, error) {
	width := a.ParagraphBreak
	if width == 0 {
		width = DefaultParagraphBreak
	}
	if !ValidParagraphBreak(width) {
		return "", fmt.Errorf("paragraph break %d: must be between %d and %d", width, MinParagraphBreak, MaxParagraphBreak)
	}

	rw := a.Rewriter
	if rw == nil {
		rw = defaultRewriter
	}

	var blocks []string
	for _, para := range SplitParagraphs(NormalizeText(content, width), width) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		out, err := assembleParagraph(rw, para, env)
		if err != nil {
			return "", err
		}
		blocks = append(blocks, out...)
	}

	return BalanceParagraphs(strings.Join(blocks, "\n")), nil
}

// defaultRewriter is shared by assemblers without an explicit rule table.
var defaultRewriter = NewRewriter()

// assembleParagraph rewrites each non-blank line of one paragraph.
func assembleParagraph(rw *Rewriter, para string, env *Env) ([]string, error) {
	var blocks, lines []string
	flush := func() {
		if len(lines) > 0 {
			blocks = append(blocks, "<p>"+strings.Join(lines, LineBreak)+"</p>")
			lines = nil
		}
	}

	for _, raw := range strings.Split(para, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		fragment, err := rw.Rewrite(EscapeText(line), env)
		if err != nil {
			return nil, fmt.Errorf("line %q: %w", truncate(line, 40), err)
		}
		if fragment == "" {
			continue
		}
		if IsBlock(fragment) {
			flush()
			blocks = append(blocks, fragment)
			continue
		}
		lines = append(lines, fragment)
	}
	flush()

	return blocks, nil
}

// truncate shortens s to at most n runes for error messages.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}
