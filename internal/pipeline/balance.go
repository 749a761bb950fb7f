package pipeline

import (
	"strings"

	"golang.org/x/net/html"
)

// paragraph collects the raw tokens of one open <p> element.
type paragraph struct {
	open     string
	hasAttrs bool
	tokens   []string
	breaks   []bool // tokens[i] is a <br>
}

// BalanceParagraphs repairs paragraph boundaries produced by page-break
// fragments: stray </p> are dropped, unclosed <p> are closed, a <p> opened
// inside another closes the first, <br /> directly after an opening or
// before a closing tag is removed, and empty <p> without attributes vanish.
// Everything else is passed through byte for byte.
func BalanceParagraphs(markup string) string {
	z := html.NewTokenizer(strings.NewReader(markup))
	var b strings.Builder
	b.Grow(len(markup))

	var cur *paragraph
	closeCurrent := func() {
		if cur == nil {
			return
		}
		writeParagraph(&b, cur)
		cur = nil
	}

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		raw := string(z.Raw())
		name, hasAttrs := z.TagName()
		tag := string(name)

		switch {
		case tag == "p" && tt == html.StartTagToken:
			closeCurrent()
			cur = &paragraph{open: raw, hasAttrs: hasAttrs}
		case tag == "p" && tt == html.EndTagToken:
			closeCurrent()
		case cur != nil:
			isBreak := tag == "br" && (tt == html.StartTagToken || tt == html.SelfClosingTagToken)
			cur.tokens = append(cur.tokens, raw)
			cur.breaks = append(cur.breaks, isBreak)
		default:
			b.WriteString(raw)
		}
	}
	closeCurrent()

	return b.String()
}

// writeParagraph trims boundary line breaks and writes p unless it is empty.
func writeParagraph(b *strings.Builder, p *paragraph) {
	start, end := 0, len(p.tokens)
	for start < end && (p.breaks[start] || strings.TrimSpace(p.tokens[start]) == "") {
		start++
	}
	for end > start && (p.breaks[end-1] || strings.TrimSpace(p.tokens[end-1]) == "") {
		end--
	}
	if start == end && !p.hasAttrs {
		return
	}
	b.WriteString(p.open)
	for _, t := range p.tokens[start:end] {
		b.WriteString(t)
	}
	b.WriteString("</p>")
}
