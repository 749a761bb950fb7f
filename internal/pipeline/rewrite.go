package pipeline

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Rule names, in evaluation order.
const (
	RuleRubyEscape        = "ruby-escape"
	RuleRubyExplicit      = "ruby-explicit"
	RuleRubyImplicitAngle = "ruby-implicit-angle"
	RuleRubyImplicitParen = "ruby-implicit-paren"
	RuleTCY               = "tcy"
	RuleIllustration      = "illustration"
	RuleSceneBreak        = "scene-break"
	RuleHeadingPart       = "heading-part"
	RuleHeadingChapter    = "heading-chapter"
	RulePageBreak         = "page-break"
	RulePragmaStrip       = "pragma-strip"
)

// Markup emitted by the rules.
const (
	LineBreak        = "<br />"
	SceneBreakMarkup = LineBreak + `<hr class="scene-break" />`
	PageBreakMarkup  = `</p><p class="page-break">`
)

// Character classes shared by the ruby rules.
const (
	rubyBaseClass = `[\p{Han}々〆ヵヶ]`
	rubyTextClass = `[\p{Hiragana}\p{Katakana}ー]`
	numeralClass  = `[0-9０-９〇零一二三四五六七八九十百千]`
	breakGlyphs   = `*＊\-－—―─━～〜=＝・※`
)

// ErrNoAssetTable is returned when an illustration pragma is rewritten
// without an asset table to register the image in.
var ErrNoAssetTable = errors.New("no asset table configured")

// headingTail matches the rest of a heading line. Trailing pragmas are kept
// out of the heading text so they land after the closing tag.
const headingTail = `(?:[\s　](?:[^［]|［[^＃])*)?)((?:［＃[^］]*］[\s　]*)*)$`

// tcyContent is the permitted tate-chu-yoko run: 2 to 4 ASCII characters.
var tcyContent = regexp.MustCompile(`^[A-Za-z0-9.,\-:/+]{2,4}$`)

// ReplaceFunc computes the replacement for one match. groups[0] is the whole
// match, followed by the pattern's capture groups.
type ReplaceFunc func(env *Env, groups []string) (string, error)

// Rule is one pattern-substitution step of the line rewriter.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	Replace ReplaceFunc
}

// Apply replaces every non-overlapping match of the rule in s.
func (r Rule) Apply(env *Env, s string) (string, error) {
	matches := r.Pattern.FindAllStringSubmatchIndex(s, -1)
	if matches == nil {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s))
	last := 0
	for _, m := range matches {
		groups := make([]string, len(m)/2)
		for i := range groups {
			if m[2*i] >= 0 {
				groups[i] = s[m[2*i]:m[2*i+1]]
			}
		}
		out, err := r.Replace(env, groups)
		if err != nil {
			return "", fmt.Errorf("%s: %w", r.Name, err)
		}
		b.WriteString(s[last:m[0]])
		b.WriteString(out)
		last = m[1]
	}
	b.WriteString(s[last:])
	return b.String(), nil
}

// Rewriter applies an ordered rule table to single lines of text.
type Rewriter struct {
	rules []Rule
}

// NewRewriter creates a Rewriter with the given rules. With no rules, the
// default table is used.
func NewRewriter(rules ...Rule) *Rewriter {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Rewriter{rules: rules}
}

// Rewrite converts one line of XML-escaped text into an inline fragment.
// Each rule sees the output of the rules before it.
func (rw *Rewriter) Rewrite(line string, env *Env) (string, error) {
	var err error
	for _, rule := range rw.rules {
		line, err = rule.Apply(env, line)
		if err != nil {
			return "", err
		}
	}
	return line, nil
}

// IsBlock reports whether a fragment must be placed outside a paragraph.
func IsBlock(fragment string) bool {
	return strings.HasPrefix(fragment, "<h3>") ||
		strings.HasPrefix(fragment, "<h4>") ||
		strings.HasPrefix(fragment, SceneBreakMarkup)
}

// EscapeText escapes raw manuscript text for use as rewriter input.
func EscapeText(s string) string {
	return html.EscapeString(s)
}

// DefaultRules returns the rule table in its fixed evaluation order.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:    RuleRubyEscape,
			Pattern: regexp.MustCompile(`[｜|](（[^（）]*）|\([^()]*\)|《[^《》]*》)`),
			Replace: func(_ *Env, g []string) (string, error) {
				return `<span class="ruby-escape">` + g[1] + `</span>`, nil
			},
		},
		{
			Name:    RuleRubyExplicit,
			Pattern: regexp.MustCompile(`[｜|]([^｜|《》]+?)《([^《》]+)》`),
			Replace: rubyReplace,
		},
		{
			Name:    RuleRubyImplicitAngle,
			Pattern: regexp.MustCompile(`(` + rubyBaseClass + `+)《(` + rubyTextClass + `+)》`),
			Replace: rubyReplace,
		},
		{
			Name:    RuleRubyImplicitParen,
			Pattern: regexp.MustCompile(`(` + rubyBaseClass + `+)[（(](` + rubyTextClass + `+)[）)]`),
			Replace: rubyReplace,
		},
		{
			Name:    RuleTCY,
			Pattern: regexp.MustCompile(`\[\[([^\[\]]*)\]\]`),
			Replace: func(_ *Env, g []string) (string, error) {
				if !tcyContent.MatchString(g[1]) {
					return g[0], nil
				}
				return `<span class="tcy">` + g[1] + `</span>`, nil
			},
		},
		{
			Name:    RuleIllustration,
			Pattern: regexp.MustCompile(`［＃(?:挿絵|画像)[（(]([^（）()］]+?\.(?i:png|jpe?g|gif|webp))[）)][^］]*］`),
			Replace: illustrationReplace,
		},
		{
			Name:    RuleSceneBreak,
			Pattern: regexp.MustCompile(`^[\s　` + breakGlyphs + `]*[` + breakGlyphs + `][\s　` + breakGlyphs + `]*$`),
			Replace: func(_ *Env, _ []string) (string, error) {
				return SceneBreakMarkup, nil
			},
		},
		{
			Name:    RuleHeadingPart,
			Pattern: regexp.MustCompile(`^(第` + numeralClass + `+部` + headingTail),
			Replace: headingReplace("h3"),
		},
		{
			Name:    RuleHeadingChapter,
			Pattern: regexp.MustCompile(`^(第` + numeralClass + `+章` + headingTail),
			Replace: headingReplace("h4"),
		},
		{
			Name:    RulePageBreak,
			Pattern: regexp.MustCompile(`［＃改(?:ページ|頁|丁)］`),
			Replace: func(_ *Env, _ []string) (string, error) {
				return PageBreakMarkup, nil
			},
		},
		{
			Name:    RulePragmaStrip,
			Pattern: regexp.MustCompile(`［＃[^］]*］`),
			Replace: func(_ *Env, _ []string) (string, error) {
				return "", nil
			},
		},
	}
}

// RubyMarkup builds a ruby fragment with fallback parentheses for readers
// that do not render ruby.
func RubyMarkup(base, text string) string {
	return "<ruby>" + base + "<rp>（</rp><rt>" + text + "</rt><rp>）</rp></ruby>"
}

func rubyReplace(_ *Env, g []string) (string, error) {
	return RubyMarkup(g[1], g[2]), nil
}

func headingReplace(tag string) ReplaceFunc {
	return func(_ *Env, g []string) (string, error) {
		return "<" + tag + ">" + strings.TrimRight(g[1], " \t　") + "</" + tag + ">" + g[2], nil
	}
}

func illustrationReplace(env *Env, g []string) (string, error) {
	if env == nil || env.Assets == nil {
		return "", ErrNoAssetTable
	}
	asset, err := env.LoadAsset(html.UnescapeString(g[1]))
	if err != nil {
		return "", err
	}
	return `<img class="illustration" src="` + html.EscapeString(asset.Path) + `" alt="" />`, nil
}
