package epub

import (
	"archive/zip"
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"io"
	"path"
	"strconv"
	texttemplate "text/template"
	"time"

	"github.com/alnah/go-txt2epub/internal/assets"
)

// Container layout.
const (
	MimeType       = "application/epub+zip"
	ContentDir     = "OEBPS"
	PackagePath    = "content.opf"
	NCXPath        = "toc.ncx"
	NavPath        = "nav.xhtml"
	CoverPagePath  = "cover.xhtml"
	StylesheetPath = "style/default.css"
)

const (
	xmlHeader       = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"
	modifiedLayout  = "2006-01-02T15:04:05Z"
	xhtmlMediaType  = "application/xhtml+xml"
	defaultLanguage = "und"
)

const containerXML = xmlHeader + `<container version="1.0" xmlns="urn:oasis:names:tc:opendocument:xmlns:container">
  <rootfiles>
    <rootfile full-path="` + ContentDir + `/` + PackagePath + `" media-type="application/oebps-package+xml"/>
  </rootfiles>
</container>
`

// TemplateLoader provides packaging templates by name.
type TemplateLoader interface {
	LoadTemplate(name string) (string, error)
}

// Writer packages books into EPUB containers.
type Writer struct {
	chapter *htmltemplate.Template
	cover   *htmltemplate.Template
	nav     *htmltemplate.Template
	pkg     *texttemplate.Template
	ncx     *texttemplate.Template
}

// NewWriter parses the packaging templates provided by loader.
func NewWriter(loader TemplateLoader) (*Writer, error) {
	w := &Writer{}
	var err error

	if w.chapter, err = parseHTML(loader, assets.TemplateChapter); err != nil {
		return nil, err
	}
	if w.cover, err = parseHTML(loader, assets.TemplateCover); err != nil {
		return nil, err
	}
	if w.nav, err = parseHTML(loader, assets.TemplateNav); err != nil {
		return nil, err
	}
	if w.pkg, err = parseText(loader, assets.TemplatePackage); err != nil {
		return nil, err
	}
	if w.ncx, err = parseText(loader, assets.TemplateNCX); err != nil {
		return nil, err
	}
	return w, nil
}

func parseHTML(loader TemplateLoader, name string) (*htmltemplate.Template, error) {
	src, err := loader.LoadTemplate(name)
	if err != nil {
		return nil, fmt.Errorf("loading %s template: %w", name, err)
	}
	tmpl, err := htmltemplate.New(name).Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrTemplate, name, err)
	}
	return tmpl, nil
}

var textFuncs = texttemplate.FuncMap{
	"inc": func(i int) int { return i + 1 },
}

func parseText(loader TemplateLoader, name string) (*texttemplate.Template, error) {
	src, err := loader.LoadTemplate(name)
	if err != nil {
		return nil, fmt.Errorf("loading %s template: %w", name, err)
	}
	tmpl, err := texttemplate.New(name).Funcs(textFuncs).Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrTemplate, name, err)
	}
	return tmpl, nil
}

// Template data.
type (
	pageData struct {
		Language   string
		Title      string
		Stylesheet string
		Body       htmltemplate.HTML
		Image      string
	}

	navEntry struct {
		Href  string
		Title string
	}

	landmark struct {
		Type  string
		Href  string
		Title string
	}

	navData struct {
		Language   string
		Title      string
		Stylesheet string
		Entries    []navEntry
		Landmarks  []landmark
	}

	manifestItem struct {
		ID         string
		Href       string
		MediaType  string
		Properties string
	}

	packageData struct {
		Identifier  string
		Title       string
		Language    string
		Author      string
		Publisher   string
		Description string
		Date        string
		Modified    string
		Direction   string
		Cover       *manifestItem
		Manifest    []manifestItem
		Spine       []string
	}

	ncxData struct {
		Identifier string
		Title      string
		Language   string
		Entries    []navEntry
	}
)

// entry is one file of the container, in write order.
type entry struct {
	name string
	data []byte
}

// Write packages book into out.
func (w *Writer) Write(out io.Writer, book *Book) error {
	if err := book.Validate(); err != nil {
		return err
	}

	modified := book.Metadata.Modified
	if modified.IsZero() {
		modified = time.Now()
	}
	modified = modified.UTC()

	entries, err := w.render(book, modified)
	if err != nil {
		return err
	}

	zw := zip.NewWriter(out)

	// mimetype must be first and uncompressed
	mw, err := zw.CreateHeader(&zip.FileHeader{
		Name:     "mimetype",
		Method:   zip.Store,
		Modified: modified,
	})
	if err != nil {
		return fmt.Errorf("writing mimetype: %w", err)
	}
	if _, err := io.WriteString(mw, MimeType); err != nil {
		return fmt.Errorf("writing mimetype: %w", err)
	}

	for _, e := range entries {
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     e.name,
			Method:   zip.Deflate,
			Modified: modified,
		})
		if err != nil {
			return fmt.Errorf("writing %s: %w", e.name, err)
		}
		if _, err := fw.Write(e.data); err != nil {
			return fmt.Errorf("writing %s: %w", e.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("closing container: %w", err)
	}
	return nil
}

// render produces every container entry after mimetype.
func (w *Writer) render(book *Book, modified time.Time) ([]entry, error) {
	meta := book.Metadata
	lang := meta.Language
	if lang == "" {
		lang = defaultLanguage
	}

	paths := newPathSet(PackagePath, NCXPath, NavPath, StylesheetPath)
	var (
		manifest []manifestItem
		spine    = []string{"nav"}
		files    []entry
		cover    *manifestItem
	)

	manifest = append(manifest,
		manifestItem{ID: "nav", Href: NavPath, MediaType: xhtmlMediaType, Properties: "nav"},
		manifestItem{ID: "ncx", Href: NCXPath, MediaType: "application/x-dtbncx+xml"},
		manifestItem{ID: "style", Href: StylesheetPath, MediaType: "text/css"},
	)

	if book.Cover != nil {
		if err := paths.claim(CoverPagePath, nil); err != nil {
			return nil, err
		}
		if err := paths.claim(book.Cover.Path, book.Cover.Data); err != nil {
			return nil, err
		}
		page, err := executeHTML(w.cover, pageData{
			Language:   lang,
			Title:      meta.Title,
			Stylesheet: StylesheetPath,
			Image:      book.Cover.Path,
		})
		if err != nil {
			return nil, err
		}

		cover = &manifestItem{ID: "cover-image", Href: book.Cover.Path, MediaType: book.Cover.MediaType, Properties: "cover-image"}
		manifest = append(manifest, *cover,
			manifestItem{ID: "cover", Href: CoverPagePath, MediaType: xhtmlMediaType})
		spine = append(spine, "cover")
		files = append(files,
			entry{name: CoverPagePath, data: page},
			entry{name: book.Cover.Path, data: book.Cover.Data})
	}

	entries := make([]navEntry, 0, len(book.Sections))
	for _, s := range book.Sections {
		if err := paths.claim(s.FileName, nil); err != nil {
			return nil, err
		}
		page, err := executeHTML(w.chapter, pageData{
			Language:   lang,
			Title:      s.Title,
			Stylesheet: StylesheetPath,
			Body:       htmltemplate.HTML(s.Body), // #nosec G203 -- body is assembled from escaped text
		})
		if err != nil {
			return nil, err
		}
		manifest = append(manifest, manifestItem{ID: s.ID, Href: s.FileName, MediaType: xhtmlMediaType})
		spine = append(spine, s.ID)
		entries = append(entries, navEntry{Href: s.FileName, Title: s.Title})
		files = append(files, entry{name: s.FileName, data: page})
	}

	n := 0
	for _, a := range book.Assets {
		if paths.has(a.Path) {
			if err := paths.claim(a.Path, a.Data); err != nil {
				return nil, err
			}
			continue
		}
		if err := paths.claim(a.Path, a.Data); err != nil {
			return nil, err
		}
		n++
		manifest = append(manifest, manifestItem{ID: "asset-" + strconv.Itoa(n), Href: a.Path, MediaType: a.MediaType})
		files = append(files, entry{name: a.Path, data: a.Data})
	}

	landmarks := []landmark{{Type: "toc", Href: NavPath + "#toc", Title: meta.Title}}
	if cover != nil {
		landmarks = append(landmarks, landmark{Type: "cover", Href: CoverPagePath, Title: meta.Title})
	}
	landmarks = append(landmarks, landmark{Type: "bodymatter", Href: book.Sections[0].FileName, Title: book.Sections[0].Title})

	nav, err := executeHTML(w.nav, navData{
		Language:   lang,
		Title:      meta.Title,
		Stylesheet: StylesheetPath,
		Entries:    entries,
		Landmarks:  landmarks,
	})
	if err != nil {
		return nil, err
	}

	opf, err := executeText(w.pkg, packageData{
		Identifier:  meta.Identifier,
		Title:       meta.Title,
		Language:    lang,
		Author:      meta.Author,
		Publisher:   meta.Publisher,
		Description: meta.Description,
		Date:        meta.Date,
		Modified:    modified.Format(modifiedLayout),
		Direction:   progression(meta.Direction),
		Cover:       cover,
		Manifest:    manifest,
		Spine:       spine,
	})
	if err != nil {
		return nil, err
	}

	ncx, err := executeText(w.ncx, ncxData{
		Identifier: meta.Identifier,
		Title:      meta.Title,
		Language:   lang,
		Entries:    entries,
	})
	if err != nil {
		return nil, err
	}

	head := []entry{
		{name: "META-INF/container.xml", data: []byte(containerXML)},
		{name: PackagePath, data: opf},
		{name: NCXPath, data: ncx},
		{name: NavPath, data: nav},
		{name: StylesheetPath, data: []byte(book.Stylesheet)},
	}
	for i := 1; i < len(head); i++ {
		head[i].name = path.Join(ContentDir, head[i].name)
	}
	for i := range files {
		files[i].name = path.Join(ContentDir, files[i].name)
	}
	return append(head, files...), nil
}

// progression maps a direction to the spine attribute value.
func progression(direction string) string {
	switch direction {
	case DirectionRTL, DirectionLTR:
		return direction
	default:
		return ""
	}
}

func executeHTML(t *htmltemplate.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xmlHeader)
	if err := t.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplate, t.Name(), err)
	}
	return buf.Bytes(), nil
}

func executeText(t *texttemplate.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xmlHeader)
	if err := t.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplate, t.Name(), err)
	}
	return buf.Bytes(), nil
}

// pathSet tracks claimed container paths. Generated files claim a path with
// nil data; assets claim it with their content so identical duplicates can
// be told apart from conflicts.
type pathSet struct {
	claimed map[string][]byte
}

func newPathSet(reserved ...string) *pathSet {
	p := &pathSet{claimed: make(map[string][]byte)}
	for _, r := range reserved {
		p.claimed[r] = nil
	}
	return p
}

func (p *pathSet) has(name string) bool {
	_, ok := p.claimed[name]
	return ok
}

func (p *pathSet) claim(name string, data []byte) error {
	prev, ok := p.claimed[name]
	if !ok {
		p.claimed[name] = data
		return nil
	}
	if prev != nil && data != nil && bytes.Equal(prev, data) {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrDuplicateAsset, name)
}
