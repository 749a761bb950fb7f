package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gosimple/slug"
)

// SourceExtension is the extension of chapter source files.
const SourceExtension = ".txt"

// maxSlugLength bounds the title part of chapter file names.
const maxSlugLength = 20

// ErrInputDirNotFound indicates the chapter directory does not exist.
var ErrInputDirNotFound = errors.New("input directory not found")

var (
	// エピソード3：, Episode 3:, episode_3 -
	episodeLabel = regexp.MustCompile(`^(?:エピソード|(?i:episode))[ 　_]*[0-9０-９]+[ 　]*[：:_\-]?[ 　]*`)

	// 01_, 1., １　, 3 -
	numericLabel = regexp.MustCompile(`^[0-9０-９]+(?:[ 　_\-.．：:、]+|$)`)
)

// Source is one chapter source file.
type Source struct {
	Path string // full path
	Name string // base name with extension
}

// ChapterInfo holds the identity of a chapter within the book.
type ChapterInfo struct {
	Index    int    // 1-based position in reading order
	Title    string // display title
	ID       string // manifest id
	FileName string // XHTML file name inside the container
}

// DiscoverSources lists the chapter files of dir in natural order.
func DiscoverSources(dir string) ([]Source, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputDirNotFound, dir)
		}
		return nil, fmt.Errorf("reading input directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInputDirNotFound, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading input directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), SourceExtension) {
			continue
		}
		names = append(names, e.Name())
	}
	SortNatural(names)

	sources := make([]Source, len(names))
	for i, name := range names {
		sources[i] = Source{Path: filepath.Join(dir, name), Name: name}
	}
	return sources, nil
}

// NewChapterInfo derives title and file names for the chapter at index
// (1-based) read from the named source file.
func NewChapterInfo(sourceName string, index int) ChapterInfo {
	title := ChapterTitle(sourceName, index)
	id := ChapterID(title, index)
	return ChapterInfo{
		Index:    index,
		Title:    title,
		ID:       id,
		FileName: id + ".xhtml",
	}
}

// ChapterTitle strips the extension and a leading episode or numeric label
// from a source file name. An empty result becomes "Chapter N".
func ChapterTitle(sourceName string, index int) string {
	stem := strings.TrimSuffix(sourceName, filepath.Ext(sourceName))
	title := strings.TrimSpace(stem)

	if loc := episodeLabel.FindStringIndex(title); loc != nil {
		title = title[loc[1]:]
	} else if loc := numericLabel.FindStringIndex(title); loc != nil {
		title = title[loc[1]:]
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Sprintf("Chapter %d", index)
	}
	return title
}

// ChapterID builds a filename-safe identifier such as c_3_tabidachi.
func ChapterID(title string, index int) string {
	s := slug.Make(title)
	if len(s) > maxSlugLength {
		s = strings.Trim(s[:maxSlugLength], "-")
	}
	if s == "" {
		s = fmt.Sprintf("chapter_%d", index)
	}
	return fmt.Sprintf("c_%d_%s", index, s)
}
