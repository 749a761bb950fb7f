package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Sentinel errors for illustration assets.
var (
	// ErrAssetRead indicates a referenced image could not be read.
	ErrAssetRead = errors.New("failed to read asset")

	// ErrAssetPath indicates a referenced image path is absolute or
	// escapes the input directory.
	ErrAssetPath = errors.New("invalid asset path")
)

// imageMediaTypes maps image extensions to media types when content
// sniffing is inconclusive.
var imageMediaTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
}

// Env carries the side channel available to rewrite rules.
type Env struct {
	Assets  *AssetTable
	BaseDir string // directory illustration paths are relative to
}

// Asset is a binary file referenced from chapter markup.
type Asset struct {
	Path      string // slash-separated path relative to the input directory
	MediaType string
	Data      []byte
}

// AssetTable is an append-only registry of assets keyed by relative path.
// Registration order is preserved.
type AssetTable struct {
	items []Asset
	index map[string]int
}

// NewAssetTable creates an empty AssetTable.
func NewAssetTable() *AssetTable {
	return &AssetTable{index: make(map[string]int)}
}

// Register adds an asset under path. Registering a path twice keeps the
// first entry and returns it.
func (t *AssetTable) Register(p string, data []byte) Asset {
	if i, ok := t.index[p]; ok {
		return t.items[i]
	}
	a := Asset{Path: p, MediaType: MediaType(p, data), Data: data}
	t.index[p] = len(t.items)
	t.items = append(t.items, a)
	return a
}

// Lookup returns the asset registered under path.
func (t *AssetTable) Lookup(p string) (Asset, bool) {
	i, ok := t.index[p]
	if !ok {
		return Asset{}, false
	}
	return t.items[i], true
}

// All returns the registered assets in registration order.
func (t *AssetTable) All() []Asset {
	out := make([]Asset, len(t.items))
	copy(out, t.items)
	return out
}

// LoadAsset reads rel from the base directory and registers it.
// Assets already registered are not read again.
func (e *Env) LoadAsset(rel string) (Asset, error) {
	key, err := assetKey(rel)
	if err != nil {
		return Asset{}, err
	}
	if a, ok := e.Assets.Lookup(key); ok {
		return a, nil
	}

	absPath := filepath.Join(e.BaseDir, filepath.FromSlash(key))
	if err := verifyPathContainment(absPath, e.BaseDir); err != nil {
		return Asset{}, err
	}

	data, err := os.ReadFile(absPath) // #nosec G304 -- path validated above
	if err != nil {
		return Asset{}, fmt.Errorf("%w: %s: %w", ErrAssetRead, key, err)
	}
	return e.Assets.Register(key, data), nil
}

// MediaType detects the media type of an image, preferring content
// sniffing and falling back to the file extension.
func MediaType(name string, data []byte) string {
	if len(data) > 0 {
		if mt := mimetype.Detect(data).String(); strings.HasPrefix(mt, "image/") {
			return mt
		}
	}
	if mt, ok := imageMediaTypes[strings.ToLower(path.Ext(name))]; ok {
		return mt
	}
	return "application/octet-stream"
}

// assetKey normalizes a referenced path to a slash-separated local path.
func assetKey(rel string) (string, error) {
	rel = strings.TrimSpace(strings.ReplaceAll(rel, `\`, "/"))
	if rel == "" || path.IsAbs(rel) || filepath.IsAbs(rel) {
		return "", fmt.Errorf("%w: %q", ErrAssetPath, rel)
	}
	clean := path.Clean(rel)
	if !filepath.IsLocal(filepath.FromSlash(clean)) {
		return "", fmt.Errorf("%w: %q escapes the input directory", ErrAssetPath, rel)
	}
	return clean, nil
}

// verifyPathContainment ensures absPath stays inside dir, both lexically and
// after resolving symlinks when the file exists.
func verifyPathContainment(absPath, dir string) error {
	base, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve %s", ErrAssetPath, dir)
	}
	target, err := filepath.Abs(absPath)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve %s", ErrAssetPath, absPath)
	}
	if !isPathUnderDir(target, base) {
		return fmt.Errorf("%w: %s escapes the input directory", ErrAssetPath, absPath)
	}

	realBase, baseErr := filepath.EvalSymlinks(base)
	realTarget, targetErr := filepath.EvalSymlinks(target)
	if baseErr == nil && targetErr == nil && !isPathUnderDir(realTarget, realBase) {
		return fmt.Errorf("%w: %s links outside the input directory", ErrAssetPath, absPath)
	}
	return nil
}

// isPathUnderDir checks if p is strictly below dir.
func isPathUnderDir(p, dir string) bool {
	cleanDir := filepath.Clean(dir)
	if !strings.HasSuffix(cleanDir, string(filepath.Separator)) {
		cleanDir += string(filepath.Separator)
	}
	return strings.HasPrefix(filepath.Clean(p), cleanDir)
}
