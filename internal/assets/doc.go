// Package assets provides the stylesheet and templates used to package EPUB books.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (defaults)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// EmbeddedLoader provides the built-in vertical-writing style and the
// XHTML, OPF and NCX templates embedded at compile time.
//
// FilesystemLoader allows users to provide custom assets from a directory,
// with path traversal protection and symlink resolution.
//
// AssetResolver is the loader used by the converter. It tries the custom
// FilesystemLoader first, falling back to EmbeddedLoader if the asset is
// not found. This enables overriding one template while keeping the rest.
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css      # CSS styles (e.g., vertical.css)
//	└── templates/
//	    ├── chapter.tmpl    # chapter page (html/template)
//	    ├── cover.tmpl      # cover page (html/template)
//	    ├── nav.tmpl        # navigation document (html/template)
//	    ├── package.tmpl    # OPF package document (text/template)
//	    └── ncx.tmpl        # NCX table of contents (text/template)
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
