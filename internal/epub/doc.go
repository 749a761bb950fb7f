// Package epub writes EPUB 3 containers.
//
// A Book holds already-rendered chapter bodies, binary assets and an
// optional cover. Writer renders the package document, navigation
// document, NCX and XHTML pages from templates supplied by an asset loader
// and streams everything into a zip archive laid out as:
//
//	mimetype                    (stored, first entry)
//	META-INF/container.xml
//	OEBPS/content.opf
//	OEBPS/toc.ncx
//	OEBPS/nav.xhtml
//	OEBPS/style/default.css
//	OEBPS/cover.xhtml           (with a cover)
//	OEBPS/{cover image}
//	OEBPS/{section}.xhtml
//	OEBPS/{asset path}
//
// The spine lists the navigation document, the cover page and the sections
// in that order. Output is byte-for-byte deterministic for a given Book.
package epub
