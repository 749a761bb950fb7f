// Package txt2epub converts directories of Japanese plain-text chapters into
// vertical-writing EPUB 3 books.
//
// # Quick Start
//
// Create a converter and build a book from a directory of .txt files:
//
//	conv, err := txt2epub.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.BuildFile(ctx, txt2epub.Input{
//	    InputDir: "chapters",
//	    Metadata: txt2epub.Metadata{Title: "吾輩は猫である", Author: "夏目漱石"},
//	}, "neko.epub")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(len(result.Chapters), "chapters")
//
// Build returns the EPUB bytes in Result.EPUB instead of writing a file.
//
// # Conversion Pipeline
//
// Each chapter file goes through these stages:
//
//  1. Decoding: UTF-8, Shift_JIS, EUC-JP and ISO-2022-JP are tried in order
//  2. Normalization: line endings, ornament lines, paragraph separators
//  3. Line rewriting: ruby, tate-chu-yoko, illustrations, scene breaks,
//     headings, page breaks and leftover ［＃…］ annotations
//  4. Paragraph balancing
//
// Chapters are ordered by natural sort of their file names ("2.txt" before
// "10.txt") and titled from the file name with any leading "01_" or
// "エピソード3：" label removed.
//
// # Markup
//
//	東京《とうきょう》        ruby over the trailing kanji run
//	｜東京駅《とうきょうえき》 ruby over an explicit base
//	｜（かっこ）              literal parentheses, never ruby
//	[[12]]                    tate-chu-yoko (2 to 4 ASCII characters)
//	［＃挿絵（images/a.png）］ illustration, relative to the input directory
//	＊＊＊                    scene break
//	第一部 / 第一章           part and chapter headings
//	［＃改ページ］            page break
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := txt2epub.NewConverter(
//	    txt2epub.WithLogger(myLogger),
//	    txt2epub.WithAssetPath("/path/to/custom/assets"),
//	    txt2epub.WithClock(func() time.Time { return fixed }),
//	    txt2epub.WithIDGenerator(func() string { return "urn:isbn:9784000000000" }),
//	)
//
// A fixed clock and identifier make builds byte-for-byte reproducible.
//
// # Custom Assets
//
// Override the built-in stylesheet and packaging templates with a directory:
//
//	assets/
//	├── styles/
//	│   └── vertical.css
//	└── templates/
//	    ├── chapter.tmpl
//	    ├── cover.tmpl
//	    ├── nav.tmpl
//	    ├── package.tmpl
//	    └── ncx.tmpl
//
// Missing files fall back to the embedded defaults.
package txt2epub
