package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// paragraphBreakUnset detects if --paragraph-break was explicitly set.
const paragraphBreakUnset = 0

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
	logJSON bool
}

// bookFlags holds book metadata and source flags.
type bookFlags struct {
	input          string
	title          string
	author         string
	language       string
	direction      string
	publisher      string
	description    string
	date           string
	cover          string
	encodings      []string
	paragraphBreak int
}

// cssFlags holds typography flags for the built-in style.
type cssFlags struct {
	fontFamily       string
	lineHeight       float64
	marginVertical   string
	marginHorizontal string
}

// assetFlags holds stylesheet and template flags.
type assetFlags struct {
	stylesheet string // CSS file replacing the whole stylesheet
	style      string // base style name or file path
	assetPath  string // custom asset directory
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common commonFlags
	output string
	book   bookFlags
	css    cssFlags
	assets assetFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug output")
	fs.BoolVar(&f.logJSON, "log-json", false, "log as JSON lines")
}

// addBookFlags adds book flags to a FlagSet.
func addBookFlags(fs *flag.FlagSet, f *bookFlags) {
	fs.StringVarP(&f.input, "input", "i", "", "directory of .txt chapter files")
	fs.StringVar(&f.title, "title", "", "book title")
	fs.StringVar(&f.author, "author", "", "author name")
	fs.StringVar(&f.language, "lang", "", "language tag (default: ja)")
	fs.StringVar(&f.direction, "direction", "", "page progression: rtl, ltr, default")
	fs.StringVar(&f.publisher, "publisher", "", "publisher name")
	fs.StringVar(&f.description, "description", "", "book description")
	fs.StringVar(&f.date, "date", "", "publication date (\"auto\" = today)")
	fs.StringVar(&f.cover, "cover", "", "cover image path")
	fs.StringSliceVar(&f.encodings, "encodings", nil, "candidate text encodings, in order")
	fs.IntVar(&f.paragraphBreak, "paragraph-break", paragraphBreakUnset, "line breaks separating paragraphs: 2 or 3")
}

// addCSSFlags adds typography flags to a FlagSet.
func addCSSFlags(fs *flag.FlagSet, f *cssFlags) {
	fs.StringVar(&f.fontFamily, "font-family", "", "CSS font-family list")
	fs.Float64Var(&f.lineHeight, "line-height", 0, "line height (0.5-5)")
	fs.StringVar(&f.marginVertical, "margin-vertical", "", "vertical page margin, e.g. 20px")
	fs.StringVar(&f.marginHorizontal, "margin-horizontal", "", "horizontal page margin, e.g. 30px")
}

// addAssetFlags adds asset-related flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.stylesheet, "stylesheet", "", "CSS file replacing the whole stylesheet")
	fs.StringVar(&f.style, "style", "", "base style name or file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
}

// newBuildFlagSet registers every build flag into a new FlagSet.
func newBuildFlagSet(f *buildFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)

	fs.StringVarP(&f.output, "output", "o", "", "output EPUB file")

	addCommonFlags(fs, &f.common)
	addBookFlags(fs, &f.book)
	addCSSFlags(fs, &f.css)
	addAssetFlags(fs, &f.assets)

	return fs
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string) (*buildFlags, []string, error) {
	f := &buildFlags{}
	fs := newBuildFlagSet(f)
	fs.Usage = func() { printBuildUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
