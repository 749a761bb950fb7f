package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: txt2epub <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build       Build a vertical EPUB from a directory of text chapters")
	fmt.Fprintln(w, "  init        Write a sample book.yaml")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'txt2epub help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: txt2epub build [input-dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build a vertical-writing EPUB from .txt chapter files, in natural file order.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input-dir    Chapter directory (optional if config has book.inputDirectory)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -c, --config <name>          Config file name or path")
	fmt.Fprintln(w, "  -i, --input <dir>            Chapter directory")
	fmt.Fprintln(w, "  -o, --output <file>          Output EPUB file")
	fmt.Fprintln(w, "      --encodings <list>       Candidate encodings, in order (default: utf-8,shift_jis,euc-jp,iso-2022-jp)")
	fmt.Fprintln(w, "      --paragraph-break <n>    Line breaks separating paragraphs: 2 or 3")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Book:")
	fmt.Fprintln(w, "      --title <s>              Book title (required)")
	fmt.Fprintln(w, "      --author <s>             Author name")
	fmt.Fprintln(w, "      --lang <tag>             Language tag (default: ja)")
	fmt.Fprintln(w, "      --direction <s>          Page progression: rtl, ltr, default")
	fmt.Fprintln(w, "      --publisher <s>          Publisher")
	fmt.Fprintln(w, "      --description <s>        Description")
	fmt.Fprintln(w, "      --date <s>               Date: \"auto\", \"auto:FORMAT\", or W3CDTF literal")
	fmt.Fprintln(w, "                               Tokens: YYYY, MM, DD, hh, mm, ss")
	fmt.Fprintln(w, "                               Presets: day, iso, month, year, datetime")
	fmt.Fprintln(w, "      --cover <path>           Cover image")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --stylesheet <path>      CSS file replacing the whole stylesheet")
	fmt.Fprintln(w, "      --style <name|path>      Base style (default: vertical)")
	fmt.Fprintln(w, "      --asset-path <dir>       Custom styles/ and templates/ directory")
	fmt.Fprintln(w, "      --font-family <s>        CSS font-family list")
	fmt.Fprintln(w, "      --line-height <f>        Line height (0.5-5)")
	fmt.Fprintln(w, "      --margin-vertical <s>    Vertical margin (default: 20px)")
	fmt.Fprintln(w, "      --margin-horizontal <s>  Horizontal margin (default: 30px)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                  Only show errors")
	fmt.Fprintln(w, "  -v, --verbose                Show debug output")
	fmt.Fprintln(w, "      --log-json               Log as JSON lines")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  TXT2EPUB_CONFIG, TXT2EPUB_INPUT_DIR, TXT2EPUB_OUTPUT, TXT2EPUB_AUTHOR,")
	fmt.Fprintln(w, "  TXT2EPUB_LANG, TXT2EPUB_DIRECTION, TXT2EPUB_PUBLISHER, TXT2EPUB_DATE,")
	fmt.Fprintln(w, "  TXT2EPUB_ENCODINGS, TXT2EPUB_PARAGRAPH_BREAK, TXT2EPUB_STYLE,")
	fmt.Fprintln(w, "  TXT2EPUB_ASSET_PATH, TXT2EPUB_LOG_LEVEL")
}

// printInitUsage prints usage for the init command.
func printInitUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: txt2epub init [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write a commented sample configuration.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -o, --output <file>    Config file to create (default: book.yaml)")
	fmt.Fprintln(w, "  -i, --input <dir>      Chapter directory (default: chapters)")
	fmt.Fprintln(w, "      --title <s>        Book title")
	fmt.Fprintln(w, "  -f, --force            Overwrite an existing file")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "init":
		printInitUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: txt2epub version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: txt2epub help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
