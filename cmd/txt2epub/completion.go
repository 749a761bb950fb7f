package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagNumber
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string
	Short    string
	Type     flagType
	Desc     string
	Values   []string // for enum flags
	FileGlob string   // for file flags, comma-separated
}

// commandDef describes a command for completion.
type commandDef struct {
	Name      string
	Desc      string
	Flags     []flagDef
	TakesDirs bool // accepts a directory argument
}

// completionMeta holds completion-specific metadata for flags.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values   []string
	FileGlob string
	IsDir    bool
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	"direction":       {Values: []string{"rtl", "ltr", "default"}},
	"paragraph-break": {Values: []string{"2", "3"}},
	"encodings":       {Values: []string{"utf-8", "shift_jis", "euc-jp", "iso-2022-jp"}},

	"config":     {FileGlob: "*.yaml,*.yml"},
	"output":     {FileGlob: "*.epub"},
	"cover":      {FileGlob: "*.png,*.jpg,*.jpeg,*.gif,*.webp"},
	"stylesheet": {FileGlob: "*.css"},
	"style":      {FileGlob: "*.css"},

	"input":      {IsDir: true},
	"asset-path": {IsDir: true},
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
// Enriches with completion metadata from flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}

		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int", "float64":
			fd.Type = flagNumber
		default:
			fd.Type = flagString
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			switch {
			case len(meta.Values) > 0:
				fd.Type = flagEnum
				fd.Values = meta.Values
			case meta.FileGlob != "":
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			case meta.IsDir:
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Build flags are extracted from the actual FlagSet.
func getCommands() []commandDef {
	return []commandDef{
		{
			Name:      "build",
			Desc:      "Build a vertical EPUB from text chapters",
			Flags:     extractFlagsFromFlagSet(newBuildFlagSet(&buildFlags{})),
			TakesDirs: true,
		},
		{Name: "init", Desc: "Write a sample book.yaml"},
		{Name: "version", Desc: "Show version information"},
		{Name: "help", Desc: "Show help for a command"},
		{Name: "completion", Desc: "Generate shell completion script"},
	}
}

// GenerateCompletion writes shell completion script to w.
func GenerateCompletion(w io.Writer, shell Shell) error {
	switch shell {
	case ShellBash:
		return generateBash(w)
	case ShellZsh:
		return generateZsh(w)
	case ShellFish:
		return generateFish(w)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish)", ErrUnsupportedShell, shell)
	}
}

func commandNames(cmds []commandDef) []string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return names
}

func generateBash(w io.Writer) error {
	cmds := getCommands()
	var b strings.Builder

	b.WriteString("# bash completion for txt2epub\n")
	b.WriteString("_txt2epub_completions() {\n")
	b.WriteString("  local cur prev cmd\n")
	b.WriteString("  cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("  prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("  cmd=\"${COMP_WORDS[1]}\"\n\n")
	b.WriteString("  if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(&b, "    COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(commandNames(cmds), " "))
	b.WriteString("    return\n  fi\n\n")
	b.WriteString("  case \"$prev\" in\n")
	for _, f := range cmds[0].Flags {
		patterns := "--" + f.Long
		if f.Short != "" {
			patterns = "-" + f.Short + "|" + patterns
		}
		switch f.Type {
		case flagEnum:
			fmt.Fprintf(&b, "    %s) COMPREPLY=($(compgen -W %q -- \"$cur\")); return ;;\n", patterns, strings.Join(f.Values, " "))
		case flagDir:
			fmt.Fprintf(&b, "    %s) COMPREPLY=($(compgen -d -- \"$cur\")); return ;;\n", patterns)
		case flagFile:
			fmt.Fprintf(&b, "    %s) COMPREPLY=($(compgen -f -- \"$cur\")); return ;;\n", patterns)
		}
	}
	b.WriteString("  esac\n\n")
	b.WriteString("  case \"$cmd\" in\n")
	b.WriteString("    build)\n")
	b.WriteString("      if [[ \"$cur\" == -* ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(longFlags(cmds[0].Flags), " "))
	b.WriteString("      else\n")
	b.WriteString("        COMPREPLY=($(compgen -d -- \"$cur\"))\n")
	b.WriteString("      fi ;;\n")
	b.WriteString("    help)\n")
	fmt.Fprintf(&b, "      COMPREPLY=($(compgen -W %q -- \"$cur\")) ;;\n", strings.Join(commandNames(cmds), " "))
	b.WriteString("    completion)\n")
	b.WriteString("      COMPREPLY=($(compgen -W \"bash zsh fish\" -- \"$cur\")) ;;\n")
	b.WriteString("  esac\n")
	b.WriteString("}\n")
	b.WriteString("complete -F _txt2epub_completions txt2epub\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func generateZsh(w io.Writer) error {
	cmds := getCommands()
	var b strings.Builder

	b.WriteString("#compdef txt2epub\n\n")
	b.WriteString("_txt2epub() {\n")
	b.WriteString("  local -a commands\n")
	b.WriteString("  commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "    '%s:%s'\n", c.Name, zshEscape(c.Desc))
	}
	b.WriteString("  )\n\n")
	b.WriteString("  if (( CURRENT == 2 )); then\n")
	b.WriteString("    _describe 'command' commands\n")
	b.WriteString("    return\n  fi\n\n")
	b.WriteString("  case $words[2] in\n")
	b.WriteString("    build)\n")
	b.WriteString("      _arguments \\\n")
	for _, f := range cmds[0].Flags {
		fmt.Fprintf(&b, "        '--%s[%s]%s' \\\n", f.Long, zshEscape(f.Desc), zshAction(f))
	}
	b.WriteString("        '*:input directory:_files -/'\n")
	b.WriteString("      ;;\n")
	b.WriteString("    completion)\n")
	b.WriteString("      _values 'shell' bash zsh fish ;;\n")
	b.WriteString("    help)\n")
	b.WriteString("      _describe 'command' commands ;;\n")
	b.WriteString("  esac\n")
	b.WriteString("}\n\n")
	b.WriteString("compdef _txt2epub txt2epub\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func zshAction(f flagDef) string {
	switch f.Type {
	case flagEnum:
		return ":" + f.Long + ":(" + strings.Join(f.Values, " ") + ")"
	case flagDir:
		return ":" + f.Long + ":_files -/"
	case flagFile:
		globs := strings.Split(f.FileGlob, ",")
		return ":" + f.Long + ":_files -g \"" + strings.Join(globs, " ") + "\""
	case flagString, flagNumber:
		return ":" + f.Long + ":"
	default:
		return ""
	}
}

func zshEscape(s string) string {
	r := strings.NewReplacer("'", "'\\''", "[", "\\[", "]", "\\]", ":", "\\:")
	return r.Replace(s)
}

func generateFish(w io.Writer) error {
	cmds := getCommands()
	var b strings.Builder

	b.WriteString("# fish completion for txt2epub\n")
	b.WriteString("function __fish_txt2epub_needs_command\n")
	b.WriteString("  set -l cmd (commandline -opc)\n")
	b.WriteString("  test (count $cmd) -eq 1\n")
	b.WriteString("end\n\n")
	b.WriteString("function __fish_txt2epub_using_command\n")
	b.WriteString("  set -l cmd (commandline -opc)\n")
	b.WriteString("  test (count $cmd) -gt 1; and test $cmd[2] = $argv[1]\n")
	b.WriteString("end\n\n")
	b.WriteString("complete -c txt2epub -f\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "complete -c txt2epub -n __fish_txt2epub_needs_command -a %s -d %q\n", c.Name, c.Desc)
	}
	for _, f := range cmds[0].Flags {
		line := "complete -c txt2epub -n '__fish_txt2epub_using_command build' -l " + f.Long
		if f.Short != "" {
			line += " -s " + f.Short
		}
		switch f.Type {
		case flagEnum:
			line += " -x -a " + fmt.Sprintf("%q", strings.Join(f.Values, " "))
		case flagFile, flagDir:
			line += " -r -F"
		case flagString, flagNumber:
			line += " -x"
		}
		line += " -d " + fmt.Sprintf("%q", f.Desc)
		b.WriteString(line + "\n")
	}
	b.WriteString("complete -c txt2epub -n '__fish_txt2epub_using_command completion' -x -a \"bash zsh fish\"\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func longFlags(flags []flagDef) []string {
	out := make([]string, 0, len(flags))
	for _, f := range flags {
		out = append(out, "--"+f.Long)
	}
	return out
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: txt2epub completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells: bash, zsh, fish")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:  eval \"$(txt2epub completion bash)\"")
	fmt.Fprintln(w, "  Zsh:   eval \"$(txt2epub completion zsh)\"")
	fmt.Fprintln(w, "  Fish:  txt2epub completion fish > ~/.config/fish/completions/txt2epub.fish")
}
