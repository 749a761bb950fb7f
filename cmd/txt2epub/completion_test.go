package main

// Notes:
// - GenerateCompletion: scripts contain the expected markers. Scripts are
//   not executed in real shells.

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestGenerateCompletion_SupportedShells(t *testing.T) {
	t.Parallel()

	tests := []struct {
		shell        Shell
		wantContains []string
	}{
		{
			shell: ShellBash,
			wantContains: []string{
				"_txt2epub_completions",
				"complete -F _txt2epub_completions txt2epub",
				"compgen",
				"--paragraph-break",
				`"rtl ltr default"`,
			},
		},
		{
			shell: ShellZsh,
			wantContains: []string{
				"#compdef txt2epub",
				"_arguments",
				"_describe",
				"--direction",
				"(rtl ltr default)",
			},
		},
		{
			shell: ShellFish,
			wantContains: []string{
				"complete -c txt2epub",
				"__fish_txt2epub_needs_command",
				"__fish_txt2epub_using_command build",
				"-l encodings",
			},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.shell), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell); err != nil {
				t.Fatalf("GenerateCompletion(%s) error = %v", tt.shell, err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("%s script missing %q", tt.shell, want)
				}
			}
		})
	}
}

func TestGenerateCompletion_UnsupportedShell(t *testing.T) {
	t.Parallel()

	err := GenerateCompletion(&bytes.Buffer{}, Shell("powershell"))
	if !errors.Is(err, ErrUnsupportedShell) {
		t.Errorf("error = %v, want ErrUnsupportedShell", err)
	}
}

func TestGetCommands(t *testing.T) {
	t.Parallel()

	cmds := getCommands()
	if cmds[0].Name != "build" || !cmds[0].TakesDirs {
		t.Fatalf("first command = %+v, want build", cmds[0])
	}

	types := map[string]flagType{}
	for _, f := range cmds[0].Flags {
		types[f.Long] = f.Type
	}
	want := map[string]flagType{
		"direction":   flagEnum,
		"config":      flagFile,
		"input":       flagDir,
		"quiet":       flagBool,
		"line-height": flagNumber,
		"title":       flagString,
	}
	for name, typ := range want {
		if got, ok := types[name]; !ok || got != typ {
			t.Errorf("flag %q type = %v (present %v), want %v", name, got, ok, typ)
		}
	}

	for _, c := range cmds {
		if !isCommand(c.Name) {
			t.Errorf("completion lists %q which is not a command", c.Name)
		}
	}
}
