package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printUsage(&buf)

	for _, s := range []string{"Usage: txt2epub", "Commands:", "build", "init", "version", "completion", "help"} {
		if !strings.Contains(buf.String(), s) {
			t.Errorf("printUsage output should contain %q", s)
		}
	}
}

// Every registered build flag must be documented.
func TestPrintBuildUsage_ListsAllFlags(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printBuildUsage(&buf)
	out := buf.String()

	for _, f := range extractFlagsFromFlagSet(newBuildFlagSet(&buildFlags{})) {
		if !strings.Contains(out, "--"+f.Long) {
			t.Errorf("build usage missing --%s", f.Long)
		}
	}
}

func TestRunHelp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args       []string
		wantStdout string
		wantStderr string
	}{
		{args: nil, wantStdout: "Commands:"},
		{args: []string{"build"}, wantStdout: "--encodings"},
		{args: []string{"init"}, wantStdout: "--force"},
		{args: []string{"completion"}, wantStdout: "Supported shells"},
		{args: []string{"version"}, wantStdout: "Usage: txt2epub version"},
		{args: []string{"help"}, wantStdout: "Usage: txt2epub help"},
		{args: []string{"bogus"}, wantStderr: "Unknown command: bogus"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := newTestEnv()
			runHelp(tt.args, env)
			if tt.wantStdout != "" && !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout missing %q", tt.wantStdout)
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr missing %q", tt.wantStderr)
			}
		})
	}
}
