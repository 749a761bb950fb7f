package main

import (
	"errors"
	"fmt"
	"path/filepath"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-txt2epub/internal/config"
	"github.com/alnah/go-txt2epub/internal/fileutil"
	"github.com/alnah/go-txt2epub/internal/yamlutil"
)

const (
	defaultConfigFile = "book.yaml"
	configPermissions = 0o644
)

const sampleHeader = `txt2epub book configuration.

Paths are relative to this file. Build with:
  txt2epub build -c book.yaml`

// sampleConfig returns the config written by init.
func sampleConfig(title, input string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Book.Title = title
	cfg.Book.InputDirectory = input
	cfg.Book.OutputFile = "book.epub"
	cfg.Book.Date = "auto"
	return cfg
}

// runInit writes a commented sample config file.
func runInit(args []string, env *Environment) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	output := fs.StringP("output", "o", defaultConfigFile, "config file to create")
	force := fs.BoolP("force", "f", false, "overwrite an existing file")
	title := fs.String("title", "無題", "book title")
	input := fs.StringP("input", "i", "chapters", "chapter directory")
	fs.SetOutput(env.Stderr)
	fs.Usage = func() { printInitUsage(env.Stderr) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: init takes no arguments", ErrUsage)
	}

	if fileutil.FileExists(*output) && !*force {
		return fmt.Errorf("%w: %s (use --force to overwrite)", ErrConfigExists, *output)
	}

	data, err := yamlutil.MarshalWithHeader(sampleConfig(*title, *input), sampleHeader)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := fileutil.WriteFileAtomic(*output, data, configPermissions); err != nil {
		return fmt.Errorf("writing %s: %w", *output, err)
	}

	fmt.Fprintf(env.Stdout, "created %s\n", *output)
	if !fileutil.DirExists(fileutil.ResolvePath(filepath.Dir(*output), *input)) {
		fmt.Fprintf(env.Stdout, "put chapter .txt files in %s\n", *input)
	}
	return nil
}
