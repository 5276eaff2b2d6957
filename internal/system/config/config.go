// Released under an MIT license. See LICENSE.

// Package config loads blisp's settings file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Name is the settings file name in the user's home directory.
const Name = ".blisp.yaml"

// T (config) holds the settings that can be given in a settings file.
type T struct {
	ContinuationPrompt string `yaml:"continuation_prompt"`
	ExtendedPrint      bool   `yaml:"extended_print"`
	HistoryFile        string `yaml:"history_file"`
	MaxDepth           int    `yaml:"max_depth"`
	Prompt             string `yaml:"prompt"`
	ShowParser         bool   `yaml:"show_parser"`
	ShowTokens         bool   `yaml:"show_tokens"`
	StackTrace         bool   `yaml:"stack_trace"`
}

type config = T

// Default returns the settings used when there is no settings file.
func Default() *T {
	return &config{
		ContinuationPrompt: "... ",
		Prompt:             ">>> ",
	}
}

// Decode reads settings from r. Settings not given keep their defaults.
func Decode(r io.Reader) (*T, error) {
	c := Default()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if c.MaxDepth < 0 {
		return nil, fmt.Errorf("max_depth must not be negative: %d", c.MaxDepth)
	}

	return c, nil
}

// Load reads settings from path. If path is empty, the settings file in the
// user's home directory is read, if there is one.
func Load(path string) (*T, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return Default(), nil
		}
	}

	f, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}

		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return c, nil
}

// DefaultPath returns the path to the settings file in the user's home
// directory, or "" if there is no home directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, Name)
}
