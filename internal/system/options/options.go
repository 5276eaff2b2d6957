// Released under an MIT license. See LICENSE.

// Package options parses blisp's command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is the blisp version.
const Version = "1.0.0"

// Mode selects what blisp runs.
type Mode int

// Modes.
const (
	Script Mode = iota
	REPL
	ScriptAndREPL
)

//nolint:gochecknoglobals
var usage = `blisp

Usage:
  blisp [options] [SCRIPT]
  blisp -h
  blisp -v

Arguments:
  SCRIPT  Path to a blisp script.

Options:
  -i, --interactive     Run the REPL, after SCRIPT if one is given.
  -t, --show-tokens     Print the tokens for each input.
  -p, --show-parser     Print the parsed expressions for each input.
  -e, --extended-print  Label each printed value with its type.
  --stack-trace         Print a stack trace when an error is reported.
  --config=FILE         Read settings from FILE instead of ~/.blisp.yaml.
  -h, --help            Display this help.
  -v, --version         Print blisp version.

If blisp's stdin is a TTY and no SCRIPT is given, the REPL is started.
Otherwise, blisp reads a script from stdin.
`

// T (options) holds the parsed command line.
type T struct {
	Config      string // Path to the settings file, if given.
	Extended    bool
	Interactive bool
	Message     string // Help or version text, when requested.
	Script      string // Path to the script, if given.
	ShowParser  bool
	ShowTokens  bool
	StackTrace  bool
	Terminal    bool // True if stdin is a terminal.
}

type options = T

// Parse parses the command line arguments argv (not including the program name).
func Parse(argv []string) (*T, error) {
	o := &options{}

	p := &docopt.Parser{
		HelpHandler: func(_ error, s string) {
			o.Message = s
		},
	}

	opts, err := p.ParseArgs(usage, argv, "blisp v"+Version)
	if err != nil {
		return nil, &UsageError{usage: o.Message}
	}

	if o.Message != "" {
		return o, nil
	}

	o.Config, _ = opts.String("--config")
	o.Extended, _ = opts.Bool("--extended-print")
	o.Interactive, _ = opts.Bool("--interactive")
	o.Script, _ = opts.String("SCRIPT")
	o.ShowParser, _ = opts.Bool("--show-parser")
	o.ShowTokens, _ = opts.Bool("--show-tokens")
	o.StackTrace, _ = opts.Bool("--stack-trace")

	fd := os.Stdin.Fd()
	o.Terminal = isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)

	return o, nil
}

// Mode returns the mode selected by the options o.
func (o *options) Mode() Mode {
	switch {
	case o.Script != "" && o.Interactive:
		return ScriptAndREPL
	case o.Script != "":
		return Script
	case o.Interactive || o.Terminal:
		return REPL
	}

	return Script
}

// UsageError is returned when the command line does not match the usage.
type UsageError struct {
	usage string
}

// Error returns the usage text.
func (e *UsageError) Error() string {
	return e.usage
}
