// Released under an MIT license. See LICENSE.

package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/michaelmacinnis/blisp/internal/reader"
	"github.com/michaelmacinnis/blisp/internal/system/history"
	"github.com/michaelmacinnis/blisp/internal/system/host"
	"github.com/michaelmacinnis/blisp/internal/system/options"
	"github.com/peterh/liner"
)

// Interactive runs the REPL until the user presses Ctrl+D or calls exit.
func (u *ui) Interactive() error {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)
	cli.SetTabCompletionStyle(liner.TabPrints)
	cli.SetWordCompleter(u.complete)

	path := history.Path(u.config.HistoryFile)
	if path != "" {
		if err := history.Load(path, cli.ReadHistory); err != nil {
			u.report(err)
		}

		defer func() {
			if err := history.Save(path, cli.WriteHistory); err != nil {
				u.report(err)
			}
		}()
	}

	u.banner()

	rd := reader.New("repl")

	for {
		prompt := u.config.Prompt
		if rd.Incomplete() {
			prompt = u.config.ContinuationPrompt
		}

		line, err := cli.Prompt(prompt)

		switch {
		case err == nil:
		case errors.Is(err, liner.ErrPromptAborted):
			rd.Reset()

			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(u.stdout)

			return nil
		default:
			return err
		}

		if strings.TrimSpace(line) != "" {
			cli.AppendHistory(line)
		}

		err = u.evaluate(rd, line+"\n", true)
		if err != nil {
			return err
		}
	}
}

func (u *ui) banner() {
	fmt.Fprintln(u.stdout, host.Banner("blisp", options.Version))
	fmt.Fprintln(u.stdout, `Type "(help)" or "(license)" for more information.`)
	fmt.Fprintln(u.stdout, `Press Ctrl+D or type "(exit)" to exit this REPL.`)
}
