package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/mattn/go-runewidth"
)

type lineReader interface {
	Readline() (string, error)
	Close() error
}

func (app *CalcApp) newLineReader() (lineReader, error) {
	historyLimit := -1
	if app.config.REPL.History {
		historyLimit = 0
	}

	cfg := &readline.Config{
		Prompt:       app.config.REPL.Prompt,
		HistoryLimit: historyLimit,
		Stdout:       app.stdout,
		Stderr:       app.stderr,
	}
	// readline wraps the process stdin itself so it can be cancelled.
	if app.stdin != os.Stdin {
		cfg.Stdin = io.NopCloser(app.stdin)
	}

	return readline.NewEx(cfg)
}

func (app *CalcApp) runPrompt() error {
	rl, err := app.newLineReader()
	if err != nil {
		return err
	}
	defer rl.Close()

	return app.prompt(rl)
}

func (app *CalcApp) prompt(rl lineReader) error {
	for {
		line, err := rl.Readline()
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			return nil
		}
		if err != nil {
			return err
		}

		if !app.runLine(line) {
			return nil
		}
	}
}

// runLine handles one prompt line and reports whether the loop continues.
// Failed expressions are reported but do not fail the session.
func (app *CalcApp) runLine(line string) bool {
	switch strings.TrimSpace(line) {
	case "":
		return true
	case "exit", "q":
		return false
	case "help":
		fmt.Fprintln(app.stdout, helpText())
		return true
	}

	out, err := app.solver.Solve(line)
	if err != nil {
		app.reportSourceError(line, runewidth.StringWidth(app.config.REPL.Prompt), err)
		app.resetError()
		return true
	}

	fmt.Fprintln(app.stdout, out)
	return true
}
