package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"go.uber.org/zap"

	"github.com/hassan/telid/internal/builtins"
	"github.com/hassan/telid/internal/scope"
	"github.com/hassan/telid/internal/value"
)

// runREPL is telid's interactive loop, grounded on the original
// interpreter's run_repl: each line is evaluated against a clone of the
// live scope, and the clone is committed back only when evaluation
// succeeds, so a bad line never corrupts previously-declared bindings.
func runREPL(logger *zap.SugaredLogger) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "> ",
		HistoryFile: historyFilePath(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "telid: %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	sc := builtins.Default(os.Stdout, os.Stdin)

	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
				fmt.Println("Type exit(0) to exit")
				continue
			}
			fmt.Fprintf(os.Stderr, "telid: %v\n", err)
			return
		}
		if line == "" {
			continue
		}

		sc = evalLine(line, sc, logger)
	}
}

// evalLine runs line against a clone of sc, printing its result (unless
// Void) or its error, and returns whichever scope should be kept for the
// next line.
func evalLine(line string, sc *scope.Scope, logger *zap.SugaredLogger) *scope.Scope {
	candidate := sc.Clone()
	result, err := run(line, "repl", candidate, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return sc
	}
	if result.Kind != value.VoidKind {
		fmt.Println(result.String())
	}
	return candidate
}

func historyFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home + "/.telid_history"
}
