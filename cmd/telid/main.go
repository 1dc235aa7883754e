// Command telid runs telid source: given a path, it evaluates the file
// and exits 0 or 1; given no arguments, it starts an interactive REPL.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/hassan/telid/internal/builtins"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	if len(os.Args) > 1 {
		if err := runFile(os.Args[1], logger); err != nil {
			os.Exit(1)
		}
		return
	}

	runREPL(logger)
}

// newLogger returns a no-op logger unless TELID_DEBUG is set, in which
// case it returns a development logger that writes to stderr.
func newLogger() *zap.SugaredLogger {
	if os.Getenv("TELID_DEBUG") == "" {
		return zap.NewNop().Sugar()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}

func runFile(path string, logger *zap.SugaredLogger) error {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "telid: %v\n", err)
		return err
	}

	sc := builtins.Default(os.Stdout, os.Stdin)
	_, err = run(string(source), path, sc, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "telid: %v\n", err)
		return err
	}
	return nil
}
