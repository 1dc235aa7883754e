package main

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/hassan/telid/internal/evaluator"
	"github.com/hassan/telid/internal/lexer"
	"github.com/hassan/telid/internal/parser"
	"github.com/hassan/telid/internal/scope"
	"github.com/hassan/telid/internal/value"
)

// run lexes, parses, and evaluates source against sc, returning the
// program's final value. sc is mutated in place as statements run, so a
// failure can leave it partially updated; the REPL therefore passes
// scope.Clone() and keeps the clone only on success, matching the
// original REPL's transactional commit.
func run(source, name string, sc *scope.Scope, logger *zap.SugaredLogger) (value.Value, error) {
	lex := lexer.New(source)
	tokens := lex.Lex(false)
	logger.Debugw("lexed", "source", name, "tokens", len(tokens))

	if lexErrs := lexer.Errors(tokens); len(lexErrs) > 0 {
		msgs := make([]string, len(lexErrs))
		for i, e := range lexErrs {
			msgs[i] = e.Error()
		}
		return value.Void(), fmt.Errorf("%s: %s", name, strings.Join(msgs, "; "))
	}

	statements, parseErr := parser.Parse(tokens)
	if parseErr != nil {
		return value.Void(), fmt.Errorf("%s: %w", name, parseErr)
	}
	logger.Debugw("parsed", "source", name, "statements", len(statements))

	result, evalErr := evaluator.Evaluate(statements, sc)
	if evalErr != nil {
		return value.Void(), fmt.Errorf("%s: %w", name, evalErr)
	}
	logger.Debugw("evaluated", "source", name, "result", result.String())

	return result, nil
}
