package main

// This is an interpreter for the Lox programming language written in Go.

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ltungv/lox/jlox/internal/configs"
	"github.com/ltungv/lox/jlox/internal/logs"
	"github.com/ltungv/lox/jlox/internal/lox"
	"github.com/reusee/dscope"
)

// exit codes from sysexits.h
const (
	exitUsage    = 64
	exitDataErr  = 65
	exitSoftware = 70
	exitIOErr    = 74
	exitConfig   = 78
)

func main() {
	args := os.Args[1:]
	if len(args) > 1 {
		fmt.Fprintln(os.Stderr, "Usage: jlox [script]")
		os.Exit(exitUsage)
	}
	os.Exit(run(args))
}

func run(args []string) (code int) {
	defer func() {
		// providers panic on invalid configuration
		if p := recover(); p != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", p)
			code = exitConfig
		}
	}()

	dscope.New(new(Module)).Call(func(
		logger logs.Logger,
		config configs.Config,
	) {
		reporter := lox.NewSimpleReporter(os.Stderr)
		options := []lox.RunnerOption{lox.WithLogger(logger)}
		if config.PrintAST {
			options = append(options, lox.WithASTOutput(os.Stderr))
		}
		runner := lox.NewRunner(os.Stdout, reporter, options...)

		if len(args) != 1 {
			code = runPrompt(runner, config, logger)
			return
		}
		code = exitCode(runner.RunFile(args[0]))
		if code != 0 {
			logger.Debug("script failed", "path", args[0], "code", code)
		}
	})
	return
}

func exitCode(err error) int {
	var pathErr *fs.PathError
	switch {
	case err == nil:
		return 0
	case errors.Is(err, lox.ErrSyntax):
		return exitDataErr
	case errors.Is(err, lox.ErrRuntime):
		return exitSoftware
	case errors.As(err, &pathErr):
		fmt.Fprintln(os.Stderr, err)
		return exitIOErr
	default:
		fmt.Fprintln(os.Stderr, err)
		return exitSoftware
	}
}
