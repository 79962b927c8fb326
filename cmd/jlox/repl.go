package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/ltungv/lox/jlox/internal/configs"
	"github.com/ltungv/lox/jlox/internal/logs"
	"github.com/ltungv/lox/jlox/internal/lox"
)

// lineReader ends the session on Ctrl-C as well as on Ctrl-D.
type lineReader struct {
	rl *readline.Instance
}

func (r lineReader) Readline() (string, error) {
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return line, io.EOF
	}
	return line, err
}

func runPrompt(runner *lox.Runner, config configs.Config, logger logs.Logger) int {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      config.Prompt,
		HistoryFile: config.HistoryFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitIOErr
	}
	defer rl.Close()

	logger.Debug("repl started", "history", config.HistoryFile)
	if err := runner.RunPrompt(lineReader{rl}); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitIOErr
	}
	return 0
}
