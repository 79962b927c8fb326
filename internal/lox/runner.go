package lox

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Runner drives source text through the scanner, the parser and the
// interpreter. Global bindings persist across calls to Run.
type Runner struct {
	interpreter *Interpreter
	reporter    Reporter
	logger      *slog.Logger
	astOutput   io.Writer
}

type RunnerOption func(*Runner)

// WithLogger sets the logger receiving phase events.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithASTOutput makes the runner print every successfully parsed program to w
// before executing it.
func WithASTOutput(w io.Writer) RunnerOption {
	return func(r *Runner) {
		r.astOutput = w
	}
}

func NewRunner(output io.Writer, reporter Reporter, options ...RunnerOption) *Runner {
	r := &Runner{
		interpreter: NewInterpreter(output, reporter),
		reporter:    reporter,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, option := range options {
		option(r)
	}
	return r
}

// Run executes one program. The returned error wraps ErrSyntax if the program
// could not be scanned or parsed, or ErrRuntime if its execution failed.
// Diagnostics have already been reported when Run returns.
func (r *Runner) Run(source []byte) error {
	start := time.Now()
	tokens := NewScanner(source, r.reporter).Scan()
	r.logger.Debug("scanned",
		"tokens", len(tokens),
		"duration", time.Since(start),
	)

	start = time.Now()
	stmts, err := NewParser(tokens, r.reporter).Parse()
	r.logger.Debug("parsed",
		"statements", len(stmts),
		"duration", time.Since(start),
	)
	if err != nil {
		return err
	}
	if r.reporter.HadError() {
		return fmt.Errorf("%w: invalid token", ErrSyntax)
	}

	if r.astOutput != nil {
		printer := new(AstPrinter)
		if _, err := io.WriteString(r.astOutput, printer.PrintStmts(stmts)); err != nil {
			return fmt.Errorf("write ast: %w", err)
		}
	}

	start = time.Now()
	err = r.interpreter.Interpret(stmts)
	r.logger.Debug("interpreted",
		"duration", time.Since(start),
		"failed", err != nil,
	)
	return err
}

// RunFile reads the script at path and runs it.
func (r *Runner) RunFile(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	r.logger.Debug("run file", "path", path, "bytes", len(source))
	return r.Run(source)
}

// LineReader reads one line of input per call. It returns io.EOF when the
// input is exhausted.
type LineReader interface {
	Readline() (string, error)
}

// RunPrompt runs every line read from lines until the input ends. Errors in a
// line are reported but do not end the session.
func (r *Runner) RunPrompt(lines LineReader) error {
	for {
		line, err := lines.Readline()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read line: %w", err)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := r.Run([]byte(line)); err != nil {
			r.logger.Debug("line failed", "error", err)
		}
		r.reporter.Reset()
	}
}
