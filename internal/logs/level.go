package logs

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ltungv/lox/jlox/internal/configs"
)

// Level is the minimum level of records the logger emits.
type Level = *slog.LevelVar

func (Module) Level(
	config configs.Config,
) Level {
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	if config.LogLevel != "" {
		if err := SetLevel(level, config.LogLevel); err != nil {
			panic(err)
		}
	}
	return level
}

// SetLevel parses name ("debug", "info", "warn" or "error") into level.
func SetLevel(level Level, name string) error {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return fmt.Errorf("log level %q: %w", name, err)
	}
	level.Set(l)
	return nil
}
