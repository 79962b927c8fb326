package configs

import (
	"os"
	"path/filepath"
)

const Schema = `
log_level?:    "debug" | "info" | "warn" | "error"
prompt?:       string
history_file?: string
print_ast?:    bool
`

// Config holds the interpreter settings.
type Config struct {
	LogLevel    string
	Prompt      string
	HistoryFile string
	PrintAST    bool
}

func Default() Config {
	config := Config{
		Prompt: "> ",
	}
	if home, err := os.UserHomeDir(); err == nil {
		config.HistoryFile = filepath.Join(home, ".jlox_history")
	}
	return config
}

// Load overlays the values found by loader on the defaults.
func Load(loader Loader) (config Config, err error) {
	config = Default()
	if v, err := First[string](loader, "log_level"); err != nil {
		return config, err
	} else if v != "" {
		config.LogLevel = v
	}
	if v, err := First[string](loader, "prompt"); err != nil {
		return config, err
	} else if v != "" {
		config.Prompt = v
	}
	if v, err := First[string](loader, "history_file"); err != nil {
		return config, err
	} else if v != "" {
		config.HistoryFile = v
	}
	if config.PrintAST, err = First[bool](loader, "print_ast"); err != nil {
		return config, err
	}
	return config, nil
}

// FilePaths lists the configuration files to read: the entries of
// $JLOX_CONFIG, then the per-user config.cue if it exists.
func FilePaths() []string {
	var paths []string
	if env := os.Getenv("JLOX_CONFIG"); env != "" {
		for _, p := range filepath.SplitList(env) {
			if p != "" {
				paths = append(paths, p)
			}
		}
	}
	if dir, err := os.UserConfigDir(); err == nil {
		p := filepath.Join(dir, "jlox", "config.cue")
		if _, err := os.Stat(p); err == nil {
			paths = append(paths, p)
		}
	}
	return paths
}

func (Module) Loader() Loader {
	return NewLoader(FilePaths(), Schema)
}

func (Module) Config(
	loader Loader,
) Config {
	config, err := Load(loader)
	if err != nil {
		panic(err)
	}
	return config
}
