package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/reusee/dscope"
	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	assert := assert.New(t)

	config, err := Load(NewLoader(nil, Schema))
	assert.NoError(err)
	assert.Equal(Default(), config)
	assert.Equal("> ", config.Prompt)
	assert.Equal("", config.LogLevel)
	assert.False(config.PrintAST)
}

func TestLoadOverlay(t *testing.T) {
	assert := assert.New(t)
	path := writeCue(t, "config.cue", `
log_level:    "info"
prompt:       ">> "
history_file: "/tmp/lox_history"
print_ast:    true
`)

	config, err := Load(NewLoader([]string{path}, Schema))
	assert.NoError(err)
	assert.Equal(Config{
		LogLevel:    "info",
		Prompt:      ">> ",
		HistoryFile: "/tmp/lox_history",
		PrintAST:    true,
	}, config)
}

func TestFilePathsFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	a := filepath.Join(dir, "a.cue")
	b := filepath.Join(dir, "b.cue")
	t.Setenv("JLOX_CONFIG", a+string(os.PathListSeparator)+b)

	paths := FilePaths()
	assert.Equal(t, []string{a, b}, paths)
}

func TestModuleConfig(t *testing.T) {
	path := writeCue(t, "config.cue", `prompt: "$ "`)
	dscope.New(new(Module)).Fork(
		func() Loader {
			return NewLoader([]string{path}, Schema)
		},
	).Call(func(
		config Config,
	) {
		assert.Equal(t, "$ ", config.Prompt)
	})
}
