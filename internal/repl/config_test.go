package repl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("trace: true\nprompt: \"> \"\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.True(t, cfg.Trace)
	assert.Equal(t, "> ", cfg.Prompt)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestApplyConfigOverridesPrompt(t *testing.T) {
	r := New("test")
	assert.Equal(t, defaultPrompt, r.prompt)

	r.ApplyConfig(&Config{Prompt: "type> "})
	assert.Equal(t, "type> ", r.prompt)
}

func TestApplyConfigNilIsNoop(t *testing.T) {
	r := New("test")
	r.ApplyConfig(nil)
	assert.Equal(t, defaultPrompt, r.prompt)
}

func TestApplyConfigEmptyPromptKeepsDefault(t *testing.T) {
	r := New("test")
	r.ApplyConfig(&Config{Trace: true})
	assert.Equal(t, defaultPrompt, r.prompt)
}
