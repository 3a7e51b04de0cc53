package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"
	"todoTracker/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConfig_Load тестирует чтение config.yml
func TestConfig_Load(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")

	content := `
logging:
  development: true
cli:
  prompt: "> "
  output: json
  mutation_delay: 500000000
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Logging.Development)
	assert.Equal(t, "> ", cfg.CLI.Prompt)
	assert.Equal(t, "json", cfg.CLI.Output)
	assert.Equal(t, 500*time.Millisecond, cfg.CLI.MutationDelay)
}

// TestConfig_LoadMissing тестирует отсутствующий файл
func TestConfig_LoadMissing(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

// TestConfig_Default тестирует значения по умолчанию
func TestConfig_Default(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "todo> ", cfg.CLI.Prompt)
	assert.Equal(t, "table", cfg.CLI.Output)
	assert.Zero(t, cfg.CLI.MutationDelay)
	assert.False(t, cfg.Logging.Development)
}
