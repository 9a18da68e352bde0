package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfigDefaults(t *testing.T) {
	config, err := ParseConfig([]byte("debug: true\n"))
	require.NoError(t, err)
	assert.Equal(t, &Config{RandomRuns: 100, RandomSteps: 50, Seed: 1, Debug: true}, config)
}

func TestParseConfigInvalid(t *testing.T) {
	_, err := ParseConfig([]byte("random_runs: [1, 2]\n"))
	assert.Error(t, err)
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "harness.yaml")
	data := []byte(`
scenario_file: scenarios.yaml
trace_file: /var/tmp/traces.log
random_runs: 7
random_steps: 9
seed: 42
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	config, err := loadConfigFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "scenarios.yaml"), config.ScenarioFile)
	assert.Equal(t, "/var/tmp/traces.log", config.TraceFile)
	assert.Equal(t, 7, config.RandomRuns)
	assert.Equal(t, 9, config.RandomSteps)
	assert.Equal(t, uint64(42), config.Seed)
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	config, err := loadConfigFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, getDefaultConfig(), config)
}

func TestLoadConfigSingleton(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "harness.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 9\n"), 0644))

	first, err := LoadConfig(path)
	require.NoError(t, err)
	second, err := LoadConfig(filepath.Join(dir, "other.yaml"))
	require.NoError(t, err)
	assert.Same(t, first, second)

	got, err := GetConfig()
	require.NoError(t, err)
	assert.Equal(t, uint64(9), got.Seed)
}
