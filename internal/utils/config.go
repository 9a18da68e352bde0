package utils

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Config holds the conformance harness configuration
type Config struct {
	ScenarioFile string `yaml:"scenario_file"`
	TraceFile    string `yaml:"trace_file"`
	RandomRuns   int    `yaml:"random_runs"`
	RandomSteps  int    `yaml:"random_steps"`
	Seed         uint64 `yaml:"seed"`
	Debug        bool   `yaml:"debug"`
}

var (
	configInstance *Config   // Singleton configInstance
	configOnce     sync.Once // Ensures thread-safe initialization
	configErr      error
)

// LoadConfig initializes the singleton configInstance
func LoadConfig(filename string) (*Config, error) {
	configOnce.Do(func() {
		configInstance, configErr = loadConfigFromFile(filename)
	})
	return configInstance, configErr
}

// loadConfigFromFile reads and parses the config file.
// Relative paths in the file are resolved against the file's directory.
func loadConfigFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return getDefaultConfig(), nil
		}
		return nil, err
	}

	config, err := ParseConfig(data)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(filename)
	config.ScenarioFile = resolvePath(dir, config.ScenarioFile)
	config.TraceFile = resolvePath(dir, config.TraceFile)
	return config, nil
}

// ParseConfig decodes YAML config bytes and fills in defaults
func ParseConfig(data []byte) (*Config, error) {
	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	applyDefaults(config)
	return config, nil
}

// GetConfig returns the singleton config configInstance
func GetConfig() (*Config, error) {
	if configInstance == nil {
		return nil, errors.New("Config not initialized. Call LoadConfig() first")
	}
	return configInstance, nil
}

// getDefaultConfig returns default config values
func getDefaultConfig() *Config {
	return &Config{
		RandomRuns:  100,
		RandomSteps: 50,
		Seed:        1,
	}
}

// applyDefaults ensures missing values get defaults
func applyDefaults(config *Config) {
	defaults := getDefaultConfig()
	if config.RandomRuns <= 0 {
		config.RandomRuns = defaults.RandomRuns
	}
	if config.RandomSteps <= 0 {
		config.RandomSteps = defaults.RandomSteps
	}
	if config.Seed == 0 {
		config.Seed = defaults.Seed
	}
}

func resolvePath(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
