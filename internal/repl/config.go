package repl

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds REPL defaults loadable from a YAML file via --config,
// following the teacher's internal/repl.Config toggle-struct shape (trimmed
// to the two toggles this REPL actually has).
type Config struct {
	Trace  bool   `yaml:"trace"`
	Prompt string `yaml:"prompt"`
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
