// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	CLI     CLIConfig     `yaml:"cli"`
}

type LoggingConfig struct {
	Development bool `yaml:"development"`
}

type CLIConfig struct {
	Prompt string `yaml:"prompt"`
	Output string `yaml:"output"` // "table" или "json"
	// искусственная задержка перед мутациями, чисто косметика
	MutationDelay time.Duration `yaml:"mutation_delay"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("не могу открыть %s: %w", path, err)
	}
	defer file.Close()

	var cfg Config
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("ошибка парсинга %s: %w", path, err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Default - конфигурация по умолчанию, когда config.yml отсутствует
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.CLI.Prompt == "" {
		c.CLI.Prompt = "todo> "
	}
	if c.CLI.Output == "" {
		c.CLI.Output = "table"
	}
}
