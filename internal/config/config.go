package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultAlgorithm = "bubble"
	DefaultSize      = 40
	DefaultMin       = 1
	DefaultMax       = 100
	DefaultDelayMs   = 80
	DefaultOrder     = "random"
)

type Config struct {
	Algorithm string `yaml:"algorithm"`
	Size      int    `yaml:"size"`
	Min       int    `yaml:"min"`
	Max       int    `yaml:"max"`
	Seed      int64  `yaml:"seed"`
	DelayMs   int    `yaml:"delay_ms"`
	Order     string `yaml:"order"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm: DefaultAlgorithm,
		Size:      DefaultSize,
		Min:       DefaultMin,
		Max:       DefaultMax,
		DelayMs:   DefaultDelayMs,
		Order:     DefaultOrder,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
