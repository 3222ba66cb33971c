package main

import (
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// config holds the defaults a YAML file may override. Explicit flags win over
// both.
type config struct {
	Policy     string `yaml:"policy"`
	Width      int    `yaml:"width"`
	Quality    string `yaml:"quality"`
	Delimiter  string `yaml:"delimiter"`
	ZeroFilter bool   `yaml:"zero_filter"`
	MaxLag     int    `yaml:"max_lag"`
	JSON       bool   `yaml:"json"`
}

func defaultConfig() config {
	return config{
		Policy:     "closest",
		Width:      8,
		Delimiter:  ",",
		ZeroFilter: true,
		MaxLag:     50,
	}
}

// loadConfig reads path on top of the defaults. An empty path yields the
// defaults.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if _, err := delimiterRune(cfg.Delimiter); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

func delimiterRune(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	return r, nil
}
