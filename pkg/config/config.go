// Package config loads calculator settings from a YAML file with environment
// overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/lemonberrylabs/stackcalc/pkg/calc"
)

// Config holds the settings shared by the CLI and the servers.
type Config struct {
	Host         string      `yaml:"host"`
	Port         int         `yaml:"port"`
	GRPCPort     int         `yaml:"grpc_port"`
	HistoryLimit int         `yaml:"history_limit"` // evaluations kept by the servers; 0 keeps none
	Quirks       calc.Quirks `yaml:"quirks"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Host:         "0.0.0.0",
		Port:         8787,
		GRPCPort:     8788,
		HistoryLimit: 1000,
	}
}

// Load reads the YAML file at path on top of the defaults and then applies
// environment overrides. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
		if err := decode(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// ApplyEnv overrides settings from HOST, PORT and GRPC_PORT when set.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("HOST"); v != "" {
		c.Host = v
	}
	if err := envInt("PORT", &c.Port); err != nil {
		return err
	}
	return envInt("GRPC_PORT", &c.GRPCPort)
}

// Validate checks that the settings are usable.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.GRPCPort < 0 || c.GRPCPort > 65535 {
		return fmt.Errorf("grpc port %d out of range", c.GRPCPort)
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("history limit must not be negative, got %d", c.HistoryLimit)
	}
	return nil
}

// Addr returns the HTTP listen address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// GRPCAddr returns the gRPC listen address.
func (c Config) GRPCAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.GRPCPort)
}

func envInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	*dst = n
	return nil
}
