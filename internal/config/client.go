package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Client holds configuration for the contactdesk client binary. It is
// read from a YAML file; flags override whatever the file provides.
type Client struct {
	ServerURL string        `yaml:"server_url"`
	Timeout   time.Duration `yaml:"timeout"`
}

// DefaultClient returns a Client config with sensible defaults.
func DefaultClient() Client {
	return Client{
		ServerURL: "http://localhost:8080",
		Timeout:   10 * time.Second,
	}
}

// LoadClient reads a YAML client config file at path. If the file does
// not exist, defaults are returned without error. Invalid YAML or
// unknown fields are an error.
func LoadClient(path string) (*Client, error) {
	cfg := DefaultClient()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return &cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &cfg, nil
}
