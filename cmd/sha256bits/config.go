package main

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/zeebo/sha256bits"
)

const (
	envConfig = "SHA256BITS_CONFIG"
	envSecret = "SHA256BITS_SECRET"
)

// Config is the on disk configuration.
type Config struct {
	// Secret is shared with the system that produces integrity tokens. It is
	// never logged.
	Secret string `yaml:"secret"`

	// Encoding is the default input encoding, ascii or hex.
	Encoding string `yaml:"encoding"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{Encoding: string(sha256bits.ASCII)}
}

// LoadFile reads the configuration at path on top of the defaults. Unknown
// keys are an error.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	return cfg, nil
}

// load resolves the configuration from, in increasing precedence, the
// defaults, the config file, the environment and the flags.
func load(opts *options, getenv func(string) string) (*Config, error) {
	path := opts.configPath
	if path == "" {
		path = getenv(envConfig)
	}

	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = LoadFile(path); err != nil {
			return nil, err
		}
	}

	if secret := getenv(envSecret); secret != "" {
		cfg.Secret = secret
	}
	if opts.encoding != "" {
		cfg.Encoding = opts.encoding
	}

	if _, err := sha256bits.ParseEncoding(cfg.Encoding); err != nil {
		return nil, err
	}
	return cfg, nil
}
