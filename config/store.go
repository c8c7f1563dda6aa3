package config

import (
	"github.com/pteich/configstruct"
)

const Transient = "<Transient>"

// StoreConfig describes an object store connection for the demo browser.
type StoreConfig struct {
	Name      string `toml:"name"`
	Endpoint  string `toml:"endpoint" cli:"endpoint" env:"ENDPOINT"`
	AccessKey string `toml:"accessKey" cli:"accesskey" env:"ACCESS_KEY"`
	SecretKey string `toml:"secretKey" cli:"secretkey" env:"SECRET_KEY"`
	Bucket    string `toml:"bucket" cli:"bucket" env:"BUCKET"`
	Prefix    string `toml:"prefix" cli:"prefix" env:"PREFIX"`
	Region    string `toml:"region" cli:"region" env:"REGION"`
	UseSSL    bool   `toml:"usessl" cli:"usessl" env:"USE_SSL"`
}

// NewStoreConfig parses a store connection from CLI flags and environment
// variables. A connection configured this way is transient: it is offered
// for the session but not saved.
func NewStoreConfig() (StoreConfig, error) {
	cfg := StoreConfig{}

	err := configstruct.Parse(&cfg)
	if err != nil {
		return cfg, err
	}

	if cfg.Endpoint != "" && cfg.AccessKey != "" {
		cfg.Name = Transient
	}

	return cfg, nil
}
