package main

import (
	"flag"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/nikmy/txguard/pgxconn"
	"github.com/nikmy/txguard/pkg/builder"
	"github.com/nikmy/txguard/pkg/environment"
	"github.com/nikmy/txguard/pkg/errors"
)

type Config struct {
	Environment environment.Env `yaml:"Environment"`
	Postgres    pgxconn.Config  `yaml:"Postgres"`
}

func loadConfig() (*Config, error) {
	return builder.New[Config]().
		MaybeUse(fromYAML).
		Use(fromFlags).
		Get()
}

func fromYAML(cfg *Config) error {
	path, err := filepath.Abs("config.yaml")
	if err != nil {
		return errors.WrapFail(err, "build path to config")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.WrapFail(err, "read config file")
	}

	return errors.WrapFail(yaml.Unmarshal(data, cfg), "parse yaml")
}

func fromFlags(cfg *Config) {
	env := flag.String("env", "", "environment (dev, prod)")
	flag.Parse()

	if *env != "" {
		cfg.Environment = environment.FromString(*env)
	}
}
