package main

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/fregelab/entail/prover"
)

// defaultConfigFile is looked up in the working directory when no --config
// flag is given; a missing file is not an error.
const defaultConfigFile = "entail.yml"

// A fileConfig holds the defaults an entail.yml file may provide. Command
// line flags override every field.
type fileConfig struct {
	Heuristic       string `yaml:"heuristic"`
	Budget          int    `yaml:"budget"`
	Timeout         string `yaml:"timeout"`
	DistributionCap int    `yaml:"distribution_cap"`
}

func loadConfig(path string, explicit bool) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return &fileConfig{}, nil
		}
		return nil, errors.Wrapf(err, "could not read config %q", path)
	}
	cfg := &fileConfig{}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "could not parse config %q", path)
	}
	if cfg.Heuristic != "" {
		if _, err := prover.ParseHeuristic(cfg.Heuristic); err != nil {
			return nil, errors.Wrapf(err, "invalid config %q", path)
		}
	}
	if cfg.Budget < 0 {
		return nil, errors.Errorf("invalid config %q: budget must be positive", path)
	}
	if cfg.Timeout != "" {
		if _, err := time.ParseDuration(cfg.Timeout); err != nil {
			return nil, errors.Wrapf(err, "invalid config %q", path)
		}
	}
	return cfg, nil
}

func (c *fileConfig) timeout() time.Duration {
	if c.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		panic("config validated but timeout does not parse")
	}
	return d
}
