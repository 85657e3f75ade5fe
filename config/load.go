package config

import (
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/fernandosanchezjr/hashrand/utils"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

const ConfigFile = "config.yaml"

func DefaultConfigPath() string {
	return utils.GetHomeFile(ConfigFile)
}

// LoadConfig reads a YAML config, then applies HASHRAND_* environment
// overrides. An empty path loads the default config file.
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = DefaultConfigPath()
	}
	expanded, err := utils.ExpandPath(configPath)
	if err != nil {
		return nil, errors.Wrapf(err, "expand %s", configPath)
	}
	log.WithField("path", expanded).Debug("Loading config")
	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	return ParseConfig(data)
}

func ParseConfig(data []byte) (*Config, error) {
	c := &Config{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	if err := ParseEnv(c); err != nil {
		return nil, err
	}
	return c, nil
}

func ParseEnv(target *Config) error {
	if err := env.Parse(target); err != nil {
		return errors.Wrap(err, "parse env")
	}
	return nil
}
