package config

import (
	"github.com/fernandosanchezjr/hashrand/generators"
	"github.com/fernandosanchezjr/hashrand/logging"
	"github.com/fernandosanchezjr/hashrand/utils"
	"github.com/pkg/errors"
)

// Config describes a generator. Inputs are 0x prefixed hex or decimal strings.
type Config struct {
	Hash     string   `yaml:"hash,omitempty" env:"HASHRAND_HASH"`
	Inputs   []string `yaml:"inputs" env:"HASHRAND_INPUTS" envSeparator:","`
	LogLevel string   `yaml:"logLevel,omitempty" env:"HASHRAND_LOG_LEVEL"`
}

func (c *Config) RawValues() ([]generators.RawValue, error) {
	var values = make([]generators.RawValue, 0, len(c.Inputs))
	for i, input := range c.Inputs {
		value, err := generators.ParseRawValue(input)
		if err != nil {
			return nil, errors.WithMessagef(err, "config input %d", i)
		}
		values = append(values, value)
	}
	return values, nil
}

func (c *Config) HashFunc() (utils.HashFunc, error) {
	return utils.HashByName(c.Hash)
}

func (c *Config) NewHashChain() (*generators.HashChain, error) {
	hash, err := c.HashFunc()
	if err != nil {
		return nil, err
	}
	values, err := c.RawValues()
	if err != nil {
		return nil, err
	}
	return generators.NewHashChainWithHash(hash, values...)
}

func (c *Config) SetupLogger() error {
	return logging.SetupLogger(c.LogLevel)
}
