package config

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// FileName is looked up in the working directory when no -config flag is given.
const FileName = "kestrel.yaml"

type Config struct {
	LogLevel  string `yaml:"logLevel"`
	Color     bool   `yaml:"color"`
	PrintTree bool   `yaml:"printTree"`
}

var (
	ErrConfigFileMissing        = errors.New("config file is missing")
	ErrConfigFileUnreadable     = errors.New("config file is unreadable")
	ErrConfigFileUnmarshallable = errors.New("config file is unmarshallable")
	ErrLogLevelInvalid          = errors.New("logLevel is not a valid log level")
)

// Default is used when there is no config file.
func Default() *Config {
	return &Config{
		LogLevel: "warning",
		Color:    true,
	}
}

// Load reads path over the defaults. Keys absent from the file keep their
// default value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(ErrConfigFileMissing, path)
		}
		return nil, errors.Wrap(ErrConfigFileUnreadable, path)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(ErrConfigFileUnmarshallable, "%s: %v", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return errors.Wrap(ErrLogLevelInvalid, c.LogLevel)
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (logrus.Level, error) {
	return logrus.ParseLevel(c.LogLevel)
}
