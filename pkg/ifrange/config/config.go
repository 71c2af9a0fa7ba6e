package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v2"

	"github.com/norasector/ifrange/pkg/ifrange"
)

// Formats lists every output format the CLI understands.
var Formats = []string{"plain", "csv", "json", "yaml", "table", "png"}

type Config struct {
	// SampleRate is fs in MHz, by default the 192 MHz modulator rate
	// decimated by 4. 180 is the other rate it has been checked against.
	SampleRate float64 `yaml:"sample_rate"`

	ifrange.Plan `yaml:",inline"`

	Sweep          ifrange.Sweep `yaml:"sweep"`
	Format         string        `yaml:"format"`
	LogLevel       string        `yaml:"log_level"`
	ConsoleLogging bool          `yaml:"console_logging"`
}

func Default() Config {
	return Config{
		SampleRate:     ifrange.DefaultSampleRate,
		Plan:           ifrange.DefaultPlan,
		Sweep:          ifrange.DefaultSweep,
		Format:         "plain",
		LogLevel:       zerolog.InfoLevel.String(),
		ConsoleLogging: true,
	}
}

// Load reads a YAML file over the defaults. When mustExist is false a missing
// file just yields the defaults.
func Load(path string, mustExist bool) (Config, error) {
	cfg := Default()

	contents, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !mustExist {
			return cfg, nil
		}
		return cfg, errors.Wrap(err, "error reading config file")
	}

	if err := Parse(contents, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Parse unmarshals YAML into cfg, leaving unset fields alone.
func Parse(contents []byte, cfg *Config) error {
	if err := yaml.UnmarshalStrict(contents, cfg); err != nil {
		return errors.Wrap(err, "error unmarshaling yaml config")
	}
	return nil
}

func (c Config) Validate() error {
	if err := ifrange.CheckSampleRate(c.SampleRate); err != nil {
		return err
	}
	if err := c.Sweep.Validate(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	for _, f := range Formats {
		if c.Format == f {
			return nil
		}
	}
	return errors.Wrapf(ifrange.ErrInvalidArgument, "unknown format %q, expected one of %s", c.Format, strings.Join(Formats, ", "))
}

func (c Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, errors.Wrapf(ifrange.ErrInvalidArgument, "log level %q", c.LogLevel)
	}
	return lvl, nil
}
