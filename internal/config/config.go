// Package config holds run settings, layered by viper:
// defaults < YAML file (--config) < PRDESIGN_* environment < flags.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"prdesign/internal/design"
)

// EnvPrefix is the prefix for environment overrides, e.g. PRDESIGN_TMDIFF.
const EnvPrefix = "PRDESIGN"

// Output formats understood by the writers.
var Formats = []string{"text", "tsv", "json", "jsonl"}

// Config is the root settings struct. Keys match the long flag names.
type Config struct {
	// Input / output
	Input  []string `mapstructure:"input" yaml:"input,omitempty"`
	Output string   `mapstructure:"output" yaml:"output"`
	Format string   `mapstructure:"format" yaml:"format"`
	// NoHeader drops the TSV header line.
	NoHeader bool `mapstructure:"no-header" yaml:"no-header"`

	// Candidate search
	Extension int `mapstructure:"extension" yaml:"extension"`
	Short     int `mapstructure:"short" yaml:"short"` // primers are longer than this
	Long      int `mapstructure:"long" yaml:"long"`

	// Acceptance bounds
	MinTemp float64 `mapstructure:"mintemp" yaml:"mintemp"`
	MaxTemp float64 `mapstructure:"maxtemp" yaml:"maxtemp"`
	MinGC   float64 `mapstructure:"mingc" yaml:"mingc"`
	MaxGC   float64 `mapstructure:"maxgc" yaml:"maxgc"`

	// Pairing / selection
	TmDiff float64 `mapstructure:"tmdiff" yaml:"tmdiff"`
	Number int     `mapstructure:"number" yaml:"number"`

	// Runtime
	Threads         int  `mapstructure:"threads" yaml:"threads"`
	Verbose         bool `mapstructure:"verbose" yaml:"verbose"`
	Quiet           bool `mapstructure:"quiet" yaml:"quiet"`
	NoMatchExitCode int  `mapstructure:"no-match-exit-code" yaml:"no-match-exit-code"`
}

// Default returns the stock settings.
func Default() Config {
	return Config{
		Output:          "-",
		Format:          "text",
		Extension:       100,
		Short:           20,
		Long:            30,
		MinTemp:         55,
		MaxTemp:         62,
		MinGC:           40,
		MaxGC:           60,
		TmDiff:          0.5,
		Number:          5,
		Threads:         1,
		NoMatchExitCode: 1,
	}
}

// SetDefaults registers Default() on v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("output", d.Output)
	v.SetDefault("format", d.Format)
	v.SetDefault("no-header", d.NoHeader)
	v.SetDefault("extension", d.Extension)
	v.SetDefault("short", d.Short)
	v.SetDefault("long", d.Long)
	v.SetDefault("mintemp", d.MinTemp)
	v.SetDefault("maxtemp", d.MaxTemp)
	v.SetDefault("mingc", d.MinGC)
	v.SetDefault("maxgc", d.MaxGC)
	v.SetDefault("tmdiff", d.TmDiff)
	v.SetDefault("number", d.Number)
	v.SetDefault("threads", d.Threads)
	v.SetDefault("verbose", d.Verbose)
	v.SetDefault("quiet", d.Quiet)
	v.SetDefault("no-match-exit-code", d.NoMatchExitCode)
}

// NewViper returns a viper instance with defaults and env overrides wired.
// file, when non-empty, is read as the YAML config layer.
func NewViper(file string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}
	return v, nil
}

// Load unmarshals v into a Config and validates it.
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// Params converts the settings into the design core's parameters.
func (c Config) Params() design.Params {
	return design.Params{
		Window:      c.Extension,
		MinLen:      c.Short,
		MaxLen:      c.Long,
		MinTm:       c.MinTemp,
		MaxTm:       c.MaxTemp,
		MinGC:       c.MinGC,
		MaxGC:       c.MaxGC,
		TmTolerance: c.TmDiff,
		Count:       c.Number,
		Threads:     c.Threads,
	}
}

// WriteYAML dumps the effective settings.
func (c Config) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}
