// Package config holds the run configuration of the autocorrelation
// experiments, backed by viper, and builds the zerolog logger for a run.
//
// Keys are dotted; every key has a default so a Config is usable without a
// file. Values from LoadFromFile override the defaults; flags bound with
// BindFlags and values passed to Set override both.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Keys shared by the CLI flag bindings and the config file.
const (
	KeyRuns            = "experiment.runs"
	KeySeed            = "experiment.seed"
	KeyPrefix          = "experiment.prefix"
	KeyAlgoLabel       = "experiment.algo_label"
	KeyGraphLabel      = "experiment.graph_label"
	KeyEdgeProb        = "graph.edge_probability"
	KeyAvgDegree       = "graph.avg_degree"
	KeyDegreeExp       = "graph.degree_exponent"
	KeySlack           = "graph.upper_slack"
	KeyIDProb          = "chain.insert_delete_probability"
	KeyHFProb          = "chain.hinge_flip_probability"
	KeyESProb          = "chain.edge_switch_probability"
	KeySwitchesPerEdge = "chain.switches_per_edge"
	KeyMinSnapshots    = "analysis.min_snapshots"
	KeyMaxSnapshots    = "analysis.max_snapshots"
	KeyThinnings       = "analysis.thinnings"
	KeyLogLevel        = "logging.level"
	KeyProgress        = "logging.enable_progress"
)

// Config manages experiment configuration using viper.
type Config struct {
	v *viper.Viper
}

// NewConfig creates a configuration holding the defaults.
func NewConfig() *Config {
	v := viper.New()

	v.SetDefault(KeyRuns, 1)
	v.SetDefault(KeySeed, 1)
	v.SetDefault(KeyPrefix, "autocorrelation")
	v.SetDefault(KeyAlgoLabel, "")
	v.SetDefault(KeyGraphLabel, "")

	v.SetDefault(KeyEdgeProb, 0.01)
	v.SetDefault(KeyAvgDegree, 10.0)
	v.SetDefault(KeyDegreeExp, 3.0)
	v.SetDefault(KeySlack, 5)

	v.SetDefault(KeyIDProb, 1.0/3)
	v.SetDefault(KeyHFProb, 1.0/3)
	v.SetDefault(KeyESProb, 1.0/3)
	v.SetDefault(KeySwitchesPerEdge, 1)

	v.SetDefault(KeyMinSnapshots, 100)
	v.SetDefault(KeyMaxSnapshots, 0)
	v.SetDefault(KeyThinnings, []int{1, 2, 3, 5, 7, 10, 15, 20, 30})

	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyProgress, false)

	v.SetEnvPrefix("GRAPHMIX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{v: v}
}

// LoadFromFile loads configuration from file; the format follows the extension.
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	return c.v.ReadInConfig()
}

func (c *Config) Runs() int            { return c.v.GetInt(KeyRuns) }
func (c *Config) Seed() uint64         { return c.v.GetUint64(KeySeed) }
func (c *Config) Prefix() string       { return c.v.GetString(KeyPrefix) }
func (c *Config) AlgoLabel() string    { return c.v.GetString(KeyAlgoLabel) }
func (c *Config) GraphLabel() string   { return c.v.GetString(KeyGraphLabel) }
func (c *Config) EdgeProb() float64    { return c.v.GetFloat64(KeyEdgeProb) }
func (c *Config) AvgDegree() float64   { return c.v.GetFloat64(KeyAvgDegree) }
func (c *Config) DegreeExp() float64   { return c.v.GetFloat64(KeyDegreeExp) }
func (c *Config) UpperSlack() int      { return c.v.GetInt(KeySlack) }
func (c *Config) IDProb() float64      { return c.v.GetFloat64(KeyIDProb) }
func (c *Config) HFProb() float64      { return c.v.GetFloat64(KeyHFProb) }
func (c *Config) ESProb() float64      { return c.v.GetFloat64(KeyESProb) }
func (c *Config) MinSnapshots() int    { return c.v.GetInt(KeyMinSnapshots) }
func (c *Config) Thinnings() []int     { return c.v.GetIntSlice(KeyThinnings) }
func (c *Config) LogLevel() string     { return c.v.GetString(KeyLogLevel) }
func (c *Config) EnableProgress() bool { return c.v.GetBool(KeyProgress) }

// SwitchesPerEdge returns the attempts per initial edge and round.
func (c *Config) SwitchesPerEdge() uint64 { return c.v.GetUint64(KeySwitchesPerEdge) }

// MaxSnapshots returns the per-thinning snapshot cap; 0 means unbounded.
func (c *Config) MaxSnapshots() int { return c.v.GetInt(KeyMaxSnapshots) }

// BindFlags binds config keys to flags of fs by name. A flag set on the
// command line overrides file and default values.
func (c *Config) BindFlags(fs *pflag.FlagSet, keyToFlag map[string]string) error {
	for key, name := range keyToFlag {
		f := fs.Lookup(name)
		if f == nil {
			return fmt.Errorf("config: no flag %q for key %q", name, key)
		}
		if err := c.v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("config: bind %q: %w", key, err)
		}
	}

	return nil
}

// Set allows dynamic configuration changes.
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// CreateLogger creates a console zerolog logger on stderr at the configured
// level; an unknown level falls back to info.
func (c *Config) CreateLogger() zerolog.Logger {
	return c.createLogger(os.Stderr)
}

func (c *Config) createLogger(out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Str("service", "autocorr").Logger()
}
