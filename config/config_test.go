package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := NewConfig()
	require.Equal(t, 1, c.Runs())
	require.Equal(t, uint64(1), c.Seed())
	require.Equal(t, 5, c.UpperSlack())
	require.Equal(t, uint64(1), c.SwitchesPerEdge())
	require.Equal(t, 100, c.MinSnapshots())
	require.Zero(t, c.MaxSnapshots())
	require.Equal(t, []int{1, 2, 3, 5, 7, 10, 15, 20, 30}, c.Thinnings())
	require.InDelta(t, 1.0, c.IDProb()+c.HFProb()+c.ESProb(), 1e-12)
	require.Equal(t, "info", c.LogLevel())
}

func TestLoadFromFileAndSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	body := "experiment:\n  runs: 4\n  seed: 99\nanalysis:\n  thinnings: [1, 4]\nlogging:\n  level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	c := NewConfig()
	require.NoError(t, c.LoadFromFile(path))
	require.Equal(t, 4, c.Runs())
	require.Equal(t, uint64(99), c.Seed())
	require.Equal(t, []int{1, 4}, c.Thinnings())
	require.Equal(t, 100, c.MinSnapshots(), "keys absent from the file keep defaults")

	c.Set(KeyRuns, 2)
	require.Equal(t, 2, c.Runs())
}

func TestLoadFromFileMissing(t *testing.T) {
	require.Error(t, NewConfig().LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml")))
}

func TestCreateLoggerLevel(t *testing.T) {
	c := NewConfig()
	c.Set(KeyLogLevel, "warn")
	var buf bytes.Buffer
	log := c.createLogger(&buf)
	require.Equal(t, zerolog.WarnLevel, log.GetLevel())

	log.Info().Msg("hidden")
	require.Zero(t, buf.Len())
	log.Warn().Msg("shown")
	require.Contains(t, buf.String(), "shown")

	c.Set(KeyLogLevel, "loud")
	require.Equal(t, zerolog.InfoLevel, c.createLogger(&buf).GetLevel())
}

func TestBindFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("runs", 1, "")
	fs.IntSlice("thinnings", nil, "")
	fs.String("log-level", "info", "")

	c := NewConfig()
	require.NoError(t, c.BindFlags(fs, map[string]string{
		KeyRuns:      "runs",
		KeyThinnings: "thinnings",
		KeyLogLevel:  "log-level",
	}))
	require.NoError(t, fs.Parse([]string{"--runs=3", "--thinnings=2,4"}))

	require.Equal(t, 3, c.Runs())
	require.Equal(t, []int{2, 4}, c.Thinnings())
	require.Equal(t, "info", c.LogLevel(), "unchanged flags keep the default")

	require.Error(t, c.BindFlags(fs, map[string]string{KeySeed: "missing"}))
}
