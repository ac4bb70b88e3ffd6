package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "maybe-laws.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, 100, cfg.Laws.MinSuccessfulTests)
	assert.Equal(t, 4, cfg.Laws.Workers)
	assert.Empty(t, cfg.Laws.Suites)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Report.Format)
	assert.Equal(t, "maybe_laws", cfg.Metrics.Namespace)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
laws:
  min_successful_tests: 25
  seed: 42
  suites: [Functor, Monad]
logging:
  format: json
report:
  format: yaml
`)

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Laws.MinSuccessfulTests)
	assert.Equal(t, int64(42), cfg.Laws.Seed)
	assert.Equal(t, []string{"Functor", "Monad"}, cfg.Laws.Suites)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "yaml", cfg.Report.Format)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	assert.Error(t, err)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, "laws:\n  seed: 1\n")
	t.Setenv("MAYBE_LAWS_LAWS_SEED", "99")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(99), cfg.Laws.Seed)
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MAYBE_LAWS_REPORT_FORMAT", "json")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("format", "text", "")
	flags.Int("min-successful", 100, "")
	flags.StringSlice("suite", nil, "")
	require.NoError(t, flags.Parse([]string{"--format", "yaml", "--suite", "Alt", "--suite", "Plus"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Report.Format)
	assert.Equal(t, []string{"Alt", "Plus"}, cfg.Laws.Suites)
	assert.Equal(t, 100, cfg.Laws.MinSuccessfulTests)
}

func TestValidationFailure(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown report format", "report:\n  format: xml\n"},
		{"zero tests", "laws:\n  min_successful_tests: 0\n"},
		{"unknown log level", "logging:\n  level: verbose\n"},
		{"empty suite name", "laws:\n  suites: [\"\"]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body), nil)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
		})
	}
}
