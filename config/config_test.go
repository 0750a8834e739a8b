package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sic/coherence"
	"github.com/katalvlaran/sic/config"
	"github.com/katalvlaran/sic/contexts"
	"github.com/katalvlaran/sic/nested"
)

// TestDefaultMatchesController keeps the file defaults in step with nested.DefaultConfig.
func TestDefaultMatchesController(t *testing.T) {
	d := config.Default()
	require.NoError(t, d.Validate())
	require.Equal(t, 0.1, d.Coherence.Epsilon)
	require.Equal(t, 0.5, d.Coherence.Theta)
	require.Empty(t, cmp.Diff(nested.DefaultConfig(), d.NestedConfig()))
}

// TestLoadDefaultsOnly loads without a file: the result must equal Default.
func TestLoadDefaultsOnly(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(config.Default(), cfg))
}

// TestLoadFileAndEnv layers a YAML file and a SIC_ environment override over the defaults.
func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sic.yaml")
	body := `
coherence:
  epsilon: 0.2
  sweep_steps: 10
nested:
  queue_capacity: 8
  adaptive:
    tau: 500ms
logging:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	t.Setenv("SIC_COHERENCE_THETA", "0.75") // not in the file: env wins over the default

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 0.2, cfg.Coherence.Epsilon)
	require.Equal(t, 0.75, cfg.Coherence.Theta)
	require.Equal(t, 10, cfg.Coherence.SweepSteps)
	require.Equal(t, 8, cfg.Nested.QueueCapacity)
	require.Equal(t, 500*time.Millisecond, cfg.Nested.Adaptive.Tau)
	require.Equal(t, 100, cfg.Nested.MaxIterations, "unset keys keep defaults")
	require.Equal(t, "json", cfg.Logging.Format)
}

// TestLoadRejectsInvalid surfaces both the config and the controller sentinel for a bad file.
func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("nested:\n  queue_capacity: 0\n"), 0o600))
	_, err := config.Load(path)
	require.ErrorIs(t, err, config.ErrInvalid)
	require.ErrorIs(t, err, nested.ErrBadConfig)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

// TestValidate rejects each out-of-range field independently.
func TestValidate(t *testing.T) {
	cases := map[string]func(*config.Config){
		"epsilon above one": func(c *config.Config) { c.Coherence.Epsilon = 1.5 },
		"negative theta":    func(c *config.Config) { c.Coherence.Theta = -0.1 },
		"no sweep steps":    func(c *config.Config) { c.Coherence.SweepSteps = 0 },
		"bad format":        func(c *config.Config) { c.Logging.Format = "xml" },
		"no iterations":     func(c *config.Config) { c.Nested.MaxIterations = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := config.Default()
			mutate(c)
			require.ErrorIs(t, c.Validate(), config.ErrInvalid)
		})
	}
}

// TestNewLogger builds a JSON logger and rejects an unknown level.
func TestNewLogger(t *testing.T) {
	l, err := config.NewLogger(config.LoggingConfig{Level: "warn", Format: "json"})
	require.NoError(t, err)
	require.NotNil(t, l)

	_, err = config.NewLogger(config.LoggingConfig{Level: "loud", Format: "console"})
	require.ErrorIs(t, err, config.ErrInvalid)
}

// TestLoadContexts decodes kinds and parameters, tolerates an empty document and rejects a missing kind.
func TestLoadContexts(t *testing.T) {
	doc := `
- kind: Thermal
  params: {temperature: 20, pressure: 1}
- kind: lab-bench
  params: {voltage: 5}
`
	cs, err := config.LoadContexts(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, cs, 2)
	require.Equal(t, contexts.KindThermal, cs[0].Kind)
	require.Equal(t, []string{"pressure", "temperature"}, cs[0].Keys())
	require.False(t, cs[1].Kind.IsBuiltin())

	cs, err = config.LoadContexts(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, cs)

	_, err = config.LoadContexts(strings.NewReader("- params: {x: 1}\n"))
	require.ErrorIs(t, err, config.ErrInvalid)

	_, err = config.LoadContexts(strings.NewReader("kind: [unterminated"))
	require.Error(t, err)
}

// TestReferenceContextsFormThreeClusters ties the shipped reference set to the default ε.
func TestReferenceContextsFormThreeClusters(t *testing.T) {
	m := coherence.FromContexts(config.ReferenceContexts())
	m.ApplyFriction(config.Default().Coherence.Epsilon)
	require.Equal(t, 3, m.NumClusters())
	require.Len(t, config.ReferenceReadings(), 8)
}
