package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/intel/forClusteringGo/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultNeedsInput(t *testing.T) {
	cfg := config.Default()
	assert.ErrorContains(t, cfg.Validate(), "Input")
	cfg.Input = "karate.mtx"
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
input: graphs/karate.txt
format: edgelist
algorithms: [local, approx-global]
trials: 500
backend: graphblas
`), 0o644))
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "graphs/karate.txt", cfg.Input)
	assert.Equal(t, "edgelist", cfg.Format)
	assert.Equal(t, 500, cfg.Trials)
	assert.Equal(t, config.BackendGraphBLAS, cfg.Backend)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.True(t, cfg.Runs(config.AlgorithmApproxGlobal))
	assert.False(t, cfg.Runs(config.AlgorithmGlobal))
}

func TestValidateRejects(t *testing.T) {
	for name, mutate := range map[string]func(*config.Config){
		"trials":    func(cfg *config.Config) { cfg.Trials = 0 },
		"format":    func(cfg *config.Config) { cfg.Format = "gml" },
		"algorithm": func(cfg *config.Config) { cfg.Algorithms = []string{"pagerank"} },
		"none":      func(cfg *config.Config) { cfg.Algorithms = nil },
		"log level": func(cfg *config.Config) { cfg.LogLevel = "loud" },
		"backend":   func(cfg *config.Config) { cfg.Backend = "gpu" },
	} {
		cfg := config.Default()
		cfg.Input = "g.mtx"
		mutate(cfg)
		assert.Error(t, cfg.Validate(), name)
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("trials: [1, 2"), 0o644))
	_, err = config.Load(path)
	assert.Error(t, err)
}
