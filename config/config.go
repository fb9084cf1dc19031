// Package config holds the settings of the demo programs, read from YAML
// and overridden by command line flags.
package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	AlgorithmLocal        = "local"
	AlgorithmAvgLocal     = "avg"
	AlgorithmApproxLocal  = "approx-avg"
	AlgorithmGlobal       = "global"
	AlgorithmApproxGlobal = "approx-global"
	AlgorithmTriangles    = "triangles"
)

// Backends of the exact algorithms.
const (
	BackendCSR       = "csr"
	BackendGraphBLAS = "graphblas"
)

var AllAlgorithms = []string{
	AlgorithmLocal,
	AlgorithmAvgLocal,
	AlgorithmApproxLocal,
	AlgorithmGlobal,
	AlgorithmApproxGlobal,
	AlgorithmTriangles,
}

type Config struct {
	Input           string   `yaml:"input" validate:"required"`
	Format          string   `yaml:"format" validate:"oneof=mtx edgelist"`
	Algorithms      []string `yaml:"algorithms" validate:"min=1,dive,oneof=local avg approx-avg global approx-global triangles"`
	Backend         string   `yaml:"backend" validate:"oneof=csr graphblas"`
	Trials          int      `yaml:"trials" validate:"gt=0"`
	Seed            uint64   `yaml:"seed"`
	RemoveSelfEdges bool     `yaml:"removeSelfEdges"`
	LogLevel        string   `yaml:"logLevel" validate:"oneof=trace debug info warn warning error"`
	CPUProfile      string   `yaml:"cpuProfile"`
}

var validate = validator.New()

func Default() *Config {
	return &Config{
		Format:     "mtx",
		Algorithms: []string{AlgorithmAvgLocal, AlgorithmGlobal},
		Backend:    BackendCSR,
		Trials:     10000,
		Seed:       42,
		LogLevel:   "info",
	}
}

// Load reads a YAML file over the defaults. Fields missing from the file
// keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config")
	}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config %v", path)
	}
	return cfg, nil
}

func (cfg *Config) Validate() error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, e := range verrs {
				msgs = append(msgs, e.Namespace()+": failed '"+e.Tag()+"'")
			}
			return errors.Errorf("invalid config: %v", strings.Join(msgs, "; "))
		}
		return errors.Wrap(err, "invalid config")
	}
	return nil
}

func (cfg *Config) Runs(algorithm string) bool {
	for _, a := range cfg.Algorithms {
		if a == algorithm {
			return true
		}
	}
	return false
}
