package main

import (
	"math/rand/v2"
	"os"
	"runtime/pprof"
	"time"

	CC "github.com/intel/forClusteringGo"
	"github.com/intel/forClusteringGo/config"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	var configPath string
	cfg := config.Default()

	rootCmd := &cobra.Command{
		Use:          "cc [graph file]",
		Short:        "Compute clustering coefficients of an undirected graph.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				// flags given explicitly win over the file
				mergeFlags(cmd, loaded, cfg)
				cfg = loaded
			}
			if len(args) == 1 {
				cfg.Input = args[0]
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cfg)
		},
	}
	flags := rootCmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "YAML config file")
	flags.StringVarP(&cfg.Format, "format", "f", cfg.Format, "input format (mtx | edgelist)")
	flags.StringSliceVarP(&cfg.Algorithms, "algorithms", "a", cfg.Algorithms, "algorithms to run")
	flags.StringVarP(&cfg.Backend, "backend", "b", cfg.Backend, "backend of the exact algorithms (csr | graphblas)")
	flags.IntVarP(&cfg.Trials, "trials", "k", cfg.Trials, "number of trials for the approximations")
	flags.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for the approximations")
	flags.BoolVar(&cfg.RemoveSelfEdges, "remove-self-edges", cfg.RemoveSelfEdges, "drop self-loops while reading")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	flags.StringVar(&cfg.CPUProfile, "cpuprofile", cfg.CPUProfile, "optional output file for a cpu profile")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func mergeFlags(cmd *cobra.Command, dst, flagValues *config.Config) {
	changed := cmd.Flags().Changed
	if changed("format") {
		dst.Format = flagValues.Format
	}
	if changed("algorithms") {
		dst.Algorithms = flagValues.Algorithms
	}
	if changed("backend") {
		dst.Backend = flagValues.Backend
	}
	if changed("trials") {
		dst.Trials = flagValues.Trials
	}
	if changed("seed") {
		dst.Seed = flagValues.Seed
	}
	if changed("remove-self-edges") {
		dst.RemoveSelfEdges = flagValues.RemoveSelfEdges
	}
	if changed("log-level") {
		dst.LogLevel = flagValues.LogLevel
	}
	if changed("cpuprofile") {
		dst.CPUProfile = flagValues.CPUProfile
	}
}

func run(cfg *config.Config) error {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)

	G, err := CC.ReadProblem(cfg.Input, CC.FileFormat(cfg.Format), cfg.RemoveSelfEdges)
	if err != nil {
		return err
	}

	if cfg.CPUProfile != "" {
		f, err := os.Create(cfg.CPUProfile)
		if err != nil {
			return err
		}
		defer f.Close()
		if err = pprof.StartCPUProfile(f); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	rnd := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	timed := func(name string, f func() (any, error)) error {
		tic := time.Now()
		result, err := f()
		if err != nil {
			return err
		}
		log.WithFields(log.Fields{
			"algorithm": name,
			"duration":  time.Since(tic),
		}).Infof("%v", result)
		return nil
	}

	for _, algorithm := range cfg.Algorithms {
		var f func() (any, error)
		switch algorithm {
		case config.AlgorithmLocal:
			f = func() (any, error) {
				var coefficients []float64
				if cfg.Backend == config.BackendGraphBLAS {
					var err error
					if coefficients, err = CC.ExactLocalLinearAlgebra(G); err != nil {
						return nil, err
					}
				} else {
					coefficients = CC.ExactLocal(G)
				}
				for u, c := range coefficients {
					log.Debugf("node %v: %v", u, c)
				}
				return len(coefficients), nil
			}
		case config.AlgorithmAvgLocal:
			f = func() (any, error) { return CC.AvgLocal(G), nil }
		case config.AlgorithmApproxLocal:
			f = func() (any, error) { return CC.ApproxAvgLocal(G, cfg.Trials, rnd) }
		case config.AlgorithmGlobal:
			f = func() (any, error) {
				if cfg.Backend == config.BackendGraphBLAS {
					return CC.ExactGlobalLinearAlgebra(G)
				}
				return CC.ExactGlobal(G), nil
			}
		case config.AlgorithmApproxGlobal:
			f = func() (any, error) { return CC.ApproxGlobal(G, cfg.Trials, rnd) }
		case config.AlgorithmTriangles:
			f = func() (any, error) { return CC.TriangleCount(G) }
		}
		if err = timed(algorithm, f); err != nil {
			return err
		}
	}
	return nil
}
