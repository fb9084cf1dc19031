package main

import (
	"math"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	CC "github.com/intel/forClusteringGo"
	log "github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
)

func try(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

func main() {
	var cpuprofile, memprofile, format string
	var ntrials int
	var check bool
	flag.StringVar(&cpuprofile, "cpuprofile", "", "optional output file for a cpu profile")
	flag.StringVar(&memprofile, "memprofile", "", "optional output file for a mem profile")
	flag.StringVar(&format, "format", string(CC.MatrixMarketFormat), "input format (mtx | edgelist)")
	flag.IntVar(&ntrials, "trials", 3, "timed runs per presort")
	flag.BoolVar(&check, "check", false, "compare ExactGlobal with ExactGlobalLinearAlgebra")
	flag.Parse()
	if flag.NArg() < 1 {
		log.Fatal("Missing input file.")
	}

	G, err := CC.ReadProblem(flag.Arg(0), CC.FileFormat(format), true)
	try(err)

	log.Println("Warmup.")
	tic := time.Now()
	ntriangles, err := CC.TriangleCount(G)
	try(err)
	log.Printf("Warmup: Triangles %v time %v", ntriangles, time.Since(tic))

	var transitivity float64
	if check {
		tic = time.Now()
		transitivity = CC.ExactGlobal(G)
		log.WithField("duration", time.Since(tic)).Printf("ExactGlobal %v", transitivity)
	}

	if cpuprofile != "" {
		f, err := os.Create(cpuprofile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err = pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	for _, presort := range CC.AllDegreePresorts {
		for trial := 0; trial < ntrials; trial++ {
			used := presort
			tic = time.Now()
			closed, err := CC.ClosedPathCounts(G, &used)
			try(err)
			sum := 0
			for _, count := range closed {
				sum += count
			}
			log.WithFields(log.Fields{
				"presort":  presort,
				"used":     used,
				"trial":    trial,
				"duration": time.Since(tic),
			}).Printf("closed paths: %v", sum)
			if sum != 6*ntriangles {
				log.Errorf("presort %v disagrees with warmup: %v != %v", presort, sum, 6*ntriangles)
			}
		}
	}

	if check {
		tic = time.Now()
		t, err := CC.ExactGlobalLinearAlgebra(G)
		try(err)
		log.WithField("duration", time.Since(tic)).Printf("ExactGlobalLinearAlgebra %v", t)
		if t != transitivity && !(math.IsNaN(t) && math.IsNaN(transitivity)) {
			log.Errorf("ExactGlobalLinearAlgebra disagrees with ExactGlobal: %v != %v", t, transitivity)
		}
	}

	if memprofile != "" {
		f, err := os.Create(memprofile)
		if err != nil {
			log.Fatal("could not create memory profile: ", err)
		}
		defer f.Close()
		runtime.GC()
		if err = pprof.WriteHeapProfile(f); err != nil {
			log.Fatal("could not write memory profile: ", err)
		}
	}
}
