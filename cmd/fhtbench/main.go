// Command fhtbench measures every dispatch strategy across transform sizes
// and precisions and optionally exports the fastest choices as wisdom.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/bits"
	"math/rand"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	algofht "github.com/cwbudde/algo-fht"
	"github.com/cwbudde/algo-fht/internal/cpu"
	"github.com/cwbudde/algo-fht/internal/fht"
	"github.com/cwbudde/algo-fht/internal/fhtypes"
)

var strategies = []algofht.Strategy{
	algofht.StrategyCodelet,
	algofht.StrategyVector,
	algofht.StrategyScalar,
}

type benchResult struct {
	bits     int
	size     int
	strategy algofht.Strategy
	stage    string
	nsPerOp  float64
	cycles   float64
}

func main() {
	var (
		sizeList   = flag.String("sizes", "16,128,1024,4096,65536,1048576", "comma-separated sizes")
		iters      = flag.Int("iters", 50, "benchmark iterations")
		warmup     = flag.Int("warmup", 5, "warmup iterations")
		precision  = flag.String("precision", "all", "element type: float32, float64, all")
		emit       = flag.Bool("emit", false, "emit RecordBenchmarkDecision lines")
		wisdomFile = flag.String("wisdom", "", "export wisdom to file")
		seed       = flag.Int64("seed", 1, "rng seed")
	)
	flag.Parse()

	sizes := parseSizes(*sizeList)
	if len(sizes) == 0 {
		log.Fatal("no sizes specified")
	}

	widths, err := parsePrecision(*precision)
	if err != nil {
		log.Fatal(err)
	}

	rnd := rand.New(rand.NewSource(*seed))
	p := message.NewPrinter(language.English)
	caps := algofht.Capability()

	p.Printf("arch=%s stage=%s vector_bits=%d iters=%d warmup=%d\n",
		caps.Architecture, caps.Stage, caps.VectorBits, *iters, *warmup)
	if cpu.HasHardwareCounter() {
		p.Printf("counter=%.2f GHz\n", cpu.CounterFrequency()/1e9)
	} else {
		fmt.Println("no hardware cycle counter: cycles/op are nanoseconds")
	}
	p.Printf("%8s  %10s  %8s  %8s  %14s  %14s\n", "bits", "size", "kernel", "stage", "ns/op", "cycles/op")

	var best []benchResult

	for _, bits := range widths {
		for _, n := range sizes {
			var results []benchResult
			if bits == 32 {
				results = benchmarkSize[float32](rnd, n, *iters, *warmup)
			} else {
				results = benchmarkSize[float64](rnd, n, *iters, *warmup)
			}
			if len(results) == 0 {
				continue
			}

			sort.Slice(results, func(i, j int) bool {
				return results[i].nsPerOp < results[j].nsPerOp
			})

			for _, res := range results {
				p.Printf("%8d  %10d  %8s  %8s  %14.1f  %14.0f\n",
					bits, n, strategyName(res.strategy), res.stage, res.nsPerOp, res.cycles)
			}

			best = append(best, results[0])

			if *emit {
				fmt.Printf("algofht.RecordBenchmarkDecision[float%d](%d, algofht.%s)\n",
					bits, n, strategyConst(results[0].strategy))
			}
		}
	}

	if *wisdomFile != "" {
		if err := exportWisdom(*wisdomFile, best); err != nil {
			log.Fatalf("error exporting wisdom: %v", err)
		}

		fmt.Printf("\nWisdom exported to: %s\n", *wisdomFile)
	}
}

func benchmarkSize[T fhtypes.Float](rnd *rand.Rand, n, iters, warmup int) []benchResult {
	src := make([]T, n)
	for i := range src {
		src[i] = T(rnd.Float64()*2 - 1)
	}

	buf := make([]T, n)
	results := make([]benchResult, 0, len(strategies))

	logN := bits.TrailingZeros(uint(n))
	interval := resetInterval(fhtypes.WidthOf[T](), logN)

	for _, strategy := range strategies {
		plan, err := algofht.NewPlanWithOptions[T](n, algofht.PlanOptions{Strategy: strategy})
		if err != nil {
			continue
		}

		for i := range warmup {
			if i%interval == 0 {
				copy(buf, src)
			}
			plan.InPlace(buf)
		}

		runtime.GC()

		var (
			elapsed time.Duration
			cycles  int64
		)

		for done := 0; done < iters; {
			batch := min(interval, iters-done)
			copy(buf, src)

			startCycles := cpu.ReadCycleCounter()
			start := time.Now()

			for range batch {
				plan.InPlace(buf)
			}

			elapsed += time.Since(start)
			cycles += cpu.CyclesSince(startCycles)
			done += batch
		}

		results = append(results, benchResult{
			bits:     fhtypes.WidthOf[T](),
			size:     n,
			strategy: strategy,
			stage:    plan.Info().Stage,
			nsPerOp:  float64(elapsed.Nanoseconds()) / float64(iters),
			cycles:   float64(cycles) / float64(iters),
		})
	}

	return results
}

// resetInterval returns how many consecutive transforms a buffer with
// |x| <= 1 survives without overflow. Each transform grows the largest
// magnitude by at most N = 2^logN, so k transforms stay below 2^(k*logN).
func resetInterval(width, logN int) int {
	if logN == 0 {
		return math.MaxInt
	}

	maxExp := 120
	if width == 64 {
		maxExp = 1000
	}

	return max(1, maxExp/logN)
}

func parseSizes(list string) []int {
	parts := strings.Split(list, ",")

	out := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		var n int

		_, err := fmt.Sscanf(part, "%d", &n)
		if err != nil || n <= 0 || n&(n-1) != 0 {
			continue
		}

		out = append(out, n)
	}

	return out
}

func parsePrecision(name string) ([]int, error) {
	switch name {
	case "float32":
		return []int{32}, nil
	case "float64":
		return []int{64}, nil
	case "all":
		return []int{32, 64}, nil
	default:
		return nil, fmt.Errorf("unknown precision %q", name)
	}
}

func strategyName(strategy algofht.Strategy) string {
	return cases.Title(language.English).String(strategy.String())
}

func strategyConst(strategy algofht.Strategy) string {
	return "Strategy" + strategyName(strategy)
}

// exportWisdom writes the fastest strategy per configuration to a wisdom file.
func exportWisdom(filename string, results []benchResult) error {
	wisdom := algofht.NewWisdom()
	level := cpu.DetectFeatures().Level()

	for _, res := range results {
		logN, err := fht.LogNForLength(res.size)
		if err != nil {
			return err
		}

		wisdom.Store(fht.WisdomKey{Bits: res.bits, LogN: logN, Level: level}, res.strategy)
	}

	return algofht.ExportWisdomTo(filename, wisdom)
}
