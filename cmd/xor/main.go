// Command xor runs the canonical two-input XOR experiment: evolve a
// feed-forward network whose single output approximates XOR(a, b).
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/mhalverson/goneat/neat"
	"github.com/mhalverson/goneat/neat/evolve"
	"github.com/mhalverson/goneat/neat/network"
)

var xorRows = [][3]float64{
	{0, 0, 0},
	{0, 1, 1},
	{1, 0, 1},
	{1, 1, 0},
}

func scoreXOR(n *network.Network) float64 {
	fitness := 4.0
	for _, row := range xorRows {
		out := n.ForwardPass([]float64{row[0], row[1]})
		fitness -= absF(row[2] - out[0])
	}
	return fitness
}

func absF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func main() {
	optionsPath := "./data/xor.neat.yml"
	if len(os.Args) == 2 {
		optionsPath = os.Args[1]
	}

	opts, err := neat.LoadOptionsFromFile(optionsPath)
	if err != nil {
		fmt.Println("could not load options, falling back to defaults:", err)
		opts = neat.NewDefaultOptions()
		goal := 3.9
		opts.FitnessGoal = &goal
		opts.MaxGenerations = 1000
	}
	if err := neat.InitLogger(opts.LogLevel); err != nil {
		fmt.Println("failed to init logger:", err)
		return
	}
	if err := opts.Validate(); err != nil {
		fmt.Println("invalid options:", err)
		return
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	engine := evolve.NewEngine(2, 1, scoreXOR, rng, nil)
	engine.Report = func(generation uint32, stats evolve.GenerationStats) {
		if stats.BestFitness >= 3.9 {
			neat.InfoLog(fmt.Sprintf("solution found at generation %d", generation))
		}
	}

	ctx := neat.NewContext(context.Background(), opts)
	best, fitness, err := engine.Start(ctx)
	if err != nil {
		fmt.Println("evolution run failed:", err)
		return
	}
	if best == nil {
		fmt.Println("no feasible network evolved")
		return
	}

	fmt.Printf("best fitness: %.4f\n", fitness)
	for _, row := range xorRows {
		out := best.ForwardPass([]float64{row[0], row[1]})
		fmt.Printf("xor(%.0f, %.0f) = %.4f (target %.0f)\n", row[0], row[1], out[0], row[2])
	}

	outDir := "./out"
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Println("failed to create output directory for NPZ results:", err)
		return
	}
	npzPath := filepath.Join(outDir, "xor.npz")
	npzFile, err := os.Create(npzPath)
	if err != nil {
		fmt.Println("failed to create file for run results:", err)
		return
	}
	defer func() { _ = npzFile.Close() }()
	if err := engine.Result().WriteNPZ(npzFile); err != nil {
		fmt.Println("failed to save run results as NPZ file:", err)
		return
	}
	fmt.Printf("wrote run history to %s\n", npzPath)
}
