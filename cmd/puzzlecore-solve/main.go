// Command puzzlecore-solve is a thin smoke-test harness: it reads a
// serialized Problem, solves it, and writes the resulting Solutions back
// out as YAML. It exists for manual verification of the library end to
// end, not as the puzzle editor (out of scope per spec.md's Non-goals).
package main

import (
	"flag"
	"fmt"
	"os"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/puzzlecore/assemble"
	"github.com/katalvlaran/puzzlecore/grid/square"
	"github.com/katalvlaran/puzzlecore/serialize"
	"github.com/katalvlaran/puzzlecore/telemetry"
)

func main() {
	problemPath := flag.String("problem", "", "Path to a serialized AssemblyProblem YAML file")
	maxSolutions := flag.Int("max-solutions", 0, "Cap on the number of solutions to return (0 = unbounded)")
	verbose := flag.Bool("v", false, "Log progress and phase events to stderr")
	flag.Parse()

	if *problemPath == "" {
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := run(*problemPath, *maxSolutions, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(problemPath string, maxSolutions int, verbose bool) error {
	data, err := os.ReadFile(problemPath)
	if err != nil {
		return pkgerrors.Wrap(err, "reading problem file")
	}

	g := square.New()

	problem, err := serialize.UnmarshalProblem(g, data)
	if err != nil {
		return pkgerrors.Wrap(err, "unmarshalling problem")
	}

	var callbacks telemetry.Callbacks
	if verbose {
		logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
		callbacks.Log = telemetry.NewZerologSink(logger)
		callbacks.Progress = func(percent float64, phase string) {
			fmt.Fprintf(os.Stderr, "%.0f%% %s\n", percent, phase)
		}
	}

	solutions, err := assemble.Solve(g, problem, assemble.Options{
		MaxSolutions: maxSolutions,
		Callbacks:    callbacks,
	})
	if err != nil {
		return pkgerrors.Wrap(err, "solving problem")
	}

	for _, sol := range solutions {
		out, err := serialize.MarshalSolution(g, sol)
		if err != nil {
			return pkgerrors.Wrap(err, "marshalling solution")
		}
		fmt.Println("---")
		os.Stdout.Write(out)
	}

	return nil
}
