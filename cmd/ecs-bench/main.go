// ecs-bench drives a synthetic world through a timed tick loop: every tick
// spawns a batch of fresh entities, then runs the accumulate system over all
// of them. It is an ordinary caller of the ecs package and owns all
// lifecycle decisions.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	ecs "github.com/dimitri-br/go-ecs"
)

// Position is the per-entity 2D coordinate payload.
type Position struct {
	X, Y float32
}

// Accumulator sums the truncated coordinates of its entity, once per tick.
type Accumulator struct {
	Value uint32
}

//go:generate go run github.com/dimitri-br/go-ecs/cmd/ecs-gen

// accumulate adds floor(x+y) to every matched entity's accumulator.
//
//ecs:system reads=Position writes=Accumulator
func accumulate(w *ecs.World) error {
	query := ecs.Factory.NewQuery(
		ecs.TypeKeyFor[Position](),
		ecs.TypeKeyFor[Accumulator](),
	)
	cursor := query.Cursor(w)
	for cursor.Next() {
		pos, _, err := ecs.GetComponent[Position](w, cursor.Entity())
		if err != nil {
			return err
		}
		acc, ok, err := ecs.GetComponentMut[Accumulator](w, cursor.Entity())
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		acc.Value += uint32(pos.X + pos.Y)
	}
	return cursor.Err()
}

// Options holds the benchmark flags.
type Options struct {
	Ticks    int
	Spawn    int
	LogEvery int
	Verbose  bool
	Profile  string // "" | "cpu" | "mem"
}

func newRootCommand() *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:   "ecs-bench",
		Short: "Benchmark the go-ecs tick loop",
		Long: `Benchmark the go-ecs tick loop.

Creates a world with Position and Accumulator columns, registers the
accumulate system, then runs the configured number of ticks, spawning fresh
entities before each one.

Example:
  ecs-bench --ticks 1000 --spawn 10
  ecs-bench --ticks 1000 --spawn 10 --profile cpu`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBenchmark(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Ticks, "ticks", 1000, "number of ticks to run")
	cmd.Flags().IntVar(&opts.Spawn, "spawn", 10, "entities created before each tick")
	cmd.Flags().IntVar(&opts.LogEvery, "log-every", 100, "log progress every N ticks (0 disables)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.Flags().StringVar(&opts.Profile, "profile", "", "write a profile (cpu|mem)")

	return cmd
}

func runBenchmark(opts *Options, cmd *cobra.Command) error {
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: logLevel}))

	switch opts.Profile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		return fmt.Errorf("invalid profile mode %q: must be cpu or mem", opts.Profile)
	}

	world := ecs.Factory.NewWorld()
	if err := ecs.InitStorage[Position](world); err != nil {
		return fmt.Errorf("failed to register position storage: %w", err)
	}
	if err := ecs.InitStorage[Accumulator](world); err != nil {
		return fmt.Errorf("failed to register accumulator storage: %w", err)
	}
	if err := world.AddSystem(AccumulateSystem{}); err != nil {
		return fmt.Errorf("failed to register system: %w", err)
	}

	logger.Info("starting benchmark", "ticks", opts.Ticks, "spawn", opts.Spawn)
	start := time.Now()

	for tick := 0; tick < opts.Ticks; tick++ {
		for i := 0; i < opts.Spawn; i++ {
			_, err := world.CreateEntityWithComponents(
				ecs.With(Position{X: 1, Y: 1}),
				ecs.With(Accumulator{}),
			)
			if err != nil {
				return fmt.Errorf("failed to create entity: %w", err)
			}
		}
		if err := world.Update(); err != nil {
			return fmt.Errorf("tick %d failed: %w", tick, err)
		}
		if opts.LogEvery > 0 && tick%opts.LogEvery == 0 {
			logger.Info("progress", "tick", tick, "entities", world.EntityCount())
		}
	}

	elapsed := time.Since(start)
	if err := ecs.RemoveSystem[AccumulateSystem](world); err != nil {
		return fmt.Errorf("failed to remove system: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%v\n", elapsed)
	fmt.Fprintf(cmd.OutOrStdout(), "entities: %d\n", world.EntityCount())
	return nil
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
