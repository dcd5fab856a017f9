package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/webbmaffian/go-collections/internal/config"
)

var (
	flagOperations int
	flagSeed       int64
	flagBuckets    int
	flagThreshold  float64
	flagQuiet      bool
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:               "collbench",
	Short:             "Run seeded random workloads against the collections and verify them",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Put, get and remove random keys in a hash map",
	RunE:  runWith(benchMap),
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Insert, remove and splice random values in linked lists",
	RunE:  runWith(benchList),
}

var heapCmd = &cobra.Command{
	Use:   "heap",
	Short: "Add random values to a min-heap and drain it in order",
	RunE:  runWith(benchHeap),
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Run the map, list and heap workloads in sequence",
	RunE: runWith(func(ctx context.Context) error {
		for _, bench := range []func(context.Context) error{benchMap, benchList, benchHeap} {
			if err := bench(ctx); err != nil {
				return err
			}
		}
		return nil
	}),
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVarP(&flagOperations, "operations", "n", 0, "number of operations per workload (default from COLLBENCH_OPERATIONS)")
	flags.Int64Var(&flagSeed, "seed", 0, "random seed (default from COLLBENCH_SEED)")
	flags.BoolVarP(&flagQuiet, "quiet", "q", false, "disable live progress")

	mapCmd.Flags().IntVar(&flagBuckets, "buckets", 0, "initial bucket count (default from COLLBENCH_MAP_BUCKETS)")
	mapCmd.Flags().Float64Var(&flagThreshold, "threshold", 0, "load factor threshold (default from COLLBENCH_MAP_THRESHOLD)")

	rootCmd.AddCommand(mapCmd, listCmd, heapCmd, allCmd)
}

func setup(cmd *cobra.Command, _ []string) (err error) {
	if cfg, err = config.LoadFromEnv(); err != nil {
		return
	}

	if cfg.IsEnvProduction() {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// Flags take precedence over the environment
	if cmd.Flags().Changed("operations") {
		cfg.Operations = flagOperations
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = flagSeed
	}
	if cmd.Flags().Changed("buckets") {
		cfg.MapBuckets = flagBuckets
	}
	if cmd.Flags().Changed("threshold") {
		cfg.MapThreshold = flagThreshold
	}

	if err = cfg.Validate(); err != nil {
		return
	}

	log.Debug().Str("config", fmt.Sprintf("%+v", cfg)).Msg("")
	return
}

func runWith(bench func(context.Context) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		return bench(cmd.Context())
	}
}

func progressInterval() time.Duration {
	return time.Duration(cfg.ProgressInterval) * time.Millisecond
}

func main() {
	// Set up zerolog to use pretty printing
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out: os.Stderr,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("benchmark failed")
		stop()
		os.Exit(1)
	}
}
