// Package main provides the entry point for the heapdump-rotator CLI tool.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raoulx24/heapdump-rotator/internal/config"
	"github.com/raoulx24/heapdump-rotator/internal/logging"
	"github.com/raoulx24/heapdump-rotator/internal/rotator"
)

var version = "dev"

var (
	configPath string
	keepCount  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "heapdump-rotator [flags] [-- launch-args...]",
		Short: "Archive existing JVM heap dumps before the next launch overwrites them",
		Long: `heapdump-rotator scans launch arguments for -XX:HeapDumpPath=, renames any
dump file already present at that path with an epoch-seconds suffix, and
optionally prunes old renamed dumps beyond a retention count.

Run it once, right before starting the JVM:

  heapdump-rotator --keep 5 -- -Xmx4g -XX:HeapDumpPath=/dumps/heap.hprof`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run:           run,
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to YAML config file")
	rootCmd.Flags().IntVarP(&keepCount, "keep", "k", 0, "rotated dumps to keep, 0 means unlimited")

	rootCmd.AddCommand(versionCmd())

	// Rotation must never block startup of the wrapped process, so the
	// command itself cannot fail.
	_ = rootCmd.Execute()
}

func run(cmd *cobra.Command, args []string) {
	cfg := config.Default()

	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		} else {
			cfg = loaded
		}
	}

	logg := logging.StdLogger{Min: logging.ParseLevel(cfg.Logging.Level)}

	keep := cfg.HeapDump.Retention.KeepCount
	if cmd.Flags().Changed("keep") {
		keep = keepCount
	}

	launchArgs := args
	if len(launchArgs) == 0 {
		launchArgs = cfg.HeapDump.Args
	}

	rot := rotator.New(rotator.Config{
		KeepCount: keep,
		Args:      launchArgs,
	}, logg, nil)

	rot.Rotate(context.Background())
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "heapdump-rotator %s\n", version)
		},
	}
}
