package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/antigen/config"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "antigen",
		Short: "T-cell versus cancer cell agent simulation",
		Long: `antigen runs an arena where T-cells hunt cancer cell clusters.

T-cells kill only cancer cells carrying the marker they are armed with.
Swipe to push T-cells, drop receptor tokens to arm them, and collect
upgrades to speed them up, extend their life, or trigger chain kills.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "antigen.yaml", "Path to YAML config file (missing file uses defaults)")
	rootCmd.PersistentFlags().Bool("debug", false, "Write debug log and fix the cluster count")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Simulation seed, 0 picks a time-based seed")

	rootCmd.AddCommand(
		newVersionCmd(),
		newPlayCmd(),
		newSimCmd(),
		newServeCmd(),
		newConfigCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "antigen version %s\n", version)
		},
	}
}

// loadConfig resolves the effective configuration
// Order: defaults -> file -> environment -> command line flags
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetUint64("seed")
		cfg.Engine.Seed = seed
	}
	if cmd.Flags().Changed("debug") {
		debug, _ := cmd.Flags().GetBool("debug")
		cfg.Engine.Debug = debug
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if cfg.Logging.Path != "" {
		logDir = filepath.Dir(cfg.Logging.Path)
		logFileName = filepath.Base(cfg.Logging.Path)
	}
	return cfg, nil
}
