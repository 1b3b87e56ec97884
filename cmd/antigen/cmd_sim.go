package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/antigen/config"
	"github.com/lixenwraith/antigen/engine"
	"github.com/lixenwraith/antigen/parameter"
	"github.com/lixenwraith/antigen/status"
	"github.com/lixenwraith/antigen/system"
)

func newSimCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sim",
		Short: "Run the simulation headless and print telemetry",
		Long: `Run the simulation without a terminal UI using a fixed frame step.

Nothing steers the T-cells, so the run shows the unattended balance
between proliferation and T-cell spawning. With a fixed --seed the
result is reproducible.

Examples:
  antigen sim --duration 2m --seed 42
  antigen sim --duration 30s --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			duration, _ := cmd.Flags().GetDuration("duration")
			step, _ := cmd.Flags().GetDuration("step")
			jsonOut, _ := cmd.Flags().GetBool("json")

			if step <= 0 {
				return fmt.Errorf("--step must be positive, got %s", step)
			}
			if duration < 0 {
				return fmt.Errorf("--duration must not be negative, got %s", duration)
			}

			if logFile := setupLogging(cfg.Engine.Debug); logFile != nil {
				defer logFile.Close()
			}

			result := runHeadless(cfg, duration, step)
			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			return printSimResult(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().Duration("duration", time.Minute, "Simulated time to run")
	cmd.Flags().Duration("step", parameter.FrameUpdateInterval, "Fixed frame step")
	cmd.Flags().Bool("json", false, "Output as JSON")

	return cmd
}

// simResult summarizes a headless run
type simResult struct {
	Frames   int64           `json:"frames"`
	SimTime  float64         `json:"sim_time"`
	Phase    string          `json:"phase"`
	Round    int             `json:"round"`
	Cancers  int             `json:"cancers"`
	TCells   int             `json:"tcells"`
	Upgrades int             `json:"upgrades"`
	Metrics  []status.Metric `json:"metrics"`
}

// runHeadless resets a fresh simulation and steps it in fixed increments until duration elapses
func runHeadless(cfg *config.Config, duration, step time.Duration) simResult {
	sim := system.NewSimulation(cfg)
	sim.Reset()

	snap := sim.Step(0)
	for elapsed := time.Duration(0); elapsed < duration; elapsed += step {
		snap = sim.Step(step)
	}

	var reg *status.Registry
	sim.Inspect(func(w *engine.World) {
		reg = w.Resources.Status
	})

	return simResult{
		Frames:   snap.Frame,
		SimTime:  snap.SimTime,
		Phase:    snap.Phase,
		Round:    snap.Round,
		Cancers:  len(snap.Cancers),
		TCells:   len(snap.TCells),
		Upgrades: len(snap.Upgrades),
		Metrics:  reg.Report(),
	}
}

func printSimResult(out io.Writer, r simResult) error {
	fmt.Fprintf(out, "Frames: %d  SimTime: %.2fs  Round: %d  Phase: %s\n", r.Frames, r.SimTime, r.Round, r.Phase)
	fmt.Fprintf(out, "Cancer cells: %d  T-cells: %d  Upgrades: %d\n\n", r.Cancers, r.TCells, r.Upgrades)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, m := range r.Metrics {
		fmt.Fprintf(tw, "  %s\t%s\n", m.Key, m.Value)
	}
	return tw.Flush()
}
