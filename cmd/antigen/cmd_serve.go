package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/antigen/engine"
	"github.com/lixenwraith/antigen/network"
	"github.com/lixenwraith/antigen/parameter"
	"github.com/lixenwraith/antigen/service"
	"github.com/lixenwraith/antigen/system"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the simulation headless and stream snapshots over websocket",
		Long: `Run the simulation on a wall clock and stream snapshots to websocket clients.

Clients connect to ws://<addr>/ws and receive a hello message, then a
snapshot message every stream interval. Gesture commands sent back by a
client are applied on the next frame.

Examples:
  antigen serve
  antigen serve --addr 0.0.0.0:8420 --seed 7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Stream.Addr, _ = cmd.Flags().GetString("addr")
			}
			if cfg.Stream.Addr == "" {
				return fmt.Errorf("serve needs a stream address, set --addr or stream.addr")
			}

			// No terminal UI: without --debug the log goes to stderr
			if logFile := setupLogging(cfg.Engine.Debug); logFile != nil {
				defer logFile.Close()
			} else {
				log.SetOutput(os.Stderr)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			sim := system.NewSimulation(cfg)
			hub, err := startServices(cfg, sim, serviceSet{network: true})
			if err != nil {
				return err
			}
			defer stopServices(hub)

			stream := service.MustGet[*network.Service](hub, "network")
			fmt.Fprintf(cmd.OutOrStdout(), "streaming on ws://%s%s\n", stream.Addr(), network.FromStream(cfg.Stream).Path)

			return serveUntilDone(ctx, sim, stream)
		},
	}

	cmd.Flags().String("addr", "", "Listen address, overrides stream.addr")

	return cmd
}

// serveUntilDone drives the simulation on the wall clock until ctx is cancelled
func serveUntilDone(ctx context.Context, sim *engine.Simulation, stream *network.Service) error {
	sim.Reset()

	lastRound := 0
	sched := engine.NewClockScheduler(sim, engine.SystemClock{}, parameter.FrameUpdateInterval, func(snap *engine.Snapshot) {
		if snap.Round != lastRound {
			lastRound = snap.Round
			log.Printf("round %d started, %d cancer cells, %d peers", snap.Round, len(snap.Cancers), stream.PeerCount())
		}
	})
	sched.Start()
	defer sched.Stop()

	<-ctx.Done()

	accepted, rejected := stream.Stats()
	log.Printf("serve stopped after %d ticks, commands accepted %d rejected %d",
		sched.Ticks(), accepted, rejected)
	return nil
}
