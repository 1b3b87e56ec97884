package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/antigen/audio"
	"github.com/lixenwraith/antigen/config"
	"github.com/lixenwraith/antigen/core"
	"github.com/lixenwraith/antigen/engine"
	"github.com/lixenwraith/antigen/input"
	"github.com/lixenwraith/antigen/parameter"
	"github.com/lixenwraith/antigen/render"
	"github.com/lixenwraith/antigen/render/renderer"
	"github.com/lixenwraith/antigen/service"
	"github.com/lixenwraith/antigen/system"
)

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		Long: `Run the simulation in the terminal with mouse and keyboard control.

Mouse:
  drag                 swipe T-cells along the drag
  click upgrade        collect a global upgrade (marked *)
  drag upgrade         drop a single upgrade on a T-cell
  click T-cell         cycle its marker

Keys:
  1-4                  drop a receptor token (CD19, CD30, CD3, CD4) at the pointer
  m                    cycle the marker given to new T-cells
  space, p             pause
  s                    mute
  t                    show target lines
  r                    restart
  q, esc               quit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			muted, _ := cmd.Flags().GetBool("mute")
			stream, _ := cmd.Flags().GetBool("stream")

			if logFile := setupLogging(cfg.Engine.Debug); logFile != nil {
				defer logFile.Close()
			}

			return runPlay(cfg, serviceSet{audio: true, muted: muted, network: stream})
		},
	}

	cmd.Flags().Bool("mute", false, "Start with audio muted")
	cmd.Flags().Bool("stream", false, "Also stream snapshots over websocket on stream.addr")

	return cmd
}

func runPlay(cfg *config.Config, set serviceSet) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer screen.Fini()

	screen.EnableMouse()
	screen.HideCursor()
	screen.SetStyle(render.DefaultStyle())
	screen.Clear()

	// Engine goroutine panics restore the terminal before the stack trace prints
	core.SetCrashReset(screen.Fini)
	defer core.SetCrashReset(nil)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	sim := system.NewSimulation(cfg)
	hub, err := startServices(cfg, sim, set)
	if err != nil {
		return err
	}
	defer stopServices(hub)

	// nil when audio is disabled in config
	player := service.MustGet[*audio.AudioService](hub, "audio").Player()

	reg := sim.World.Resources.Status
	fpsStat := reg.Ints.Get("render.fps")

	orchestrator := render.NewRenderOrchestrator(screen)
	layers := renderer.Install(orchestrator, reg)

	width, height := screen.Size()
	mapper := input.NewMapper(sim, render.NewRenderContext(sim.Snapshot(), width, height).Viewport)

	sched := engine.NewClockScheduler(sim, engine.SystemClock{}, parameter.FrameUpdateInterval, nil)
	sim.Reset()
	sched.Start()
	defer sched.Stop()

	events := make(chan tcell.Event, 64)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	})

	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	frames := 0
	fpsWindow := time.Now()

	log.Printf("play started, arena %.0fx%.0f, screen %dx%d", cfg.Engine.ArenaWidth, cfg.Engine.ArenaHeight, width, height)

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch mapper.HandleEvent(ev) {
			case input.IntentQuit:
				log.Printf("play stopped after %d ticks", sched.Ticks())
				return nil
			case input.IntentResize:
				width, height = screen.Size()
				orchestrator.Resize(width, height)
			case input.IntentTogglePause:
				sched.TogglePause()
			case input.IntentToggleMute:
				if player != nil {
					player.ToggleMute()
				}
			case input.IntentToggleTargets:
				layers.TargetLines.Toggle()
			}

		case now := <-frameTicker.C:
			ctx := render.NewRenderContext(sim.Snapshot(), width, height)
			ctx.IsPaused = sched.Paused()
			if player != nil {
				ctx.IsMuted = player.IsMuted()
				ctx.Silent = player.IsSilent()
			} else {
				ctx.Silent = true
			}
			if x, y, ok := mapper.Pointer(); ok {
				ctx.PointerX, ctx.PointerY = x, y
			}
			orchestrator.RenderFrame(ctx)

			frames++
			if elapsed := now.Sub(fpsWindow); elapsed >= time.Second {
				fpsStat.Store(int64(float64(frames) / elapsed.Seconds()))
				frames = 0
				fpsWindow = now
			}
		}
	}
}
