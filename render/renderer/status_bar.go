package renderer

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/antigen/render"
	"github.com/lixenwraith/antigen/status"
)

// StatusBarRenderer draws the status bar at the bottom
type StatusBarRenderer struct {
	// Cached metric pointers (zero-lock reads)
	statKills      *atomic.Int64
	statChainKills *atomic.Int64
	statRoundsWon  *atomic.Int64
	statFPS        *atomic.Int64
}

// NewStatusBarRenderer creates a status bar renderer reading counters from reg
func NewStatusBarRenderer(reg *status.Registry) *StatusBarRenderer {
	return &StatusBarRenderer{
		statKills:      reg.Ints.Get("sim.kills"),
		statChainKills: reg.Ints.Get("sim.chain_kills"),
		statRoundsWon:  reg.Ints.Get("sim.rounds_won"),
		statFPS:        reg.Ints.Get("render.fps"),
	}
}

// Render implements SystemRenderer
func (r *StatusBarRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	y := ctx.ScreenHeight - render.StatusBarHeight
	if y < 0 {
		return
	}
	buf.FillRow(y, render.RgbStatusBg)
	snap := ctx.Snap

	// Left: round and phase
	x := 0
	x = buf.SetString(x, y, fmt.Sprintf(" ROUND %d ", snap.Round), render.RgbStatusBar, render.RgbStatusBg, tcell.AttrBold)

	phase := strings.ToUpper(snap.Phase)
	phaseFg := render.RgbStatusPhase
	if snap.Phase == "victory" {
		phaseFg = render.RgbVictory
		phase = fmt.Sprintf("VICTORY %.1fs", snap.VictoryRemaining)
	}
	x = buf.SetString(x, y, phase+" ", phaseFg, render.RgbStatusBg, tcell.AttrBold)

	// Counts
	counts := fmt.Sprintf("│ CANCER %d  TCELL %d  UPGRADE %d ", len(snap.Cancers), len(snap.TCells), len(snap.Upgrades))
	x = buf.SetString(x, y, counts, render.RgbStatusBar, render.RgbStatusBg, tcell.AttrNone)

	// Spawn marker, tinted when armed
	spawnFg := render.RgbStatusDim
	if c, ok := render.MarkerColor(snap.SpawnMarker); ok {
		spawnFg = c
	}
	x = buf.SetString(x, y, "│ SPAWN ", render.RgbStatusBar, render.RgbStatusBg, tcell.AttrNone)
	x = buf.SetString(x, y, snap.SpawnMarker.String()+" ", spawnFg, render.RgbStatusBg, tcell.AttrBold)

	// Right-aligned flags
	var flags []string
	if ctx.IsPaused {
		flags = append(flags, "PAUSED")
	}
	switch {
	case ctx.Silent:
		flags = append(flags, "NO AUDIO")
	case ctx.IsMuted:
		flags = append(flags, "MUTED")
	}
	if fps := r.statFPS.Load(); fps > 0 {
		flags = append(flags, fmt.Sprintf("%dfps", fps))
	}
	start := ctx.ScreenWidth
	if len(flags) > 0 {
		right := strings.Join(flags, " ") + " "
		start -= len([]rune(right))
		if start > x {
			fg := render.RgbStatusDim
			if ctx.IsPaused {
				fg = render.RgbPaused
			}
			buf.SetString(start, y, right, fg, render.RgbStatusBg, tcell.AttrNone)
		} else {
			start = ctx.ScreenWidth
		}
	}

	// Session counters fill the gap when it is wide enough
	kills := fmt.Sprintf("│ KILLS %d (%d chain)  WON %d ", r.statKills.Load(), r.statChainKills.Load(), r.statRoundsWon.Load())
	if x+len([]rune(kills)) < start {
		buf.SetString(x, y, kills, render.RgbStatusDim, render.RgbStatusBg, tcell.AttrNone)
	}
}
