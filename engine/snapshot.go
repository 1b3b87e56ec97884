package engine

import (
	"math"

	"github.com/lixenwraith/antigen/core"
	"github.com/lixenwraith/antigen/parameter"
	"github.com/lixenwraith/antigen/vmath"
)

// AgentSnapshot is the render-facing view of one agent
type AgentSnapshot struct {
	ID       core.Entity `json:"id"`
	Kind     core.Kind   `json:"kind"`
	Pos      vmath.Vec2  `json:"pos"`
	Size     float64     `json:"size"`
	Rotation float64     `json:"rotation"`
	Scale    float64     `json:"scale"`
	Opacity  float64     `json:"opacity"`
	State    string      `json:"state"`

	// Cancer and T-cell
	Marker core.Marker `json:"marker"`

	// T-cell only
	Behavior      string      `json:"behavior,omitempty"`
	Target        core.Entity `json:"target,omitempty"`
	Binding       bool        `json:"binding,omitempty"`
	Speed         bool        `json:"speed,omitempty"`
	ChainReaction bool        `json:"chain_reaction,omitempty"`

	// Upgrade only
	Upgrade   string         `json:"upgrade,omitempty"`
	Mode      core.ApplyMode `json:"mode,omitempty"`
	Collected bool           `json:"collected,omitempty"`

	// Pulse is the breathing scale multiplier, zero outside Active
	Pulse float64 `json:"pulse,omitempty"`
}

// Snapshot is an immutable view of the world after a Step
// Published through an atomic pointer; readers must not mutate it
type Snapshot struct {
	Frame   int64   `json:"frame"`
	SimTime float64 `json:"sim_time"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`

	Phase            string      `json:"phase"`
	Round            int         `json:"round"`
	VictoryRemaining float64     `json:"victory_remaining,omitempty"`
	SpawnMarker      core.Marker `json:"spawn_marker"`

	Cancers  []AgentSnapshot `json:"cancers"`
	TCells   []AgentSnapshot `json:"tcells"`
	Upgrades []AgentSnapshot `json:"upgrades"`
}

// FindAt returns the topmost agent of kind whose radius contains p
// Later entries draw above earlier ones, so the scan runs back to front
func (s *Snapshot) FindAt(kind core.Kind, p vmath.Vec2, radiusFactor float64) (AgentSnapshot, bool) {
	var list []AgentSnapshot
	switch kind {
	case core.KindCancer:
		list = s.Cancers
	case core.KindTCell:
		list = s.TCells
	case core.KindUpgrade:
		list = s.Upgrades
	}
	for i := len(list) - 1; i >= 0; i-- {
		a := list[i]
		if a.Pos.Dist(p) < a.Size*radiusFactor {
			return a, true
		}
	}
	return AgentSnapshot{}, false
}

// BuildSnapshot captures the current world state
func BuildSnapshot(w *World) *Snapshot {
	res := w.Resources
	snap := &Snapshot{
		Frame:            res.Time.FrameNumber,
		SimTime:          res.Time.SimTime.Seconds(),
		Width:            res.Arena.Width,
		Height:           res.Arena.Height,
		Phase:            res.Game.Phase.String(),
		Round:            res.Game.Round,
		VictoryRemaining: res.Game.VictoryRemaining.Seconds(),
		SpawnMarker:      res.Game.SpawnMarker,
		Cancers:          make([]AgentSnapshot, 0, w.Components.Cancer.CountEntities()),
		TCells:           make([]AgentSnapshot, 0, w.Components.TCell.CountEntities()),
		Upgrades:         make([]AgentSnapshot, 0, w.Components.Upgrade.CountEntities()),
	}

	for _, e := range w.Components.Cancer.GetAllEntities() {
		a, ok := baseSnapshot(w, e, core.KindCancer)
		if !ok {
			continue
		}
		cancer, _ := w.Components.Cancer.GetComponent(e)
		a.Marker = cancer.Marker
		snap.Cancers = append(snap.Cancers, a)
	}

	for _, e := range w.Components.TCell.GetAllEntities() {
		a, ok := baseSnapshot(w, e, core.KindTCell)
		if !ok {
			continue
		}
		tc, _ := w.Components.TCell.GetComponent(e)
		a.Marker = tc.Marker
		a.Behavior = tc.Behavior.String()
		a.Target = tc.Target
		a.Binding = tc.BindingTarget != core.NoEntity
		a.Speed = tc.Upgrades.Speed
		a.ChainReaction = tc.Upgrades.ChainReaction
		snap.TCells = append(snap.TCells, a)
	}

	for _, e := range w.Components.Upgrade.GetAllEntities() {
		a, ok := baseSnapshot(w, e, core.KindUpgrade)
		if !ok {
			continue
		}
		up, _ := w.Components.Upgrade.GetComponent(e)
		a.Upgrade = up.Type.String()
		a.Mode = up.Mode
		a.Collected = up.Collected
		if a.State == "active" {
			a.Pulse = 1 + math.Sin(up.Pulse*parameter.UpgradePulseRate)*parameter.UpgradePulseAmount
		}
		snap.Upgrades = append(snap.Upgrades, a)
	}

	return snap
}

func baseSnapshot(w *World, e core.Entity, kind core.Kind) (AgentSnapshot, bool) {
	tr, ok := w.Components.Transform.GetComponent(e)
	if !ok {
		return AgentSnapshot{}, false
	}
	lc, _ := w.Components.Lifecycle.GetComponent(e)
	return AgentSnapshot{
		ID:       e,
		Kind:     kind,
		Pos:      tr.Pos,
		Size:     tr.Size,
		Rotation: tr.Rotation,
		Scale:    tr.Scale,
		Opacity:  tr.Opacity,
		State:    lc.State.String(),
	}, true
}
