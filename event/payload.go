package event

import (
	"time"

	"github.com/lixenwraith/antigen/core"
	"github.com/lixenwraith/antigen/vmath"
)

// SystemTogglePayload contains parameters for system activation control
type SystemTogglePayload struct {
	System string `json:"system"` // System registry name
	Active bool   `json:"active"`
}

// RoundPayload identifies a round
type RoundPayload struct {
	Round int `json:"round"`
}

// SwipePayload describes a completed drag gesture in world units
type SwipePayload struct {
	Start      vmath.Vec2 `json:"start"`
	End        vmath.Vec2 `json:"end"`
	DurationMS int64      `json:"duration_ms"`
}

// Duration returns the gesture duration
func (p *SwipePayload) Duration() time.Duration {
	return time.Duration(p.DurationMS) * time.Millisecond
}

// DropReceptorPayload carries a receptor token released at Position
type DropReceptorPayload struct {
	Position vmath.Vec2  `json:"position"`
	Marker   core.Marker `json:"marker"`
}

// DropUpgradePayload carries a single-mode upgrade released at Position
type DropUpgradePayload struct {
	Upgrade  core.Entity `json:"upgrade"`
	Position vmath.Vec2  `json:"position"`
}

// CollectUpgradePayload identifies a tapped upgrade
type CollectUpgradePayload struct {
	Upgrade core.Entity `json:"upgrade"`
}

// CycleMarkerPayload identifies the T-cell whose marker advances
type CycleMarkerPayload struct {
	TCell core.Entity `json:"tcell"`
}

// SpawnMarkerPayload selects the spawn marker
type SpawnMarkerPayload struct {
	Marker core.Marker `json:"marker"`
}

// SpawnCancerPayload places a cancer cell; zero Size uses the configured size
type SpawnCancerPayload struct {
	Position vmath.Vec2  `json:"position"`
	Marker   core.Marker `json:"marker"`
	Size     float64     `json:"size"`
	// Active skips the spawn fade-in
	Active bool `json:"active"`
}

// SpawnTCellPayload places a T-cell
type SpawnTCellPayload struct {
	Position vmath.Vec2  `json:"position"`
	Marker   core.Marker `json:"marker"`
	Active   bool        `json:"active"`
}

// BindingPayload pairs a T-cell with the cancer cell it engaged
type BindingPayload struct {
	TCell  core.Entity
	Cancer core.Entity
}

// CancerKilledPayload describes a kill
type CancerKilledPayload struct {
	Cancer   core.Entity
	TCell    core.Entity // NoEntity for cascade kills
	Marker   core.Marker
	Position vmath.Vec2
	Chained  bool
}

// ChainTriggerPayload starts a cascade from Origin
type ChainTriggerPayload struct {
	Origin   core.Entity
	TCell    core.Entity
	Marker   core.Marker
	Position vmath.Vec2
}

// ChainKillPayload is one scheduled cascade kill
type ChainKillPayload struct {
	Target core.Entity
	Origin core.Entity
	Rank   int
}

// CancerDividedPayload describes a proliferation
type CancerDividedPayload struct {
	Parent   core.Entity
	Child    core.Entity
	Position vmath.Vec2
}

// EntitySpawnedPayload identifies a spawned agent
type EntitySpawnedPayload struct {
	Entity   core.Entity
	Position vmath.Vec2
}

// UpgradeSpawnedPayload identifies a spawned collectible
type UpgradeSpawnedPayload struct {
	Entity   core.Entity
	Type     core.UpgradeType
	Position vmath.Vec2
}

// UpgradeAppliedPayload reports an applied upgrade
type UpgradeAppliedPayload struct {
	Upgrade core.Entity
	Type    core.UpgradeType
	Targets int
}

// SoundRequestPayload contains the cue to play
type SoundRequestPayload struct {
	SoundType core.SoundType
}
