package component

import (
	"time"

	"github.com/lixenwraith/antigen/core"
)

// UpgradeComponent is a collectible power-up
type UpgradeComponent struct {
	Type core.UpgradeType
	Mode core.ApplyMode

	Age      time.Duration
	Lifetime time.Duration

	// Pulse is the breathing animation phase in seconds
	Pulse float64

	Collected bool
}
