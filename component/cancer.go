package component

import (
	"time"

	"github.com/lixenwraith/antigen/core"
)

// CancerComponent holds passive tumour cell state
type CancerComponent struct {
	Marker core.Marker

	JigglePhase float64

	// SinceDivision accumulates isolated time; resets when a neighbour is near
	SinceDivision time.Duration
	// Threshold is the randomized isolation time before a division attempt
	Threshold time.Duration
}
