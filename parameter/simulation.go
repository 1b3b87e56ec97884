package parameter

import (
	"math"
	"time"
)

// Lifecycle
const (
	CellSpawnDuration   = 2500 * time.Millisecond
	CellSpawnStartScale = 0.4

	// RotationDrift is the full width of the per-tick random heading perturbation (±half)
	RotationDrift = 0.1
	// RotationEase is the per-tick fraction rotation moves toward its drift heading
	RotationEase = 0.01
)

// Cancer cells
const (
	CancerSize          = 50.0
	CancerClusterRadius = 140.0
	CancerClusterNoise  = 10.0
	CancerDeathDuration = 500 * time.Millisecond

	CancerJigglePhaseStep = 0.05
	CancerJiggleAmount    = 5.0

	ProliferationRadius   = 60.0
	ProliferationTime     = 10 * time.Second
	ProliferationVariance = 0.4
	ProliferationChance   = 0.15
	ProliferationAttempts = 16
	// ProliferationMinGap is the fraction of size a spawn candidate must clear from every cell
	ProliferationMinGap = 0.75

	MaxCancerCells = 50
)

// T-cells
const (
	TCellSize           = 125.0
	TCellBaseSpeed      = 22.0
	TCellChaseSpeedMult = 2.0
	TCellLifetime       = 20 * time.Second
	TCellDeathDuration  = 250 * time.Millisecond
	TCellBurstDuration  = 250 * time.Millisecond
	TCellBurstScale     = 0.3

	UpgradeSpeedMult    = 3.0
	UpgradeLifetimeMult = 2.0

	DetectionRadius = 220.0
	BindingDuration = 500 * time.Millisecond
	// ContactFactor scales the summed sizes into the binding contact distance
	ContactFactor = 0.4

	// MaxReceptors caps drag-dropped receptors per T-cell
	MaxReceptors = 1
	// ReceptorOverride suppresses auto-targeting after a player drop
	ReceptorOverride = 500 * time.Millisecond

	WanderArriveDistance = 5.0
	WanderPauseMin       = 500 * time.Millisecond
	WanderPauseSpread    = 1200 * time.Millisecond
	// WanderMarginFactor scales T-cell size into the wander inset
	WanderMarginFactor = 2.0

	BindingHeadingDecay = 0.9
)

// Impulse physics
const (
	ImpulseInjectThreshold = 1.0
	ImpulseActiveSpeed     = 5.0
	ImpulseSharpness       = 4.0
	ImpulseDamping         = 1.2
	ImpulseDecay           = 0.9
)

// Gestures
const (
	SwipeMinDistance   = 20.0
	SwipeMinDuration   = 50 * time.Millisecond
	SwipeRadius        = 50.0
	SwipeImpulseFactor = 1.5
	SwipeCooldown      = 400 * time.Millisecond
	// DropRadiusFactor scales T-cell size into the drag-drop hit radius
	DropRadiusFactor = 0.6
)

// Chain reaction
const (
	ChainCount     = 3
	ChainDelayStep = 120 * time.Millisecond
)

// Upgrades
const (
	UpgradeSize            = 90.0
	UpgradeSingleSizeScale = 0.8
	UpgradeLifetime        = 15 * time.Second
	UpgradeSpawnDuration   = 400 * time.Millisecond
	UpgradeSpawnStartScale = 0.2
	UpgradeSpawnRise       = 5.0
	UpgradeDeathDuration   = 500 * time.Millisecond
	UpgradePulseRate       = 6.0
	UpgradePulseAmount     = 0.08
	UpgradeSpawnInterval   = 4 * time.Second
	UpgradeSpawnChance     = 0.4
	UpgradeMaxCount        = 10
	UpgradeSpawnMargin     = 150.0
)

// Spawning and clusters
const (
	TCellSpawnInterval   = 1 * time.Second
	SpawnBorderPadding   = 10.0
	SpawnBorderBand      = 30.0
	ClusterCountMin      = 2
	ClusterCountMax      = 3
	ClusterCountDebug    = 2
	ClusterJitterMin     = 0.7
	ClusterJitterMax     = 1.3
	ClusterCenterTries   = 30
	ClusterMinSeparation = 300.0
	ClusterSpacingX      = 0.95
	CellSizeJitterMin    = 0.8
	CellSizeJitterMax    = 1.2
)

// ClusterSpacingY is the hex lattice row spacing factor (√3/2)
var ClusterSpacingY = math.Sqrt(3) / 2

// Rounds
const (
	VictoryDuration = 5 * time.Second
)
