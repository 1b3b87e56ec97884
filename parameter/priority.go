package parameter

// System execution priorities (lower runs first)
// Order follows the frame pipeline: spawn, clear invalid, assign, agent updates, resolve, purge
const (
	PrioritySpawn       = 10
	PriorityGesture     = 15 // Gesture events are routed before update; Update is a no-op
	PriorityChain       = 18 // Delayed chain kills land before targeting sees the board
	PriorityTargeting   = 20 // ClearInvalidTargets + AssignTargets
	PriorityCancer      = 30
	PriorityTCell       = 40
	PriorityUpgrade     = 50
	PriorityBinding     = 60 // ResolveKills after every agent moved
	PriorityAudio       = 80
	PriorityCull        = 90 // Purge Dead entities
	PriorityRound       = 95 // Victory detection after purge
	PriorityDiagnostics = 1000
)
