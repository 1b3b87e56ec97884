package system

import (
	"cmp"
	"log"
	"math"
	"slices"
	"time"

	"github.com/lixenwraith/antigen/core"
	"github.com/lixenwraith/antigen/engine"
	"github.com/lixenwraith/antigen/event"
	"github.com/lixenwraith/antigen/parameter"
	"github.com/lixenwraith/antigen/vmath"
)

// SpawnSystem places agents: periodic border T-cells, periodic upgrades, cancer clusters on round start
// It also owns the spawn marker selection and direct placement requests
type SpawnSystem struct {
	base

	tcellTimer   time.Duration
	upgradeTimer time.Duration
}

// NewSpawnSystem creates a new spawn system
func NewSpawnSystem(world *engine.World) engine.System {
	s := &SpawnSystem{base: newBase(world, "spawn")}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *SpawnSystem) Init() {
	s.enabled = true
	s.tcellTimer = 0
	s.upgradeTimer = 0
}

// Priority returns the system's priority
func (s *SpawnSystem) Priority() int {
	return parameter.PrioritySpawn
}

// EventTypes returns the event types SpawnSystem handles
func (s *SpawnSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSystemToggle,
		event.EventGameReset,
		event.EventRoundStart,
		event.EventSetSpawnMarker,
		event.EventCycleSpawnMarker,
		event.EventSpawnCancer,
		event.EventSpawnTCell,
	}
}

// HandleEvent processes spawn requests
func (s *SpawnSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()

	case event.EventSystemToggle:
		s.handleToggle(ev)

	case event.EventRoundStart:
		s.tcellTimer = 0
		s.upgradeTimer = 0
		n := SpawnClusters(s.world, s.res.Config.Engine.Debug)
		round := 0
		if p, ok := ev.Payload.(*event.RoundPayload); ok {
			round = p.Round
		}
		log.Printf("spawn: round %d started with %d cancer cells", round, n)

	case event.EventSetSpawnMarker:
		if p, ok := ev.Payload.(*event.SpawnMarkerPayload); ok && p.Marker < core.MarkerCount {
			s.res.Game.SpawnMarker = p.Marker
		}

	case event.EventCycleSpawnMarker:
		s.res.Game.SpawnMarker = s.res.Game.SpawnMarker.Next()

	case event.EventSpawnCancer:
		if p, ok := ev.Payload.(*event.SpawnCancerPayload); ok {
			if s.comp.Cancer.CountEntities() >= s.res.Config.Cancer.MaxCells {
				return
			}
			SpawnCancer(s.world, p.Position, p.Size, p.Marker, p.Active)
		}

	case event.EventSpawnTCell:
		if p, ok := ev.Payload.(*event.SpawnTCellPayload); ok {
			e := SpawnTCell(s.world, p.Position, p.Marker, p.Active)
			s.world.PushEvent(event.EventTCellSpawned, &event.EntitySpawnedPayload{Entity: e, Position: p.Position})
		}
	}
}

// Update runs the T-cell and upgrade spawn timers
func (s *SpawnSystem) Update() {
	if !s.running() {
		return
	}
	dt := s.res.Time.DeltaTime
	s.spawnTCells(dt)
	s.spawnUpgrades(dt)
}

// spawnTCells emits at most one T-cell per tick; the interval carries over
func (s *SpawnSystem) spawnTCells(dt time.Duration) {
	interval := s.res.Config.Spawn.TCellInterval
	s.tcellTimer += dt
	if s.tcellTimer < interval {
		return
	}
	s.tcellTimer -= interval

	pos := s.borderPoint()
	e := SpawnTCell(s.world, pos, s.res.Game.SpawnMarker, false)
	s.world.PushEvent(event.EventTCellSpawned, &event.EntitySpawnedPayload{Entity: e, Position: pos})
}

// spawnUpgrades rolls for a collectible each interval; the timer restarts from zero
func (s *SpawnSystem) spawnUpgrades(dt time.Duration) {
	cfg := s.res.Config.Upgrade
	s.upgradeTimer += dt
	if s.upgradeTimer < cfg.SpawnInterval {
		return
	}
	s.upgradeTimer = 0

	if !s.res.Rand.Chance(cfg.SpawnChance) {
		return
	}
	if s.comp.Upgrade.CountEntities() >= cfg.MaxCount {
		return
	}

	kind := core.UpgradeType(s.res.Rand.IntN(int(core.UpgradeTypeCount)))
	arena := s.res.Arena
	pos := vmath.V(
		s.res.Rand.Range(cfg.SpawnMargin, arena.Width-cfg.SpawnMargin),
		s.res.Rand.Range(cfg.SpawnMargin, arena.Height-cfg.SpawnMargin),
	)
	e := SpawnUpgrade(s.world, kind, pos)
	s.world.PushEvent(event.EventUpgradeSpawned, &event.UpgradeSpawnedPayload{Entity: e, Type: kind, Position: pos})
}

// borderPoint picks a point in the spawn band along a random arena side
func (s *SpawnSystem) borderPoint() vmath.Vec2 {
	cfg := s.res.Config.Spawn
	rng := s.res.Rand
	w, h := s.res.Arena.Width, s.res.Arena.Height
	pad, band := cfg.BorderPadding, cfg.BorderBand

	switch rng.IntN(4) {
	case 0: // top
		return vmath.V(rng.Range(pad, w-pad), rng.Range(pad, pad+band))
	case 1: // right
		return vmath.V(rng.Range(w-pad-band, w-pad), rng.Range(pad, h-pad))
	case 2: // bottom
		return vmath.V(rng.Range(pad, w-pad), rng.Range(h-pad-band, h-pad))
	default: // left
		return vmath.V(rng.Range(pad, pad+band), rng.Range(pad, h-pad))
	}
}

// ClusterLayout describes one generated cluster
type ClusterLayout struct {
	Center vmath.Vec2
	Radius float64
	Noise  float64
	Marker core.Marker
}

// PlanClusters chooses cluster count, markers, radii and centers for a new round
//
// The first two clusters get two distinct shuffled markers; further clusters draw uniformly.
// Centers are rejection-sampled against the minimum separation; the last sample is kept when the budget runs out
func PlanClusters(w *engine.World, debug bool) []ClusterLayout {
	res := w.Resources
	rng := res.Rand
	spawn := res.Config.Spawn
	cancer := res.Config.Cancer

	count := parameter.ClusterCountDebug
	if !debug {
		count = spawn.ClusterCountMin + rng.IntN(spawn.ClusterCountMax-spawn.ClusterCountMin+1)
	}

	armed := core.ArmedMarkers()
	shuffled := make([]core.Marker, len(armed))
	copy(shuffled, armed)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	layouts := make([]ClusterLayout, 0, count)
	centers := make([]vmath.Vec2, 0, count)
	for i := range count {
		marker := armed[rng.IntN(len(armed))]
		if i < 2 && i < len(shuffled) {
			marker = shuffled[i]
		}

		radius := cancer.ClusterRadius * rng.Range(parameter.ClusterJitterMin, parameter.ClusterJitterMax)
		noise := cancer.ClusterNoise * rng.Range(parameter.ClusterJitterMin, parameter.ClusterJitterMax)
		center := pickClusterCenter(w, centers, radius+noise+cancer.Size, spawn.ClusterSeparation)

		centers = append(centers, center)
		layouts = append(layouts, ClusterLayout{Center: center, Radius: radius, Noise: noise, Marker: marker})
	}
	return layouts
}

func pickClusterCenter(w *engine.World, placed []vmath.Vec2, margin, separation float64) vmath.Vec2 {
	rng := w.Resources.Rand
	arena := w.Resources.Arena

	var p vmath.Vec2
	for range parameter.ClusterCenterTries {
		p = vmath.V(
			margin+rng.Float64()*(arena.Width-2*margin),
			margin+rng.Float64()*(arena.Height-2*margin),
		)
		valid := true
		for _, q := range placed {
			if p.Dist(q) < separation {
				valid = false
				break
			}
		}
		if valid {
			break
		}
	}
	return p
}

// GenerateClusterPositions fills a disc of radius around center with a jittered hex lattice
// Rows are spaced size·√3/2 apart and odd rows shift by half a column
func GenerateClusterPositions(rng *engine.RandResource, center vmath.Vec2, size, radius, noise float64) []vmath.Vec2 {
	spacingX := size * parameter.ClusterSpacingX
	spacingY := size * parameter.ClusterSpacingY
	if spacingX <= 0 || spacingY <= 0 {
		return nil
	}

	var positions []vmath.Vec2
	for y := -radius; y <= radius; y += spacingY {
		row := int64(math.Floor(y/spacingY + 0.5))
		offsetX := float64(row%2) * (spacingX / 2)

		for x := -radius; x <= radius; x += spacingX {
			px := x + offsetX
			if px*px+y*y > radius*radius {
				continue
			}
			positions = append(positions, vmath.V(
				center.X+px+(rng.Float64()-0.5)*noise,
				center.Y+y+(rng.Float64()-0.5)*noise,
			))
		}
	}
	return positions
}

// SpawnClusters generates a round's clusters and returns the number of cells created
// Cells start in their spawn fade-in. When the lattices exceed the population cap,
// clusters take turns placing their innermost remaining cell so every cluster shrinks evenly
func SpawnClusters(w *engine.World, debug bool) int {
	res := w.Resources
	cfg := res.Config.Cancer

	layouts := PlanClusters(w, debug)
	lattices := make([][]vmath.Vec2, len(layouts))
	for i, layout := range layouts {
		pts := GenerateClusterPositions(res.Rand, layout.Center, cfg.Size, layout.Radius, layout.Noise)
		slices.SortStableFunc(pts, func(a, b vmath.Vec2) int {
			return cmp.Compare(a.DistSq(layout.Center), b.DistSq(layout.Center))
		})
		lattices[i] = pts
	}

	created := 0
	for depth := 0; ; depth++ {
		placed := false
		for i, pts := range lattices {
			if depth >= len(pts) {
				continue
			}
			if w.Components.Cancer.CountEntities() >= cfg.MaxCells {
				return created
			}
			size := cfg.Size * res.Rand.Range(parameter.CellSizeJitterMin, parameter.CellSizeJitterMax)
			SpawnCancer(w, pts[depth], size, layouts[i].Marker, false)
			created++
			placed = true
		}
		if !placed {
			return created
		}
	}
}
