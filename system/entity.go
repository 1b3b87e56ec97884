package system

import (
	"math"
	"time"

	"github.com/lixenwraith/antigen/component"
	"github.com/lixenwraith/antigen/core"
	"github.com/lixenwraith/antigen/engine"
	"github.com/lixenwraith/antigen/parameter"
	"github.com/lixenwraith/antigen/vmath"
)

// SpawnCancer creates a cancer cell; active skips the spawn fade-in
func SpawnCancer(w *engine.World, pos vmath.Vec2, size float64, marker core.Marker, active bool) core.Entity {
	res := w.Resources
	cfg := res.Config.Cancer
	if size <= 0 {
		size = cfg.Size
	}

	e := w.CreateEntity()
	w.Components.Transform.SetComponent(e, newTransform(res.Rand, pos, size, active))
	w.Components.Lifecycle.SetComponent(e, newLifecycle(active, parameter.CellSpawnDuration, cfg.DeathDuration, parameter.CellSpawnStartScale))
	w.Components.Cancer.SetComponent(e, component.CancerComponent{
		Marker:      marker,
		JigglePhase: res.Rand.Float64() * 2 * math.Pi,
		Threshold:   res.Rand.Duration(cfg.ProliferationTime, cfg.ProliferationVariance),
	})
	return e
}

// SpawnTCell creates a T-cell with a random initial heading
func SpawnTCell(w *engine.World, pos vmath.Vec2, marker core.Marker, active bool) core.Entity {
	res := w.Resources
	cfg := res.Config.TCell

	e := w.CreateEntity()
	w.Components.Transform.SetComponent(e, newTransform(res.Rand, pos, cfg.Size, active))
	w.Components.Lifecycle.SetComponent(e, newLifecycle(active, parameter.CellSpawnDuration, cfg.DeathDuration, parameter.CellSpawnStartScale))

	tc := component.NewTCell(marker, cfg.Lifetime)
	tc.Heading = vmath.V(res.Rand.Range(-1, 1), res.Rand.Range(-1, 1))
	w.Components.TCell.SetComponent(e, tc)
	return e
}

// SpawnUpgrade creates a collectible; non-global upgrades are drawn smaller
func SpawnUpgrade(w *engine.World, kind core.UpgradeType, pos vmath.Vec2) core.Entity {
	res := w.Resources
	cfg := res.Config.Upgrade

	mode := core.ApplyModeFor(kind)
	size := cfg.Size
	if mode == core.ApplySingle {
		size *= parameter.UpgradeSingleSizeScale
	}

	e := w.CreateEntity()
	w.Components.Transform.SetComponent(e, component.TransformComponent{
		Pos:   pos,
		Size:  size,
		Scale: parameter.UpgradeSpawnStartScale,
	})
	lc := newLifecycle(false, parameter.UpgradeSpawnDuration, parameter.UpgradeDeathDuration, parameter.UpgradeSpawnStartScale)
	lc.Rise = parameter.UpgradeSpawnRise
	w.Components.Lifecycle.SetComponent(e, lc)
	w.Components.Upgrade.SetComponent(e, component.UpgradeComponent{
		Type:     kind,
		Mode:     mode,
		Lifetime: cfg.Lifetime,
	})
	return e
}

func newTransform(rng *engine.RandResource, pos vmath.Vec2, size float64, active bool) component.TransformComponent {
	rot := rng.Float64() * 2 * math.Pi
	tr := component.TransformComponent{
		Pos:            pos,
		Size:           size,
		Rotation:       rot,
		TargetRotation: rot,
		Scale:          parameter.CellSpawnStartScale,
	}
	if active {
		tr.Scale = 1
		tr.Opacity = 1
	}
	return tr
}

func newLifecycle(active bool, spawn, death time.Duration, startScale float64) component.LifecycleComponent {
	lc := component.LifecycleComponent{
		State:         component.StateSpawning,
		SpawnDuration: spawn,
		DeathDuration: death,
		StartScale:    startScale,
	}
	if active {
		lc.State = component.StateActive
	}
	return lc
}
