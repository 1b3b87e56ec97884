package system

import (
	"github.com/lixenwraith/antigen/component"
	"github.com/lixenwraith/antigen/core"
	"github.com/lixenwraith/antigen/engine"
	"github.com/lixenwraith/antigen/parameter"
)

// CullSystem removes entities whose lifecycle reached Dead
// It runs after every agent system so the final fade frame is published before removal
type CullSystem struct {
	world *engine.World

	buf []core.Entity
}

// NewCullSystem creates a new cull system
func NewCullSystem(world *engine.World) engine.System {
	return &CullSystem{world: world}
}

// Init
func (s *CullSystem) Init() {}

// Name returns system's name
func (s *CullSystem) Name() string {
	return "cull"
}

// Priority returns the system's priority
func (s *CullSystem) Priority() int {
	return parameter.PriorityCull
}

// Update destroys Dead entities in one batch
func (s *CullSystem) Update() {
	s.buf = CollectDead(s.world, s.buf[:0])
	if len(s.buf) > 0 {
		s.world.DestroyBatch(s.buf)
	}
}

// CollectDead appends every entity whose lifecycle is Dead to dst
func CollectDead(w *engine.World, dst []core.Entity) []core.Entity {
	for _, e := range w.Components.Lifecycle.GetAllEntities() {
		if lc, ok := w.Components.Lifecycle.GetComponent(e); ok && lc.State == component.StateDead {
			dst = append(dst, e)
		}
	}
	return dst
}
