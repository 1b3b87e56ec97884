package engine

import (
	"github.com/lixenwraith/antigen/component"
)

// ComponentStore groups the typed stores of a World
type ComponentStore struct {
	// Shared by every agent
	Transform *Store[component.TransformComponent]
	Lifecycle *Store[component.LifecycleComponent]

	// Kind-specific
	Cancer  *Store[component.CancerComponent]
	TCell   *Store[component.TCellComponent]
	Upgrade *Store[component.UpgradeComponent]
}

// newComponentStore allocates every store
func newComponentStore() ComponentStore {
	return ComponentStore{
		Transform: NewStore[component.TransformComponent](),
		Lifecycle: NewStore[component.LifecycleComponent](),
		Cancer:    NewStore[component.CancerComponent](),
		TCell:     NewStore[component.TCellComponent](),
		Upgrade:   NewStore[component.UpgradeComponent](),
	}
}

// all returns every store for uniform lifecycle operations
func (c *ComponentStore) all() []AnyStore {
	return []AnyStore{c.Transform, c.Lifecycle, c.Cancer, c.TCell, c.Upgrade}
}
