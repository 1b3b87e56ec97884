package system

import (
	"testing"

	"github.com/lixenwraith/antigen/component"
	"github.com/lixenwraith/antigen/core"
	"github.com/lixenwraith/antigen/vmath"
)

// TestCullRemovesDead verifies only Dead entities are purged, from every store
func TestCullRemovesDead(t *testing.T) {
	w := newTestWorld(t, nil)
	sys := NewCullSystem(w)

	live := SpawnCancer(w, vmath.V(100, 100), 0, core.MarkerCD19, true)
	dead := SpawnTCell(w, vmath.V(200, 200), core.MarkerCD19, true)
	lc, _ := w.Components.Lifecycle.GetComponent(dead)
	lc.State = component.StateDead
	w.Components.Lifecycle.SetComponent(dead, lc)

	if got := CollectDead(w, nil); len(got) != 1 || got[0] != dead {
		t.Fatalf("Expected [%d], got %v", dead, got)
	}

	sys.Update()

	if w.Components.TCell.HasEntity(dead) || w.Components.Transform.HasEntity(dead) || w.Components.Lifecycle.HasEntity(dead) {
		t.Error("Expected dead T-cell removed from every store")
	}
	if !w.Components.Cancer.HasEntity(live) {
		t.Error("Expected live cancer cell kept")
	}
}
