package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/antigen/core"
	"github.com/lixenwraith/antigen/engine"
	"github.com/lixenwraith/antigen/event"
	"github.com/lixenwraith/antigen/render"
	"github.com/lixenwraith/antigen/vmath"
)

type fakeTarget struct {
	snap   *engine.Snapshot
	events []event.GameEvent
}

func (f *fakeTarget) Push(ev event.GameEvent)     { f.events = append(f.events, ev) }
func (f *fakeTarget) Snapshot() *engine.Snapshot { return f.snap }

var testViewport = render.Viewport{ScreenWidth: 80, ScreenHeight: 25, WorldWidth: 1280, WorldHeight: 800}

func newTestMapper() (*Mapper, *fakeTarget) {
	target := &fakeTarget{snap: &engine.Snapshot{
		Width:  1280,
		Height: 800,
		TCells: []engine.AgentSnapshot{
			{ID: 3, Kind: core.KindTCell, Pos: vmath.V(965, 610), Size: 125},
		},
		Upgrades: []engine.AgentSnapshot{
			{ID: 4, Kind: core.KindUpgrade, Pos: vmath.V(165, 610), Size: 40, Upgrade: "SPEED", Mode: core.ApplyGlobal},
			{ID: 5, Kind: core.KindUpgrade, Pos: vmath.V(645, 410), Size: 40, Upgrade: "CHAINREACTION", Mode: core.ApplySingle},
		},
	}}
	return NewMapper(target, testViewport), target
}

func press(m *Mapper, x, y int) {
	m.HandleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
}

func release(m *Mapper, x, y int) {
	m.HandleEvent(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
}

func key(m *Mapper, r rune) IntentType {
	return m.HandleEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
}

// TestDragEmitsSwipe verifies a press-drag-release over empty space becomes a swipe
func TestDragEmitsSwipe(t *testing.T) {
	m, target := newTestMapper()
	press(m, 20, 5)
	press(m, 30, 5) // motion with button held
	release(m, 40, 5)

	if len(target.events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(target.events))
	}
	ev := target.events[0]
	if ev.Type != event.EventSwipe {
		t.Fatalf("Expected swipe, got %v", ev.Type)
	}
	p := ev.Payload.(*event.SwipePayload)
	if p.Start != testViewport.CellToWorld(20, 5) {
		t.Errorf("Expected start %v, got %v", testViewport.CellToWorld(20, 5), p.Start)
	}
	if p.End != testViewport.CellToWorld(40, 5) {
		t.Errorf("Expected end %v, got %v", testViewport.CellToWorld(40, 5), p.End)
	}
	if p.DurationMS < 0 {
		t.Errorf("Expected non-negative duration, got %d", p.DurationMS)
	}
}

// TestTapCollectsGlobalUpgrade verifies a tap on a global upgrade collects it
func TestTapCollectsGlobalUpgrade(t *testing.T) {
	m, target := newTestMapper()
	press(m, 10, 18)
	release(m, 10, 18)

	if len(target.events) != 1 || target.events[0].Type != event.EventCollectUpgrade {
		t.Fatalf("Expected one collect event, got %+v", target.events)
	}
	if id := target.events[0].Payload.(*event.CollectUpgradePayload).Upgrade; id != 4 {
		t.Errorf("Expected upgrade 4, got %d", id)
	}
}

// TestDragDropsSingleUpgrade verifies dragging a single upgrade drops it at the release point
func TestDragDropsSingleUpgrade(t *testing.T) {
	m, target := newTestMapper()
	press(m, 40, 12)
	release(m, 60, 18)

	if len(target.events) != 1 || target.events[0].Type != event.EventDropUpgrade {
		t.Fatalf("Expected one drop event, got %+v", target.events)
	}
	p := target.events[0].Payload.(*event.DropUpgradePayload)
	if p.Upgrade != 5 {
		t.Errorf("Expected upgrade 5, got %d", p.Upgrade)
	}
	if p.Position != testViewport.CellToWorld(60, 18) {
		t.Errorf("Expected drop at %v, got %v", testViewport.CellToWorld(60, 18), p.Position)
	}
}

// TestUpgradeMisuseIgnored verifies a tapped single upgrade and a dragged global upgrade do nothing
func TestUpgradeMisuseIgnored(t *testing.T) {
	m, target := newTestMapper()
	press(m, 40, 12)
	release(m, 40, 12)
	press(m, 10, 18)
	release(m, 30, 18)

	if len(target.events) != 0 {
		t.Errorf("Expected no events, got %+v", target.events)
	}
}

// TestTapTCellCyclesMarker verifies a tap on a T-cell cycles its marker
func TestTapTCellCyclesMarker(t *testing.T) {
	m, target := newTestMapper()
	press(m, 60, 18)
	release(m, 60, 18)

	if len(target.events) != 1 || target.events[0].Type != event.EventCycleMarker {
		t.Fatalf("Expected one cycle event, got %+v", target.events)
	}
	if id := target.events[0].Payload.(*event.CycleMarkerPayload).TCell; id != 3 {
		t.Errorf("Expected T-cell 3, got %d", id)
	}

	press(m, 5, 3)
	release(m, 5, 3)
	if len(target.events) != 1 {
		t.Errorf("Expected tap on empty space to be ignored, got %d events", len(target.events))
	}
}

// TestPressOnStatusBarIgnored verifies presses outside the arena start no gesture
func TestPressOnStatusBarIgnored(t *testing.T) {
	m, target := newTestMapper()
	press(m, 20, 24)
	release(m, 40, 10)

	if len(target.events) != 0 {
		t.Errorf("Expected no events, got %+v", target.events)
	}
}

// TestReceptorKeys verifies digits drop receptors at the pointer only when it is known
func TestReceptorKeys(t *testing.T) {
	m, target := newTestMapper()

	key(m, '2')
	if len(target.events) != 0 {
		t.Fatalf("Expected no drop without a pointer, got %+v", target.events)
	}

	release(m, 60, 18) // pointer motion, no button
	key(m, '2')
	if len(target.events) != 1 || target.events[0].Type != event.EventDropReceptor {
		t.Fatalf("Expected one receptor drop, got %+v", target.events)
	}
	p := target.events[0].Payload.(*event.DropReceptorPayload)
	if p.Marker != core.MarkerCD30 {
		t.Errorf("Expected CD30, got %v", p.Marker)
	}
	if p.Position != testViewport.CellToWorld(60, 18) {
		t.Errorf("Expected drop at %v, got %v", testViewport.CellToWorld(60, 18), p.Position)
	}
}

// TestKeyIntents verifies system keys return intents and event keys push events
func TestKeyIntents(t *testing.T) {
	tests := []struct {
		r    rune
		want IntentType
	}{
		{'q', IntentQuit},
		{' ', IntentTogglePause},
		{'p', IntentTogglePause},
		{'s', IntentToggleMute},
		{'t', IntentToggleTargets},
		{'x', IntentNone},
	}
	m, target := newTestMapper()
	for _, tt := range tests {
		if got := key(m, tt.r); got != tt.want {
			t.Errorf("Key %q: expected %v, got %v", tt.r, tt.want, got)
		}
	}
	if len(target.events) != 0 {
		t.Errorf("Expected system keys to push nothing, got %+v", target.events)
	}

	if got := m.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)); got != IntentQuit {
		t.Errorf("Expected Esc to quit, got %v", got)
	}

	key(m, 'r')
	key(m, 'm')
	if len(target.events) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(target.events))
	}
	if target.events[0].Type != event.EventGameReset {
		t.Errorf("Expected reset, got %v", target.events[0].Type)
	}
	if target.events[1].Type != event.EventCycleSpawnMarker {
		t.Errorf("Expected spawn marker cycle, got %v", target.events[1].Type)
	}
}

// TestResizeUpdatesViewport verifies resize events reshape the mapping
func TestResizeUpdatesViewport(t *testing.T) {
	m, _ := newTestMapper()
	if got := m.HandleEvent(tcell.NewEventResize(120, 41)); got != IntentResize {
		t.Errorf("Expected resize intent, got %v", got)
	}
	vp := m.Viewport()
	if vp.ScreenWidth != 120 || vp.ScreenHeight != 41 {
		t.Errorf("Expected 120x41, got %dx%d", vp.ScreenWidth, vp.ScreenHeight)
	}
	if vp.WorldWidth != 1280 {
		t.Errorf("Expected world width kept, got %v", vp.WorldWidth)
	}
}
