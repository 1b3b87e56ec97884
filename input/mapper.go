package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/antigen/core"
	"github.com/lixenwraith/antigen/engine"
	"github.com/lixenwraith/antigen/event"
	"github.com/lixenwraith/antigen/render"
	"github.com/lixenwraith/antigen/vmath"
)

// pickRadiusFactor scales agent size when hit testing a press
// Terminal cells are coarse, so the full size is used as radius
const pickRadiusFactor = 1.0

// Target receives gesture events and supplies the snapshot used for hit testing
// *engine.Simulation satisfies it
type Target interface {
	Push(ev event.GameEvent)
	Snapshot() *engine.Snapshot
}

// dragState tracks one primary-button press until release
type dragState struct {
	active    bool
	cellX     int
	cellY     int
	start     vmath.Vec2
	startTime time.Time

	onUpgrade bool
	upgrade   engine.AgentSnapshot
}

// Mapper translates tcell input into simulation gestures and host intents
//
// Mouse:
//   - press on an upgrade and release in place: collect a global upgrade
//   - press on an upgrade and release elsewhere: drop a single upgrade there
//   - press and release in place over a T-cell: cycle its marker
//   - any other press and drag: swipe
//
// Keys: digits drop receptors at the pointer, see DefaultKeyTable for the rest
type Mapper struct {
	target   Target
	keys     *KeyTable
	viewport render.Viewport

	drag dragState

	pointerX   int
	pointerY   int
	hasPointer bool
}

// NewMapper creates a mapper pushing to target over the given viewport
func NewMapper(target Target, vp render.Viewport) *Mapper {
	return &Mapper{
		target:   target,
		keys:     DefaultKeyTable(),
		viewport: vp,
	}
}

// SetViewport replaces the screen-to-world mapping
func (m *Mapper) SetViewport(vp render.Viewport) {
	m.viewport = vp
}

// Viewport returns the current screen-to-world mapping
func (m *Mapper) Viewport() render.Viewport {
	return m.viewport
}

// Pointer returns the last known pointer cell
func (m *Mapper) Pointer() (int, int, bool) {
	return m.pointerX, m.pointerY, m.hasPointer
}

// HandleEvent processes one tcell event, pushing gestures and returning the host intent
func (m *Mapper) HandleEvent(ev tcell.Event) IntentType {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.handleKey(ev)
	case *tcell.EventMouse:
		m.handleMouse(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		m.viewport.ScreenWidth = w
		m.viewport.ScreenHeight = h
		return IntentResize
	}
	return IntentNone
}

func (m *Mapper) handleKey(ev *tcell.EventKey) IntentType {
	var (
		entry KeyEntry
		ok    bool
	)
	if ev.Key() == tcell.KeyRune {
		entry, ok = m.keys.Runes[ev.Rune()]
	} else {
		entry, ok = m.keys.SpecialKeys[ev.Key()]
	}
	if !ok {
		return IntentNone
	}

	switch entry.Behavior {
	case BehaviorSystem:
		return entry.IntentType
	case BehaviorEvent:
		m.target.Push(event.GameEvent{Type: entry.Event})
	case BehaviorReceptor:
		m.dropReceptor(entry.Marker)
	}
	return IntentNone
}

func (m *Mapper) dropReceptor(marker core.Marker) {
	if !m.hasPointer || !m.viewport.InArena(m.pointerX, m.pointerY) {
		return
	}
	m.target.Push(event.GameEvent{
		Type: event.EventDropReceptor,
		Payload: &event.DropReceptorPayload{
			Position: m.viewport.CellToWorld(m.pointerX, m.pointerY),
			Marker:   marker,
		},
	})
}

func (m *Mapper) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	m.pointerX, m.pointerY, m.hasPointer = x, y, true

	pressed := ev.Buttons()&tcell.Button1 != 0
	switch {
	case pressed && !m.drag.active:
		m.beginDrag(x, y, ev.When())
	case !pressed && m.drag.active:
		m.endDrag(x, y, ev.When())
	}
}

func (m *Mapper) beginDrag(x, y int, when time.Time) {
	if !m.viewport.InArena(x, y) {
		return
	}
	start := m.viewport.CellToWorld(x, y)
	m.drag = dragState{
		active:    true,
		cellX:     x,
		cellY:     y,
		start:     start,
		startTime: when,
	}
	if snap := m.target.Snapshot(); snap != nil {
		if up, ok := snap.FindAt(core.KindUpgrade, start, pickRadiusFactor); ok && !up.Collected {
			m.drag.onUpgrade = true
			m.drag.upgrade = up
		}
	}
}

func (m *Mapper) endDrag(x, y int, when time.Time) {
	d := m.drag
	m.drag = dragState{}

	end := m.viewport.CellToWorld(x, y)
	tap := x == d.cellX && y == d.cellY

	if d.onUpgrade {
		switch {
		case d.upgrade.Mode == core.ApplyGlobal && tap:
			m.target.Push(event.GameEvent{
				Type:    event.EventCollectUpgrade,
				Payload: &event.CollectUpgradePayload{Upgrade: d.upgrade.ID},
			})
		case d.upgrade.Mode == core.ApplySingle && !tap:
			m.target.Push(event.GameEvent{
				Type:    event.EventDropUpgrade,
				Payload: &event.DropUpgradePayload{Upgrade: d.upgrade.ID, Position: end},
			})
		}
		return
	}

	if tap {
		snap := m.target.Snapshot()
		if snap == nil {
			return
		}
		if tc, ok := snap.FindAt(core.KindTCell, d.start, pickRadiusFactor); ok {
			m.target.Push(event.GameEvent{
				Type:    event.EventCycleMarker,
				Payload: &event.CycleMarkerPayload{TCell: tc.ID},
			})
		}
		return
	}

	duration := when.Sub(d.startTime)
	if duration < 0 {
		duration = 0
	}
	m.target.Push(event.GameEvent{
		Type: event.EventSwipe,
		Payload: &event.SwipePayload{
			Start:      d.start,
			End:        end,
			DurationMS: duration.Milliseconds(),
		},
	})
}
