package render

import (
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/antigen/engine"
	"github.com/lixenwraith/antigen/vmath"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Expected screen init, got %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

// TestRenderBufferSetAndClear verifies writes, bounds and the touched flags
func TestRenderBufferSetAndClear(t *testing.T) {
	buf := NewRenderBuffer(4, 3)
	buf.Set(1, 2, Cell{Rune: 'x', Fg: RGBWhite, Bg: RGBBlack})
	buf.Set(9, 9, Cell{Rune: 'y'})

	if got := buf.Get(1, 2).Rune; got != 'x' {
		t.Errorf("Expected 'x', got %q", got)
	}
	if !buf.Touched(1, 2) {
		t.Error("Expected cell to be touched")
	}
	if buf.Touched(0, 0) {
		t.Error("Expected untouched cell")
	}

	buf.Clear()
	if buf.Get(1, 2).Rune != 0 || buf.Touched(1, 2) {
		t.Error("Expected Clear to reset the cell")
	}
	if buf.Get(1, 2).Bg != RgbBackground {
		t.Errorf("Expected background %v, got %v", RgbBackground, buf.Get(1, 2).Bg)
	}
}

// TestRenderBufferResize verifies reuse and reset on resize
func TestRenderBufferResize(t *testing.T) {
	buf := NewRenderBuffer(10, 10)
	buf.Set(5, 5, Cell{Rune: 'a'})
	buf.Resize(3, 2)

	w, h := buf.Size()
	if w != 3 || h != 2 {
		t.Errorf("Expected 3x2, got %dx%d", w, h)
	}
	if buf.Touched(2, 1) {
		t.Error("Expected resized buffer to be clear")
	}
	buf.Set(5, 5, Cell{Rune: 'a'})
	if buf.Get(5, 5).Rune != 0 {
		t.Error("Expected out of bounds write to be ignored")
	}
}

// TestBlendBg verifies alpha mixing of backgrounds
func TestBlendBg(t *testing.T) {
	buf := NewRenderBuffer(2, 1)
	buf.Set(0, 0, Cell{Bg: RGBBlack})
	buf.BlendBg(0, 0, RGB{200, 100, 50}, 0.5)

	got := buf.Get(0, 0).Bg
	if got != (RGB{100, 50, 25}) {
		t.Errorf("Expected {100 50 25}, got %v", got)
	}

	buf.BlendBg(1, 0, RGBWhite, 0)
	if buf.Touched(1, 0) {
		t.Error("Expected zero alpha to leave the cell untouched")
	}
}

// TestRGBLerp verifies endpoints and midpoint
func TestRGBLerp(t *testing.T) {
	a, b := RGB{0, 0, 0}, RGB{255, 255, 255}
	if a.Lerp(b, 0) != a {
		t.Error("Expected t=0 to return the source")
	}
	if a.Lerp(b, 1) != b {
		t.Error("Expected t=1 to return the target")
	}
	if got := a.Lerp(b, 0.5); got.R != 127 {
		t.Errorf("Expected 127, got %d", got.R)
	}
	if got := (RGB{200, 200, 200}).Scale(2); got != RGBWhite {
		t.Errorf("Expected saturation at white, got %v", got)
	}
}

// TestViewportRoundTrip verifies cell centers map back to their cell
func TestViewportRoundTrip(t *testing.T) {
	vp := Viewport{ScreenWidth: 80, ScreenHeight: 25, WorldWidth: 1280, WorldHeight: 800}

	sx, sy := vp.UnitsPerCell()
	if sx != 16 {
		t.Errorf("Expected 16 units per column, got %v", sx)
	}
	if math.Abs(sy-800.0/24.0) > 1e-9 {
		t.Errorf("Expected %v units per row, got %v", 800.0/24.0, sy)
	}

	for _, c := range [][2]int{{0, 0}, {10, 5}, {79, 23}} {
		x, y := vp.WorldToCell(vp.CellToWorld(c[0], c[1]))
		if x != c[0] || y != c[1] {
			t.Errorf("Expected (%d,%d), got (%d,%d)", c[0], c[1], x, y)
		}
	}

	if vp.InArena(0, 24) {
		t.Error("Expected the status row to be outside the arena")
	}
}

// TestViewportDegenerate verifies a zero-size screen does not divide by zero
func TestViewportDegenerate(t *testing.T) {
	vp := Viewport{ScreenWidth: 0, ScreenHeight: 1, WorldWidth: 100, WorldHeight: 100}
	sx, sy := vp.UnitsPerCell()
	if sx != 1 || sy != 1 {
		t.Errorf("Expected unit scale fallback, got %v,%v", sx, sy)
	}
}

// TestFillDisc verifies coverage, the single-cell fallback and arena clipping
func TestFillDisc(t *testing.T) {
	vp := Viewport{ScreenWidth: 80, ScreenHeight: 25, WorldWidth: 1280, WorldHeight: 800}
	buf := NewRenderBuffer(80, 25)

	n := FillDisc(buf, vp, vmath.Vec2{X: 640, Y: 400}, 100, RGBWhite, 1)
	if n < 20 {
		t.Errorf("Expected a disc of at least 20 cells, got %d", n)
	}
	x, y := vp.WorldToCell(vmath.Vec2{X: 640, Y: 400})
	if buf.Get(x, y).Bg != RGBWhite {
		t.Error("Expected the center cell to be filled")
	}

	buf.Clear()
	if n := FillDisc(buf, vp, vmath.Vec2{X: 100, Y: 100}, 1, RGBWhite, 1); n != 1 {
		t.Errorf("Expected a tiny disc to cover one cell, got %d", n)
	}

	buf.Clear()
	FillDisc(buf, vp, vmath.Vec2{X: 640, Y: 800}, 200, RGBWhite, 1)
	for x := 0; x < 80; x++ {
		if buf.Touched(x, 24) {
			t.Fatalf("Expected status row untouched, got write at column %d", x)
		}
	}
}

// TestCenterLabel verifies labels are centered on the cell
func TestCenterLabel(t *testing.T) {
	vp := Viewport{ScreenWidth: 20, ScreenHeight: 11, WorldWidth: 200, WorldHeight: 100}
	buf := NewRenderBuffer(20, 11)

	CenterLabel(buf, vp, vmath.Vec2{X: 105, Y: 55}, "19", RGBWhite)
	if buf.Get(10, 5).Rune != '1' || buf.Get(11, 5).Rune != '9' {
		t.Errorf("Expected \"19\" at (10,5), got %q%q", buf.Get(10, 5).Rune, buf.Get(11, 5).Rune)
	}
}

// TestDrawLine verifies both endpoints are plotted
func TestDrawLine(t *testing.T) {
	vp := Viewport{ScreenWidth: 20, ScreenHeight: 11, WorldWidth: 200, WorldHeight: 100}
	buf := NewRenderBuffer(20, 11)

	DrawLine(buf, vp, vmath.Vec2{X: 15, Y: 15}, vmath.Vec2{X: 95, Y: 55}, '.', RGBWhite)
	if buf.Get(1, 1).Rune != '.' || buf.Get(9, 5).Rune != '.' {
		t.Error("Expected both endpoints plotted")
	}
}

type fillRenderer struct {
	r       rune
	visible bool
}

func (f *fillRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	buf.Set(0, 0, Cell{Rune: f.r, Fg: RGBWhite, Bg: RGBBlack})
}

func (f *fillRenderer) IsVisible() bool { return f.visible }

// TestOrchestratorPriorityOrder verifies higher priorities draw last and hidden layers are skipped
func TestOrchestratorPriorityOrder(t *testing.T) {
	screen := newTestScreen(t, 10, 4)
	o := NewRenderOrchestrator(screen)

	o.Register(&fillRenderer{r: 'U', visible: true}, PriorityUI)
	o.Register(&fillRenderer{r: 'B', visible: true}, PriorityBackground)
	o.Register(&fillRenderer{r: 'O', visible: false}, PriorityOverlay)

	snap := &engine.Snapshot{Width: 100, Height: 100}
	o.RenderFrame(NewRenderContext(snap, 10, 4))

	r, _, _, _ := screen.GetContent(0, 0)
	if r != 'U' {
		t.Errorf("Expected 'U' on top, got %q", r)
	}
	r, _, _, _ = screen.GetContent(5, 2)
	if r != ' ' {
		t.Errorf("Expected blank untouched cell, got %q", r)
	}
}

// TestOrchestratorNilSnapshot verifies a nil frame is ignored
func TestOrchestratorNilSnapshot(t *testing.T) {
	screen := newTestScreen(t, 10, 4)
	o := NewRenderOrchestrator(screen)
	o.Register(&fillRenderer{r: 'X', visible: true}, PriorityUI)

	o.RenderFrame(RenderContext{})
	if o.Buffer().Touched(0, 0) {
		t.Error("Expected no render without a snapshot")
	}
}
