package render

import (
	"math"

	"github.com/lixenwraith/antigen/engine"
	"github.com/lixenwraith/antigen/vmath"
)

// StatusBarHeight is the number of rows reserved below the arena
const StatusBarHeight = 1

// Viewport maps world units to terminal cells
// The arena is stretched to fill the screen above the status bar
type Viewport struct {
	ScreenWidth  int
	ScreenHeight int
	WorldWidth   float64
	WorldHeight  float64
}

// ArenaRows returns the rows available to the arena
func (v Viewport) ArenaRows() int {
	return max(v.ScreenHeight-StatusBarHeight, 0)
}

// UnitsPerCell returns world units covered by one cell along each axis
func (v Viewport) UnitsPerCell() (float64, float64) {
	cols, rows := v.ScreenWidth, v.ArenaRows()
	if cols <= 0 || rows <= 0 || v.WorldWidth <= 0 || v.WorldHeight <= 0 {
		return 1, 1
	}
	return v.WorldWidth / float64(cols), v.WorldHeight / float64(rows)
}

// WorldToCellF returns fractional cell coordinates of a world point
func (v Viewport) WorldToCellF(p vmath.Vec2) (float64, float64) {
	sx, sy := v.UnitsPerCell()
	return p.X / sx, p.Y / sy
}

// WorldToCell returns the cell containing a world point
func (v Viewport) WorldToCell(p vmath.Vec2) (int, int) {
	fx, fy := v.WorldToCellF(p)
	return int(math.Floor(fx)), int(math.Floor(fy))
}

// CellToWorld returns the world position of a cell center
func (v Viewport) CellToWorld(x, y int) vmath.Vec2 {
	sx, sy := v.UnitsPerCell()
	return vmath.Vec2{X: (float64(x) + 0.5) * sx, Y: (float64(y) + 0.5) * sy}
}

// InArena reports whether a screen cell lies inside the arena rows
func (v Viewport) InArena(x, y int) bool {
	return x >= 0 && x < v.ScreenWidth && y >= 0 && y < v.ArenaRows()
}

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Viewport

	// Snap is the frame being drawn; never nil inside Render
	Snap *engine.Snapshot

	IsPaused bool
	IsMuted  bool
	Silent   bool

	// Pointer position in screen cells, -1 when unknown
	PointerX int
	PointerY int
}

// NewRenderContext creates a context for a snapshot on a screen of the given size
func NewRenderContext(snap *engine.Snapshot, screenWidth, screenHeight int) RenderContext {
	return RenderContext{
		Viewport: Viewport{
			ScreenWidth:  screenWidth,
			ScreenHeight: screenHeight,
			WorldWidth:   snap.Width,
			WorldHeight:  snap.Height,
		},
		Snap:     snap,
		PointerX: -1,
		PointerY: -1,
	}
}
