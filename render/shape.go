package render

import (
	"math"

	"github.com/lixenwraith/antigen/vmath"
)

// FillDisc blends color into every arena cell whose center lies inside the world-space disc
// Returns the number of cells covered; a disc smaller than a cell still marks its center cell
func FillDisc(buf *RenderBuffer, vp Viewport, center vmath.Vec2, radius float64, color RGB, alpha float64) int {
	if radius <= 0 || alpha <= 0 {
		return 0
	}
	sx, sy := vp.UnitsPerCell()
	cx, cy := center.X/sx, center.Y/sy
	rx, ry := radius/sx, radius/sy

	x0, x1 := int(math.Floor(cx-rx)), int(math.Ceil(cx+rx))
	y0, y1 := int(math.Floor(cy-ry)), int(math.Ceil(cy+ry))

	covered := 0
	for y := y0; y <= y1; y++ {
		dy := (float64(y) + 0.5 - cy) / ry
		for x := x0; x <= x1; x++ {
			if !vp.InArena(x, y) {
				continue
			}
			dx := (float64(x) + 0.5 - cx) / rx
			if dx*dx+dy*dy > 1 {
				continue
			}
			buf.BlendBg(x, y, color, alpha)
			covered++
		}
	}

	if covered == 0 {
		x, y := int(math.Floor(cx)), int(math.Floor(cy))
		if vp.InArena(x, y) {
			buf.BlendBg(x, y, color, alpha)
			covered = 1
		}
	}
	return covered
}

// CenterLabel writes s centered on a world point, clipped to the arena
func CenterLabel(buf *RenderBuffer, vp Viewport, p vmath.Vec2, s string, fg RGB) {
	if s == "" {
		return
	}
	x, y := vp.WorldToCell(p)
	n := len([]rune(s))
	x -= (n - 1) / 2
	for _, r := range s {
		if vp.InArena(x, y) {
			buf.SetRune(x, y, r, fg, 0)
		}
		x++
	}
}

// DrawLine plots a glyph along the segment between two world points
// Cells already carrying a glyph are left alone
func DrawLine(buf *RenderBuffer, vp Viewport, from, to vmath.Vec2, r rune, fg RGB) {
	x0, y0 := vp.WorldToCell(from)
	x1, y1 := vp.WorldToCell(to)

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		if vp.InArena(x0, y0) && buf.Get(x0, y0).Rune == 0 {
			buf.SetRune(x0, y0, r, fg, 0)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
