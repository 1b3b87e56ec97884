package render

import (
	"github.com/lixenwraith/antigen/core"
)

// Palette
var (
	RgbBackground = RGB{26, 27, 38}    // Tokyo Night background
	RgbForeground = RGB{192, 202, 245} // Tokyo Night foreground
	RgbArenaEdge  = RGB{65, 72, 104}   // Muted border

	RgbStatusBar   = RGB{255, 255, 255}
	RgbStatusBg    = RGB{36, 40, 59}
	RgbStatusDim   = RGB{120, 124, 153}
	RgbStatusPhase = RGB{122, 162, 247}
	RgbVictory     = RGB{158, 206, 106}
	RgbPaused      = RGB{224, 175, 104}

	RgbCancerUnmarked = RGB{120, 120, 130}
	RgbCancerLabel    = RGB{20, 20, 28}

	RgbTCellBody    = RGB{70, 110, 200}
	RgbTCellLabel   = RGB{255, 255, 255}
	RgbTCellBurst   = RGB{255, 240, 200}
	RgbTCellImpulse = RGB{150, 190, 255}

	RgbTargetLine = RGB{90, 96, 130}

	RgbUpgradeSpeed    = RGB{255, 220, 60}
	RgbUpgradeChain    = RGB{230, 90, 230}
	RgbUpgradeLifetime = RGB{100, 220, 120}
	RgbUpgradeLabel    = RGB{20, 20, 28}
)

var markerColors = map[core.Marker]RGB{
	core.MarkerCD19: {220, 70, 70},
	core.MarkerCD30: {235, 150, 40},
	core.MarkerCD3:  {170, 100, 230},
	core.MarkerCD4:  {40, 190, 170},
}

// Short labels drawn at cell centers; MarkerNone deliberately has no entry
var markerGlyphs = map[core.Marker]string{
	core.MarkerCD19: "19",
	core.MarkerCD30: "30",
	core.MarkerCD3:  "3",
	core.MarkerCD4:  "4",
}

var upgradeColors = map[string]RGB{
	core.UpgradeSpeed.String():         RgbUpgradeSpeed,
	core.UpgradeChainReaction.String(): RgbUpgradeChain,
	core.UpgradeLifetime.String():      RgbUpgradeLifetime,
}

var upgradeGlyphs = map[string]rune{
	core.UpgradeSpeed.String():         'S',
	core.UpgradeChainReaction.String(): 'C',
	core.UpgradeLifetime.String():      'L',
}

// MarkerColor returns the tint for a marker
func MarkerColor(m core.Marker) (RGB, bool) {
	c, ok := markerColors[m]
	return c, ok
}

// MarkerGlyph returns the center label for a marker; false means draw nothing
func MarkerGlyph(m core.Marker) (string, bool) {
	g, ok := markerGlyphs[m]
	return g, ok
}

// UpgradeColor returns the tint for an upgrade type label
func UpgradeColor(name string) (RGB, bool) {
	c, ok := upgradeColors[name]
	return c, ok
}

// UpgradeGlyph returns the letter drawn for an upgrade type label
func UpgradeGlyph(name string) (rune, bool) {
	g, ok := upgradeGlyphs[name]
	return g, ok
}
