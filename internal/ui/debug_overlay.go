package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var debugOverlayVisible bool

// DebugLinesFn, when set, supplies extra lines for the debug overlay.
// The app wires this to the active screen's diagnostics.
var DebugLinesFn func() []string

// ToggleDebugOverlay toggles the debug overlay on F12.
func ToggleDebugOverlay() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		debugOverlayVisible = !debugOverlayVisible
	}
}

// DrawDebugOverlay draws the debug overlay if visible.
func DrawDebugOverlay(screen *ebiten.Image) {
	if !debugOverlayVisible {
		return
	}

	const (
		padX    = 16.0
		padY    = 12.0
		lineH   = 18.0
		marginR = 20.0
		marginT = 20.0
	)

	var extra []string
	if DebugLinesFn != nil {
		extra = DebugLinesFn()
	}
	var pressedKeys []ebiten.Key
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if ebiten.IsKeyPressed(k) {
			pressedKeys = append(pressedKeys, k)
		}
	}

	lines := 2 // header + fps line
	lines += max(len(extra), 0)
	lines += 2 // blank + keys header
	lines += max(len(pressedKeys), 1)
	panelH := float64(lines)*lineH + padY*2
	panelW := 460.0
	px := float64(ScreenWidth) - panelW - marginR
	py := marginT

	vector.DrawFilledRect(screen, float32(px), float32(py), float32(panelW), float32(panelH), ColorOverlay, false)

	x := px + padX
	y := py + padY

	DrawText(screen, "Debug (F12 to close)", x, y, FontSizeSmall, ColorPrimary)
	y += lineH

	DrawText(screen, fmt.Sprintf("FPS %.1f  TPS %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()), x, y, FontSizeSmall, ColorText)
	y += lineH

	for _, line := range extra {
		DrawText(screen, line, x, y, FontSizeSmall, ColorText)
		y += lineH
	}

	y += lineH * 0.5
	DrawText(screen, "--- keys pressed ---", x, y, FontSizeSmall, ColorTextMuted)
	y += lineH

	if len(pressedKeys) == 0 {
		DrawText(screen, "(none)", x, y, FontSizeSmall, ColorTextSecondary)
	} else {
		for _, k := range pressedKeys {
			DrawText(screen, fmt.Sprintf("  %s (%d)", k.String(), int(k)), x, y, FontSizeSmall, ColorText)
			y += lineH
		}
	}
}
