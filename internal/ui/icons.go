package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawGearIcon draws a gear/settings icon at (cx, cy) with given radius.
func drawGearIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	// Inner hub
	vector.DrawFilledCircle(dst, cx, cy, r*0.35, clr, false)
	// Outer teeth: small circles around the perimeter
	teeth := 8
	for i := 0; i < teeth; i++ {
		angle := float64(i) * 2 * math.Pi / float64(teeth)
		tx := cx + r*0.75*float32(math.Cos(angle))
		ty := cy + r*0.75*float32(math.Sin(angle))
		vector.DrawFilledCircle(dst, tx, ty, r*0.25, clr, false)
	}
	// Ring connecting teeth
	vector.StrokeCircle(dst, cx, cy, r*0.55, 1.5, clr, false)
}

// drawSearchIcon draws a magnifying glass icon at (cx, cy) with given radius.
func drawSearchIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	// Lens circle (offset up-left so handle extends down-right)
	lensR := r * 0.6
	lensCX := cx - r*0.15
	lensCY := cy - r*0.15
	vector.StrokeCircle(dst, lensCX, lensCY, lensR, 1.8, clr, false)
	// Handle: line from bottom-right of lens at 45 degrees
	hx := lensCX + lensR*0.7
	hy := lensCY + lensR*0.7
	vector.StrokeLine(dst, hx, hy, hx+r*0.45, hy+r*0.45, 2, clr, false)
}

// drawStarIcon draws a five-point star outline at (cx, cy). filled
// stars get a thicker stroke and a solid hub.
func drawStarIcon(dst *ebiten.Image, cx, cy, r float32, filled bool, clr color.Color) {
	inner := r * 0.45
	width := float32(1.5)
	if filled {
		width = 2.5
		vector.DrawFilledCircle(dst, cx, cy, inner*0.9, clr, false)
	}
	point := func(i int) (float32, float32) {
		angle := -math.Pi/2 + float64(i)*math.Pi/5
		pr := r
		if i%2 == 1 {
			pr = inner
		}
		return cx + pr*float32(math.Cos(angle)), cy + pr*float32(math.Sin(angle))
	}
	for i := 0; i < 10; i++ {
		x0, y0 := point(i)
		x1, y1 := point((i + 1) % 10)
		vector.StrokeLine(dst, x0, y0, x1, y1, width, clr, false)
	}
}

// drawCheckIcon draws a checkmark at (cx, cy) with given radius.
func drawCheckIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	vector.StrokeLine(dst, cx-r*0.7, cy, cx-r*0.15, cy+r*0.55, 2, clr, false)
	vector.StrokeLine(dst, cx-r*0.15, cy+r*0.55, cx+r*0.8, cy-r*0.5, 2, clr, false)
}

// drawNavButton draws a styled nav bar button.
func drawNavButton(dst *ebiten.Image, label string, x, y, w, h float32, focused, active bool, iconFn func(*ebiten.Image, float32, float32, float32, color.Color), accentColor color.Color) {
	if focused {
		vector.DrawFilledRect(dst, x, y, w, h, ColorPrimary, false)
		DrawTextCentered(dst, label, float64(x+w/2+8), float64(y+h/2), FontSizeBody, ColorBackground)
		if iconFn != nil {
			iconFn(dst, x+16, y+h/2, 7, ColorBackground)
		}
		return
	}
	vector.DrawFilledRect(dst, x, y, w, h, ColorSurfaceHover, false)
	strokeW := float32(1)
	if active {
		strokeW = 2
	}
	vector.StrokeRect(dst, x, y, w, h, strokeW, accentColor, false)
	DrawTextCentered(dst, label, float64(x+w/2+8), float64(y+h/2), FontSizeBody, ColorText)
	if iconFn != nil {
		iconFn(dst, x+16, y+h/2, 7, accentColor)
	}
}
