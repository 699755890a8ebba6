package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridItem represents a single item in a poster grid or carousel.
type GridItem struct {
	Slug     string
	Title    string
	Subtitle string // year, episode info, etc.
	Image    *ebiten.Image
	Progress float64 // finished fraction, 0 when untracked
	Rating   int     // user score, 0 when unrated
}

// ButtonRect stores the screen rectangle of a clickable element for hit testing.
type ButtonRect struct {
	X, Y, W, H float64
}

func truncateText(s string, maxWidth float64, fontSize float64) string {
	w, _ := MeasureText(s, fontSize)
	if w <= maxWidth {
		return s
	}
	for i := len(s) - 1; i > 0; i-- {
		candidate := s[:i] + "…"
		w, _ = MeasureText(candidate, fontSize)
		if w <= maxWidth {
			return candidate
		}
	}
	return "…"
}

// DrawFilledRoundRect draws a filled rectangle with rounded corners.
func DrawFilledRoundRect(dst *ebiten.Image, x, y, w, h, radius float32, clr color.Color) {
	// Ebitengine v2 vector doesn't have native round rect, so use regular rect
	vector.DrawFilledRect(dst, x, y, w, h, clr, false)
}

// DrawImageCover draws img scaled to cover the (w, h) box, cropping overflow.
func DrawImageCover(dst, img *ebiten.Image, x, y, w, h float64) {
	bounds := img.Bounds()
	iw, ih := float64(bounds.Dx()), float64(bounds.Dy())
	if iw == 0 || ih == 0 {
		return
	}
	scale := w / iw
	if s := h / ih; s > scale {
		scale = s
	}
	sub := dst.SubImage(image.Rect(int(x), int(y), int(x+w), int(y+h))).(*ebiten.Image)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x-(iw*scale-w)/2, y-(ih*scale-h)/2)
	sub.DrawImage(img, op)
}

// drawTriangle draws a small up or down pointing triangle.
func drawTriangle(dst *ebiten.Image, cx, cy, r float32, up bool, clr color.Color) {
	dir := float32(1)
	if up {
		dir = -1
	}
	vector.StrokeLine(dst, cx-r, cy-dir*r/2, cx, cy+dir*r/2, 2, clr, false)
	vector.StrokeLine(dst, cx, cy+dir*r/2, cx+r, cy-dir*r/2, 2, clr, false)
}

// drawRatingBadge draws the user's score in the poster corner.
func drawRatingBadge(dst *ebiten.Image, score int, x, y float64) {
	label := fmt.Sprintf("%d", score)
	w := 34.0
	h := 22.0
	vector.DrawFilledRect(dst, float32(x+4), float32(y+4), float32(w), float32(h), ColorOverlay, false)
	drawStarIcon(dst, float32(x+4+10), float32(y+4+h/2), 6, true, ColorRatingGold)
	DrawText(dst, label, x+4+19, y+6, FontSizeSmall, ColorText)
}

// drawPosterCard draws one series card with a focus ring behind it.
func drawPosterCard(dst *ebiten.Image, item GridItem, x, y float64, focused bool) {
	if focused {
		DrawFilledRoundRect(dst,
			float32(x-PosterFocusPad), float32(y-PosterFocusPad),
			float32(PosterWidth+PosterFocusPad*2), float32(PosterHeight+PosterFocusPad*2),
			4, ColorFocusBorder)
	}
	drawPosterContent(dst, item, x, y, focused)
}

// drawPosterContent draws the card body: cover or placeholder, progress
// bar, rating badge, and the caption lines below. Strip cards use this
// directly since the strip draws its own focus ring.
func drawPosterContent(dst *ebiten.Image, item GridItem, x, y float64, focused bool) {
	if item.Image != nil {
		DrawImageCover(dst, item.Image, x, y, PosterWidth, PosterHeight)
	} else {
		DrawFilledRoundRect(dst, float32(x), float32(y),
			float32(PosterWidth), float32(PosterHeight), 4, ColorSurface)
		DrawTextCentered(dst, item.Title, x+PosterWidth/2, y+PosterHeight/2,
			FontSizeSmall, ColorTextMuted)
	}

	// Progress bar at bottom of poster
	if item.Progress > 0 && item.Progress < 1.0 {
		barH := float32(4)
		barY := float32(y + PosterHeight - float64(barH))
		DrawFilledRoundRect(dst, float32(x), barY, float32(PosterWidth), barH, 0, ColorSurfaceHover)
		DrawFilledRoundRect(dst, float32(x), barY,
			float32(float64(PosterWidth)*item.Progress), barH, 0, ColorPrimary)
	} else if item.Progress >= 1.0 {
		drawCheckIcon(dst, float32(x+PosterWidth-14), float32(y+14), 7, ColorSuccess)
	}

	if item.Rating > 0 {
		drawRatingBadge(dst, item.Rating, x, y)
	}

	titleColor := ColorTextSecondary
	if focused {
		titleColor = ColorText
	}
	title := truncateText(item.Title, PosterWidth, FontSizeCaption)
	DrawText(dst, title, x, y+PosterHeight+4, FontSizeCaption, titleColor)
	if item.Subtitle != "" {
		DrawText(dst, item.Subtitle, x, y+PosterHeight+4+FontSizeCaption+4, FontSizeCaption, ColorTextMuted)
	}
}
