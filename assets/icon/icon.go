package icon

import (
	"image"
	"image/color"
	"math"
)

// Theme colors from the app
var (
	coral     = color.RGBA{R: 0xFF, G: 0x6B, B: 0x6B, A: 0xFF}
	coralDark = color.RGBA{R: 0xC8, G: 0x48, B: 0x48, A: 0xFF}
	darkBG    = color.RGBA{R: 0x12, G: 0x10, B: 0x16, A: 0xFF}
	gold      = color.RGBA{R: 0xFF, G: 0xD7, B: 0x00, A: 0xFF}
	goldGlow  = color.RGBA{R: 0xFF, G: 0xD7, B: 0x00, A: 0x50}
)

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

func generate(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	fillRect(img, 0, 0, size, size, darkBG)

	// Couch in the lower portion, rating star floating above it
	drawCouch(img, s)
	drawStar(img, s)

	return img
}

func drawCouch(img *image.RGBA, s float64) {
	// Couch seat, wide rounded rectangle in lower third
	seatY := s * 0.58
	seatH := s * 0.18
	seatX := s * 0.10
	seatW := s * 0.80
	fillRoundedRect(img, seatX, seatY, seatW, seatH, s*0.06, coral)

	// Couch back, slightly narrower, behind the seat
	backY := s * 0.48
	backH := s * 0.14
	backX := s * 0.12
	backW := s * 0.76
	fillRoundedRect(img, backX, backY, backW, backH, s*0.05, coralDark)

	// Couch arms
	armH := s * 0.22
	armW := s * 0.10
	armY := s * 0.48
	fillRoundedRect(img, s*0.06, armY, armW, armH, s*0.04, coralDark)
	fillRoundedRect(img, s*0.84, armY, armW, armH, s*0.04, coralDark)

	// Couch legs
	legW := s * 0.06
	legH := s * 0.10
	legY := s * 0.74
	fillRoundedRect(img, s*0.16, legY, legW, legH, s*0.02, coralDark)
	fillRoundedRect(img, s*0.78, legY, legW, legH, s*0.02, coralDark)

	// Cushion lines on seat
	lineY := int(seatY + seatH*0.3)
	lineEndY := int(seatY + seatH*0.7)
	for _, xf := range []float64{0.37, 0.50, 0.63} {
		x := int(s * xf)
		for y := lineY; y <= lineEndY; y++ {
			blendPixel(img, x, y, coralDark)
		}
	}
}

func drawStar(img *image.RGBA, s float64) {
	cx := s * 0.50
	cy := s * 0.28
	outer := s * 0.18
	inner := outer * 0.42

	fillCircle(img, cx, cy, outer*1.2, goldGlow)

	// Five-point star as a fan of triangles from the center
	for i := 0; i < 10; i++ {
		a0 := -math.Pi/2 + float64(i)*math.Pi/5
		a1 := -math.Pi/2 + float64(i+1)*math.Pi/5
		r0, r1 := outer, inner
		if i%2 == 1 {
			r0, r1 = inner, outer
		}
		fillTriangle(img,
			cx, cy,
			cx+math.Cos(a0)*r0, cy+math.Sin(a0)*r0,
			cx+math.Cos(a1)*r1, cy+math.Sin(a1)*r1,
			gold)
	}
}

func fillTriangle(img *image.RGBA, x0, y0, x1, y1, x2, y2 float64, c color.Color) {
	minX := int(math.Min(x0, math.Min(x1, x2)))
	maxX := int(math.Max(x0, math.Max(x1, x2))) + 1
	minY := int(math.Min(y0, math.Min(y1, y2)))
	maxY := int(math.Max(y0, math.Max(y1, y2))) + 1
	bounds := img.Bounds()

	edge := func(ax, ay, bx, by, px, py float64) float64 {
		return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
	}
	for y := minY; y <= maxY && y < bounds.Max.Y; y++ {
		for x := minX; x <= maxX && x < bounds.Max.X; x++ {
			if x < 0 || y < 0 {
				continue
			}
			px, py := float64(x)+0.5, float64(y)+0.5
			d0 := edge(x0, y0, x1, y1, px, py)
			d1 := edge(x1, y1, x2, y2, px, py)
			d2 := edge(x2, y2, x0, y0, px, py)
			if (d0 >= 0 && d1 >= 0 && d2 >= 0) || (d0 <= 0 && d1 <= 0 && d2 <= 0) {
				blendPixel(img, x, y, c)
			}
		}
	}
}

func fillRect(img *image.RGBA, x0, y0, w, h int, c color.Color) {
	bounds := img.Bounds()
	for y := y0; y < y0+h && y < bounds.Max.Y; y++ {
		for x := x0; x < x0+w && x < bounds.Max.X; x++ {
			if x >= 0 && y >= 0 {
				blendPixel(img, x, y, c)
			}
		}
	}
}

func fillRoundedRect(img *image.RGBA, xf, yf, wf, hf, rf float64, c color.Color) {
	x0 := int(xf)
	y0 := int(yf)
	x1 := int(xf + wf)
	y1 := int(yf + hf)
	r := rf
	bounds := img.Bounds()

	for y := y0; y <= y1 && y < bounds.Max.Y; y++ {
		for x := x0; x <= x1 && x < bounds.Max.X; x++ {
			if x < 0 || y < 0 {
				continue
			}
			fx := float64(x)
			fy := float64(y)
			inside := true

			if fx < xf+r && fy < yf+r {
				dx := xf + r - fx
				dy := yf + r - fy
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			} else if fx > xf+wf-r && fy < yf+r {
				dx := fx - (xf + wf - r)
				dy := yf + r - fy
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			} else if fx < xf+r && fy > yf+hf-r {
				dx := xf + r - fx
				dy := fy - (yf + hf - r)
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			} else if fx > xf+wf-r && fy > yf+hf-r {
				dx := fx - (xf + wf - r)
				dy := fy - (yf + hf - r)
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			}

			if inside {
				blendPixel(img, x, y, c)
			}
		}
	}
}

func fillCircle(img *image.RGBA, cx, cy, r float64, c color.Color) {
	bounds := img.Bounds()
	x0 := int(cx - r)
	y0 := int(cy - r)
	x1 := int(cx + r + 1)
	y1 := int(cy + r + 1)
	r2 := r * r

	for y := y0; y <= y1 && y < bounds.Max.Y; y++ {
		for x := x0; x <= x1 && x < bounds.Max.X; x++ {
			if x < 0 || y < 0 {
				continue
			}
			dx := float64(x) - cx
			dy := float64(y) - cy
			if dx*dx+dy*dy <= r2 {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// blendPixel alpha-blends color c onto the existing pixel at (x, y).
func blendPixel(img *image.RGBA, x, y int, c color.Color) {
	r0, g0, b0, a0 := c.RGBA()
	if a0 == 0 {
		return
	}
	if a0 == 0xFFFF {
		img.Set(x, y, c)
		return
	}

	existing := img.RGBAAt(x, y)
	er := uint32(existing.R) * 257
	eg := uint32(existing.G) * 257
	eb := uint32(existing.B) * 257

	alpha := a0
	invAlpha := 0xFFFF - alpha
	nr := (r0*alpha + er*invAlpha) / 0xFFFF
	ng := (g0*alpha + eg*invAlpha) / 0xFFFF
	nb := (b0*alpha + eb*invAlpha) / 0xFFFF

	img.SetRGBA(x, y, color.RGBA{
		R: uint8(nr >> 8),
		G: uint8(ng >> 8),
		B: uint8(nb >> 8),
		A: 0xFF,
	})
}
