package ui

import "image/color"

// Colors: dark theme with a warm coral accent
var (
	ColorBackground    = color.RGBA{R: 0x12, G: 0x10, B: 0x16, A: 0xFF}
	ColorSurface       = color.RGBA{R: 0x1E, G: 0x1B, B: 0x26, A: 0xFF}
	ColorSurfaceHover  = color.RGBA{R: 0x2A, G: 0x26, B: 0x36, A: 0xFF}
	ColorPrimary       = color.RGBA{R: 0xFF, G: 0x6B, B: 0x6B, A: 0xFF} // coral
	ColorPrimaryDark   = color.RGBA{R: 0xC2, G: 0x45, B: 0x45, A: 0xFF}
	ColorAccent        = color.RGBA{R: 0x4E, G: 0xCD, B: 0xC4, A: 0xFF} // teal accent
	ColorText          = color.RGBA{R: 0xE4, G: 0xE2, B: 0xE8, A: 0xFF}
	ColorTextSecondary = color.RGBA{R: 0x94, G: 0x90, B: 0x9E, A: 0xFF}
	ColorTextMuted     = color.RGBA{R: 0x62, G: 0x5E, B: 0x6C, A: 0xFF}
	ColorFocusBorder   = color.RGBA{R: 0xFF, G: 0x6B, B: 0x6B, A: 0xFF}
	ColorOverlay       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xC0}
	ColorError         = color.RGBA{R: 0xE0, G: 0x40, B: 0x40, A: 0xFF}
	ColorSuccess       = color.RGBA{R: 0x40, G: 0xC0, B: 0x60, A: 0xFF}
	ColorRatingGold    = color.RGBA{R: 0xFF, G: 0xD7, B: 0x00, A: 0xFF}
)

// Layout constants
const (
	PosterWidth    = 220
	PosterHeight   = 330
	PosterGap      = 28
	PosterFocusPad = 8

	// Episode/chapter navigator cards are wide thumbnails.
	EpisodeCardW   = 280
	EpisodeCardH   = 158
	EpisodeCardGap = 18

	// Character navigator cards are narrow portraits.
	CharacterCardW   = 140
	CharacterCardH   = 200
	CharacterCardGap = 16

	HeroHeight = 380

	SectionPadding = 40
	SectionGap     = 30
	SectionTitleH  = 36

	NavBarHeight  = 60
	NavBarPadding = 20

	FontSizeTitle   = 28
	FontSizeHeading = 22
	FontSizeBody    = 16
	FontSizeSmall   = 13
	FontSizeCaption = 11

	FocusAnimSpeed  = 0.15
	ScrollAnimSpeed = 0.12

	ScreenWidth  = 1920
	ScreenHeight = 1080

	// GridRowHeight is the height of a single row in a FocusGrid (poster + gap + labels).
	GridRowHeight = PosterHeight + PosterGap + FontSizeSmall + FontSizeCaption + 16
	// SectionRowHeight is the height of a carousel row including focus padding.
	SectionRowHeight = PosterHeight + FontSizeSmall + FontSizeCaption + 24 + PosterFocusPad*2
	// SectionFullHeight is a carousel section including title and gap.
	SectionFullHeight = SectionRowHeight + SectionTitleH + SectionGap

	// ScrollWheelSpeed is pixels per mouse wheel scroll unit (vertical lists).
	ScrollWheelSpeed = 60

	// GroupBarHeight is the volume/range jump bar above the chapter strip.
	GroupBarHeight = 44
)
