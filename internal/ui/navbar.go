package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// NavBarAction represents the result of a navbar Update cycle.
type NavBarAction int

const (
	NavBarActionNone    NavBarAction = iota
	NavBarActionDefocus              // return focus to screen below
)

// Shelf tabs shown in the navbar.
var shelfTabs = []struct{ Kind, Name string }{
	{"anime", "Anime"},
	{"manga", "Manga"},
}

// NavBar is a persistent navigation bar drawn at the top of every screen.
type NavBar struct {
	input        TextInput
	Active       bool
	focusSection int // 0=shelf tabs, 1=search bar, 2=settings
	tabIndex     int

	ActiveScreenName string // for visual highlight of current section

	// OnNavigate receives "home", "library" (with kind), or "settings".
	OnNavigate func(action, kind string)
	// OnSearch pushes the search screen with the typed query.
	OnSearch func(query string)
}

// NewNavBar creates a new NavBar.
func NewNavBar() *NavBar {
	return &NavBar{
		focusSection: 1, // default to search bar
	}
}

// FocusFromBelow activates keyboard focus on the navbar (called when screen hands focus up).
func (nb *NavBar) FocusFromBelow() {
	nb.Active = true
	nb.focusSection = 1 // start at search bar
}

// Update processes keyboard input when the navbar is active. Returns an action.
func (nb *NavBar) Update() NavBarAction {
	if !nb.Active {
		return NavBarActionNone
	}

	// Down or Escape returns focus to the screen
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		nb.Active = false
		return NavBarActionDefocus
	}

	switch nb.focusSection {
	case 0: // Shelf tabs
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			tab := shelfTabs[nb.tabIndex]
			if nb.OnNavigate != nil {
				nb.OnNavigate("library", tab.Kind)
			}
			nb.Active = false
			return NavBarActionDefocus
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
			if nb.tabIndex < len(shelfTabs)-1 {
				nb.tabIndex++
			} else {
				nb.focusSection = 1
			}
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
			if nb.tabIndex > 0 {
				nb.tabIndex--
			}
		}

	case 1: // Search bar
		nb.input.Update()

		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && nb.input.Text != "" {
			query := nb.input.Text
			nb.input.Clear()
			if nb.OnSearch != nil {
				nb.OnSearch(query)
			}
			nb.Active = false
			return NavBarActionDefocus
		}

		// Left at start → shelf tabs
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) && nb.input.CursorAtStart() {
			nb.tabIndex = len(shelfTabs) - 1
			nb.focusSection = 0
		}

		// Right at end → settings
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) && nb.input.CursorAtEnd() {
			nb.focusSection = 2
		}

	case 2: // Settings button
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			if nb.OnNavigate != nil {
				nb.OnNavigate("settings", "")
			}
			nb.Active = false
			return NavBarActionDefocus
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
			nb.focusSection = 1 // back to search
		}
	}

	return NavBarActionNone
}

// HandleClick checks if (mx, my) hits a navbar element and triggers navigation. Returns true if consumed.
func (nb *NavBar) HandleClick(mx, my int) bool {
	if float64(my) >= NavBarHeight {
		return false
	}

	// AniCouch title → home
	if PointInRect(mx, my, SectionPadding, 12, 160, 38) {
		if nb.OnNavigate != nil {
			nb.OnNavigate("home", "")
		}
		return true
	}

	// Shelf tabs
	tabX := 210.0
	for _, tab := range shelfTabs {
		tw, _ := MeasureText(tab.Name, FontSizeBody)
		btnW := tw + 28
		if PointInRect(mx, my, tabX, 12, btnW, 38) {
			if nb.OnNavigate != nil {
				nb.OnNavigate("library", tab.Kind)
			}
			return true
		}
		tabX += btnW + 10
	}

	// Search bar
	searchX := float64(ScreenWidth)/2 - 200
	if PointInRect(mx, my, searchX, 12, 400, 38) {
		nb.Active = true
		nb.focusSection = 1
		return true
	}

	// Settings button
	settingsX := float64(ScreenWidth) - SectionPadding - 100
	if PointInRect(mx, my, settingsX, 12, 100, 38) {
		if nb.OnNavigate != nil {
			nb.OnNavigate("settings", "")
		}
		return true
	}

	return false
}

// Draw renders the navbar overlay.
func (nb *NavBar) Draw(dst *ebiten.Image) {
	// Solid background bar
	vector.DrawFilledRect(dst, 0, 0, float32(ScreenWidth), float32(NavBarHeight), ColorBackground, false)
	// Bottom separator line
	vector.DrawFilledRect(dst, 0, float32(NavBarHeight-1), float32(ScreenWidth), 1, ColorSurfaceHover, false)

	// AniCouch title (clickable home)
	homeColor := ColorPrimary
	if nb.ActiveScreenName == "Home" {
		homeColor = ColorText
	}
	DrawText(dst, "AniCouch", SectionPadding, 16, FontSizeTitle, homeColor)

	// Shelf tabs
	tabX := 210.0
	for i, tab := range shelfTabs {
		tw, _ := MeasureText(tab.Name, FontSizeBody)
		btnW := float32(tw + 28)
		focused := nb.Active && nb.focusSection == 0 && i == nb.tabIndex
		active := nb.ActiveScreenName == "Library: "+tab.Name
		drawNavButton(dst, tab.Name, float32(tabX), 12, btnW, 38, focused, active, nil, ColorPrimary)
		tabX += float64(btnW) + 10
	}

	// Search bar (center)
	searchX := float64(ScreenWidth)/2 - 200
	searchY := 12.0
	searchW := 400.0
	searchH := 38.0
	if nb.Active && nb.focusSection == 1 {
		vector.DrawFilledRect(dst, float32(searchX), float32(searchY), float32(searchW), float32(searchH), ColorSurfaceHover, false)
		vector.StrokeRect(dst, float32(searchX), float32(searchY), float32(searchW), float32(searchH), 2, ColorFocusBorder, false)
		if nb.input.Text == "" {
			DrawText(dst, "Search AniList...", searchX+34, searchY+10, FontSizeBody, ColorTextMuted)
		}
		DrawText(dst, nb.input.DisplayText(), searchX+34, searchY+10, FontSizeBody, ColorText)
	} else {
		vector.DrawFilledRect(dst, float32(searchX), float32(searchY), float32(searchW), float32(searchH), ColorSurface, false)
		vector.StrokeRect(dst, float32(searchX), float32(searchY), float32(searchW), float32(searchH), 1, ColorTextMuted, false)
		if nb.input.Text != "" {
			DrawText(dst, nb.input.Text, searchX+34, searchY+10, FontSizeBody, ColorText)
		} else {
			DrawText(dst, "Search AniList...", searchX+34, searchY+10, FontSizeBody, ColorTextMuted)
		}
	}
	drawSearchIcon(dst, float32(searchX)+18, float32(searchY+searchH/2), 8, ColorTextMuted)

	// Settings button
	settingsX := float32(ScreenWidth) - SectionPadding - 100
	sfocused := nb.Active && nb.focusSection == 2
	sactive := nb.ActiveScreenName == "Settings"
	drawNavButton(dst, "Settings", settingsX, 12, 100, 38, sfocused, sactive, drawGearIcon, ColorTextSecondary)
}
