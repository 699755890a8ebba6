package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FilterOption represents a single pill selector with a label and cycled options.
type FilterOption struct {
	Label    string
	Options  []string
	Selected int
}

// Value returns the currently selected option string.
func (fo *FilterOption) Value() string {
	if fo.Selected < 0 || fo.Selected >= len(fo.Options) {
		return ""
	}
	return fo.Options[fo.Selected]
}

// FilterBar is a horizontal bar of pill selectors plus a search input.
type FilterBar struct {
	Filters      []FilterOption
	FocusedIndex int // index into Filters; len(Filters) = search input
	SearchInput  TextInput
	Active       bool

	pillRects       []ButtonRect
	searchRect      ButtonRect
	framesSinceEdit int
	lastSearch      string
}

// searchDebounceFrames is how long typing must pause before the search
// filter applies (~0.4s at 60fps).
const searchDebounceFrames = 25

// NewFilterBar creates a FilterBar with the given filter options.
func NewFilterBar(filters []FilterOption) *FilterBar {
	return &FilterBar{
		Filters:   filters,
		pillRects: make([]ButtonRect, len(filters)),
	}
}

// IsSearchFocused returns true if the search input currently has focus.
func (fb *FilterBar) IsSearchFocused() bool {
	return fb.Active && fb.FocusedIndex >= len(fb.Filters)
}

// Update processes input for the filter bar. Returns true if any filter
// value changed, including the search text after its debounce.
func (fb *FilterBar) Update() bool {
	changed := false

	if fb.IsSearchFocused() {
		if fb.SearchInput.Update() {
			fb.framesSinceEdit = 0
		}

		// Left at cursor position 0 → move to previous pill
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) && fb.SearchInput.CursorAtStart() && len(fb.Filters) > 0 {
			fb.FocusedIndex = len(fb.Filters) - 1
		}

		// Enter applies immediately
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && fb.SearchInput.Text != fb.lastSearch {
			fb.lastSearch = fb.SearchInput.Text
			return true
		}
	} else if fb.Active {
		// Pill mode: Left/Right to navigate, Up/Down/Enter to cycle value
		if inputRepeating(ebiten.KeyArrowLeft) && fb.FocusedIndex > 0 {
			fb.FocusedIndex--
		}
		if inputRepeating(ebiten.KeyArrowRight) && fb.FocusedIndex < len(fb.Filters) {
			fb.FocusedIndex++ // can go to search
		}
		if fb.FocusedIndex < len(fb.Filters) {
			pill := &fb.Filters[fb.FocusedIndex]
			if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
				pill.Selected = (pill.Selected + 1) % len(pill.Options)
				changed = true
			}
			if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
				pill.Selected = (pill.Selected - 1 + len(pill.Options)) % len(pill.Options)
				changed = true
			}
		}
	}

	// Debounced search: apply once typing pauses
	fb.framesSinceEdit++
	if fb.SearchInput.Text != fb.lastSearch && fb.framesSinceEdit >= searchDebounceFrames {
		fb.lastSearch = fb.SearchInput.Text
		changed = true
	}

	return changed
}

// SearchText returns the last applied search string.
func (fb *FilterBar) SearchText() string {
	return fb.lastSearch
}

// HandleClick checks if a click hit any pill or the search bar.
// Returns the index clicked (len(Filters) for search), and whether a click was handled.
func (fb *FilterBar) HandleClick(mx, my int) (int, bool) {
	for i, rect := range fb.pillRects {
		if PointInRect(mx, my, rect.X, rect.Y, rect.W, rect.H) {
			return i, true
		}
	}
	if PointInRect(mx, my, fb.searchRect.X, fb.searchRect.Y, fb.searchRect.W, fb.searchRect.H) {
		return len(fb.Filters), true
	}
	return -1, false
}

const (
	filterBarHeight  = 38.0
	filterBarPadding = 8.0
	filterPillGap    = 12.0
	filterPillPadX   = 14.0
)

// Draw renders the filter bar at the given position.
func (fb *FilterBar) Draw(dst *ebiten.Image, x, y float64) float64 {
	curX := x

	for i := range fb.Filters {
		pill := &fb.Filters[i]
		label := pill.Label + ": " + pill.Value()
		tw, _ := MeasureText(label, FontSizeBody)
		pillW := tw + filterPillPadX*2

		isFocused := fb.Active && fb.FocusedIndex == i

		if isFocused {
			vector.DrawFilledRect(dst, float32(curX), float32(y),
				float32(pillW), float32(filterBarHeight), ColorPrimary, false)
			DrawTextCentered(dst, label, curX+pillW/2, y+filterBarHeight/2,
				FontSizeBody, ColorBackground)
			// Up/down arrows as cycle affordance
			drawTriangle(dst, float32(curX+pillW/2), float32(y-6), 5, true, ColorPrimary)
			drawTriangle(dst, float32(curX+pillW/2), float32(y+filterBarHeight+6), 5, false, ColorPrimary)
		} else {
			vector.DrawFilledRect(dst, float32(curX), float32(y),
				float32(pillW), float32(filterBarHeight), ColorSurface, false)
			vector.StrokeRect(dst, float32(curX), float32(y),
				float32(pillW), float32(filterBarHeight), 1, ColorTextMuted, false)
			DrawTextCentered(dst, label, curX+pillW/2, y+filterBarHeight/2,
				FontSizeBody, ColorTextSecondary)
		}

		fb.pillRects[i] = ButtonRect{X: curX, Y: y, W: pillW, H: filterBarHeight}
		curX += pillW + filterPillGap
	}

	// Search input fills the remaining width
	searchW := float64(ScreenWidth) - SectionPadding - curX
	if searchW < 100 {
		searchW = 100
	}
	isSearchFocused := fb.IsSearchFocused()

	if isSearchFocused {
		vector.DrawFilledRect(dst, float32(curX), float32(y),
			float32(searchW), float32(filterBarHeight), ColorSurfaceHover, false)
		vector.StrokeRect(dst, float32(curX), float32(y),
			float32(searchW), float32(filterBarHeight), 2, ColorFocusBorder, false)
		if fb.SearchInput.Text == "" {
			DrawText(dst, "Filter titles...", curX+10, y+10, FontSizeBody, ColorTextMuted)
		}
		DrawText(dst, fb.SearchInput.DisplayText(), curX+10, y+10, FontSizeBody, ColorText)
	} else {
		vector.DrawFilledRect(dst, float32(curX), float32(y),
			float32(searchW), float32(filterBarHeight), ColorSurface, false)
		vector.StrokeRect(dst, float32(curX), float32(y),
			float32(searchW), float32(filterBarHeight), 1, ColorTextMuted, false)
		if fb.SearchInput.Text != "" {
			DrawText(dst, fb.SearchInput.Text, curX+10, y+10, FontSizeBody, ColorText)
		} else {
			DrawText(dst, "Filter titles...", curX+10, y+10, FontSizeBody, ColorTextMuted)
		}
	}

	fb.searchRect = ButtonRect{X: curX, Y: y, W: searchW, H: filterBarHeight}
	return filterBarHeight
}
