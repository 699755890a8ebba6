package ui

import (
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"anicouch/internal/cache"
	"anicouch/internal/config"
)

// Settings rows, top to bottom.
const (
	settingToken = iota
	settingFullscreen
	settingClearCache
	settingCount
)

// SettingsScreen edits the AniList token and a handful of app toggles.
// Changes are written back to the config file immediately.
type SettingsScreen struct {
	cfg      *config.Config
	imgCache *cache.ImageCache

	tokenInput   TextInput
	tokenFocused bool

	focusIndex int
	statusMsg  string
	statusTTL  int // frames

	rowRects  [settingCount]ButtonRect
	pasteRect ButtonRect

	// OnTokenChanged lets the app rebuild its AniList client.
	OnTokenChanged func(token string)
}

func NewSettingsScreen(cfg *config.Config, imgCache *cache.ImageCache) *SettingsScreen {
	return &SettingsScreen{
		cfg:        cfg,
		imgCache:   imgCache,
		tokenInput: NewTextInput(cfg.AniList.Token),
	}
}

func (st *SettingsScreen) Name() string { return "Settings" }
func (st *SettingsScreen) OnEnter()     { st.tokenInput.SetText(st.cfg.AniList.Token) }
func (st *SettingsScreen) OnExit()      { st.tokenFocused = false }

// TextEntryActive reports whether the token field is capturing keys.
func (st *SettingsScreen) TextEntryActive() bool { return st.tokenFocused }

func (st *SettingsScreen) save() {
	if err := st.cfg.Save(); err != nil {
		log.Printf("Failed to save config: %v", err)
		st.setStatus("Save failed: " + err.Error())
	}
}

func (st *SettingsScreen) setStatus(msg string) {
	st.statusMsg = msg
	st.statusTTL = 180
}

func (st *SettingsScreen) commitToken() {
	token := strings.TrimSpace(st.tokenInput.Text)
	if token == st.cfg.AniList.Token {
		return
	}
	st.cfg.AniList.Token = token
	st.save()
	if st.OnTokenChanged != nil {
		st.OnTokenChanged(token)
	}
	st.setStatus("Token saved")
}

func (st *SettingsScreen) Update() (*ScreenTransition, error) {
	if st.tokenFocused {
		st.tokenInput.Update()
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
			inpututil.IsKeyJustPressed(ebiten.KeyTab) || inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
			st.tokenFocused = false
			st.commitToken()
		}
		return nil, nil
	}

	dir, enter, back := InputState()
	if back {
		return &ScreenTransition{Type: TransitionPop}, nil
	}

	switch dir {
	case DirUp:
		if st.focusIndex == 0 {
			return &ScreenTransition{Type: TransitionFocusNavBar}, nil
		}
		st.focusIndex--
	case DirDown:
		if st.focusIndex < settingCount-1 {
			st.focusIndex++
		}
	}

	mx, my, clicked := MouseJustClicked()
	if clicked {
		if PointInRect(mx, my, st.pasteRect.X, st.pasteRect.Y, st.pasteRect.W, st.pasteRect.H) {
			if text := readClipboard(); text != "" {
				st.tokenInput.SetText(strings.TrimSpace(text))
				st.commitToken()
			}
			return nil, nil
		}
		for i, rect := range st.rowRects {
			if PointInRect(mx, my, rect.X, rect.Y, rect.W, rect.H) {
				st.focusIndex = i
				st.activate()
				return nil, nil
			}
		}
	}

	if enter {
		st.activate()
	}

	return nil, nil
}

func (st *SettingsScreen) activate() {
	switch st.focusIndex {
	case settingToken:
		st.tokenFocused = true
	case settingFullscreen:
		st.cfg.UI.Fullscreen = !st.cfg.UI.Fullscreen
		ebiten.SetFullscreen(st.cfg.UI.Fullscreen)
		st.save()
	case settingClearCache:
		st.imgCache.Clear()
		if err := st.imgCache.ClearDisk(); err != nil {
			log.Printf("Failed to clear disk cache: %v", err)
			st.setStatus("Clear failed: " + err.Error())
			return
		}
		st.setStatus("Image cache cleared")
	}
}

func (st *SettingsScreen) Draw(dst *ebiten.Image) {
	DrawText(dst, "Settings", SectionPadding, float64(NavBarHeight)+10, FontSizeTitle, ColorText)

	x := float64(SectionPadding)
	y := float64(NavBarHeight) + 80
	rowW := 700.0
	rowH := 44.0

	// AniList token
	DrawText(dst, "AniList access token", x, y-22, FontSizeSmall, ColorTextSecondary)
	st.rowRects[settingToken] = ButtonRect{X: x, Y: y, W: rowW, H: rowH}
	st.drawFieldBox(dst, st.rowRects[settingToken], st.focusIndex == settingToken, st.tokenFocused)
	display := maskToken(st.tokenInput.Text)
	if st.tokenFocused {
		display = st.tokenInput.DisplayText()
	} else if display == "" {
		display = "Not set - search still works, higher rate limits with a token"
	}
	DrawText(dst, display, x+12, y+13, FontSizeBody, ColorText)

	st.pasteRect = ButtonRect{X: x + rowW + 12, Y: y, W: 70, H: rowH}
	vector.DrawFilledRect(dst, float32(st.pasteRect.X), float32(st.pasteRect.Y),
		float32(st.pasteRect.W), float32(st.pasteRect.H), ColorSurface, false)
	DrawTextCentered(dst, "Paste", st.pasteRect.X+st.pasteRect.W/2, st.pasteRect.Y+rowH/2,
		FontSizeSmall, ColorTextSecondary)

	// Fullscreen toggle
	y += 80
	st.rowRects[settingFullscreen] = ButtonRect{X: x, Y: y, W: rowW, H: rowH}
	st.drawFieldBox(dst, st.rowRects[settingFullscreen], st.focusIndex == settingFullscreen, false)
	DrawText(dst, "Fullscreen", x+12, y+13, FontSizeBody, ColorText)
	state := "Off"
	if st.cfg.UI.Fullscreen {
		state = "On"
	}
	DrawText(dst, state, x+rowW-50, y+13, FontSizeBody, ColorTextSecondary)

	// Clear image cache
	y += 60
	st.rowRects[settingClearCache] = ButtonRect{X: x, Y: y, W: rowW, H: rowH}
	st.drawFieldBox(dst, st.rowRects[settingClearCache], st.focusIndex == settingClearCache, false)
	DrawText(dst, "Clear image cache", x+12, y+13, FontSizeBody, ColorText)
	DrawText(dst, st.imgCache.CacheDir(), x+12, y+rowH+8, FontSizeSmall, ColorTextMuted)

	// Read-only info
	y += 110
	DrawText(dst, "Library database", x, y, FontSizeSmall, ColorTextSecondary)
	DrawText(dst, st.cfg.Library.DBPath, x, y+20, FontSizeSmall, ColorTextMuted)

	if st.statusTTL > 0 {
		st.statusTTL--
		DrawText(dst, st.statusMsg, x, float64(ScreenHeight)-60, FontSizeBody, ColorSuccess)
	}
}

func (st *SettingsScreen) drawFieldBox(dst *ebiten.Image, r ButtonRect, focused, editing bool) {
	bg := ColorSurface
	if focused {
		bg = ColorSurfaceHover
	}
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), bg, false)
	if editing {
		vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, ColorPrimary, false)
	} else if focused {
		vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, ColorFocusBorder, false)
	}
}

// maskToken hides all but the tail of a stored token.
func maskToken(token string) string {
	n := utf8.RuneCountInString(token)
	if n == 0 {
		return ""
	}
	if n <= 8 {
		return strings.Repeat("•", n)
	}
	runes := []rune(token)
	return fmt.Sprintf("••••••••%s", string(runes[n-4:]))
}
