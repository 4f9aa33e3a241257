package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// settingsScreen exposes the single music on/off toggle.
type settingsScreen struct {
	music  *Music
	back   *Button
	toggle *Button
}

func newSettingsScreen(music *Music) *settingsScreen {
	s := &settingsScreen{
		music:  music,
		back:   newButton(ScreenW/2-70, ScreenH-90, 140, 44, "Back", false),
		toggle: newButton(ScreenW/2-120, 150, 240, 50, "", false),
	}
	s.toggle.Disabled = music == nil
	s.refreshLabel()
	return s
}

func (s *settingsScreen) refreshLabel() {
	if s.music == nil {
		s.toggle.Label = "Music: N/A"
		return
	}
	if s.music.Enabled() {
		s.toggle.Label = "Music: ON"
	} else {
		s.toggle.Label = "Music: OFF"
	}
}

func (s *settingsScreen) update(in *Input) screenEvent {
	if s.back.Clicked(in) {
		return screenEvent{kind: evCancel}
	}
	if s.toggle.Clicked(in) {
		s.music.Toggle()
		s.refreshLabel()
	}
	return screenEvent{}
}

func (s *settingsScreen) draw(dst *ebiten.Image) {
	dst.Fill(color.RGBA{R: 10, G: 10, B: 14, A: 255})
	drawTextCentered(dst, "Settings", 60, textBig, colText)
	s.toggle.Draw(dst)
	s.back.Draw(dst)
}
