package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

type creditsScreen struct {
	back *Button
}

func newCreditsScreen() *creditsScreen {
	return &creditsScreen{back: newButton(ScreenW/2-70, ScreenH-90, 140, 44, "Back", false)}
}

func (c *creditsScreen) update(in *Input) screenEvent {
	if c.back.Clicked(in) {
		return screenEvent{kind: evCancel}
	}
	return screenEvent{}
}

func (c *creditsScreen) draw(dst *ebiten.Image) {
	dst.Fill(color.RGBA{R: 10, G: 10, B: 14, A: 255})
	drawTextCentered(dst, "Credits & Info", 60, textBig, colText)

	lines := []string{
		"A local two-player blade duel with roster portraits",
		"Controls: Player1 - WASD | Player2 - Arrow keys",
		"ESC - Pause | R - Restart",
	}
	for i, l := range lines {
		drawTextCentered(dst, l, float64(140+i*28), textBody, colText)
	}
	c.back.Draw(dst)
}
