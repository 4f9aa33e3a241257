package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

type mainMenu struct {
	buttons []*Button
	actions []menuAction
}

func newMainMenu() *mainMenu {
	cx := ScreenW/2 - 150
	return &mainMenu{
		buttons: []*Button{
			newButton(cx, 200, 300, 64, "Quick Start", true),
			newButton(cx, 290, 300, 54, "Player Select", false),
			newButton(cx, 354, 300, 54, "Settings", false),
			newButton(cx, 418, 300, 54, "Credits", false),
			newButton(cx, 482, 300, 54, "Quit", false),
		},
		actions: []menuAction{actionQuick, actionRoster, actionSettings, actionCredits, actionQuit},
	}
}

func (m *mainMenu) update(in *Input) screenEvent {
	for i, b := range m.buttons {
		if b.Clicked(in) {
			return screenEvent{kind: evDone, action: m.actions[i]}
		}
	}
	return screenEvent{}
}

func (m *mainMenu) draw(dst *ebiten.Image) {
	dst.Fill(color.RGBA{R: 10, G: 12, B: 18, A: 255})
	drawTextCentered(dst, "Blade Arena", 72, textBig, colText)
	for _, b := range m.buttons {
		b.Draw(dst)
	}
}
