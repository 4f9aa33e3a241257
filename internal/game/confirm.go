package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// confirmDialog is the binary delete confirmation modal. Neither button
// is highlighted until hovered.
type confirmDialog struct {
	prompt  string
	yes, no *Button
}

func newConfirmDialog(prompt string) *confirmDialog {
	return &confirmDialog{
		prompt: prompt,
		yes:    newButton(ScreenW/2-140, ScreenH/2+10, 120, 42, "Delete", false),
		no:     newButton(ScreenW/2+20, ScreenH/2+10, 120, 42, "Cancel", false),
	}
}

// update reports (resolved, confirmed).
func (d *confirmDialog) update(in *Input) (bool, bool) {
	if d.yes.Clicked(in) {
		return true, true
	}
	if d.no.Clicked(in) {
		return true, false
	}
	return false, false
}

func (d *confirmDialog) draw(dst *ebiten.Image) {
	dimOverlay(dst, 160)

	const boxW, boxH = 640, 160
	bx := float32(ScreenW/2 - boxW/2)
	by := float32(ScreenH/2 - boxH/2)
	fillRoundedRect(dst, bx, by, boxW, boxH, 12, color.RGBA{R: 26, G: 28, B: 34, A: 255})

	drawTextCentered(dst, d.prompt, ScreenH/2-50, textBody, colText)
	d.yes.Draw(dst)
	d.no.Draw(dst)
}
