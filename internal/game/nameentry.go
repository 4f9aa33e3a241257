package game

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// nameEntry is the modal text prompt for a player name. Enter confirms
// once the trimmed value is non-empty, Escape cancels, input is capped at
// maxNameLen characters.
type nameEntry struct {
	slot   int
	prompt string
	value  []rune
}

func newNameEntry(slot int) *nameEntry {
	return &nameEntry{
		slot:   slot,
		prompt: fmt.Sprintf("Enter name for Player %d", slot+1),
	}
}

func (n *nameEntry) update(in *Input) screenEvent {
	for _, ch := range in.Typed {
		if len(n.value) < maxNameLen {
			n.value = append(n.value, ch)
		}
	}
	if in.Backspace && len(n.value) > 0 {
		n.value = n.value[:len(n.value)-1]
	}
	if in.Enter {
		if trimmed := strings.TrimSpace(string(n.value)); trimmed != "" {
			return screenEvent{kind: evDone, name: trimmed}
		}
	}
	if in.Escape {
		return screenEvent{kind: evCancel}
	}
	return screenEvent{}
}

func (n *nameEntry) draw(dst *ebiten.Image) {
	dst.Fill(colBG)
	dimOverlay(dst, 160)

	const boxW, boxH = 640, 160
	bx := float32(ScreenW/2 - boxW/2)
	by := float32(ScreenH/2 - boxH/2)
	fillRoundedRect(dst, bx, by, boxW, boxH, 12, color.RGBA{R: 26, G: 28, B: 34, A: 255})

	drawTextCentered(dst, n.prompt, ScreenH/2-40, textBig, colText)

	shown := string(n.value)
	if time.Now().UnixMilli()%1000 < 500 {
		shown += "|"
	}
	drawText(dst, shown, float64(bx)+40, ScreenH/2-5, textBody, color.RGBA{R: 230, G: 230, B: 230, A: 255})
	drawText(dst, "Enter = OK. Esc = Cancel", float64(bx)+40, float64(by)+boxH-36, textSmall,
		color.RGBA{R: 150, G: 150, B: 150, A: 255})
}
