package game

import (
	"context"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/garsondee/blade-arena/internal/portrait"
)

// captureScreen drives portrait acquisition for one slot. The acquisition
// runs in its own goroutine under a safety timeout; the screen polls the
// result each frame and Escape cancels the wait. Any failure degrades to
// no portrait (evCancel), never to an aborted flow.
type captureScreen struct {
	slot  int
	name  string
	dest  string
	inbox string

	cancel context.CancelFunc
	result chan error
}

func newCapture(slot int, name, dest, inbox string, src portrait.Source) *captureScreen {
	ctx, cancel := context.WithTimeout(context.Background(), captureTimeout)
	c := &captureScreen{
		slot:   slot,
		name:   name,
		dest:   dest,
		inbox:  inbox,
		cancel: cancel,
		result: make(chan error, 1),
	}
	go func() {
		defer cancel()
		c.result <- src.Acquire(ctx, name, dest)
	}()
	return c
}

func (c *captureScreen) update(in *Input) screenEvent {
	if in.Escape {
		c.cancel()
	}
	select {
	case err := <-c.result:
		if err == nil {
			return screenEvent{kind: evDone, id: Identity{Name: c.name, Portrait: c.dest}}
		}
		return screenEvent{kind: evCancel}
	default:
	}
	return screenEvent{}
}

func (c *captureScreen) draw(dst *ebiten.Image) {
	dst.Fill(colBG)
	drawTextCentered(dst, fmt.Sprintf("Portrait for %s", c.name), 180, textBig, colText)
	drawTextCentered(dst, fmt.Sprintf("Drop a photo into %s", c.inbox), 260, textBody, colText)
	drawTextCentered(dst, "ESC to skip (a placeholder avatar is used)", 300, textBody, colTextDim)

	drawPlaceholderDisc(dst, ScreenW/2, 420, 48, color.RGBA{R: 60, G: 66, B: 78, A: 255})
}
