package game

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	cardsPerRow = 3
	cardW       = 300
	cardH       = 120
	cardPad     = 22
	rosterTop   = 120
)

// rosterSelect lists the persisted players as selectable cards for one
// slot, with Create New, per-card delete (behind a confirm modal) and a
// scrollable grid.
type rosterSelect struct {
	slot  int
	store RecordStore

	cards   []*Card
	loadErr error

	back   *Button
	create *Button

	scrollY   float64
	dragging  bool
	dragLastY int

	confirm *confirmDialog
	pending *Card // card whose delete is awaiting confirmation
}

func newRosterSelect(slot int, store RecordStore) *rosterSelect {
	s := &rosterSelect{
		slot:   slot,
		store:  store,
		back:   newButton(18, 18, 120, 44, "Back", false),
		create: newButton(ScreenW-170, 18, 150, 44, "Create New", true),
	}
	s.reload()
	return s
}

// reload rebuilds the card grid from the store. Cards built from stale
// records are discarded wholesale, so nothing can interact with an entry
// that no longer exists.
func (s *rosterSelect) reload() {
	s.cards = nil
	s.scrollY = 0

	recs, err := s.store.List()
	s.loadErr = err
	if err != nil {
		log.Error("load roster", "err", err)
		return
	}

	x0 := (ScreenW - (cardsPerRow*cardW + (cardsPerRow-1)*cardPad)) / 2
	for idx, rec := range recs {
		col := idx % cardsPerRow
		row := idx / cardsPerRow
		x := x0 + col*(cardW+cardPad)
		y := rosterTop + row*(cardH+cardPad)
		s.cards = append(s.cards, &Card{
			Rect:     image.Rect(x, y, x+cardW, y+cardH),
			Name:     rec.Name,
			Portrait: rec.Portrait,
			Added:    rec.CreatedAt.Format("2006-01-02"),
		})
	}
}

func (s *rosterSelect) update(in *Input) screenEvent {
	if s.confirm != nil {
		resolved, confirmed := s.confirm.update(in)
		if resolved {
			if confirmed && s.pending != nil {
				s.deletePending()
			}
			s.confirm = nil
			s.pending = nil
		}
		return screenEvent{}
	}

	if s.back.Clicked(in) {
		return screenEvent{kind: evCancel}
	}
	if s.create.Clicked(in) {
		return screenEvent{kind: evCreate}
	}

	if in.WheelY != 0 {
		s.scrollY += in.WheelY * 40
	}
	if in.MousePressed {
		s.dragging = true
		s.dragLastY = in.CursorY
	}
	if !in.MouseHeld {
		s.dragging = false
	} else if s.dragging {
		s.scrollY += float64(in.CursorY - s.dragLastY)
		s.dragLastY = in.CursorY
	}
	s.clampScroll()

	for _, c := range s.cards {
		c.updateHover(in.CursorX, in.CursorY, int(s.scrollY))
	}
	if in.Click {
		for _, c := range s.cards {
			switch c.hit(in.CursorX, in.CursorY, int(s.scrollY)) {
			case cardDelete:
				s.pending = c
				s.confirm = newConfirmDialog(
					fmt.Sprintf("Delete %s? This removes their photo.", c.Name))
				return screenEvent{}
			case cardSelect:
				return screenEvent{kind: evDone, id: Identity{Name: c.Name, Portrait: c.Portrait}}
			}
		}
	}
	return screenEvent{}
}

// deletePending removes the pending card's image file (best-effort) and
// its record, then reloads the grid from the store.
func (s *rosterSelect) deletePending() {
	if s.pending.Portrait != "" {
		os.Remove(s.pending.Portrait)
	}
	if err := s.store.DeleteByPortrait(s.pending.Portrait); err != nil {
		log.Error("delete player record", "name", s.pending.Name, "err", err)
	}
	s.reload()
}

// clampScroll keeps the grid from scrolling above its top or past its
// bottom extent.
func (s *rosterSelect) clampScroll() {
	rows := (len(s.cards) + cardsPerRow - 1) / cardsPerRow
	contentH := rows * (cardH + cardPad)
	minScroll := float64(ScreenH - rosterTop - contentH - 40)
	if minScroll > 0 {
		minScroll = 0
	}
	s.scrollY = clamp(s.scrollY, minScroll, 0)
}

func (s *rosterSelect) draw(dst *ebiten.Image) {
	dst.Fill(color.RGBA{R: 12, G: 14, B: 20, A: 255})
	drawTextCentered(dst, fmt.Sprintf("Select Player %d", s.slot+1), 38, textBig, colText)
	s.back.Draw(dst)
	s.create.Draw(dst)

	for _, c := range s.cards {
		c.Draw(dst, int(s.scrollY))
	}
	if s.loadErr != nil {
		drawTextCentered(dst, "Could not load the roster.", ScreenH/2, textBody, colTextDim)
	} else if len(s.cards) == 0 {
		drawTextCentered(dst, "No saved players yet.", ScreenH/2, textBody, colTextDim)
	}

	hint := "Click card to select. 'Del' to remove. Drag/scroll to view."
	drawTextCentered(dst, hint, ScreenH-28, textSmall, colTextDim)

	if s.confirm != nil {
		s.confirm.draw(dst)
	}
}
