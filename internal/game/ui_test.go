package game

import (
	"image"
	"testing"
	"time"

	"github.com/garsondee/blade-arena/internal/roster"
)

func TestButtonDebounce(t *testing.T) {
	b := newButton(0, 0, 100, 40, "x", false)
	t0 := time.Now()

	if !b.Clicked(clickAt(50, 20, t0)) {
		t.Fatal("first click should register")
	}
	if b.Clicked(clickAt(50, 20, t0.Add(100*time.Millisecond))) {
		t.Error("second click inside the debounce window should be swallowed")
	}
	if !b.Clicked(clickAt(50, 20, t0.Add(400*time.Millisecond))) {
		t.Error("click after the debounce window should register")
	}
}

func TestButtonIgnoresMisses(t *testing.T) {
	b := newButton(10, 10, 100, 40, "x", false)
	if b.Clicked(clickAt(5, 5, time.Now())) {
		t.Error("click outside the rect should not register")
	}
	b.Disabled = true
	if b.Clicked(clickAt(50, 20, time.Now().Add(time.Second))) {
		t.Error("disabled button should not register")
	}
}

func TestNameEntryEditing(t *testing.T) {
	n := newNameEntry(0)

	n.update(&Input{Typed: []rune("Anna")})
	n.update(&Input{Backspace: true})
	if got := string(n.value); got != "Ann" {
		t.Fatalf("value = %q, want Ann", got)
	}

	// The cap holds no matter how much is pasted in one frame.
	n.update(&Input{Typed: []rune("0123456789012345678901234")})
	if len(n.value) != maxNameLen {
		t.Fatalf("len = %d, want capped at %d", len(n.value), maxNameLen)
	}

	// Whitespace-only values cannot be confirmed.
	n.value = []rune("   ")
	if ev := n.update(&Input{Enter: true}); ev.kind != evNone {
		t.Error("whitespace-only Enter must not confirm")
	}
	n.value = []rune("  Ann ")
	ev := n.update(&Input{Enter: true})
	if ev.kind != evDone || ev.name != "Ann" {
		t.Errorf("event = %+v, want trimmed Ann", ev)
	}
}

func TestRosterScrollClamp(t *testing.T) {
	recs := make([]roster.Record, 12) // 4 rows, taller than the viewport
	for i := range recs {
		recs[i] = roster.Record{ID: int64(i + 1), Name: "P", CreatedAt: time.Now()}
	}
	rs := newRosterSelect(0, &fakeStore{recs: recs})

	// Scrolling up from the top stays pinned at 0.
	rs.update(&Input{WheelY: 5})
	if rs.scrollY != 0 {
		t.Errorf("scrollY = %v, want 0", rs.scrollY)
	}

	// Scrolling far down stops at the content extent.
	rs.update(&Input{WheelY: -100})
	rows := 4
	wantMin := float64(ScreenH - rosterTop - rows*(cardH+cardPad) - 40)
	if rs.scrollY != wantMin {
		t.Errorf("scrollY = %v, want clamped to %v", rs.scrollY, wantMin)
	}

	// A short roster never scrolls at all.
	short := newRosterSelect(0, &fakeStore{recs: recs[:2]})
	short.update(&Input{WheelY: -100})
	if short.scrollY != 0 {
		t.Errorf("short roster scrollY = %v, want 0", short.scrollY)
	}
}

func TestRosterDragScroll(t *testing.T) {
	recs := make([]roster.Record, 12)
	for i := range recs {
		recs[i] = roster.Record{ID: int64(i + 1), Name: "P", CreatedAt: time.Now()}
	}
	rs := newRosterSelect(0, &fakeStore{recs: recs})

	rs.update(&Input{MousePressed: true, MouseHeld: true, CursorY: 400})
	rs.update(&Input{MouseHeld: true, CursorY: 360})
	if rs.scrollY != -40 {
		t.Errorf("scrollY after drag = %v, want -40", rs.scrollY)
	}

	// Releasing ends the drag; later motion does not scroll.
	rs.update(&Input{CursorY: 200})
	if rs.scrollY != -40 {
		t.Errorf("scrollY after release = %v, want unchanged -40", rs.scrollY)
	}
}

func TestCardHitRespectsScroll(t *testing.T) {
	c := &Card{Rect: image.Rect(100, 300, 100+cardW, 300+cardH)}

	if got := c.hit(150, 350, 0); got != cardSelect {
		t.Errorf("unscrolled hit = %v, want cardSelect", got)
	}
	// Scrolled up by 200: the card is drawn at y 100..220.
	if got := c.hit(150, 150, -200); got != cardSelect {
		t.Errorf("scrolled hit = %v, want cardSelect", got)
	}
	if got := c.hit(150, 350, -200); got != cardNone {
		t.Errorf("stale-position hit = %v, want cardNone", got)
	}

	dr := c.delRect()
	if got := c.hit((dr.Min.X+dr.Max.X)/2, (dr.Min.Y+dr.Max.Y)/2-200, -200); got != cardDelete {
		t.Errorf("scrolled delete hit = %v, want cardDelete", got)
	}
}

func TestConfirmDialogResolution(t *testing.T) {
	now := time.Now()

	d := newConfirmDialog("Delete Ann?")
	x, y := mid(d.yes)
	if resolved, confirmed := d.update(clickAt(x, y, now)); !resolved || !confirmed {
		t.Error("Delete should resolve confirmed")
	}

	d = newConfirmDialog("Delete Ann?")
	x, y = mid(d.no)
	if resolved, confirmed := d.update(clickAt(x, y, now)); !resolved || confirmed {
		t.Error("Cancel should resolve unconfirmed")
	}

	d = newConfirmDialog("Delete Ann?")
	if resolved, _ := d.update(clickAt(2, 2, now)); resolved {
		t.Error("a miss should leave the modal open")
	}
}
