package game

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/garsondee/blade-arena/internal/config"
	"github.com/garsondee/blade-arena/internal/portrait"
	"github.com/garsondee/blade-arena/internal/roster"
)

// fakeStore is an in-memory RecordStore.
type fakeStore struct {
	recs    []roster.Record
	appends int
}

func (f *fakeStore) List() ([]roster.Record, error) {
	return append([]roster.Record(nil), f.recs...), nil
}

func (f *fakeStore) Append(name, portraitRef string) error {
	f.appends++
	f.recs = append(f.recs, roster.Record{
		ID:        int64(len(f.recs) + 1),
		Name:      name,
		Portrait:  portraitRef,
		CreatedAt: time.Now(),
	})
	return nil
}

func (f *fakeStore) DeleteByPortrait(ref string) error {
	kept := f.recs[:0]
	for _, r := range f.recs {
		if r.Portrait != ref {
			kept = append(kept, r)
		}
	}
	f.recs = kept
	return nil
}

// okSource resolves acquisition immediately.
type okSource struct{}

func (okSource) Acquire(context.Context, string, string) error { return nil }

// waitingSource blocks until the acquisition is canceled, like a folder
// watch with an empty inbox.
type waitingSource struct{}

func (waitingSource) Acquire(ctx context.Context, _, _ string) error {
	<-ctx.Done()
	return portrait.ErrCanceled
}

func newTestApp(store RecordStore, src portrait.Source) *App {
	rng := rand.New(rand.NewSource(42)) // #nosec G404 -- deterministic tests
	return NewApp(config.Default(), store, src, nil, rng)
}

// step feeds one input frame to the active screen and applies the result.
func step(t *testing.T, a *App, in *Input) {
	t.Helper()
	if err := a.handle(a.screen.update(in)); err != nil {
		t.Fatalf("handle: %v", err)
	}
}

// clickAt is a mouse release at (x,y) with a timestamp safely past any
// debounce window.
func clickAt(x, y int, at time.Time) *Input {
	return &Input{CursorX: x, CursorY: y, Click: true, Now: at}
}

// center of a button, for synthetic clicks.
func mid(b *Button) (int, int) {
	return (b.Rect.Min.X + b.Rect.Max.X) / 2, (b.Rect.Min.Y + b.Rect.Max.Y) / 2
}

// stepUntilResolved pumps the same input until the active screen emits an
// event, then applies it. Needed for capture, which resolves from a
// goroutine.
func stepUntilResolved(t *testing.T, a *App, in *Input) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		ev := a.screen.update(in)
		if ev.kind != evNone {
			if err := a.handle(ev); err != nil {
				t.Fatalf("handle: %v", err)
			}
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatal("screen never resolved")
}

func TestQuickStartWithDeclinedPortraits(t *testing.T) {
	store := &fakeStore{}
	a := newTestApp(store, waitingSource{})
	now := time.Now()

	// Quick Start from the menu.
	menu := a.screen.(*mainMenu)
	x, y := mid(menu.buttons[0])
	step(t, a, clickAt(x, y, now))

	// Player 1 types a name and skips the portrait.
	if _, ok := a.screen.(*nameEntry); !ok {
		t.Fatalf("after Quick Start, screen = %T, want *nameEntry", a.screen)
	}
	step(t, a, &Input{Typed: []rune("Ann")})
	step(t, a, &Input{Enter: true})
	if _, ok := a.screen.(*captureScreen); !ok {
		t.Fatalf("after name entry, screen = %T, want *captureScreen", a.screen)
	}
	stepUntilResolved(t, a, &Input{Escape: true})

	// Player 2 likewise.
	ne, ok := a.screen.(*nameEntry)
	if !ok || ne.slot != 1 {
		t.Fatalf("screen = %T (slot?), want name entry for slot 1", a.screen)
	}
	step(t, a, &Input{Typed: []rune("Ben")})
	step(t, a, &Input{Enter: true})
	stepUntilResolved(t, a, &Input{Escape: true})

	ms, ok := a.screen.(*matchScreen)
	if !ok {
		t.Fatalf("screen = %T, want *matchScreen", a.screen)
	}
	for i, want := range []string{"Ann", "Ben"} {
		c := ms.m.Combatants[i]
		if c.Name != want {
			t.Errorf("combatant %d name = %q, want %q", i, c.Name, want)
		}
		if c.Portrait != "" {
			t.Errorf("combatant %d portrait = %q, want none after declined capture", i, c.Portrait)
		}
		if c.Health != maxHealth || c.Armed {
			t.Errorf("combatant %d not at fresh match state", i)
		}
	}
	if store.appends != 0 {
		t.Errorf("declined captures must not persist records, got %d appends", store.appends)
	}
}

func TestQuickStartPersistsOnCaptureSuccess(t *testing.T) {
	store := &fakeStore{}
	a := newTestApp(store, okSource{})
	now := time.Now()

	menu := a.screen.(*mainMenu)
	x, y := mid(menu.buttons[0])
	step(t, a, clickAt(x, y, now))

	step(t, a, &Input{Typed: []rune("Ann")})
	step(t, a, &Input{Enter: true})
	stepUntilResolved(t, a, &Input{})

	if store.appends != 1 {
		t.Fatalf("appends = %d, want 1 after successful capture", store.appends)
	}
	rec := store.recs[0]
	if rec.Name != "Ann" {
		t.Errorf("persisted name = %q", rec.Name)
	}
	if rec.Portrait == "" || !strings.HasSuffix(rec.Portrait, ".png") {
		t.Errorf("persisted portrait ref = %q, want generated png path", rec.Portrait)
	}
	if a.setup.ids[0].Portrait != rec.Portrait {
		t.Error("slot identity should carry the captured portrait")
	}
}

func TestCanceledNameEntryFallsBackToDefault(t *testing.T) {
	a := newTestApp(&fakeStore{}, waitingSource{})
	now := time.Now()

	menu := a.screen.(*mainMenu)
	x, y := mid(menu.buttons[0])
	step(t, a, clickAt(x, y, now))

	// Empty Enter is ignored, Escape cancels.
	step(t, a, &Input{Enter: true})
	if _, ok := a.screen.(*nameEntry); !ok {
		t.Fatal("empty confirm must not leave name entry")
	}
	step(t, a, &Input{Escape: true})
	stepUntilResolved(t, a, &Input{Escape: true})

	if a.setup.ids[0].Name != "Player1" {
		t.Errorf("slot 0 name = %q, want default Player1", a.setup.ids[0].Name)
	}
}

func TestRosterSelectAndBackFallback(t *testing.T) {
	store := &fakeStore{recs: []roster.Record{
		{ID: 1, Name: "Ann", Portrait: "a.png", CreatedAt: time.Now()},
		{ID: 2, Name: "Ben", Portrait: "b.png", CreatedAt: time.Now()},
	}}
	a := newTestApp(store, waitingSource{})
	now := time.Now()

	menu := a.screen.(*mainMenu)
	x, y := mid(menu.buttons[1])
	step(t, a, clickAt(x, y, now))

	rs, ok := a.screen.(*rosterSelect)
	if !ok {
		t.Fatalf("screen = %T, want *rosterSelect", a.screen)
	}
	if len(rs.cards) != 2 {
		t.Fatalf("cards = %d, want 2", len(rs.cards))
	}

	// Slot 0 picks Ben off his card.
	c := rs.cards[1]
	step(t, a, clickAt(c.Rect.Min.X+40, (c.Rect.Min.Y+c.Rect.Max.Y)/2, now))

	rs, ok = a.screen.(*rosterSelect)
	if !ok || rs.slot != 1 {
		t.Fatalf("screen = %T, want roster select for slot 1", a.screen)
	}

	// Slot 1 backs out and gets the fallback identity.
	x, y = mid(rs.back)
	step(t, a, clickAt(x, y, now))

	ms, ok := a.screen.(*matchScreen)
	if !ok {
		t.Fatalf("screen = %T, want *matchScreen", a.screen)
	}
	if got := ms.m.Combatants[0].Name; got != "Ben" {
		t.Errorf("combatant 0 = %q, want Ben", got)
	}
	if got := ms.m.Combatants[0].Portrait; got != "b.png" {
		t.Errorf("combatant 0 portrait = %q, want b.png", got)
	}
	if got := ms.m.Combatants[1].Name; got != "Player2" {
		t.Errorf("combatant 1 = %q, want fallback Player2", got)
	}
}

func TestRosterDeleteWithConfirm(t *testing.T) {
	store := &fakeStore{recs: []roster.Record{
		{ID: 1, Name: "Ann", Portrait: "a.png", CreatedAt: time.Now()},
		{ID: 2, Name: "Ben", Portrait: "b.png", CreatedAt: time.Now()},
	}}
	rs := newRosterSelect(0, store)
	now := time.Now()

	// Del opens the confirm modal; nothing is removed yet.
	dr := rs.cards[0].delRect()
	rs.update(clickAt((dr.Min.X+dr.Max.X)/2, (dr.Min.Y+dr.Max.Y)/2, now))
	if rs.confirm == nil {
		t.Fatal("delete must be guarded by a confirmation")
	}
	if len(store.recs) != 2 {
		t.Fatal("record removed before confirmation")
	}

	// Cancel keeps the entry.
	x, y := mid(rs.confirm.no)
	rs.update(clickAt(x, y, now))
	if rs.confirm != nil {
		t.Fatal("modal should close on Cancel")
	}
	if len(rs.cards) != 2 {
		t.Fatal("cancel must keep the entry")
	}

	// Confirmed delete removes record and card in the same interaction.
	dr = rs.cards[0].delRect()
	rs.update(clickAt((dr.Min.X+dr.Max.X)/2, (dr.Min.Y+dr.Max.Y)/2, now))
	x, y = mid(rs.confirm.yes)
	rs.update(clickAt(x, y, now))

	if len(store.recs) != 1 || store.recs[0].Name != "Ben" {
		t.Fatalf("store after delete = %+v", store.recs)
	}
	if len(rs.cards) != 1 || rs.cards[0].Name != "Ben" {
		t.Fatalf("visible cards after delete = %d", len(rs.cards))
	}

	// A roster opened later sees the same state.
	if again := newRosterSelect(1, store); len(again.cards) != 1 {
		t.Error("subsequent roster screens must reflect the deletion")
	}
}

func TestRosterCreateNewFlow(t *testing.T) {
	store := &fakeStore{}
	a := newTestApp(store, okSource{})
	now := time.Now()

	menu := a.screen.(*mainMenu)
	x, y := mid(menu.buttons[1])
	step(t, a, clickAt(x, y, now))

	rs := a.screen.(*rosterSelect)
	x, y = mid(rs.create)
	step(t, a, clickAt(x, y, now))

	if _, ok := a.screen.(*nameEntry); !ok {
		t.Fatalf("screen = %T, want *nameEntry", a.screen)
	}
	step(t, a, &Input{Typed: []rune("Cara")})
	step(t, a, &Input{Enter: true})
	stepUntilResolved(t, a, &Input{})

	if store.appends != 1 || store.recs[0].Name != "Cara" {
		t.Fatalf("store after create = %+v", store.recs)
	}
	if a.setup.ids[0].Name != "Cara" {
		t.Errorf("slot 0 identity = %q, want Cara", a.setup.ids[0].Name)
	}
	rs, ok := a.screen.(*rosterSelect)
	if !ok || rs.slot != 1 {
		t.Fatalf("screen = %T, want roster select for slot 1", a.screen)
	}
	if len(rs.cards) != 1 {
		t.Error("slot 1 roster should list the freshly created player")
	}
}

func TestRosterCreateNewCanceledKeepsRosterActive(t *testing.T) {
	store := &fakeStore{}
	a := newTestApp(store, waitingSource{})
	now := time.Now()

	menu := a.screen.(*mainMenu)
	x, y := mid(menu.buttons[1])
	step(t, a, clickAt(x, y, now))

	rs := a.screen.(*rosterSelect)
	x, y = mid(rs.create)
	step(t, a, clickAt(x, y, now))

	step(t, a, &Input{Escape: true})

	rs, ok := a.screen.(*rosterSelect)
	if !ok || rs.slot != 0 {
		t.Fatalf("screen = %T, want roster select still on slot 0", a.screen)
	}
	if a.setup.creating {
		t.Error("create flow flag should be cleared")
	}
	if store.appends != 0 {
		t.Error("nothing may be persisted for an abandoned create")
	}
}

func TestPauseSuspendsSimulationAndLoopsToMenu(t *testing.T) {
	a := newTestApp(&fakeStore{}, waitingSource{})
	a.setup.ids = [2]Identity{{Name: "Ann"}, {Name: "Ben"}}
	a.startMatch()
	now := time.Now()

	ms := a.screen.(*matchScreen)
	parkPickups(ms.m)

	// Escape pauses; movement input is ignored while paused.
	step(t, a, &Input{Escape: true})
	if !ms.paused {
		t.Fatal("Escape should pause the match")
	}
	before := ms.m.Combatants[0].X
	step(t, a, &Input{DT: frame, Move: MoveInput{Right: [2]bool{true, false}}})
	if ms.m.Combatants[0].X != before {
		t.Error("simulation must be suspended while paused")
	}

	// Resume continues in place.
	x, y := mid(ms.resume)
	step(t, a, clickAt(x, y, now))
	if ms.paused {
		t.Fatal("Resume should unpause")
	}

	// Restart from the pause menu reinitialises the match.
	ms.m.Combatants[0].Health = 1
	step(t, a, &Input{Escape: true})
	x, y = mid(ms.restart)
	step(t, a, clickAt(x, y, now))
	if ms.paused || ms.m.Combatants[0].Health != maxHealth {
		t.Error("pause-menu Restart should reset and resume")
	}

	// Main Menu abandons the match.
	step(t, a, &Input{Escape: true})
	x, y = mid(ms.menu)
	step(t, a, clickAt(x, y, now))
	if _, ok := a.screen.(*mainMenu); !ok {
		t.Fatalf("screen = %T, want *mainMenu", a.screen)
	}

	// Looping back through the roster with Back restores the previous
	// players, not the cold-start defaults.
	menu := a.screen.(*mainMenu)
	x, y = mid(menu.buttons[1])
	step(t, a, clickAt(x, y, now))
	for i := 0; i < 2; i++ {
		rs := a.screen.(*rosterSelect)
		x, y = mid(rs.back)
		step(t, a, clickAt(x, y, now))
	}
	ms2, ok := a.screen.(*matchScreen)
	if !ok {
		t.Fatalf("screen = %T, want *matchScreen", a.screen)
	}
	if ms2.m.Combatants[0].Name != "Ann" || ms2.m.Combatants[1].Name != "Ben" {
		t.Errorf("loop-back identities = %q/%q, want Ann/Ben",
			ms2.m.Combatants[0].Name, ms2.m.Combatants[1].Name)
	}
}

func TestRestartKeyDuringPlay(t *testing.T) {
	ms := newMatchScreen(newTestMatch(11))
	parkPickups(ms.m)
	ms.m.Combatants[0].Health = 2
	ms.m.Combatants[0].Armed = true

	ms.update(&Input{Restart: true, DT: frame})

	c := ms.m.Combatants[0]
	if c.Health != maxHealth || c.Armed {
		t.Errorf("restart key did not reset: health=%v armed=%v", c.Health, c.Armed)
	}
}

func TestSettingsAndCreditsReturnToMenu(t *testing.T) {
	a := newTestApp(&fakeStore{}, waitingSource{})
	now := time.Now()

	menu := a.screen.(*mainMenu)
	x, y := mid(menu.buttons[2])
	step(t, a, clickAt(x, y, now))

	ss, ok := a.screen.(*settingsScreen)
	if !ok {
		t.Fatalf("screen = %T, want *settingsScreen", a.screen)
	}
	if !ss.toggle.Disabled || ss.toggle.Label != "Music: N/A" {
		t.Error("toggle should be inert without an audio backend")
	}
	x, y = mid(ss.back)
	step(t, a, clickAt(x, y, now))
	if _, ok := a.screen.(*mainMenu); !ok {
		t.Fatalf("screen = %T, want *mainMenu after settings Back", a.screen)
	}

	menu = a.screen.(*mainMenu)
	x, y = mid(menu.buttons[3])
	step(t, a, clickAt(x, y, now))
	cs, ok := a.screen.(*creditsScreen)
	if !ok {
		t.Fatalf("screen = %T, want *creditsScreen", a.screen)
	}
	x, y = mid(cs.back)
	step(t, a, clickAt(x, y, now))
	if _, ok := a.screen.(*mainMenu); !ok {
		t.Fatal("credits Back should return to the menu")
	}
}

func TestQuitTerminates(t *testing.T) {
	a := newTestApp(&fakeStore{}, waitingSource{})
	menu := a.screen.(*mainMenu)
	x, y := mid(menu.buttons[4])
	err := a.handle(a.screen.update(clickAt(x, y, time.Now())))
	if err == nil {
		t.Fatal("Quit should end the run loop")
	}
}

func TestSanitizeName(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Ann", "Ann"},
		{"Ann Smith", "Ann_Smith"},
		{"a/b:c", "abc"},
		{"!!!", "player"},
	}
	for _, tc := range cases {
		if got := sanitizeName(tc.in); got != tc.want {
			t.Errorf("sanitizeName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
