package game

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/garsondee/blade-arena/internal/config"
	"github.com/garsondee/blade-arena/internal/portrait"
	"github.com/garsondee/blade-arena/internal/roster"
)

// RecordStore is the persistence boundary the navigator needs: list,
// append and delete-by-portrait over the player roster.
type RecordStore interface {
	List() ([]roster.Record, error)
	Append(name, portrait string) error
	DeleteByPortrait(ref string) error
}

// screen is one state of the navigator. update consumes the frame's input
// snapshot and reports a transition event; draw renders the screen.
type screen interface {
	update(in *Input) screenEvent
	draw(dst *ebiten.Image)
}

type eventKind int

const (
	evNone   eventKind = iota
	evDone             // screen resolved with its payload
	evCancel           // back / escape / acquisition failure
	evCreate           // roster select: Create New pressed
	evMenu             // match: pause menu chose Main Menu
)

type menuAction int

const (
	actionNone menuAction = iota
	actionQuick
	actionRoster
	actionSettings
	actionCredits
	actionQuit
)

// screenEvent is the value a screen returns to the navigator. Which
// fields are meaningful depends on the originating screen.
type screenEvent struct {
	kind   eventKind
	action menuAction
	name   string
	id     Identity
}

type setupMode int

const (
	setupNone setupMode = iota
	setupQuick
	setupRoster
)

// matchSetup tracks the sequential slot-resolution flow between the main
// menu and a match start.
type matchSetup struct {
	mode     setupMode
	slot     int  // 0 or 1: the slot currently being resolved
	creating bool // roster mode: inside the Create New subflow
	ids      [2]Identity
}

// App is the top-level ebiten game: it owns the active screen, the slot
// resolution flow and the handoff into the match simulator.
type App struct {
	cfg    config.Config
	store  RecordStore
	source portrait.Source
	music  *Music
	rng    *rand.Rand
	reader *inputReader

	screen   screen
	setup    matchSetup
	fallback [2]Identity // identities used when a roster slot is backed out
}

// NewApp builds the application rooted at the main menu.
func NewApp(cfg config.Config, store RecordStore, source portrait.Source, music *Music, rng *rand.Rand) *App {
	return &App{
		cfg:    cfg,
		store:  store,
		source: source,
		music:  music,
		rng:    rng,
		reader: newInputReader(),
		screen: newMainMenu(),
		fallback: [2]Identity{
			{Name: "Player1"},
			{Name: "Player2"},
		},
	}
}

func (a *App) Update() error {
	in := a.reader.Read()
	return a.handle(a.screen.update(in))
}

func (a *App) Draw(dst *ebiten.Image) {
	a.screen.draw(dst)
}

func (a *App) Layout(_, _ int) (int, int) {
	return ScreenW, ScreenH
}

// handle applies one screen event to the navigator. It is the whole
// transition table, driven in tests with synthetic events and inputs.
func (a *App) handle(ev screenEvent) error {
	if ev.kind == evNone {
		return nil
	}
	switch a.screen.(type) {
	case *mainMenu:
		switch ev.action {
		case actionQuick:
			a.setup = matchSetup{mode: setupQuick}
			a.screen = newNameEntry(0)
		case actionRoster:
			a.setup = matchSetup{mode: setupRoster}
			a.screen = newRosterSelect(0, a.store)
		case actionSettings:
			a.screen = newSettingsScreen(a.music)
		case actionCredits:
			a.screen = newCreditsScreen()
		case actionQuit:
			return ebiten.Termination
		}

	case *nameEntry:
		name := ev.name
		if a.setup.mode == setupRoster && a.setup.creating {
			if ev.kind == evCancel {
				// Create New abandoned: roster stays active, slot unresolved.
				a.setup.creating = false
				a.screen = newRosterSelect(a.setup.slot, a.store)
				return nil
			}
			a.setup.ids[a.setup.slot] = Identity{Name: name}
			a.screen = newCapture(a.setup.slot, name, a.portraitDest(name), a.cfg.PortraitInbox, a.source)
			return nil
		}
		// Quick-start: a canceled name entry falls back to the default
		// and the flow proceeds to capture either way.
		if ev.kind == evCancel || name == "" {
			name = defaultName(a.setup.slot)
		}
		a.setup.ids[a.setup.slot] = Identity{Name: name}
		a.screen = newCapture(a.setup.slot, name, a.portraitDest(name), a.cfg.PortraitInbox, a.source)

	case *captureScreen:
		if ev.kind == evDone {
			a.setup.ids[a.setup.slot] = ev.id
			if err := a.store.Append(ev.id.Name, ev.id.Portrait); err != nil {
				log.Error("persist player record", "name", ev.id.Name, "err", err)
			}
			a.advanceSlot()
			return nil
		}
		// Canceled or failed: degrade to no portrait.
		if a.setup.mode == setupRoster && a.setup.creating {
			a.setup.creating = false
			a.screen = newRosterSelect(a.setup.slot, a.store)
			return nil
		}
		a.setup.ids[a.setup.slot] = Identity{Name: a.setup.ids[a.setup.slot].Name}
		a.advanceSlot()

	case *rosterSelect:
		switch ev.kind {
		case evDone:
			a.setup.ids[a.setup.slot] = ev.id
			a.advanceSlot()
		case evCancel:
			// Back resolves the slot with the fallback identity: the
			// defaults on a fresh run, the previous players after a
			// pause-menu loop-back.
			a.setup.ids[a.setup.slot] = a.fallback[a.setup.slot]
			a.advanceSlot()
		case evCreate:
			a.setup.creating = true
			a.screen = newNameEntry(a.setup.slot)
		}

	case *settingsScreen, *creditsScreen:
		if ev.kind == evCancel {
			a.screen = newMainMenu()
		}

	case *matchScreen:
		if ev.kind == evMenu {
			a.screen = newMainMenu()
		}
	}
	return nil
}

// advanceSlot moves the setup flow to the second slot or starts the match.
func (a *App) advanceSlot() {
	a.setup.creating = false
	if a.setup.slot == 0 {
		a.setup.slot = 1
		if a.setup.mode == setupQuick {
			a.screen = newNameEntry(1)
		} else {
			a.screen = newRosterSelect(1, a.store)
		}
		return
	}
	a.startMatch()
}

func (a *App) startMatch() {
	a.fallback = a.setup.ids
	a.screen = newMatchScreen(NewMatch(a.setup.ids, a.rng))
}

// portraitDest builds a fresh portrait path under the assets directory.
func (a *App) portraitDest(name string) string {
	return filepath.Join(a.cfg.AssetsDir,
		fmt.Sprintf("%s_%04d.png", sanitizeName(name), 1000+a.rng.Intn(9000)))
}

func defaultName(slot int) string {
	return fmt.Sprintf("Player%d", slot+1)
}

// sanitizeName keeps a file-system safe subset of the player name.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, ch := range name {
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9':
			b.WriteRune(ch)
		case ch == ' ':
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "player"
	}
	return b.String()
}
