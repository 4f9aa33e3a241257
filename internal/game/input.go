package game

import (
	"time"
	"unicode"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
)

// Fixed key bindings. Not configurable at runtime.
var (
	moveKeys = [2][4]ebiten.Key{
		{ebiten.KeyW, ebiten.KeyS, ebiten.KeyA, ebiten.KeyD},
		{ebiten.KeyArrowUp, ebiten.KeyArrowDown, ebiten.KeyArrowLeft, ebiten.KeyArrowRight},
	}
	pauseKey   = ebiten.KeyEscape
	restartKey = ebiten.KeyR
)

// Input is the per-frame input snapshot. It is the only thing screens and
// the simulator see, so every screen update and simulation step runs
// headless in tests with synthetic snapshots.
type Input struct {
	DT  float64
	Now time.Time

	CursorX, CursorY int
	Click            bool // left button released this frame
	MousePressed     bool // left button went down this frame
	MouseHeld        bool
	WheelY           float64

	// Typed holds printable characters entered this frame, including a
	// clipboard paste.
	Typed []rune

	Enter     bool
	Escape    bool
	Backspace bool
	Restart   bool

	Move MoveInput
}

// inputReader gathers an Input snapshot from ebiten once per frame.
// Edge detection is done against the previous frame's state.
type inputReader struct {
	prevKeys  map[ebiten.Key]bool
	prevMouse bool
	typedBuf  []rune
}

func newInputReader() *inputReader {
	return &inputReader{prevKeys: make(map[ebiten.Key]bool)}
}

// justPressed reports a rising edge for k and records the current state.
func (r *inputReader) justPressed(k ebiten.Key, current map[ebiten.Key]bool) bool {
	down := ebiten.IsKeyPressed(k)
	current[k] = down
	return down && !r.prevKeys[k]
}

// Read builds the snapshot for this frame.
func (r *inputReader) Read() *Input {
	current := map[ebiten.Key]bool{}

	in := &Input{
		DT:  1.0 / float64(ebiten.TPS()),
		Now: time.Now(),
	}
	in.CursorX, in.CursorY = ebiten.CursorPosition()

	mouseDown := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	in.MouseHeld = mouseDown
	in.MousePressed = mouseDown && !r.prevMouse
	in.Click = !mouseDown && r.prevMouse
	r.prevMouse = mouseDown

	_, in.WheelY = ebiten.Wheel()

	r.typedBuf = ebiten.AppendInputChars(r.typedBuf[:0])
	for _, ch := range r.typedBuf {
		if unicode.IsPrint(ch) {
			in.Typed = append(in.Typed, ch)
		}
	}
	// Ctrl+V pastes the clipboard into the typed stream.
	if r.justPressed(ebiten.KeyV, current) && ebiten.IsKeyPressed(ebiten.KeyControl) {
		if s, err := clipboard.ReadAll(); err == nil {
			for _, ch := range s {
				if unicode.IsPrint(ch) {
					in.Typed = append(in.Typed, ch)
				}
			}
		}
	}

	in.Enter = r.justPressed(ebiten.KeyEnter, current)
	in.Escape = r.justPressed(pauseKey, current)
	in.Backspace = r.justPressed(ebiten.KeyBackspace, current)
	in.Restart = r.justPressed(restartKey, current)

	for i := 0; i < 2; i++ {
		in.Move.Up[i] = ebiten.IsKeyPressed(moveKeys[i][0])
		in.Move.Down[i] = ebiten.IsKeyPressed(moveKeys[i][1])
		in.Move.Left[i] = ebiten.IsKeyPressed(moveKeys[i][2])
		in.Move.Right[i] = ebiten.IsKeyPressed(moveKeys[i][3])
	}

	r.prevKeys = current
	return in
}
