package game

import (
	"bytes"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
)

const musicSampleRate = 44100

// Music wraps the looping background track. A nil *Music is valid and
// means music is unavailable (no bgm file, or the audio device failed);
// every method is nil-safe so callers never special-case it.
type Music struct {
	player  *audio.Player
	enabled bool
}

// NewMusic loads and starts the background track. The audio context is
// created here, so NewMusic must be called at most once per process.
func NewMusic(path string) (*Music, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("music: read %s: %w", path, err)
	}
	ctx := audio.NewContext(musicSampleRate)
	stream, err := mp3.DecodeWithSampleRate(musicSampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("music: decode %s: %w", path, err)
	}
	loop := audio.NewInfiniteLoop(stream, stream.Length())
	player, err := ctx.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("music: player: %w", err)
	}
	player.SetVolume(0.4)
	return &Music{player: player}, nil
}

// Start begins playback if enabled.
func (m *Music) Start(enabled bool) {
	if m == nil {
		return
	}
	m.enabled = enabled
	if enabled {
		m.player.Play()
	}
}

// Enabled reports whether music is currently on.
func (m *Music) Enabled() bool {
	return m != nil && m.enabled
}

// Toggle flips music on/off, pausing or resuming the player.
func (m *Music) Toggle() {
	if m == nil {
		return
	}
	m.enabled = !m.enabled
	if m.enabled {
		m.player.Play()
	} else {
		m.player.Pause()
	}
}
