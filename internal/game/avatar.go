package game

import (
	"fmt"
	"image"
	"image/color"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	xdraw "golang.org/x/image/draw"
)

// loadCircularAvatar loads an image file, scales it to size x size, and
// clips it to a circle by clearing alpha outside the inscribed disc.
func loadCircularAvatar(path string, size int) (*ebiten.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("avatar: open %s: %w", path, err)
	}
	src, _, err := image.Decode(f)
	f.Close()
	if err != nil {
		return nil, fmt.Errorf("avatar: decode %s: %w", path, err)
	}

	scaled := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	// Circular clip: zero out everything outside the inscribed disc.
	r := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - r
			dy := float64(y) + 0.5 - r
			if dx*dx+dy*dy > r*r {
				scaled.SetRGBA(x, y, color.RGBA{})
			}
		}
	}
	return ebiten.NewImageFromImage(scaled), nil
}

// drawPlaceholderDisc draws the flat fallback avatar disc used when a
// combatant or card has no portrait.
func drawPlaceholderDisc(dst *ebiten.Image, cx, cy, r float32, col color.RGBA) {
	vector.FillCircle(dst, cx, cy, r, col, true)
}

// Placeholder disc colours per slot, matching the original's grey-blue and
// grey-red fallbacks.
var placeholderColors = [2]color.RGBA{
	{R: 130, G: 140, B: 150, A: 255},
	{R: 150, G: 120, B: 120, A: 255},
}
