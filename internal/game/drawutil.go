package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// uiFace is the single bitmap face; headings are drawn scaled up.
var uiFace = text.NewGoXFace(basicfont.Face7x13)

// Text scale factors standing in for the original small/regular/big fonts.
const (
	textSmall = 1.0
	textBody  = 1.5
	textBig   = 2.5
)

var (
	colText    = color.RGBA{R: 245, G: 245, B: 245, A: 255}
	colTextDim = color.RGBA{R: 170, G: 170, B: 170, A: 255}
	colBG      = color.RGBA{R: 12, G: 14, B: 20, A: 255}
)

func textWidth(s string, scale float64) float64 {
	return text.Advance(s, uiFace) * scale
}

func drawText(dst *ebiten.Image, s string, x, y, scale float64, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(dst, s, uiFace, op)
}

// drawTextCentered draws s horizontally centered in the window at height y.
func drawTextCentered(dst *ebiten.Image, s string, y, scale float64, col color.Color) {
	drawText(dst, s, (ScreenW-textWidth(s, scale))/2, y, scale, col)
}

// roundedRectPath builds a clockwise rounded-rectangle outline.
func roundedRectPath(x, y, w, h, r float32) *vector.Path {
	const (
		q0 = float32(-math.Pi / 2)
		q1 = float32(0)
		q2 = float32(math.Pi / 2)
		q3 = float32(math.Pi)
		q4 = float32(3 * math.Pi / 2)
	)
	var p vector.Path
	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.Arc(x+w-r, y+r, r, q0, q1, vector.Clockwise)
	p.LineTo(x+w, y+h-r)
	p.Arc(x+w-r, y+h-r, r, q1, q2, vector.Clockwise)
	p.LineTo(x+r, y+h)
	p.Arc(x+r, y+h-r, r, q2, q3, vector.Clockwise)
	p.LineTo(x, y+r)
	p.Arc(x+r, y+r, r, q3, q4, vector.Clockwise)
	p.Close()
	return &p
}

func fillRoundedRect(dst *ebiten.Image, x, y, w, h, r float32, col color.Color) {
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(col)
	vector.FillPath(dst, roundedRectPath(x, y, w, h, r), &vector.FillOptions{}, op)
}

func strokeRoundedRect(dst *ebiten.Image, x, y, w, h, r, width float32, col color.Color) {
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(col)
	vector.StrokePath(dst, roundedRectPath(x, y, w, h, r), &vector.StrokeOptions{Width: width}, op)
}

func fillPolygon(dst *ebiten.Image, pts [][2]float32, col color.Color) {
	if len(pts) < 3 {
		return
	}
	var p vector.Path
	p.MoveTo(pts[0][0], pts[0][1])
	for _, pt := range pts[1:] {
		p.LineTo(pt[0], pt[1])
	}
	p.Close()
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(col)
	vector.FillPath(dst, &p, &vector.FillOptions{}, op)
}

// drawTriangle draws an upward-pointing equilateral triangle centred at
// (x,y). Used for the weapon pickup.
func drawTriangle(dst *ebiten.Image, x, y, size float32, col color.Color) {
	h := size * 0.866
	fillPolygon(dst, [][2]float32{
		{x, y - 2*h/3},
		{x - size/2, y + h/3},
		{x + size/2, y + h/3},
	}, col)
}

// drawHeart draws a heart icon centred near (x,y): two lobes over a
// triangular point.
func drawHeart(dst *ebiten.Image, x, y, size float32, col color.Color) {
	r := size * 0.45
	vector.FillCircle(dst, x-r/2, y-r/2, r, col, true)
	vector.FillCircle(dst, x+r/2, y-r/2, r, col, true)
	fillPolygon(dst, [][2]float32{
		{x - size, y},
		{x + size, y},
		{x, y + size*1.15},
	}, col)
}

// dimOverlay darkens the whole window, used behind modals and banners.
func dimOverlay(dst *ebiten.Image, alpha uint8) {
	vector.FillRect(dst, 0, 0, ScreenW, ScreenH, color.RGBA{A: alpha}, false)
}
