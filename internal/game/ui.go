package game

import (
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Button is a clickable rounded rectangle. Activation is debounced: a new
// activation within debounceWindow of the last accepted one is ignored, so
// one physical click never registers twice across overlapping event queues.
type Button struct {
	Rect     image.Rectangle
	Label    string
	Primary  bool
	Disabled bool

	hover     bool
	lastClick time.Time
}

func newButton(x, y, w, h int, label string, primary bool) *Button {
	return &Button{Rect: image.Rect(x, y, x+w, y+h), Label: label, Primary: primary}
}

// Clicked updates hover state and reports a debounced activation.
func (b *Button) Clicked(in *Input) bool {
	if b.Disabled {
		b.hover = false
		return false
	}
	b.hover = image.Pt(in.CursorX, in.CursorY).In(b.Rect)
	if !in.Click || !b.hover {
		return false
	}
	if in.Now.Sub(b.lastClick) <= debounceWindow {
		return false
	}
	b.lastClick = in.Now
	return true
}

func (b *Button) Draw(dst *ebiten.Image) {
	var bg color.RGBA
	switch {
	case b.Disabled:
		bg = color.RGBA{R: 40, G: 40, B: 45, A: 255}
	case b.Primary:
		bg = color.RGBA{R: 30, G: 160, B: 120, A: 255}
	case b.hover:
		bg = color.RGBA{R: 58, G: 62, B: 74, A: 255}
	default:
		bg = color.RGBA{R: 40, G: 44, B: 54, A: 255}
	}
	r := b.Rect
	fillRoundedRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 10, bg)

	tw := textWidth(b.Label, textBody)
	tx := float64(r.Min.X) + (float64(r.Dx())-tw)/2
	ty := float64(r.Min.Y) + float64(r.Dy())/2 - 10
	drawText(dst, b.Label, tx, ty, textBody, colText)
}

// cardAction is the result of a click on a roster card.
type cardAction int

const (
	cardNone cardAction = iota
	cardSelect
	cardDelete
)

// Card shows one roster record: circular thumbnail, name, creation date
// and an inline delete button. Rect is the unscrolled layout position;
// hit-testing and drawing apply the current scroll offset.
type Card struct {
	Rect image.Rectangle
	Name string
	// Portrait is the record's portrait reference (deletion key).
	Portrait string
	Added    string // YYYY-MM-DD

	thumb     *ebiten.Image
	thumbInit bool
	hover     bool
	delHover  bool
}

// delRect is the delete button area, in unscrolled coordinates.
func (c *Card) delRect() image.Rectangle {
	return image.Rect(c.Rect.Max.X-36, c.Rect.Min.Y+8, c.Rect.Max.X-8, c.Rect.Min.Y+36)
}

// hit classifies a click at (x,y) given the current scroll offset.
func (c *Card) hit(x, y, scroll int) cardAction {
	p := image.Pt(x, y-scroll)
	if p.In(c.delRect()) {
		return cardDelete
	}
	if p.In(c.Rect) {
		return cardSelect
	}
	return cardNone
}

func (c *Card) updateHover(x, y, scroll int) {
	p := image.Pt(x, y-scroll)
	c.hover = p.In(c.Rect)
	c.delHover = p.In(c.delRect())
}

func (c *Card) Draw(dst *ebiten.Image, scroll int) {
	r := c.Rect.Add(image.Pt(0, scroll))
	fillRoundedRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 12,
		color.RGBA{R: 28, G: 30, B: 36, A: 255})
	if c.hover {
		strokeRoundedRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 12, 2,
			color.RGBA{R: 80, G: 90, B: 110, A: 255})
	}

	// Thumbnail loads lazily on first draw; decode failures fall back to
	// the plain placeholder disc.
	if !c.thumbInit {
		c.thumbInit = true
		if c.Portrait != "" {
			if img, err := loadCircularAvatar(c.Portrait, 80); err == nil {
				c.thumb = img
			}
		}
	}
	cx := float64(r.Min.X) + 52
	cy := float64(r.Min.Y) + float64(r.Dy())/2
	if c.thumb != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(cx-40, cy-40)
		dst.DrawImage(c.thumb, op)
	} else {
		drawPlaceholderDisc(dst, float32(cx), float32(cy), 40, color.RGBA{R: 90, G: 90, B: 100, A: 255})
	}

	drawText(dst, c.Name, float64(r.Min.X)+110, float64(r.Min.Y)+24, textBig, color.RGBA{R: 230, G: 230, B: 230, A: 255})
	drawText(dst, "Added: "+c.Added, float64(r.Min.X)+110, float64(r.Min.Y)+64, textSmall, colTextDim)

	dr := c.delRect().Add(image.Pt(0, scroll))
	delCol := color.RGBA{R: 160, G: 40, B: 40, A: 255}
	if c.delHover {
		delCol = color.RGBA{R: 200, G: 50, B: 50, A: 255}
	}
	fillRoundedRect(dst, float32(dr.Min.X), float32(dr.Min.Y), float32(dr.Dx()), float32(dr.Dy()), 6, delCol)
	drawText(dst, "Del", float64(dr.Min.X)+4, float64(dr.Min.Y)+8, textSmall, colText)
}
