package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// matchScreen hosts a running match and the pause overlay. While paused
// the simulation step is skipped entirely; the last frame keeps drawing
// under a dim overlay.
type matchScreen struct {
	m      *Match
	paused bool

	resume  *Button
	restart *Button
	menu    *Button

	avatars     [2]*ebiten.Image
	avatarsInit bool
}

func newMatchScreen(m *Match) *matchScreen {
	cx := ScreenW/2 - 120
	return &matchScreen{
		m:       m,
		resume:  newButton(cx, 240, 240, 52, "Resume", true),
		restart: newButton(cx, 310, 240, 44, "Restart", false),
		menu:    newButton(cx, 370, 240, 44, "Main Menu", false),
	}
}

func (s *matchScreen) update(in *Input) screenEvent {
	if in.Escape {
		s.paused = !s.paused
		return screenEvent{}
	}
	if s.paused {
		switch {
		case s.resume.Clicked(in):
			s.paused = false
		case s.restart.Clicked(in):
			s.m.Reset()
			s.paused = false
		case s.menu.Clicked(in):
			return screenEvent{kind: evMenu}
		}
		return screenEvent{}
	}

	if in.Restart {
		s.m.Reset()
	}
	s.m.Step(in.DT, in.Move)
	return screenEvent{}
}

func (s *matchScreen) draw(dst *ebiten.Image) {
	dst.Fill(color.RGBA{R: 14, G: 16, B: 22, A: 255})
	s.drawHUD(dst)
	s.drawPickups(dst)
	s.drawCombatants(dst)
	drawText(dst, "WASD | Arrows - ESC: Pause - R: Restart", 20, ScreenH-34, textSmall, colTextDim)

	if s.m.Phase == PhaseWin {
		dimOverlay(dst, 210)
		winner := s.m.Combatants[s.m.Winner]
		drawTextCentered(dst, fmt.Sprintf("%s Wins!", winner.Name), ScreenH/2-40, textBig, colText)
	}
	if s.paused {
		dimOverlay(dst, 160)
		drawTextCentered(dst, "Paused", 140, textBig, colText)
		s.resume.Draw(dst)
		s.restart.Draw(dst)
		s.menu.Draw(dst)
	}
}

// drawHUD renders the top band: names in team colours and one heart per
// whole health unit, floor(health) icons exactly.
func (s *matchScreen) drawHUD(dst *ebiten.Image) {
	vector.FillRect(dst, 0, 0, ScreenW, 110, color.RGBA{R: 20, G: 22, B: 28, A: 255}, false)

	heartCol := color.RGBA{R: 235, G: 60, B: 60, A: 255}
	left := s.m.Combatants[0]
	drawText(dst, left.Name, 24, 18, textBig, left.Color)
	for i := 0; i < int(left.Health); i++ {
		drawHeart(dst, float32(24+i*34+2), 70, 14, heartCol)
	}

	right := s.m.Combatants[1]
	drawText(dst, right.Name, ScreenW-24-textWidth(right.Name, textBig), 18, textBig, right.Color)
	for i := 0; i < int(right.Health); i++ {
		drawHeart(dst, float32(ScreenW-(i+1)*34-24), 70, 14, heartCol)
	}
}

func (s *matchScreen) drawPickups(dst *ebiten.Image) {
	h := s.m.Heal
	drawHeart(dst, float32(h.X), float32(h.Y), float32(h.Size), color.RGBA{R: 220, G: 40, B: 40, A: 255})
	w := s.m.Weapon
	drawTriangle(dst, float32(w.X), float32(w.Y), float32(w.Size), color.RGBA{R: 245, G: 245, B: 245, A: 255})
}

func (s *matchScreen) drawCombatants(dst *ebiten.Image) {
	// Armed aura first so the avatar sits on top of it.
	for _, c := range s.m.Combatants {
		if c.Armed {
			s.drawAura(dst, float32(c.X), float32(c.Y))
		}
	}

	if !s.avatarsInit {
		s.avatarsInit = true
		for i, c := range s.m.Combatants {
			if c.Portrait == "" {
				continue
			}
			img, err := loadCircularAvatar(c.Portrait, avatarSize)
			if err != nil {
				continue // placeholder disc covers it
			}
			s.avatars[i] = img
		}
	}
	for i, c := range s.m.Combatants {
		if s.avatars[i] != nil {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(c.X-avatarSize/2, c.Y-avatarSize/2)
			dst.DrawImage(s.avatars[i], op)
		} else {
			drawPlaceholderDisc(dst, float32(c.X), float32(c.Y), avatarSize/2, placeholderColors[i])
		}
	}
}

// drawAura renders the rotating six-spoke aura around an armed combatant.
func (s *matchScreen) drawAura(dst *ebiten.Image, cx, cy float32) {
	const (
		innerR = 36.0
		outerR = 72.0
	)
	spokeCol := color.RGBA{R: 200, G: 24, B: 24, A: 140}
	for k := 0; k < 6; k++ {
		ang := (s.m.AuraAngle + float64(k)*60) * math.Pi / 180
		cos := float32(math.Cos(ang))
		sin := float32(math.Sin(ang))
		vector.StrokeLine(dst,
			cx+innerR*cos, cy+innerR*sin,
			cx+outerR*cos, cy+outerR*sin,
			3.0, spokeCol, true)
	}
	vector.FillCircle(dst, cx, cy, 12, color.RGBA{R: 255, G: 120, B: 120, A: 120}, true)
}
