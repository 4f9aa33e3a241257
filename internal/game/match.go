package game

import (
	"image/color"
	"math/rand"
)

// MatchPhase tags the simulator's coarse state.
type MatchPhase int

const (
	PhasePlaying MatchPhase = iota
	PhaseWin                // win banner showing, reset pending
)

// Identity is a resolved player: a display name and an optional portrait
// image path.
type Identity struct {
	Name     string
	Portrait string
}

// Combatant is one of the two live players inside a match.
// Health stays in [0, maxHealth]; the position stays inside the playable
// rectangle. At most one combatant is armed at any instant.
type Combatant struct {
	Name     string
	Portrait string
	Color    color.RGBA
	X, Y     float64
	Health   float64
	Armed    bool
}

// Pickup is a collectible on the arena floor. Collecting it respawns it at
// a new random position.
type Pickup struct {
	X, Y float64
	Size float64
}

// threshold is the centre distance below which the pickup is collected.
func (p Pickup) threshold() float64 {
	return p.Size/1.2 + pickupReach
}

// MoveInput is the held movement state for both combatants, disjoint key
// sets per player.
type MoveInput struct {
	Up, Down, Left, Right [2]bool
}

// Match owns the live state of a running match and advances it once per
// frame. It performs no drawing and no input reads, so it runs headless.
type Match struct {
	Combatants [2]*Combatant
	Weapon     Pickup
	Heal       Pickup

	// AuraAngle drives the armed combatant's pulsing aura. Visual only.
	AuraAngle float64

	Phase    MatchPhase
	Winner   int // valid while Phase == PhaseWin
	winTimer float64

	rng *rand.Rand
}

// NewMatch creates a match for the two resolved identities.
func NewMatch(ids [2]Identity, rng *rand.Rand) *Match {
	m := &Match{rng: rng}
	for i := range m.Combatants {
		m.Combatants[i] = &Combatant{
			Name:     ids[i].Name,
			Portrait: ids[i].Portrait,
			Color:    combatantColors[i],
		}
	}
	m.Reset()
	return m
}

// Reset reinitialises combatants and pickups in place, preserving the two
// player identities. Used by the R key, the pause menu and the post-win
// timer.
func (m *Match) Reset() {
	for i, c := range m.Combatants {
		c.X = startPosts[i][0]
		c.Y = startPosts[i][1]
		c.Health = maxHealth
		c.Armed = false
	}
	m.Weapon = m.spawnPickup(weaponSize)
	m.Heal = m.spawnPickup(healSize)
	m.AuraAngle = 0
	m.Phase = PhasePlaying
	m.winTimer = 0
}

// spawnPickup places a pickup uniformly at random within the spawn
// rectangle. The full usable range is covered; no exclusion zone.
func (m *Match) spawnPickup(size float64) Pickup {
	return Pickup{
		X:    spawnLeft + m.rng.Float64()*(spawnRight-spawnLeft),
		Y:    spawnTop + m.rng.Float64()*(spawnBottom-spawnTop),
		Size: size,
	}
}

// Step advances the match by dt seconds: movement, pickup acquisition,
// melee drain, win detection. During the win banner it only counts down to
// the in-place reset.
func (m *Match) Step(dt float64, mv MoveInput) {
	if m.Phase == PhaseWin {
		m.winTimer -= dt
		if m.winTimer <= 0 {
			m.Reset()
		}
		return
	}

	step := moveSpeed * dt
	for i, c := range m.Combatants {
		if mv.Up[i] {
			c.Y -= step
		}
		if mv.Down[i] {
			c.Y += step
		}
		if mv.Left[i] {
			c.X -= step
		}
		if mv.Right[i] {
			c.X += step
		}
		c.X = clamp(c.X, arenaLeft, arenaRight)
		c.Y = clamp(c.Y, arenaTop, arenaBottom)
	}

	// Weapon: arming is mutually exclusive, the other combatant is
	// force-disarmed and the weapon relocates.
	for i, c := range m.Combatants {
		if dist(c.X, c.Y, m.Weapon.X, m.Weapon.Y) < m.Weapon.threshold() {
			c.Armed = true
			m.Combatants[1-i].Armed = false
			m.Weapon = m.spawnPickup(weaponSize)
		}
	}

	for _, c := range m.Combatants {
		if dist(c.X, c.Y, m.Heal.X, m.Heal.Y) < m.Heal.threshold() {
			c.Health = clamp(c.Health+healGain, 0, maxHealth)
			m.Heal = m.spawnPickup(healSize)
		}
	}

	// Melee: continuous drain on the unarmed combatant while in contact
	// and exactly one side is armed.
	a, b := m.Combatants[0], m.Combatants[1]
	if dist(a.X, a.Y, b.X, b.Y) < meleeRange && a.Armed != b.Armed {
		target := a
		if a.Armed {
			target = b
		}
		target.Health = clamp(target.Health-drainPerSecond*dt, 0, maxHealth)
	}

	m.AuraAngle += auraSpin * dt

	// Win check ends the frame: no further updates once a side is down.
	for i, c := range m.Combatants {
		if c.Health <= 0 {
			m.Phase = PhaseWin
			m.Winner = 1 - i
			m.winTimer = winBannerDelay
			return
		}
	}
}
