// Package game implements the Blade Arena application: the screen state
// machine around a match and the real-time two-player match simulation.
package game

import (
	"image/color"
	"math"
	"time"
)

// Logical window size. The HUD band occupies the top of the window and the
// playable rectangle is inset so avatars stay fully visible.
const (
	ScreenW = 1000
	ScreenH = 660
)

const (
	avatarSize = 96

	// moveSpeed is combatant speed in pixels per second per held direction.
	moveSpeed = 240.0

	// Playable rectangle for combatant centres.
	arenaLeft   = 90.0
	arenaRight  = ScreenW - 90.0
	arenaTop    = 160.0
	arenaBottom = ScreenH - 90.0

	// Pickup spawn rectangle, strictly inside the playable area.
	spawnLeft   = 120.0
	spawnRight  = ScreenW - 120.0
	spawnTop    = 160.0
	spawnBottom = ScreenH - 120.0

	weaponSize = 34.0
	healSize   = 22.0
	// pickupReach is added to size/1.2 to form the collection threshold.
	pickupReach = 40.0

	meleeRange = 82.0

	maxHealth = 5.0
	healGain  = 1.0
	// drainPerSecond is melee damage applied to the unarmed combatant.
	// Scaled by dt so damage per second is frame-rate independent.
	drainPerSecond = 5.4

	// winBannerDelay is how long the win banner stays before the match
	// resets in place.
	winBannerDelay = 1.2

	// auraSpin is the decorative aura rotation in degrees per second.
	auraSpin = 360.0

	maxNameLen = 18

	// debounceWindow is the minimum gap between two accepted activations
	// of the same button.
	debounceWindow = 180 * time.Millisecond

	// captureTimeout is the safety limit on portrait acquisition.
	captureTimeout = 90 * time.Second
)

// Fixed combatant display colours: slot 0 blue, slot 1 red.
var combatantColors = [2]color.RGBA{
	{R: 70, G: 150, B: 230, A: 255},
	{R: 235, G: 80, B: 80, A: 255},
}

// Fixed starting posts, mirrored about the arena centre.
var startPosts = [2][2]float64{
	{180, ScreenH / 2},
	{ScreenW - 180, ScreenH / 2},
}

func dist(x0, y0, x1, y1 float64) float64 {
	return math.Hypot(x0-x1, y0-y1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
