// Package leveling derives a player's level from accumulated experience.
package leveling

import "math"

// CalcLevel returns the level reached with exp experience points.
//
// The square root is truncated to an int before the division by 100,
// so the result is int(sqrt(2500+200*exp)-50)/100 and not floor((...)/100)
// computed in floating point.
func CalcLevel(exp int) int {
	return int(math.Sqrt(float64(2500+200*exp))-50) / 100
}

// UntilNextLevel returns the experience still needed to leave level.
// The result is negative when exp is already past the threshold.
func UntilNextLevel(exp, level int) int {
	return 50*(level+1)*(level+2) - exp
}

// Apply returns both derived values for exp
func Apply(exp int) (level, untilNext int) {
	level = CalcLevel(exp)
	return level, UntilNextLevel(exp, level)
}
