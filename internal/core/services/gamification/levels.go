// Package gamification implements the points, level, rank, and badge
// progression state machine.
package gamification

// levelBreakpoints are the ascending point thresholds for levels 2..10.
// Below the first breakpoint is level 1. Immutable after process start.
var levelBreakpoints = []int{100, 300, 600, 1000, 1500, 2100, 2800, 3600, 4500}

// MaxLevel is the highest reachable level.
const MaxLevel = 10

// LevelFor returns the level for a point total. Pure and total: any
// non-negative point count maps to exactly one level in [1,10].
func LevelFor(points int) int {
	level := 1
	for _, breakpoint := range levelBreakpoints {
		if points < breakpoint {
			break
		}
		level++
	}
	return level
}
