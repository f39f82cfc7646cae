package npc

// Default per-floor increments applied when an enemy definition leaves its
// scaling fields unset.
const (
	DefaultHealthScaling  = 10
	DefaultAttackScaling  = 2
	DefaultDefenseScaling = 1
)

// ScaleLinear returns base + perFloor*floor. Floors at or below zero return
// the base value.
func ScaleLinear(base, perFloor, floor int) int {
	if floor <= 0 {
		return base
	}
	return base + perFloor*floor
}

// ScaleXP calculates the scaled XP reward for an entity on a given floor
// Formula: base_xp * (1 + floor * 0.15)
func ScaleXP(baseXP, floor int) int {
	if floor <= 0 {
		return baseXP
	}
	multiplier := 1.0 + float64(floor)*0.15
	return int(float64(baseXP) * multiplier)
}

// ScaleGold calculates a scaled gold amount for an entity on a given floor
// Formula: base_gold * (1 + floor * 0.12)
func ScaleGold(baseGold, floor int) int {
	if floor <= 0 {
		return baseGold
	}
	multiplier := 1.0 + float64(floor)*0.12
	return int(float64(baseGold) * multiplier)
}
