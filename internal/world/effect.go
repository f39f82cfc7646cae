package world

// EffectType identifies an environmental feature placed on a room cell
type EffectType int

const (
	EffectTrap EffectType = iota
	EffectWetArea
	EffectPoisonousArea
	EffectIcySurface
	EffectDarkCorner
	EffectSlipperyFloor
	EffectLoudFloor
	EffectMagneticField
)

var effectTypeNames = [...]string{
	EffectTrap:          "trap",
	EffectWetArea:       "wet_area",
	EffectPoisonousArea: "poisonous_area",
	EffectIcySurface:    "icy_surface",
	EffectDarkCorner:    "dark_corner",
	EffectSlipperyFloor: "slippery_floor",
	EffectLoudFloor:     "loud_floor",
	EffectMagneticField: "magnetic_field",
}

// String returns the string representation of an EffectType
func (t EffectType) String() string {
	if t < 0 || int(t) >= len(effectTypeNames) {
		return "unknown"
	}
	return effectTypeNames[t]
}

// OneShot returns true for effects that stop working once triggered
func (t EffectType) OneShot() bool {
	return t == EffectTrap || t == EffectPoisonousArea
}

// AllEffectTypes returns every effect type in declaration order
func AllEffectTypes() []EffectType {
	out := make([]EffectType, len(effectTypeNames))
	for i := range effectTypeNames {
		out[i] = EffectType(i)
	}
	return out
}

// MapEffect is an environmental feature on a single cell
type MapEffect struct {
	Type          EffectType
	Position      Position
	TriggerChance float64 // Chance of firing when stepped on, 0.0 to 1.0
	Strength      int     // Damage or magnitude, 0 for flavor-only effects
	Description   string
	Triggered     bool
}

// Active returns false once a one-shot effect has fired
func (e *MapEffect) Active() bool {
	return !(e.Type.OneShot() && e.Triggered)
}

// Trigger marks the effect as fired and reports whether it was active
func (e *MapEffect) Trigger() bool {
	if !e.Active() {
		return false
	}
	e.Triggered = true
	return true
}
