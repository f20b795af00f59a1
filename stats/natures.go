// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package stats

// Nature names the stat a nature boosts and the stat it hinders.
// Neutral natures have HP in both slots.
type Nature struct {
	Up   Stat
	Down Stat
}

// Neutral reports whether the nature changes no stat.
func (n Nature) Neutral() bool {
	return n.Up == HP || n.Down == HP
}

var natures = map[string]Nature{
	"NATURE_HARDY":   {HP, HP},
	"NATURE_LONELY":  {Attack, Defense},
	"NATURE_BRAVE":   {Attack, Speed},
	"NATURE_ADAMANT": {Attack, SpAtk},
	"NATURE_NAUGHTY": {Attack, SpDef},
	"NATURE_BOLD":    {Defense, Attack},
	"NATURE_DOCILE":  {HP, HP},
	"NATURE_RELAXED": {Defense, Speed},
	"NATURE_IMPISH":  {Defense, SpAtk},
	"NATURE_LAX":     {Defense, SpDef},
	"NATURE_TIMID":   {Speed, Attack},
	"NATURE_HASTY":   {Speed, Defense},
	"NATURE_SERIOUS": {HP, HP},
	"NATURE_JOLLY":   {Speed, SpAtk},
	"NATURE_NAIVE":   {Speed, SpDef},
	"NATURE_MODEST":  {SpAtk, Attack},
	"NATURE_MILD":    {SpAtk, Defense},
	"NATURE_QUIET":   {SpAtk, Speed},
	"NATURE_BASHFUL": {HP, HP},
	"NATURE_RASH":    {SpAtk, SpDef},
	"NATURE_CALM":    {SpDef, Attack},
	"NATURE_GENTLE":  {SpDef, Defense},
	"NATURE_SASSY":   {SpDef, Speed},
	"NATURE_CAREFUL": {SpDef, SpAtk},
	"NATURE_QUIRKY":  {HP, HP},
}

// LookupNature returns the nature for a NATURE_ constant.
// Unknown natures are reported as neutral.
func LookupNature(name string) (Nature, bool) {
	n, ok := natures[name]
	if !ok {
		return Nature{HP, HP}, false
	}
	return n, true
}

// Modifiers returns the multiplier for each stat. HP is always 1.0.
func Modifiers(nature string) [6]float64 {
	mods := [6]float64{1.0, 1.0, 1.0, 1.0, 1.0, 1.0}
	n, _ := LookupNature(nature)
	if n.Neutral() {
		return mods
	}
	mods[n.Up], mods[n.Down] = 1.1, 0.9
	return mods
}
