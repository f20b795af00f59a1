// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package stats projects the battle stats of a Pokémon from its base stats.
package stats

// Stat identifies one of the six battle stats.
type Stat int

const (
	HP Stat = iota
	Attack
	Defense
	SpAtk
	SpDef
	Speed
)

// Stats lists every stat in display order.
var Stats = [...]Stat{HP, Attack, Defense, SpAtk, SpDef, Speed}

var statNames = [...]string{"HP", "Attack", "Defense", "Sp. Atk", "Sp. Def", "Speed"}

func (s Stat) String() string {
	if s < HP || s > Speed {
		return "Unknown"
	}
	return statNames[s]
}

// Spread is one value per stat, indexed by Stat.
type Spread [6]int

// Uniform returns a spread with every stat set to n.
func Uniform(n int) Spread {
	return Spread{n, n, n, n, n, n}
}

// FromSource builds a spread from the order used by hg-engine data files:
// HP, Attack, Defense, Speed, Sp. Atk, Sp. Def.
func FromSource(hp, atk, def, spe, spa, spd int) Spread {
	var s Spread
	s[HP], s[Attack], s[Defense], s[Speed], s[SpAtk], s[SpDef] = hp, atk, def, spe, spa, spd
	return s
}

// MaxValue is the IV and EV used for trainer Pokémon without an explicit set.
const MaxValue = 31

// DefaultNature is used for trainer Pokémon without an explicit nature.
const DefaultNature = "NATURE_SERIOUS"

// Value computes a non-HP stat. Every division floors before the next step
// and the nature multiplier is applied last, then truncated.
func Value(base, iv, ev, level int, modifier float64) int {
	raw := ((2*base+iv+ev/4)*level)/100 + 5
	return int(float64(raw) * modifier)
}

// HitPoints computes the HP stat.
func HitPoints(base, iv, ev, level int) int {
	return ((2*base+iv+ev/4)*level)/100 + level + 10
}

// Project computes all six stats.
func Project(base, ivs, evs Spread, level int, nature string) Spread {
	mods := Modifiers(nature)
	var out Spread
	out[HP] = HitPoints(base[HP], ivs[HP], evs[HP], level)
	for _, stat := range Stats[1:] {
		out[stat] = Value(base[stat], ivs[stat], evs[stat], level, mods[stat])
	}
	return out
}
