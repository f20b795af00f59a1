// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package model

import (
	"github.com/mdhender/mgdex/stats"
)

// BaseRecord is the mondata entry for one species.
// It is created once during extraction and never changed.
type BaseRecord struct {
	Species   string       `json:"species"`             // canonical name, e.g. BULBASAUR
	Stats     stats.Spread `json:"stats"`               // indexed by stats.Stat
	Types     []string     `json:"types,omitempty"`     // TYPE_ suffixes, at most two
	Abilities []string     `json:"abilities,omitempty"` // ABILITY_ suffixes, at most two
}

// EvolutionEdge is a directed evolution from one species to another.
type EvolutionEdge struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Method    string `json:"method"`    // e.g. EVO_LEVEL
	Parameter string `json:"parameter"` // e.g. 16, ITEM_FIRE_STONE
}

// Evolutions indexes one edge set from both ends.
// Edges are only added through Add so that both views stay in step.
type Evolutions struct {
	Forward  map[string][]EvolutionEdge `json:"forward"`  // keyed by From
	Backward map[string][]EvolutionEdge `json:"backward"` // keyed by To
}

func NewEvolutions() *Evolutions {
	return &Evolutions{
		Forward:  map[string][]EvolutionEdge{},
		Backward: map[string][]EvolutionEdge{},
	}
}

// Add appends the edge to the forward and backward indexes.
func (e *Evolutions) Add(edge EvolutionEdge) {
	e.Forward[edge.From] = append(e.Forward[edge.From], edge)
	e.Backward[edge.To] = append(e.Backward[edge.To], edge)
}

// Len is the number of edges.
func (e *Evolutions) Len() (n int) {
	for _, edges := range e.Forward {
		n += len(edges)
	}
	return n
}

// LevelMove is a move learned at a level.
type LevelMove struct {
	Level int    `json:"level"`
	Move  string `json:"move"` // MOVE_ constant
}

// Moveset holds the three ways a species learns moves.
type Moveset struct {
	Level   []LevelMove `json:"level,omitempty"`   // ascending by level, ties in declaration order
	Egg     []string    `json:"egg,omitempty"`     // MOVE_ constants
	Machine []string    `json:"machine,omitempty"` // MOVE_ constants
}

// Encounter is one place a species can be found in the wild.
type Encounter struct {
	Location string `json:"location"`          // e.g. "Route 29"
	Section  string `json:"section,omitempty"` // e.g. "Morning", "Old Rod"
}

// Descriptor is the display text for the encounter.
func (e Encounter) Descriptor() string {
	if e.Section == "" {
		return e.Location
	}
	return e.Location + " (" + e.Section + ")"
}

// SentinelTrainerName marks an unused trainer slot.
const SentinelTrainerName = "-"

// Trainer is one trainerdata entry and its party.
type Trainer struct {
	ID         int           `json:"id"`
	Name       string        `json:"name"`
	Class      string        `json:"class,omitempty"`
	MonType    string        `json:"monType,omitempty"`
	BattleType string        `json:"battleType,omitempty"`
	NumMons    int           `json:"numMons,omitempty"`
	Party      []*TrainerMon `json:"party,omitempty"`
}

// IsPlaceholder reports whether the trainer is an unused slot.
func (t *Trainer) IsPlaceholder() bool {
	return t.Name == SentinelTrainerName
}

// TrainerMon is one Pokémon in a trainer's party.
// IVs and EVs are nil when the source does not set them.
type TrainerMon struct {
	Species    string        `json:"species"` // canonical name
	Level      int           `json:"level"`
	Difficulty string        `json:"difficulty,omitempty"` // value of the ivs line
	Ability    string        `json:"ability,omitempty"`
	Item       string        `json:"item,omitempty"`
	Nature     string        `json:"nature,omitempty"`
	IVs        *stats.Spread `json:"ivs,omitempty"`
	EVs        *stats.Spread `json:"evs,omitempty"`
	Moves      []string      `json:"moves,omitempty"` // at most four, declaration order
}

// EffectiveIVs returns the IVs used for stat projection.
func (m *TrainerMon) EffectiveIVs() stats.Spread {
	if m.IVs == nil {
		return stats.Uniform(stats.MaxValue)
	}
	return *m.IVs
}

// EffectiveEVs returns the EVs used for stat projection.
func (m *TrainerMon) EffectiveEVs() stats.Spread {
	if m.EVs == nil {
		return stats.Uniform(stats.MaxValue)
	}
	return *m.EVs
}

// EffectiveNature returns the nature used for stat projection.
func (m *TrainerMon) EffectiveNature() string {
	if m.Nature == "" {
		return stats.DefaultNature
	}
	return m.Nature
}

// Area is a story area and the trainers fought there.
type Area struct {
	Name       string `json:"name"`
	TrainerIDs []int  `json:"trainerIds"`
}
