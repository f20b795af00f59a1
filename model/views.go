// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package model

// The view models are the read-side join of the extracted records.
// Nil pointers and empty slices are the "not found" markers; the
// renderer turns them into placeholders.

// SpeciesView is everything shown on one species page.
type SpeciesView struct {
	Name     string `json:"name"`     // canonical name, e.g. RATTATA_ALOLAN
	FileName string `json:"fileName"` // e.g. rattata_alolan.html
	Base     string `json:"base"`     // base constant of the identity
	Form     int    `json:"form"`

	Sprite       string `json:"sprite,omitempty"` // path relative to the page, empty when absent
	SpriteSource string `json:"-"`                // path of the source image

	Stats     []StatBar     `json:"stats,omitempty"`
	Types     []TypeBadge   `json:"types,omitempty"`
	Abilities []AbilityLink `json:"abilities,omitempty"`

	EvolvesFrom []EvolutionView `json:"evolvesFrom,omitempty"`
	EvolvesTo   []EvolutionView `json:"evolvesTo,omitempty"`
	Forms       []Link          `json:"forms,omitempty"`

	LevelMoves   []LevelMoveView `json:"levelMoves,omitempty"`
	EggMoves     []string        `json:"eggMoves,omitempty"`
	MachineMoves []string        `json:"machineMoves,omitempty"`

	Locations []string `json:"locations,omitempty"` // deduplicated and sorted
}

// StatBar is one bar in a stat chart.
// Colour and width come from the base stat, the label shows Value.
type StatBar struct {
	Label string `json:"label"`
	Value int    `json:"value"`
	Base  int    `json:"base"`
	Color string `json:"color"`
	Width int    `json:"width"` // percent, 0..100
}

// TypeBadge is a typing rendered as a badge.
type TypeBadge struct {
	Class string `json:"class"` // css class, e.g. grass
	Name  string `json:"name"`  // e.g. Grass
}

// AbilityLink is an ability with its external reference page.
type AbilityLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// EvolutionView is one evolution edge seen from the page's species.
type EvolutionView struct {
	Species   string `json:"species"` // the other end of the edge
	FileName  string `json:"fileName"`
	Method    string `json:"method"`              // human description
	Parameter string `json:"parameter,omitempty"` // human parameter, may be empty
}

// Link points at another generated page.
type Link struct {
	Title    string `json:"title"`
	FileName string `json:"fileName"`
}

// LevelMoveView is a level-up move ready for display.
type LevelMoveView struct {
	Level int    `json:"level"`
	Move  string `json:"move"`
}

// TrainerView is everything shown on one trainer page.
type TrainerView struct {
	ID       int              `json:"id"`
	Name     string           `json:"name"`
	Title    string           `json:"title"` // upper case, spaces for underscores
	Class    string           `json:"class,omitempty"`
	FileName string           `json:"fileName"`
	Area     string           `json:"area"`
	Party    []TrainerMonView `json:"party,omitempty"`
}

// TrainerMonView is one party member with projected stats.
// Stats is empty when the species has no base record.
type TrainerMonView struct {
	Species  string    `json:"species"`
	Title    string    `json:"title"`
	FileName string    `json:"fileName"` // species page, relative to the trainer pages
	Sprite   string    `json:"sprite"`
	Level    int       `json:"level"`
	Ability  string    `json:"ability,omitempty"`
	Item     string    `json:"item,omitempty"`
	Nature   string    `json:"nature"`
	Moves    []string  `json:"moves,omitempty"`
	Stats    []StatBar `json:"stats,omitempty"`
}

// IndexEntry is one line in an index page.
type IndexEntry struct {
	Title    string `json:"title"`
	FileName string `json:"fileName"`
}

// AreaGroup is a heading in the trainer index.
type AreaGroup struct {
	Name     string       `json:"name"`
	Trainers []IndexEntry `json:"trainers"`
}
