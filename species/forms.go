// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package species

import (
	"regexp"
)

var (
	// [SPECIES_MEGA_VENUSAUR - SPECIES_MEGA_START] = SPECIES_VENUSAUR,
	rxFormEntry = regexp.MustCompile(`\[\s*(SPECIES_[A-Z0-9_]+)\s*-\s*(SPECIES_[A-Z0-9_]+)\s*\]\s*=\s*(SPECIES_[A-Z0-9_]+)\s*,?`)
)

// fixedAliases are forms that the mapping table does not list.
var fixedAliases = [][2]string{
	{"SPECIES_ROTOM_HEAT", "SPECIES_ROTOM"},
	{"SPECIES_ROTOM_WASH", "SPECIES_ROTOM"},
	{"SPECIES_ROTOM_FROST", "SPECIES_ROTOM"},
	{"SPECIES_ROTOM_FAN", "SPECIES_ROTOM"},
	{"SPECIES_ROTOM_MOW", "SPECIES_ROTOM"},
	{"SPECIES_WORMADAM_SANDY", "SPECIES_WORMADAM"},
	{"SPECIES_WORMADAM_TRASHY", "SPECIES_WORMADAM"},
	{"SPECIES_SHAYMIN_SKY", "SPECIES_SHAYMIN"},
}

// FormTable maps a form constant to the constant of its base species.
type FormTable map[string]string

// ParseFormTable reads a FormToSpeciesMapping table and adds the fixed aliases.
// The group start constant in each entry is ignored.
func ParseFormTable(input []byte) FormTable {
	table := FormTable{}
	for _, match := range rxFormEntry.FindAllStringSubmatch(string(input), -1) {
		table[match[1]] = match[3]
	}
	for _, alias := range fixedAliases {
		table[alias[0]] = alias[1]
	}
	return table
}

// Base returns the base constant for token, or token itself.
func (t FormTable) Base(token string) string {
	if base, ok := t[token]; ok {
		return base
	}
	return token
}
