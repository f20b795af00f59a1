// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package encounters_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mdhender/mgdex"
	"github.com/mdhender/mgdex/model"
	"github.com/mdhender/mgdex/parsers/encounters"
	"github.com/mdhender/mgdex/species"
)

func resolver() *species.Resolver {
	return species.NewResolver(
		[]string{"SPECIES_RATTATA", "SPECIES_PIDGEY", "SPECIES_MAGIKARP", "SPECIES_RATTATA_ALOLAN"},
		species.FormTable{"SPECIES_RATTATA_ALOLAN": "SPECIES_RATTATA"},
	)
}

const input = `encounterdata 0 // Route 29
    // morning encounter slots
    pokemon SPECIES_PIDGEY
    pokemon SPECIES_RATTATA
    // day encounter slots
    pokemon SPECIES_PIDGEY
    pokemon SPECIES_PIDGEY
    // night encounter slots
    monwithform SPECIES_RATTATA, 1
    monwithform SPECIES_RATTATA, 4
    // hoenn day swarm
    pokemon SPECIES_RATTATA
    // surf encounters
    encounterwithform SPECIES_RATTATA, 1, 10, 20
    .close
    encounter SPECIES_MAGIKARP, 5, 10
    // swarm good rod
    encounter SPECIES_MAGIKARP, 5, 10

encounterdata 1 // Route 30
    pokemon SPECIES_PIDGEY
`

func TestParse(t *testing.T) {
	got, diags := encounters.Parse("encounters.s", []byte(input), resolver())
	if n := mgdex.Count(diags, mgdex.MissingMapping); n != 1 {
		t.Errorf("missing-mapping diagnostics: want 1, got %d: %v", n, diags)
	}
	want := map[string][]model.Encounter{
		"PIDGEY": {
			{Location: "Route 29", Section: "Morning"},
			{Location: "Route 29", Section: "Day"},
			{Location: "Route 29", Section: "Day"},
			{Location: "Route 30"},
		},
		"RATTATA": {
			{Location: "Route 29", Section: "Morning"},
			{Location: "Route 29", Section: "Day"},
		},
		"RATTATA_ALOLAN": {
			{Location: "Route 29", Section: "Night"},
			{Location: "Route 29", Section: "Surf"},
		},
		"MAGIKARP": {
			{Location: "Route 29"},
			{Location: "Route 29", Section: "Good Rod"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestSection_FirstMatchWins(t *testing.T) {
	for _, tc := range []struct {
		comment string
		want    string
		ok      bool
	}{
		{"// Morning", "Morning", true},
		{"// Sinnoh day swarm", "Day", true},
		{"// SWARM SUPER ROD", "Super Rod", true},
		{"// swarm grass", "Swarm Grass", true},
		{"// rock smash encounters", "Rock Smash", true},
		{"// nothing here", "", false},
	} {
		got, ok := encounters.Section(tc.comment)
		if got != tc.want || ok != tc.ok {
			t.Errorf("Section(%q): want (%q, %v), got (%q, %v)", tc.comment, tc.want, tc.ok, got, ok)
		}
	}
}
