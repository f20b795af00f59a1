// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package levelup_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mdhender/mgdex/model"
	"github.com/mdhender/mgdex/parsers/levelup"
)

const input = `levelup SPECIES_BULBASAUR
    learnset MOVE_VINE_WHIP, 7
    learnset MOVE_TACKLE, 1
    learnset MOVE_GROWL, 1
    learnset MOVE_LEECH_SEED, 7
    learnset MOVE_GROWTH, 3
terminatelearnset

learnset MOVE_SPLASH, 1

levelup SPECIES_MAGIKARP
    learnset MOVE_SPLASH, 1
    learnset MOVE_TACKLE, 15
terminatelearnset
`

func TestParse(t *testing.T) {
	got, diags := levelup.Parse("levelupdata.s", []byte(input))
	if len(diags) != 0 {
		t.Errorf("diagnostics: want none, got %v", diags)
	}
	want := map[string][]model.LevelMove{
		"BULBASAUR": {
			{Level: 1, Move: "MOVE_TACKLE"},
			{Level: 1, Move: "MOVE_GROWL"},
			{Level: 3, Move: "MOVE_GROWTH"},
			{Level: 7, Move: "MOVE_VINE_WHIP"},
			{Level: 7, Move: "MOVE_LEECH_SEED"},
		},
		"MAGIKARP": {
			{Level: 1, Move: "MOVE_SPLASH"},
			{Level: 15, Move: "MOVE_TACKLE"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_NonDecreasing(t *testing.T) {
	got, _ := levelup.Parse("levelupdata.s", []byte(input))
	for name, list := range got {
		for n := 1; n < len(list); n++ {
			if list[n].Level < list[n-1].Level {
				t.Errorf("%s: level %d follows level %d", name, list[n].Level, list[n-1].Level)
			}
		}
	}
}
