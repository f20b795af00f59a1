// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package trainers_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mdhender/mgdex"
	"github.com/mdhender/mgdex/model"
	"github.com/mdhender/mgdex/parsers/trainers"
	"github.com/mdhender/mgdex/species"
	"github.com/mdhender/mgdex/stats"
)

func resolver() *species.Resolver {
	return species.NewResolver(
		[]string{"SPECIES_RATTATA", "SPECIES_PIDGEY", "SPECIES_RATTATA_ALOLAN"},
		species.FormTable{"SPECIES_RATTATA_ALOLAN": "SPECIES_RATTATA"},
	)
}

const input = `trainerdata 0, "-"
    trainerclass TRAINERCLASS_PKMN_TRAINER_ETHAN
    nummons 0
    endentry

party 0
    endparty

trainerdata 1, "Youngster Joey"
    trainerclass TRAINERCLASS_YOUNGSTER
    trainermontype TRAINER_DATA_TYPE_MOVES | TRAINER_DATA_TYPE_ITEMS
    battletype SINGLE_BATTLE
    nummons 2
    endentry

party 1
    // mon 0
    ivs 0
    abilityslot 0
    level 4
    pokemon SPECIES_RATTATA
    item ITEM_ORAN_BERRY
    move MOVE_TACKLE
    move MOVE_TAIL_WHIP
    move MOVE_NONE
    move MOVE_NONE
    ballseal 0

    ivs 50
    level 6
    monwithform SPECIES_RATTATA, 1
    ability ABILITY_HUSTLE
    nature NATURE_ADAMANT
    setivs 1, 2, 3, 4, 5, 6
    setevs 252, 0, 0, 252, 4, 0
    endparty
`

func TestParse(t *testing.T) {
	got, diags := trainers.Parse("trainers.s", []byte(input), resolver())
	if len(diags) != 0 {
		t.Fatalf("diagnostics: want none, got %v", diags)
	}
	ivs := stats.FromSource(1, 2, 3, 4, 5, 6)
	evs := stats.FromSource(252, 0, 0, 252, 4, 0)
	want := []*model.Trainer{
		{ID: 0, Name: "-", Class: "TRAINERCLASS_PKMN_TRAINER_ETHAN"},
		{
			ID:         1,
			Name:       "Youngster Joey",
			Class:      "TRAINERCLASS_YOUNGSTER",
			MonType:    "TRAINER_DATA_TYPE_MOVES | TRAINER_DATA_TYPE_ITEMS",
			BattleType: "SINGLE_BATTLE",
			NumMons:    2,
			Party: []*model.TrainerMon{
				{
					Species:    "RATTATA",
					Level:      4,
					Difficulty: "0",
					Item:       "ITEM_ORAN_BERRY",
					Moves:      []string{"MOVE_TACKLE", "MOVE_TAIL_WHIP", "MOVE_NONE", "MOVE_NONE"},
				},
				{
					Species:    "RATTATA_ALOLAN",
					Level:      6,
					Difficulty: "50",
					Ability:    "ABILITY_HUSTLE",
					Nature:     "NATURE_ADAMANT",
					IVs:        &ivs,
					EVs:        &evs,
				},
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
	if !got[0].IsPlaceholder() || got[1].IsPlaceholder() {
		t.Errorf("placeholder: want only trainer 0")
	}
}

func TestParse_SetIVsSourceOrder(t *testing.T) {
	got, _ := trainers.Parse("trainers.s", []byte(input), resolver())
	mon := got[1].Party[1]
	if mon.IVs[stats.Speed] != 4 || mon.IVs[stats.SpAtk] != 5 || mon.IVs[stats.SpDef] != 6 {
		t.Errorf("setivs: want speed 4, sp. atk 5, sp. def 6, got %v", *mon.IVs)
	}
	if got := got[1].Party[0].EffectiveIVs(); got != stats.Uniform(31) {
		t.Errorf("default ivs: want all 31, got %v", got)
	}
}

func TestParse_Structural(t *testing.T) {
	for _, tc := range []struct {
		id         string
		input      string
		structural int
		missing    int
		party      int
		ids        []int
	}{
		{id: "attribute before ivs", structural: 1, party: 1, ids: []int{1}, input: `trainerdata 1, "A"
endentry
party 1
level 5
ivs 0
level 5
pokemon SPECIES_PIDGEY
endparty
`},
		{id: "party inside party", structural: 1, party: 1, ids: []int{1}, input: `trainerdata 1, "A"
endentry
party 1
ivs 0
level 5
pokemon SPECIES_RATTATA
party 1
ivs 0
level 7
pokemon SPECIES_PIDGEY
endparty
`},
		{id: "unknown trainer", structural: 1, input: `party 9
ivs 0
level 5
pokemon SPECIES_PIDGEY
endparty
`},
		{id: "no species and bad level", structural: 2, party: 0, ids: []int{1}, input: `trainerdata 1, "A"
endentry
party 1
ivs 0
level 5
ivs 0
level x
pokemon SPECIES_PIDGEY
endparty
`},
		{id: "unresolved form", missing: 1, party: 1, ids: []int{1}, input: `trainerdata 1, "A"
endentry
party 1
ivs 0
level 5
monwithform SPECIES_PIDGEY, 3
ivs 0
level 5
pokemon SPECIES_PIDGEY
endparty
`},
		{id: "unterminated header", structural: 1, input: `trainerdata 1, "A"
nummons 1
`},
		{id: "header closed by trainerdata", structural: 1, ids: []int{2}, input: `trainerdata 1, "A"
nummons 1
trainerdata 2, "B"
endentry
`},
		// the party line discards the open header, so the party has no owner
		{id: "header closed by party", structural: 2, ids: []int{2}, input: `trainerdata 1, "A"
nummons 1
party 1
ivs 0
level 5
pokemon SPECIES_PIDGEY
endparty
trainerdata 2, "B"
endentry
`},
	} {
		t.Run(tc.id, func(t *testing.T) {
			got, diags := trainers.Parse("trainers.s", []byte(tc.input), resolver())
			if n := mgdex.Count(diags, mgdex.Structural); n != tc.structural {
				t.Errorf("structural: want %d, got %d: %v", tc.structural, n, diags)
			}
			if n := mgdex.Count(diags, mgdex.MissingMapping); n != tc.missing {
				t.Errorf("missing-mapping: want %d, got %d: %v", tc.missing, n, diags)
			}
			var party int
			var ids []int
			for _, tr := range got {
				party += len(tr.Party)
				ids = append(ids, tr.ID)
			}
			if diff := cmp.Diff(tc.ids, ids); diff != "" {
				t.Errorf("ids: mismatch (-want +got):\n%s", diff)
			}
			if party != tc.party {
				t.Errorf("party size: want %d, got %d", tc.party, party)
			}
		})
	}
}
