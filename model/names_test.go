// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package model_test

import (
	"testing"

	"github.com/mdhender/mgdex/model"
)

func TestPrettyConst(t *testing.T) {
	for _, tc := range []struct {
		prefix, input, want string
	}{
		{"MOVE_", "MOVE_THUNDER_SHOCK", "Thunder Shock"},
		{"MOVE_", "MOVE_TACKLE", "Tackle"},
		{"ITEM_", "ITEM_FIRE_STONE", "Fire Stone"},
		{"ABILITY_", "OVERGROW", "Overgrow"},
	} {
		if got := model.PrettyConst(tc.prefix, tc.input); got != tc.want {
			t.Errorf("PrettyConst(%q, %q): want %q, got %q", tc.prefix, tc.input, tc.want, got)
		}
	}
}

func TestSpaced(t *testing.T) {
	if got, want := model.Spaced("SPECIES_", "SPECIES_MR_MIME"), "MR MIME"; got != want {
		t.Errorf("Spaced: want %q, got %q", want, got)
	}
}

func TestFileNames(t *testing.T) {
	if got, want := model.SpeciesFileName("RATTATA_ALOLAN"), "rattata_alolan.html"; got != want {
		t.Errorf("SpeciesFileName: want %q, got %q", want, got)
	}
	if got, want := model.TrainerFileName("Youngster Joey", 12), "Youngster_Joey_12.html"; got != want {
		t.Errorf("TrainerFileName: want %q, got %q", want, got)
	}
}

func TestEvolutions_AddMirrors(t *testing.T) {
	evos := model.NewEvolutions()
	evos.Add(model.EvolutionEdge{From: "BULBASAUR", To: "IVYSAUR", Method: "EVO_LEVEL", Parameter: "16"})
	evos.Add(model.EvolutionEdge{From: "EEVEE", To: "VAPOREON", Method: "EVO_ITEM", Parameter: "ITEM_WATER_STONE"})
	evos.Add(model.EvolutionEdge{From: "EEVEE", To: "JOLTEON", Method: "EVO_ITEM", Parameter: "ITEM_THUNDER_STONE"})
	if got := evos.Len(); got != 3 {
		t.Fatalf("Len: want 3, got %d", got)
	}
	if got := len(evos.Forward["EEVEE"]); got != 2 {
		t.Errorf("Forward[EEVEE]: want 2, got %d", got)
	}
	if got := evos.Backward["JOLTEON"]; len(got) != 1 || got[0] != evos.Forward["EEVEE"][1] {
		t.Errorf("Backward[JOLTEON]: want mirror of forward edge, got %+v", got)
	}
}

func TestTrainerMon_Defaults(t *testing.T) {
	var mon model.TrainerMon
	for _, v := range mon.EffectiveIVs() {
		if v != 31 {
			t.Fatalf("EffectiveIVs: want 31 for every stat, got %v", mon.EffectiveIVs())
		}
	}
	for _, v := range mon.EffectiveEVs() {
		if v != 31 {
			t.Fatalf("EffectiveEVs: want 31 for every stat, got %v", mon.EffectiveEVs())
		}
	}
	if got := mon.EffectiveNature(); got != "NATURE_SERIOUS" {
		t.Errorf("EffectiveNature: want NATURE_SERIOUS, got %q", got)
	}
}
