// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package adapters_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mdhender/mgdex"
	"github.com/mdhender/mgdex/adapters"
	"github.com/mdhender/mgdex/model"
	"github.com/mdhender/mgdex/species"
	"github.com/mdhender/mgdex/stats"
)

func speciesInputs() adapters.SpeciesInputs {
	evos := model.NewEvolutions()
	evos.Add(model.EvolutionEdge{From: "RATTATA", To: "RATICATE", Method: "EVO_LEVEL", Parameter: "20"})
	return adapters.SpeciesInputs{
		Resolver: species.NewResolver(
			[]string{"SPECIES_RATTATA", "SPECIES_RATICATE", "SPECIES_RATTATA_ALOLAN", "SPECIES_PIDGEY"},
			species.FormTable{"SPECIES_RATTATA_ALOLAN": "SPECIES_RATTATA"},
		),
		Records: map[string]model.BaseRecord{
			"RATTATA": {
				Species:   "RATTATA",
				Stats:     stats.FromSource(30, 56, 35, 72, 25, 35),
				Types:     []string{"NORMAL"},
				Abilities: []string{"RUN_AWAY", "GUTS"},
			},
			"RATICATE": {Species: "RATICATE", Stats: stats.FromSource(55, 81, 60, 97, 50, 70)},
		},
		Evolutions: evos,
		LevelMoves: map[string][]model.LevelMove{
			"RATTATA": {{Level: 1, Move: "MOVE_TACKLE"}, {Level: 4, Move: "MOVE_TAIL_WHIP"}},
		},
		Encounters: map[string][]model.Encounter{
			"RATTATA": {
				{Location: "Route 29", Section: "Morning"},
				{Location: "Route 29", Section: "Morning"},
				{Location: "Route 1"},
			},
		},
		Sprites: map[string]string{"RATTATA": "sprites/rattata/male/front.png"},
	}
}

func findSpecies(t *testing.T, views []model.SpeciesView, name string) model.SpeciesView {
	t.Helper()
	for _, v := range views {
		if v.Name == name {
			return v
		}
	}
	t.Fatalf("species %s: not found", name)
	return model.SpeciesView{}
}

func TestBuildSpecies(t *testing.T) {
	views, diags := adapters.BuildSpecies(speciesInputs())

	var names []string
	for _, v := range views {
		names = append(names, v.Name)
	}
	if diff := cmp.Diff([]string{"PIDGEY", "RATICATE", "RATTATA", "RATTATA_ALOLAN"}, names); diff != "" {
		t.Errorf("names (-want +got):\n%s", diff)
	}
	if n := mgdex.Count(diags, mgdex.MissingData); n != 2 {
		t.Errorf("missing-data: want 2, got %d: %v", n, diags)
	}

	rattata := findSpecies(t, views, "RATTATA")
	if rattata.Sprite != "sprites/rattata.png" || rattata.SpriteSource != "sprites/rattata/male/front.png" {
		t.Errorf("sprite: got %q from %q", rattata.Sprite, rattata.SpriteSource)
	}
	if diff := cmp.Diff([]string{"Route 1", "Route 29 (Morning)"}, rattata.Locations); diff != "" {
		t.Errorf("locations (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]model.TypeBadge{{Class: "normal", Name: "Normal"}}, rattata.Types); diff != "" {
		t.Errorf("types (-want +got):\n%s", diff)
	}
	wantAbilities := []model.AbilityLink{
		{Name: "Run Away", URL: "https://bulbapedia.bulbagarden.net/wiki/Run_Away_(Ability)"},
		{Name: "Guts", URL: "https://bulbapedia.bulbagarden.net/wiki/Guts_(Ability)"},
	}
	if diff := cmp.Diff(wantAbilities, rattata.Abilities); diff != "" {
		t.Errorf("abilities (-want +got):\n%s", diff)
	}
	wantMoves := []model.LevelMoveView{{Level: 1, Move: "Tackle"}, {Level: 4, Move: "Tail Whip"}}
	if diff := cmp.Diff(wantMoves, rattata.LevelMoves); diff != "" {
		t.Errorf("level moves (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]model.Link{{Title: "Rattata Alolan", FileName: "rattata_alolan.html"}}, rattata.Forms); diff != "" {
		t.Errorf("forms (-want +got):\n%s", diff)
	}
	if len(rattata.Stats) != 6 || rattata.Stats[stats.Speed].Value != 72 || rattata.Stats[stats.Speed].Label != "Speed" {
		t.Errorf("stats: got %+v", rattata.Stats)
	}

	raticate := findSpecies(t, views, "RATICATE")
	wantFrom := []model.EvolutionView{{Species: "RATTATA", FileName: "rattata.html", Method: "level up to", Parameter: "20"}}
	if diff := cmp.Diff(wantFrom, raticate.EvolvesFrom); diff != "" {
		t.Errorf("evolves from (-want +got):\n%s", diff)
	}
	if raticate.Sprite != "" {
		t.Errorf("raticate sprite: want none, got %q", raticate.Sprite)
	}

	alolan := findSpecies(t, views, "RATTATA_ALOLAN")
	if alolan.Base != "SPECIES_RATTATA" || alolan.Form != 1 {
		t.Errorf("alolan identity: got %s/%d", alolan.Base, alolan.Form)
	}
	if alolan.Stats != nil || alolan.Types != nil || alolan.Abilities != nil {
		t.Errorf("alolan: want not-found markers, got %+v", alolan)
	}
	if diff := cmp.Diff([]model.Link{{Title: "Rattata", FileName: "rattata.html"}}, alolan.Forms); diff != "" {
		t.Errorf("alolan forms (-want +got):\n%s", diff)
	}
}

func TestBuildSpecies_LearnsetsReplaceLevelMoves(t *testing.T) {
	in := speciesInputs()
	in.Learnsets = map[string]model.Moveset{
		"RATTATA": {
			Level: []model.LevelMove{{Level: 7, Move: "MOVE_QUICK_ATTACK"}},
			Egg:   []string{"MOVE_FLAME_WHEEL"},
		},
	}
	views, _ := adapters.BuildSpecies(in)
	rattata := findSpecies(t, views, "RATTATA")
	if diff := cmp.Diff([]model.LevelMoveView{{Level: 7, Move: "Quick Attack"}}, rattata.LevelMoves); diff != "" {
		t.Errorf("level moves (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Flame Wheel"}, rattata.EggMoves); diff != "" {
		t.Errorf("egg moves (-want +got):\n%s", diff)
	}
	if rattata.MachineMoves != nil {
		t.Errorf("machine moves: want none, got %v", rattata.MachineMoves)
	}
}

func TestBuildSpecies_Deterministic(t *testing.T) {
	in := speciesInputs()
	before, err := json.Marshal(in.Records)
	if err != nil {
		t.Fatal(err)
	}
	first, _ := adapters.BuildSpecies(in)
	second, _ := adapters.BuildSpecies(in)
	a, err := json.Marshal(first)
	if err != nil {
		t.Fatal(err)
	}
	b, err := json.Marshal(second)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Errorf("views differ between runs")
	}
	after, err := json.Marshal(in.Records)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(before, after) {
		t.Errorf("records were changed by the builder")
	}
}

func TestLocations(t *testing.T) {
	got := adapters.Locations([]model.Encounter{
		{Location: "Route 30", Section: "Day"},
		{Location: "Route 29"},
		{Location: "Route 30", Section: "Day"},
		{Location: "Route 29"},
	})
	if diff := cmp.Diff([]string{"Route 29", "Route 30 (Day)"}, got); diff != "" {
		t.Errorf("Locations (-want +got):\n%s", diff)
	}
}

func trainerFixture() ([]*model.Trainer, map[string]model.BaseRecord, []model.Area) {
	trainers := []*model.Trainer{
		{ID: 0, Name: "-"},
		{ID: 5, Name: "Joey", Class: "TRAINERCLASS_YOUNGSTER", Party: []*model.TrainerMon{
			{Species: "RATTATA", Level: 50, Item: "ITEM_CHARIZARDITE_Y", Moves: []string{"MOVE_TACKLE"}},
			{Species: "MISSINGNO", Level: 3},
		}},
		{ID: 4, Name: "Albert"},
		{ID: 3, Name: "Albert"},
		{ID: 9, Name: "Zed"},
	}
	records := map[string]model.BaseRecord{
		"RATTATA": {Species: "RATTATA", Stats: stats.FromSource(30, 56, 35, 72, 25, 35)},
	}
	areas := []model.Area{
		{Name: "Empty Cave", TrainerIDs: []int{42}},
		{Name: "Route 30", TrainerIDs: []int{5, 3, 4}},
	}
	return trainers, records, areas
}

func TestBuildTrainers(t *testing.T) {
	trainers, records, areas := trainerFixture()
	views, diags := adapters.BuildTrainers(trainers, records, areas)
	if len(views) != 4 {
		t.Fatalf("views: want 4 (placeholder excluded), got %d", len(views))
	}
	for _, v := range views {
		if v.Name == model.SentinelTrainerName {
			t.Errorf("placeholder trainer %d was rendered", v.ID)
		}
	}
	if n := mgdex.Count(diags, mgdex.MissingData); n != 1 {
		t.Errorf("missing-data: want 1, got %d: %v", n, diags)
	}

	joey := views[0]
	if joey.Title != "JOEY" || joey.FileName != "Joey_5.html" || joey.Area != "Route 30" || joey.Class != "YOUNGSTER" {
		t.Errorf("joey: got %+v", joey)
	}
	rattata := joey.Party[0]
	if rattata.Sprite != "../pokedex/sprites/rattata.png" || rattata.FileName != "../pokedex/rattata.html" {
		t.Errorf("links: got sprite %q page %q", rattata.Sprite, rattata.FileName)
	}
	if rattata.Item != "MEGA STONE Y" || rattata.Nature != "Serious" {
		t.Errorf("item/nature: got %q %q", rattata.Item, rattata.Nature)
	}
	hp := model.StatBar{Label: "HP", Value: 109, Base: 30, Color: "red", Width: 16}
	if diff := cmp.Diff(hp, rattata.Stats[stats.HP]); diff != "" {
		t.Errorf("hp bar (-want +got):\n%s", diff)
	}
	if got := rattata.Stats[stats.Attack].Value; got != 80 {
		t.Errorf("attack: want 80, got %d", got)
	}
	if joey.Party[1].Stats != nil {
		t.Errorf("unknown species: want no stats, got %v", joey.Party[1].Stats)
	}
	if views[3].Area != adapters.UnknownArea {
		t.Errorf("zed: want %q, got %q", adapters.UnknownArea, views[3].Area)
	}
}

func TestBuildTrainerIndex(t *testing.T) {
	trainers, records, areas := trainerFixture()
	views, _ := adapters.BuildTrainers(trainers, records, areas)
	got := adapters.BuildTrainerIndex(views, areas)
	want := []model.AreaGroup{
		{Name: "Route 30", Trainers: []model.IndexEntry{
			{Title: "Albert", FileName: "Albert_4.html"},
			{Title: "Albert", FileName: "Albert_3.html"},
			{Title: "Joey", FileName: "Joey_5.html"},
		}},
		{Name: adapters.UnknownArea, Trainers: []model.IndexEntry{
			{Title: "Zed", FileName: "Zed_9.html"},
		}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BuildTrainerIndex (-want +got):\n%s", diff)
	}
}

func TestBuildTrainerIndex_NoUnknownGroupWhenEmpty(t *testing.T) {
	views := []model.TrainerView{{ID: 1, Name: "A", FileName: "A_1.html", Area: "Town"}}
	got := adapters.BuildTrainerIndex(views, []model.Area{{Name: "Town", TrainerIDs: []int{1}}})
	if len(got) != 1 || got[0].Name != "Town" {
		t.Errorf("groups: got %+v", got)
	}
}
