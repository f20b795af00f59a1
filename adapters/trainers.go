// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package adapters

import (
	"sort"
	"strings"

	"github.com/mdhender/mgdex"
	"github.com/mdhender/mgdex/model"
	"github.com/mdhender/mgdex/stats"
)

// UnknownArea collects trainers that the area mapping does not list.
const UnknownArea = "UNKNOWN / REMATCHES"

// pokedexDir is the species page directory relative to the trainer pages.
const pokedexDir = "../pokedex/"

// AreaOf maps trainer ids to their area. An id listed under more than one
// area belongs to the last one.
func AreaOf(areas []model.Area) map[int]string {
	owner := map[int]string{}
	for _, area := range areas {
		for _, id := range area.TrainerIDs {
			owner[id] = area.Name
		}
	}
	return owner
}

// BuildTrainers returns a view for every trainer except placeholders,
// in input order. Party stats are projected from the base records;
// a species without one gets no stat bars and a missing-data notice.
func BuildTrainers(trainers []*model.Trainer, records map[string]model.BaseRecord, areas []model.Area) ([]model.TrainerView, []mgdex.Diagnostic) {
	diags := mgdex.NewDiagnostics("trainers")
	owner := AreaOf(areas)

	var views []model.TrainerView
	for _, t := range trainers {
		if t.IsPlaceholder() {
			continue
		}
		area, ok := owner[t.ID]
		if !ok {
			area = UnknownArea
		}
		view := model.TrainerView{
			ID:       t.ID,
			Name:     t.Name,
			Title:    strings.ToUpper(strings.ReplaceAll(t.Name, "_", " ")),
			Class:    model.Spaced("TRAINERCLASS_", t.Class),
			FileName: model.TrainerFileName(t.Name, t.ID),
			Area:     area,
		}
		for _, mon := range t.Party {
			mv := model.TrainerMonView{
				Species:  mon.Species,
				Title:    model.Spaced("", mon.Species),
				FileName: pokedexDir + model.SpeciesFileName(mon.Species),
				Sprite:   pokedexDir + SpriteDir + "/" + model.SpriteFileName(mon.Species),
				Level:    mon.Level,
				Ability:  model.Spaced("ABILITY_", mon.Ability),
				Item:     ItemName(mon.Item),
				Nature:   model.PrettyConst("NATURE_", mon.EffectiveNature()),
			}
			for _, move := range mon.Moves {
				mv.Moves = append(mv.Moves, model.Spaced("MOVE_", move))
			}
			if rec, ok := records[mon.Species]; ok {
				projected := stats.Project(rec.Stats, mon.EffectiveIVs(), mon.EffectiveEVs(), mon.Level, mon.EffectiveNature())
				mv.Stats = StatBars(rec.Stats, projected)
			} else {
				diags.Infof(mgdex.MissingData, 0, "trainer %d: %s has no base stats", t.ID, mon.Species)
			}
			view.Party = append(view.Party, mv)
		}
		views = append(views, view)
	}
	return views, diags.List()
}

// BuildTrainerIndex groups the trainers by area. Groups follow the order of
// the area mapping and areas without trainers are left out. The unknown
// group comes last and only when it has trainers. Trainers inside a group
// are sorted by name; equal names keep their input order.
func BuildTrainerIndex(trainers []model.TrainerView, areas []model.Area) []model.AreaGroup {
	members := map[string][]model.IndexEntry{}
	for _, t := range trainers {
		members[t.Area] = append(members[t.Area], model.IndexEntry{Title: t.Name, FileName: t.FileName})
	}

	var order []string
	seen := map[string]bool{UnknownArea: true}
	for _, area := range areas {
		if !seen[area.Name] {
			seen[area.Name] = true
			order = append(order, area.Name)
		}
	}
	order = append(order, UnknownArea)

	var groups []model.AreaGroup
	for _, name := range order {
		list := members[name]
		if len(list) == 0 {
			continue
		}
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Title < list[j].Title
		})
		groups = append(groups, model.AreaGroup{Name: name, Trainers: list})
	}
	return groups
}
