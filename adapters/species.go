// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package adapters joins the extracted records into the view models
// that the renderer consumes. Nothing here changes its inputs.
package adapters

import (
	"sort"
	"strings"

	"github.com/mdhender/mgdex"
	"github.com/mdhender/mgdex/model"
	"github.com/mdhender/mgdex/species"
)

// SpriteDir is the sprite directory relative to the species pages.
const SpriteDir = "sprites"

// SpeciesInputs is the record set that species pages are built from.
// Learnsets is nil when learnsets.json was not loaded; when it is set
// it replaces LevelMoves. Sprites maps a canonical name to the path of
// its source image.
type SpeciesInputs struct {
	Resolver   *species.Resolver
	Records    map[string]model.BaseRecord
	Evolutions *model.Evolutions
	LevelMoves map[string][]model.LevelMove
	Learnsets  map[string]model.Moveset
	Encounters map[string][]model.Encounter
	Sprites    map[string]string
}

// BuildSpecies returns one view per enumerated species, sorted by name.
// A species without a base record gets a view with no stats, types or
// abilities and raises a missing-data notice.
func BuildSpecies(in SpeciesInputs) ([]model.SpeciesView, []mgdex.Diagnostic) {
	diags := mgdex.NewDiagnostics("species")
	names := in.Resolver.Names()
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)

	evolutions := in.Evolutions
	if evolutions == nil {
		evolutions = model.NewEvolutions()
	}

	views := make([]model.SpeciesView, 0, len(sorted))
	for _, name := range sorted {
		id, _ := in.Resolver.Lookup(name)
		view := model.SpeciesView{
			Name:     name,
			FileName: model.SpeciesFileName(name),
			Base:     id.Base,
			Form:     id.Form,
		}
		if src, ok := in.Sprites[name]; ok {
			view.Sprite = SpriteDir + "/" + model.SpriteFileName(name)
			view.SpriteSource = src
		}

		if rec, ok := in.Records[name]; ok {
			view.Stats = StatBars(rec.Stats, rec.Stats)
			for _, t := range rec.Types {
				view.Types = append(view.Types, model.TypeBadge{Class: strings.ToLower(t), Name: model.Title(t)})
			}
			for _, a := range rec.Abilities {
				title := model.Title(a)
				view.Abilities = append(view.Abilities, model.AbilityLink{Name: title, URL: AbilityURL(title)})
			}
		} else {
			diags.Infof(mgdex.MissingData, 0, "%s: no base stats", name)
		}

		for _, edge := range evolutions.Backward[name] {
			view.EvolvesFrom = append(view.EvolvesFrom, evolutionView(edge.From, edge))
		}
		for _, edge := range evolutions.Forward[name] {
			view.EvolvesTo = append(view.EvolvesTo, evolutionView(edge.To, edge))
		}
		for _, form := range RelatedForms(name, names) {
			view.Forms = append(view.Forms, model.Link{Title: model.Title(form), FileName: model.SpeciesFileName(form)})
		}

		moveset := in.moveset(name)
		for _, lm := range moveset.Level {
			view.LevelMoves = append(view.LevelMoves, model.LevelMoveView{Level: lm.Level, Move: model.PrettyConst("MOVE_", lm.Move)})
		}
		for _, move := range moveset.Egg {
			view.EggMoves = append(view.EggMoves, model.PrettyConst("MOVE_", move))
		}
		for _, move := range moveset.Machine {
			view.MachineMoves = append(view.MachineMoves, model.PrettyConst("MOVE_", move))
		}

		view.Locations = Locations(in.Encounters[name])
		views = append(views, view)
	}
	return views, diags.List()
}

func (in SpeciesInputs) moveset(name string) model.Moveset {
	if in.Learnsets != nil {
		return in.Learnsets[name]
	}
	return model.Moveset{Level: in.LevelMoves[name]}
}

func evolutionView(other string, edge model.EvolutionEdge) model.EvolutionView {
	return model.EvolutionView{
		Species:   other,
		FileName:  model.SpeciesFileName(other),
		Method:    MethodDescription(edge.Method),
		Parameter: ParameterDescription(edge.Parameter),
	}
}

// Locations returns the distinct encounter descriptors, sorted.
func Locations(encounters []model.Encounter) []string {
	seen := map[string]bool{}
	var list []string
	for _, e := range encounters {
		desc := e.Descriptor()
		if seen[desc] {
			continue
		}
		seen[desc] = true
		list = append(list, desc)
	}
	sort.Strings(list)
	return list
}

// SpeciesIndex lists every species page in enumeration order.
func SpeciesIndex(r *species.Resolver) []model.IndexEntry {
	names := r.Names()
	list := make([]model.IndexEntry, 0, len(names))
	for _, name := range names {
		list = append(list, model.IndexEntry{Title: name, FileName: model.SpeciesFileName(name)})
	}
	return list
}
