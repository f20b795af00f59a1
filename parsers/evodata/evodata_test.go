// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package evodata_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mdhender/mgdex"
	"github.com/mdhender/mgdex/model"
	"github.com/mdhender/mgdex/parsers/evodata"
	"github.com/mdhender/mgdex/species"
)

func resolver() *species.Resolver {
	return species.NewResolver(
		[]string{"SPECIES_BULBASAUR", "SPECIES_IVYSAUR", "SPECIES_RATTATA", "SPECIES_RATICATE", "SPECIES_RATICATE_ALOLAN"},
		species.FormTable{"SPECIES_RATICATE_ALOLAN": "SPECIES_RATICATE"},
	)
}

const input = `evodata SPECIES_BULBASAUR
    evolution EVO_LEVEL, 16, SPECIES_IVYSAUR
    evolution EVO_NONE, 0, SPECIES_NONE
    evolution EVO_NONE, 0, SPECIES_NONE
terminateevodata

evolution EVO_LEVEL, 99, SPECIES_MEW

evodata SPECIES_RATTATA
    evolution EVO_LEVEL, 20, SPECIES_RATICATE
    evolutionwithform EVO_LEVEL_NIGHT, 20, SPECIES_RATICATE, 1
    evolutionwithform EVO_LEVEL, 30, SPECIES_RATICATE, 7
    evolutionwithform EVO_NONE, 0, SPECIES_NONE, 0
terminateevodata
`

func TestParse(t *testing.T) {
	evos, diags := evodata.Parse("evodata.s", []byte(input), resolver())
	if got := mgdex.Count(diags, mgdex.MissingMapping); got != 1 {
		t.Errorf("missing-mapping diagnostics: want 1, got %d: %v", got, diags)
	}
	want := map[string][]model.EvolutionEdge{
		"BULBASAUR": {{From: "BULBASAUR", To: "IVYSAUR", Method: "EVO_LEVEL", Parameter: "16"}},
		"RATTATA": {
			{From: "RATTATA", To: "RATICATE", Method: "EVO_LEVEL", Parameter: "20"},
			{From: "RATTATA", To: "RATICATE_ALOLAN", Method: "EVO_LEVEL_NIGHT", Parameter: "20"},
		},
	}
	if diff := cmp.Diff(want, evos.Forward); diff != "" {
		t.Errorf("Forward mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_ForwardAndBackwardMirror(t *testing.T) {
	evos, _ := evodata.Parse("evodata.s", []byte(input), resolver())

	count := func(edges []model.EvolutionEdge, edge model.EvolutionEdge) (n int) {
		for _, e := range edges {
			if e == edge {
				n++
			}
		}
		return n
	}
	forward, backward := 0, 0
	for from, edges := range evos.Forward {
		for _, edge := range edges {
			forward++
			if edge.From != from {
				t.Errorf("Forward[%s] holds edge from %s", from, edge.From)
			}
			if count(evos.Backward[edge.To], edge) != count(edges, edge) {
				t.Errorf("edge %+v: forward and backward counts differ", edge)
			}
		}
	}
	for to, edges := range evos.Backward {
		for _, edge := range edges {
			backward++
			if edge.To != to {
				t.Errorf("Backward[%s] holds edge to %s", to, edge.To)
			}
			if count(evos.Forward[edge.From], edge) != count(edges, edge) {
				t.Errorf("edge %+v: backward and forward counts differ", edge)
			}
		}
	}
	if forward != backward || forward != 3 {
		t.Errorf("edges: want 3 forward and backward, got %d and %d", forward, backward)
	}
}

func TestParse_Structural(t *testing.T) {
	_, diags := evodata.Parse("evodata.s", []byte("evodata SPECIES_A\nevodata SPECIES_B\n"), resolver())
	if got := mgdex.Count(diags, mgdex.Structural); got != 2 {
		t.Errorf("structural diagnostics: want 2, got %d: %v", got, diags)
	}
}
