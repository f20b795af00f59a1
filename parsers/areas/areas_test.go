// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package areas_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mdhender/mgdex"
	"github.com/mdhender/mgdex/model"
	"github.com/mdhender/mgdex/parsers/areas"
)

func TestParse_KeepsFileOrder(t *testing.T) {
	input := `{
  "Violet City": [3, 4],
  "Route 30": [1],
  "Azalea Town": [7, 8, 9]
}`
	got, diags := areas.Parse("areas.json", []byte(input))
	if len(diags) != 0 {
		t.Fatalf("diagnostics: want none, got %v", diags)
	}
	want := []model.Area{
		{Name: "Violet City", TrainerIDs: []int{3, 4}},
		{Name: "Route 30", TrainerIDs: []int{1}},
		{Name: "Azalea Town", TrainerIDs: []int{7, 8, 9}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Errors(t *testing.T) {
	for _, tc := range []struct {
		id         string
		input      string
		structural int
		areas      int
	}{
		{id: "not an object", input: `[1, 2]`, structural: 1},
		{id: "ids not a list", input: `{"A": 1}`, structural: 1},
		{id: "truncated", input: `{"A": [1]`, structural: 1},
		{id: "repeated id", input: `{"A": [1], "B": [1]}`, structural: 1, areas: 2},
		{id: "empty", input: `{}`},
	} {
		t.Run(tc.id, func(t *testing.T) {
			got, diags := areas.Parse("areas.json", []byte(tc.input))
			if n := mgdex.Count(diags, mgdex.Structural); n != tc.structural {
				t.Errorf("structural: want %d, got %d: %v", tc.structural, n, diags)
			}
			if len(got) != tc.areas {
				t.Errorf("areas: want %d, got %d", tc.areas, len(got))
			}
		})
	}
}
