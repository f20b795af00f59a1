// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package areas loads the trainer area mapping.
//
// The mapping is a JSON object from area name to a list of trainer ids.
// The order of the keys is the story order, so the object is read token
// by token instead of into a map.
package areas

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mdhender/mgdex"
	"github.com/mdhender/mgdex/model"
)

// Parse returns the areas in file order. A trainer listed under more than
// one area belongs to the last one; a warning is raised for each repeat.
func Parse(source string, input []byte) ([]model.Area, []mgdex.Diagnostic) {
	diags := mgdex.NewDiagnostics(source)
	list, err := decode(input)
	if err != nil {
		diags.Errorf(mgdex.Structural, 0, "%v", err)
		return nil, diags.List()
	}
	owner := map[int]string{}
	for _, area := range list {
		for _, id := range area.TrainerIDs {
			if prev, ok := owner[id]; ok && prev != area.Name {
				diags.Warnf(mgdex.Structural, 0, "trainer %d: listed in %q and %q, using %q", id, prev, area.Name, area.Name)
			}
			owner[id] = area.Name
		}
	}
	return list, diags.List()
}

func decode(input []byte) ([]model.Area, error) {
	dec := json.NewDecoder(bytes.NewReader(input))
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}
	var list []model.Area
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("area name: want string, got %v", tok)
		}
		var ids []int
		if err := dec.Decode(&ids); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		list = append(list, model.Area{Name: name, TrainerIDs: ids})
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return list, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if got, ok := tok.(json.Delim); !ok || got != want {
		return fmt.Errorf("want %q, got %v", want, tok)
	}
	return nil
}
