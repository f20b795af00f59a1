// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package learnsets loads the precomputed learnsets.json movesets.
package learnsets

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/mdhender/mgdex"
	"github.com/mdhender/mgdex/model"
	"github.com/mdhender/mgdex/parsers"
	"github.com/mdhender/mgdex/parsers/levelup"
)

type jsonEntry struct {
	LevelMoves   []jsonLevelMove `json:"LevelMoves"`
	EggMoves     []string        `json:"EggMoves"`
	MachineMoves []string        `json:"MachineMoves"`
}

type jsonLevelMove struct {
	Level json.RawMessage `json:"Level"`
	Move  string          `json:"Move"`
}

// level accepts 12 or "12".
func (lm jsonLevelMove) level() (int, error) {
	if len(lm.Level) == 0 {
		return 0, nil
	}
	var n json.Number
	dec := json.NewDecoder(bytes.NewReader(lm.Level))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return 0, err
	}
	switch t := v.(type) {
	case json.Number:
		n = t
	case string:
		n = json.Number(t)
	default:
		return 0, fmt.Errorf("level: unexpected %T", v)
	}
	i, err := strconv.Atoi(n.String())
	if err != nil {
		return 0, err
	}
	return i, nil
}

// Parse returns the moveset for each species keyed by canonical name.
// Level entries that do not parse are reported and skipped.
func Parse(source string, input []byte) (map[string]model.Moveset, []mgdex.Diagnostic) {
	diags := mgdex.NewDiagnostics(source)
	var raw map[string]jsonEntry
	if err := json.Unmarshal(input, &raw); err != nil {
		diags.Errorf(mgdex.Structural, 0, "json: %v", err)
		return map[string]model.Moveset{}, diags.List()
	}

	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make(map[string]model.Moveset, len(raw))
	for _, key := range keys {
		entry := raw[key]
		var set model.Moveset
		for _, lm := range entry.LevelMoves {
			level, err := lm.level()
			if err != nil {
				diags.Warnf(mgdex.Structural, 0, "%s: %s: %v", key, lm.Move, err)
				continue
			}
			move := lm.Move
			if move == "" {
				move = "MOVE_NONE"
			}
			set.Level = append(set.Level, model.LevelMove{Level: level, Move: move})
		}
		levelup.SortByLevel(set.Level)
		set.Egg = unique(entry.EggMoves)
		set.Machine = unique(entry.MachineMoves)
		out[parsers.TrimSpecies(key)] = set
	}
	return out, diags.List()
}

// unique drops repeated moves, keeping the first occurrence.
func unique(list []string) []string {
	var out []string
	seen := map[string]bool{}
	for _, s := range list {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
