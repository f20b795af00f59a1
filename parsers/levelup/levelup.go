// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package levelup extracts level-up learnsets from levelupdata.s.
package levelup

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/mdhender/mgdex"
	"github.com/mdhender/mgdex/model"
	"github.com/mdhender/mgdex/parsers"
)

var (
	rxLevelup  = regexp.MustCompile(`^levelup\s+SPECIES_(\w+)`)
	rxLearnset = regexp.MustCompile(`^learnset\s+(MOVE_\w+),\s*(\d+)`)
)

type state int

const (
	idle state = iota
	inBlock
)

type extractor struct {
	state   state
	species string
	moves   map[string][]model.LevelMove
	diags   *mgdex.Diagnostics
}

// Parse returns the level-up moves of each species, ordered by level.
// Moves learned at the same level keep their declaration order.
func Parse(source string, input []byte, options ...parsers.Option) (map[string][]model.LevelMove, []mgdex.Diagnostic) {
	e := &extractor{
		moves: map[string][]model.LevelMove{},
		diags: mgdex.NewDiagnostics(source),
	}
	for _, line := range parsers.Lines(input, options...) {
		e.step(line.No, strings.TrimSpace(line.Text))
	}
	for _, list := range e.moves {
		SortByLevel(list)
	}
	return e.moves, e.diags.List()
}

func (e *extractor) step(no int, line string) {
	switch {
	case strings.HasPrefix(line, "levelup"):
		if match := rxLevelup.FindStringSubmatch(line); match != nil {
			if e.state == inBlock {
				e.diags.Warnf(mgdex.Structural, no, "levelup %s: opened before %s was terminated", match[1], e.species)
			}
			e.state, e.species = inBlock, strings.ToUpper(match[1])
		}
	case strings.HasPrefix(line, "terminatelearnset"):
		e.state, e.species = idle, ""
	case e.state == inBlock && strings.HasPrefix(line, "learnset"):
		if match := rxLearnset.FindStringSubmatch(line); match != nil {
			level, _ := strconv.Atoi(match[2])
			e.moves[e.species] = append(e.moves[e.species], model.LevelMove{Level: level, Move: match[1]})
		}
	}
}

// SortByLevel orders moves by level, keeping declaration order for ties.
func SortByLevel(list []model.LevelMove) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Level < list[j].Level
	})
}
