// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package mondata extracts base stats, typing and abilities from mondata.s.
package mondata

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mdhender/mgdex"
	"github.com/mdhender/mgdex/model"
	"github.com/mdhender/mgdex/parsers"
	"github.com/mdhender/mgdex/stats"
)

var (
	rxMondata   = regexp.MustCompile(`^mondata\s+SPECIES_(\w+),`)
	rxBaseStats = regexp.MustCompile(`basestats\s+(\d+),\s*(\d+),\s*(\d+),\s*(\d+),\s*(\d+),\s*(\d+)`)
	rxAbilities = regexp.MustCompile(`abilities\s+ABILITY_(\w+),\s*ABILITY_(\w+)`)
	rxTypes     = regexp.MustCompile(`types\s+TYPE_(\w+),\s*TYPE_(\w+)`)
)

type state int

const (
	idle state = iota
	inBlock
)

// A block has no close marker; the next mondata line starts a new one.
type extractor struct {
	state   state
	species string
	records map[string]*model.BaseRecord
	diags   *mgdex.Diagnostics
}

// Parse returns the base records keyed by canonical species name.
func Parse(source string, input []byte, options ...parsers.Option) (map[string]model.BaseRecord, []mgdex.Diagnostic) {
	e := &extractor{
		records: map[string]*model.BaseRecord{},
		diags:   mgdex.NewDiagnostics(source),
	}
	for _, line := range parsers.Lines(input, options...) {
		e.step(line.No, parsers.StripComment(line.Text))
	}
	out := make(map[string]model.BaseRecord, len(e.records))
	for name, rec := range e.records {
		out[name] = *rec
	}
	return out, e.diags.List()
}

func (e *extractor) step(no int, line string) {
	if line == "" {
		return
	}
	if match := rxMondata.FindStringSubmatch(line); match != nil {
		e.state, e.species = inBlock, strings.ToUpper(match[1])
		return
	}
	if e.state != inBlock {
		return
	}
	if match := rxBaseStats.FindStringSubmatch(line); match != nil {
		var v [6]int
		for n := range v {
			v[n], _ = strconv.Atoi(match[n+1])
		}
		if _, ok := e.records[e.species]; ok {
			e.diags.Warnf(mgdex.Structural, no, "%s: base stats declared again, replacing record", e.species)
		}
		e.records[e.species] = &model.BaseRecord{
			Species: e.species,
			Stats:   stats.FromSource(v[0], v[1], v[2], v[3], v[4], v[5]),
		}
		return
	}
	rec, ok := e.records[e.species]
	if !ok {
		// typing and abilities are only kept once base stats exist
		return
	}
	if match := rxAbilities.FindStringSubmatch(line); match != nil {
		rec.Abilities = []string{match[1]}
		if match[2] != "NONE" {
			rec.Abilities = append(rec.Abilities, match[2])
		}
	} else if match := rxTypes.FindStringSubmatch(line); match != nil {
		if match[1] == match[2] {
			rec.Types = []string{match[1]}
		} else {
			rec.Types = []string{match[1], match[2]}
		}
	}
}
