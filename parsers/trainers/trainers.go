// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package trainers extracts trainer headers and parties from trainers.s.
package trainers

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/mdhender/mgdex"
	"github.com/mdhender/mgdex/model"
	"github.com/mdhender/mgdex/parsers"
	"github.com/mdhender/mgdex/species"
	"github.com/mdhender/mgdex/stats"
)

var (
	rxTrainerData = regexp.MustCompile(`^trainerdata\s+(\d+),\s*"([^"]+)"`)
	rxParty       = regexp.MustCompile(`^party\s+(\d+)`)
	rxAttribute   = regexp.MustCompile(`^(\w+)\s+(.+)`)
	rxMonWithForm = regexp.MustCompile(`^monwithform\s+(SPECIES_[A-Z0-9_]+),\s*(\d+)`)
)

type state int

const (
	idle state = iota
	inHeader
	inParty
)

// pending is a party member that has not been validated yet.
type pending struct {
	line   int // line of the ivs marker
	mon    *model.TrainerMon
	level  string
	broken bool
}

type extractor struct {
	state    state
	trainer  *model.Trainer // header being read
	partyOf  *model.Trainer // owner of the party being read
	members  []*pending
	current  *pending
	trainers map[int]*model.Trainer
	resolver *species.Resolver
	diags    *mgdex.Diagnostics
}

// Parse returns every trainer that was closed with endentry, sorted by id.
// Placeholder trainers are included; callers decide whether to show them.
func Parse(source string, input []byte, resolver *species.Resolver, options ...parsers.Option) ([]*model.Trainer, []mgdex.Diagnostic) {
	e := &extractor{
		trainers: map[int]*model.Trainer{},
		resolver: resolver,
		diags:    mgdex.NewDiagnostics(source),
	}
	var last int
	for _, line := range parsers.Lines(input, options...) {
		e.step(line.No, parsers.StripComment(line.Text))
		last = line.No
	}
	switch e.state {
	case inHeader:
		e.diags.Warnf(mgdex.Structural, last, "trainer %d: missing endentry", e.trainer.ID)
	case inParty:
		e.diags.Warnf(mgdex.Structural, last, "party %d: missing endparty", e.partyOf.ID)
	}

	list := make([]*model.Trainer, 0, len(e.trainers))
	for _, t := range e.trainers {
		list = append(list, t)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
	return list, e.diags.List()
}

func (e *extractor) step(no int, line string) {
	if line == "" {
		return
	}

	if strings.HasPrefix(line, "trainerdata") {
		match := rxTrainerData.FindStringSubmatch(line)
		if match == nil {
			return
		}
		switch e.state {
		case inHeader:
			e.dropHeader(no)
		case inParty:
			e.diags.Warnf(mgdex.Structural, no, "party %d: trainerdata before endparty, party discarded", e.partyOf.ID)
			e.resetParty()
		}
		id, _ := strconv.Atoi(match[1])
		e.state, e.trainer = inHeader, &model.Trainer{ID: id, Name: match[2]}
		return
	}

	if e.state == inHeader && rxParty.MatchString(line) {
		e.dropHeader(no)
	}

	switch e.state {
	case inHeader:
		e.header(no, line)
	case idle, inParty:
		if strings.HasPrefix(line, "party") {
			e.openParty(no, line)
		} else if e.state == inParty {
			e.party(no, line)
		}
	}
}

func (e *extractor) header(no int, line string) {
	if line == "endentry" {
		e.trainers[e.trainer.ID] = e.trainer
		e.state, e.trainer = idle, nil
		return
	}
	match := rxAttribute.FindStringSubmatch(line)
	if match == nil {
		return
	}
	value := strings.TrimSpace(match[2])
	switch match[1] {
	case "trainerclass":
		e.trainer.Class = value
	case "trainermontype":
		e.trainer.MonType = value
	case "battletype":
		e.trainer.BattleType = value
	case "nummons":
		n, err := strconv.Atoi(value)
		if err != nil {
			e.diags.Warnf(mgdex.Structural, no, "trainer %d: nummons %q is not a number", e.trainer.ID, value)
			return
		}
		e.trainer.NumMons = n
	}
}

// dropHeader discards a header that was not closed with endentry.
func (e *extractor) dropHeader(no int) {
	e.diags.Warnf(mgdex.Structural, no, "trainer %d: missing endentry, trainer discarded", e.trainer.ID)
	e.state, e.trainer = idle, nil
}

func (e *extractor) openParty(no int, line string) {
	match := rxParty.FindStringSubmatch(line)
	if match == nil {
		return
	}
	if e.state == inParty {
		e.diags.Warnf(mgdex.Structural, no, "party %d: party opened before endparty, party discarded", e.partyOf.ID)
		e.resetParty()
	}
	id, _ := strconv.Atoi(match[1])
	owner, ok := e.trainers[id]
	if !ok {
		e.diags.Warnf(mgdex.Structural, no, "party %d: no trainer with this id", id)
		return
	}
	e.state, e.partyOf = inParty, owner
}

func (e *extractor) party(no int, line string) {
	if line == "endparty" {
		e.closeParty()
		return
	}
	if strings.HasPrefix(line, "ivs") {
		e.current = &pending{line: no, mon: &model.TrainerMon{}}
		e.members = append(e.members, e.current)
		if match := rxAttribute.FindStringSubmatch(line); match != nil {
			e.current.mon.Difficulty = strings.TrimSpace(match[2])
		}
		return
	}
	if e.current == nil {
		e.diags.Warnf(mgdex.Structural, no, "party %d: %q before ivs, line dropped", e.partyOf.ID, line)
		return
	}

	if strings.HasPrefix(line, "monwithform") {
		match := rxMonWithForm.FindStringSubmatch(line)
		if match == nil {
			return
		}
		form, _ := strconv.Atoi(match[2])
		id, ok := e.resolver.Resolve(match[1], form)
		if !ok {
			e.diags.Errorf(mgdex.MissingMapping, no, "party %d: %s form %d is not in the species table", e.partyOf.ID, match[1], form)
			e.current.broken = true
			return
		}
		e.current.mon.Species = id.Name
		return
	}

	match := rxAttribute.FindStringSubmatch(line)
	if match == nil {
		return
	}
	mon, value := e.current.mon, strings.TrimSpace(match[2])
	switch match[1] {
	case "pokemon":
		mon.Species = parsers.TrimSpecies(strings.ToUpper(value))
	case "level":
		e.current.level = value
	case "ability":
		mon.Ability = value
	case "item":
		mon.Item = value
	case "nature":
		mon.Nature = value
	case "move":
		if len(mon.Moves) < 4 {
			mon.Moves = append(mon.Moves, value)
		}
	case "setivs":
		if spread, ok := parseSpread(value); ok {
			mon.IVs = &spread
		} else {
			e.diags.Warnf(mgdex.Structural, no, "party %d: setivs %q needs six numbers, using defaults", e.partyOf.ID, value)
		}
	case "setevs":
		if spread, ok := parseSpread(value); ok {
			mon.EVs = &spread
		} else {
			e.diags.Warnf(mgdex.Structural, no, "party %d: setevs %q needs six numbers, using defaults", e.partyOf.ID, value)
		}
	}
}

// closeParty validates the pending members and attaches them to the owner.
func (e *extractor) closeParty() {
	var party []*model.TrainerMon
	for _, p := range e.members {
		if p.broken {
			continue
		}
		if p.mon.Species == "" {
			e.diags.Warnf(mgdex.Structural, p.line, "party %d: pokemon has no species, dropped", e.partyOf.ID)
			continue
		}
		level, err := strconv.Atoi(p.level)
		if err != nil || level < 1 {
			e.diags.Warnf(mgdex.Structural, p.line, "party %d: %s has bad level %q, dropped", e.partyOf.ID, p.mon.Species, p.level)
			continue
		}
		p.mon.Level = level
		party = append(party, p.mon)
	}
	e.partyOf.Party = party
	e.resetParty()
}

func (e *extractor) resetParty() {
	e.state, e.partyOf, e.members, e.current = idle, nil, nil, nil
}

// parseSpread reads six comma-separated values in source order
// (HP, Attack, Defense, Speed, Sp. Atk, Sp. Def).
func parseSpread(value string) (stats.Spread, bool) {
	fields := strings.Split(value, ",")
	if len(fields) != 6 {
		return stats.Spread{}, false
	}
	var v [6]int
	for n, field := range fields {
		i, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return stats.Spread{}, false
		}
		v[n] = i
	}
	return stats.FromSource(v[0], v[1], v[2], v[3], v[4], v[5]), true
}
