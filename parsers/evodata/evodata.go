// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package evodata extracts evolution edges from evodata.s.
package evodata

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mdhender/mgdex"
	"github.com/mdhender/mgdex/model"
	"github.com/mdhender/mgdex/parsers"
	"github.com/mdhender/mgdex/species"
)

var (
	rxEvodata           = regexp.MustCompile(`^evodata\s+SPECIES_([A-Z0-9_]+)`)
	rxEvolution         = regexp.MustCompile(`^evolution\s+(\w+),\s*(\w+),\s*SPECIES_([A-Z0-9_]+)`)
	rxEvolutionWithForm = regexp.MustCompile(`^evolutionwithform\s+(\w+),\s*(\w+),\s*(SPECIES_[A-Z0-9_]+),\s*(\d+)`)
)

type state int

const (
	idle state = iota
	inBlock
)

type extractor struct {
	state    state
	species  string
	resolver *species.Resolver
	evos     *model.Evolutions
	diags    *mgdex.Diagnostics
}

// Parse returns the evolution edges indexed from both ends.
// Form-qualified targets are translated through the resolver; a target that
// does not resolve is reported and dropped.
func Parse(source string, input []byte, resolver *species.Resolver, options ...parsers.Option) (*model.Evolutions, []mgdex.Diagnostic) {
	e := &extractor{
		resolver: resolver,
		evos:     model.NewEvolutions(),
		diags:    mgdex.NewDiagnostics(source),
	}
	for _, line := range parsers.Lines(input, options...) {
		e.step(line.No, strings.TrimSpace(line.Text))
	}
	if e.state == inBlock {
		e.diags.Warnf(mgdex.Structural, 0, "evodata %s: missing terminateevodata at end of input", e.species)
	}
	return e.evos, e.diags.List()
}

func (e *extractor) step(no int, line string) {
	switch {
	case strings.HasPrefix(line, "evodata"):
		if match := rxEvodata.FindStringSubmatch(line); match != nil {
			if e.state == inBlock {
				e.diags.Warnf(mgdex.Structural, no, "evodata %s: opened before %s was terminated", match[1], e.species)
			}
			e.state, e.species = inBlock, match[1]
		}
		return
	case strings.HasPrefix(line, "terminateevodata"):
		e.state, e.species = idle, ""
		return
	}
	if e.state != inBlock {
		return
	}

	if strings.HasPrefix(line, "evolutionwithform") {
		match := rxEvolutionWithForm.FindStringSubmatch(line)
		if match == nil {
			return
		}
		method, param, target := match[1], match[2], match[3]
		if target == "SPECIES_NONE" || method == "EVO_NONE" {
			return
		}
		form, _ := strconv.Atoi(match[4])
		id, ok := e.resolver.Resolve(target, form)
		if !ok {
			e.diags.Errorf(mgdex.MissingMapping, no, "%s: evolution target %s form %d is not in the species table", e.species, target, form)
			return
		}
		e.evos.Add(model.EvolutionEdge{From: e.species, To: id.Name, Method: method, Parameter: param})
	} else if strings.HasPrefix(line, "evolution") {
		match := rxEvolution.FindStringSubmatch(line)
		if match == nil {
			return
		}
		method, param, target := match[1], match[2], match[3]
		if target == "NONE" || method == "EVO_NONE" {
			return
		}
		e.evos.Add(model.EvolutionEdge{From: e.species, To: target, Method: method, Parameter: param})
	}
}
