// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package encounters extracts wild encounter locations from encounters.s.
package encounters

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
	rxHeader   = regexp.MustCompile(`^encounterdata\s+(\d+)\s*//\s*(.+)`)
	rxWithForm = regexp.MustCompile(`encounterwithform\s+(SPECIES_[A-Z0-9_]+),\s*(\d+),\s*\d+,\s*\d+`)
	rxMonForm  = regexp.MustCompile(`monwithform\s+(SPECIES_[A-Z0-9_]+),\s*(\d+)`)
	rxSpecies  = regexp.MustCompile(`SPECIES_([A-Z0-9_]+)`)
)

// sectionKeywords are tested in order against lower-cased comment lines and
// the first hit wins. A comment mentioning both "day" and a region is a Day
// section; "swarm good rod" is a Good Rod section.
var sectionKeywords = []struct {
	keyword string
	section string
}{
	{"morning", "Morning"},
	{"day", "Day"},
	{"night", "Night"},
	{"hoenn", "Hoenn"},
	{"sinnoh", "Sinnoh"},
	{"surf encounters", "Surf"},
	{"rock smash", "Rock Smash"},
	{"old rod", "Old Rod"},
	{"good rod", "Good Rod"},
	{"super rod", "Super Rod"},
	{"swarm grass", "Swarm Grass"},
	{"swarm surf", "Swarm Surf"},
	{"swarm good rod", "Swarm Good Rod"},
	{"swarm super rod", "Swarm Super Rod"},
}

// Section returns the section named by a comment line, if any.
func Section(comment string) (string, bool) {
	lower := strings.ToLower(comment)
	for _, kw := range sectionKeywords {
		if strings.Contains(lower, kw.keyword) {
			return kw.section, true
		}
	}
	return "", false
}

type extractor struct {
	location string // set by the encounterdata header
	section  string // set by comment keywords, cleared by .close
	resolver *species.Resolver
	found    map[string][]model.Encounter
	diags    *mgdex.Diagnostics
}

// Parse returns every encounter for each species in source order.
// Duplicates are kept; the cross-reference builder removes them.
func Parse(source string, input []byte, resolver *species.Resolver, options ...parsers.Option) (map[string][]model.Encounter, []mgdex.Diagnostic) {
	e := &extractor{
		resolver: resolver,
		found:    map[string][]model.Encounter{},
		diags:    mgdex.NewDiagnostics(source),
	}
	for _, line := range parsers.Lines(input, options...) {
		e.step(line.No, strings.TrimSpace(line.Text))
	}
	return e.found, e.diags.List()
}

func (e *extractor) step(no int, line string) {
	if strings.HasPrefix(line, "encounterdata") {
		if match := rxHeader.FindStringSubmatch(line); match != nil {
			e.location, e.section = strings.TrimSpace(match[2]), ""
		}
	} else if strings.HasPrefix(line, "//") {
		if section, ok := Section(line); ok {
			e.section = section
		}
	}

	switch {
	case strings.HasPrefix(line, "encounterwithform"):
		if match := rxWithForm.FindStringSubmatch(line); match != nil {
			e.addForm(no, match[1], match[2])
		}
	case strings.HasPrefix(line, "monwithform"):
		if match := rxMonForm.FindStringSubmatch(line); match != nil {
			e.addForm(no, match[1], match[2])
		}
	case strings.HasPrefix(line, "pokemon"), strings.HasPrefix(line, "encounter"):
		if match := rxSpecies.FindStringSubmatch(line); match != nil {
			e.add(strings.ToUpper(match[1]))
		}
	case strings.HasPrefix(line, ".close"):
		e.section = ""
	}
}

func (e *extractor) addForm(no int, token, form string) {
	n, _ := strconv.Atoi(form)
	id, ok := e.resolver.Resolve(token, n)
	if !ok {
		e.diags.Errorf(mgdex.MissingMapping, no, "%s form %d is not in the species table", token, n)
		return
	}
	e.add(strings.ToUpper(id.Name))
}

func (e *extractor) add(name string) {
	e.found[name] = append(e.found[name], model.Encounter{Location: e.location, Section: e.section})
}
