// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package species builds the canonical species list and the (base, form) addressing
// scheme that every other source is translated through.
package species

import (
	"fmt"
	"strings"

	"github.com/mdhender/mgdex/parsers"
)

// Identity is the canonical address of a species.
type Identity struct {
	Base string // base constant, e.g. SPECIES_RATTATA
	Form int    // 0 is the default form
	Name string // flat canonical name, e.g. RATTATA_ALOLAN
}

func (id Identity) String() string {
	return fmt.Sprintf("%s/%d=%s", id.Base, id.Form, id.Name)
}

type pair struct {
	base string
	form int
}

// Resolver maps (species constant, form index) pairs to canonical names.
// It is built once and is read-only afterwards.
type Resolver struct {
	byPair map[pair]Identity
	byName map[string]Identity
	order  []Identity
}

// NewResolver groups the enumeration by base species. Constants in the form
// table join the group of their base; every other constant is its own group.
// Inside a group, form indexes follow enumeration order starting at 0.
// Groups are listed in order of their first member.
func NewResolver(enumeration []string, forms FormTable) *Resolver {
	var bases, unique []string
	groups := map[string][]string{}
	seen := map[string]bool{}
	for _, token := range enumeration {
		if seen[token] {
			continue
		}
		seen[token] = true
		unique = append(unique, token)
		base := forms.Base(token)
		if _, ok := groups[base]; !ok {
			bases = append(bases, base)
		}
		groups[base] = append(groups[base], token)
	}

	r := &Resolver{
		byPair: make(map[pair]Identity, len(seen)),
		byName: make(map[string]Identity, len(seen)),
		order:  make([]Identity, 0, len(unique)),
	}
	for _, base := range bases {
		for form, token := range groups[base] {
			id := Identity{Base: base, Form: form, Name: parsers.TrimSpecies(token)}
			r.byPair[pair{base: base, form: form}] = id
			r.byName[id.Name] = id
		}
	}
	for _, token := range unique {
		r.order = append(r.order, r.byName[parsers.TrimSpecies(token)])
	}
	return r
}

// Resolve translates a constant and the form index declared next to it in a
// source file. The constant may be given with or without the SPECIES_ prefix.
// A miss is a data error; callers must not fall back to form 0.
func (r *Resolver) Resolve(token string, form int) (Identity, bool) {
	if !strings.HasPrefix(token, "SPECIES_") {
		token = "SPECIES_" + token
	}
	id, ok := r.byPair[pair{base: token, form: form}]
	return id, ok
}

// Lookup returns the identity of a canonical name.
func (r *Resolver) Lookup(name string) (Identity, bool) {
	id, ok := r.byName[name]
	return id, ok
}

// Identities returns every identity in enumeration order.
func (r *Resolver) Identities() []Identity {
	return append([]Identity(nil), r.order...)
}

// Names returns every canonical name in enumeration order.
func (r *Resolver) Names() []string {
	names := make([]string, len(r.order))
	for n, id := range r.order {
		names[n] = id.Name
	}
	return names
}

// Len is the number of distinct species.
func (r *Resolver) Len() int {
	return len(r.order)
}
