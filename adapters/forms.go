// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package adapters

import (
	"sort"
	"strings"
)

var regionalSuffixes = []string{"GALARIAN", "ALOLAN", "HISUIAN", "PALDEAN"}

// IsFormOf reports whether form is a variant of base by name: a mega
// evolution, a regional variant, or any name that contains base followed
// by an underscore.
func IsFormOf(base, form string) bool {
	if form == base {
		return false
	}
	if form == "MEGA_"+base || base == "MEGA_"+form {
		return true
	}
	for _, suffix := range regionalSuffixes {
		if form == base+"_"+suffix || base == form+"_"+suffix {
			return true
		}
	}
	return strings.Contains(form, base+"_")
}

// Related reports whether either name is a form of the other.
func Related(a, b string) bool {
	return IsFormOf(a, b) || IsFormOf(b, a)
}

// RelatedForms returns the names related to name, sorted.
func RelatedForms(name string, names []string) []string {
	var forms []string
	for _, other := range names {
		if Related(name, other) {
			forms = append(forms, other)
		}
	}
	sort.Strings(forms)
	return forms
}
