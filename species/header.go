// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package species

import (
	"regexp"
	"strings"

	"github.com/mdhender/mgdex"
	"github.com/mdhender/mgdex/parsers"
)

var (
	rxDefine = regexp.MustCompile(`^#define\s+(SPECIES_[A-Z0-9_]+)\s+`)
)

// ParseHeader returns the species constants of a species.h header in
// declaration order. SPECIES_NONE and numeric-only names are not species.
// A constant declared twice keeps its first position.
func ParseHeader(source string, input []byte, options ...parsers.Option) ([]string, []mgdex.Diagnostic) {
	diags := mgdex.NewDiagnostics(source)
	var list []string
	seen := map[string]int{}
	for _, line := range parsers.Lines(input, options...) {
		match := rxDefine.FindStringSubmatch(line.Text)
		if match == nil {
			continue
		}
		token := match[1]
		if token == "SPECIES_NONE" || isDigits(parsers.TrimSpecies(token)) {
			continue
		}
		if first, ok := seen[token]; ok {
			diags.Warnf(mgdex.Structural, line.No, "%s already defined on line %d", token, first)
			continue
		}
		seen[token] = line.No
		list = append(list, token)
	}
	return list, diags.List()
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	return strings.Trim(s, "0123456789") == ""
}
