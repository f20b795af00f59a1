// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package parsers holds the helpers shared by the line-oriented extractors.
// Each extractor lives in its own sub-package and reads one source.
package parsers

import (
	"bytes"
	"strings"
)

// Line is a single line of input with its 1-based line number.
type Line struct {
	No   int
	Text string
}

// Lines splits input into lines. Line endings are normalized to LF by default.
func Lines(input []byte, options ...Option) []Line {
	cfg := lineConfig{eol: EOLAuto}
	for _, option := range options {
		option(&cfg)
	}
	switch cfg.eol {
	case EOLAuto:
		input = bytes.ReplaceAll(input, []byte{'\r', '\n'}, []byte{'\n'})
		input = bytes.ReplaceAll(input, []byte{'\r'}, []byte{'\n'})
	case EOLStripCR:
		input = bytes.ReplaceAll(input, []byte{'\r', '\n'}, []byte{'\n'})
	}
	if len(input) == 0 {
		return nil
	}
	input = bytes.TrimSuffix(input, []byte{'\n'})
	raw := bytes.Split(input, []byte{'\n'})
	lines := make([]Line, len(raw))
	for n, text := range raw {
		lines[n] = Line{No: n + 1, Text: string(text)}
	}
	return lines
}

// StripComment removes a trailing "//" comment and surrounding spaces.
func StripComment(s string) string {
	if n := strings.Index(s, "//"); n >= 0 {
		s = s[:n]
	}
	return strings.TrimSpace(s)
}

// TrimSpecies removes the SPECIES_ prefix from a constant.
func TrimSpecies(s string) string {
	return strings.TrimPrefix(s, "SPECIES_")
}
