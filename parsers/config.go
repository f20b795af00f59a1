// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package parsers

import "fmt"

// EOL selects how Lines treats carriage returns.
type EOL int

const (
	// EOLAuto converts CR+LF and lone CR to LF.
	EOLAuto EOL = iota
	// EOLStripCR converts CR+LF to LF and leaves lone CR in the text.
	EOLStripCR
	// EOLKeep splits on LF only.
	EOLKeep
)

var eolNames = [...]string{"auto", "strip-cr", "keep"}

func (e EOL) String() string {
	if e < EOLAuto || e > EOLKeep {
		return fmt.Sprintf("EOL(%d)", int(e))
	}
	return eolNames[e]
}

// ParseEOL maps a configuration value to a mode. The empty string is EOLAuto.
func ParseEOL(s string) (EOL, error) {
	if s == "" {
		return EOLAuto, nil
	}
	for n, name := range eolNames {
		if s == name {
			return EOL(n), nil
		}
	}
	return EOLAuto, fmt.Errorf("line endings %q: want auto, strip-cr or keep", s)
}

type lineConfig struct {
	eol EOL
}

type Option func(c *lineConfig)

func WithEOL(mode EOL) Option {
	return func(c *lineConfig) {
		c.eol = mode
	}
}
