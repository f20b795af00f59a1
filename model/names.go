// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package model

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Title turns a constant suffix into title case: THUNDER_SHOCK -> Thunder Shock.
func Title(s string) string {
	return cases.Title(language.Und).String(strings.ReplaceAll(s, "_", " "))
}

// PrettyConst removes prefix and title-cases the remainder.
func PrettyConst(prefix, s string) string {
	return Title(strings.TrimPrefix(s, prefix))
}

// Spaced removes prefix and replaces underscores with spaces, keeping case.
func Spaced(prefix, s string) string {
	return strings.ReplaceAll(strings.TrimPrefix(s, prefix), "_", " ")
}

// SpeciesFileName is the page name for a canonical species name.
func SpeciesFileName(name string) string {
	return strings.ToLower(name) + ".html"
}

// SpriteFileName is the sprite name for a canonical species name.
func SpriteFileName(name string) string {
	return strings.ToLower(name) + ".png"
}

// TrainerFileName is the page name for a trainer.
func TrainerFileName(name string, id int) string {
	return fmt.Sprintf("%s_%d.html", strings.ReplaceAll(name, " ", "_"), id)
}
