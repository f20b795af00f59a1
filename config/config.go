// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package config loads the input and output paths for a run.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultPath is the configuration file read when no --config flag is given.
const DefaultPath = "mgdex.toml"

// Config holds all user-facing configuration for mgdex.
type Config struct {
	Inputs InputsConfig `toml:"inputs"`
	Output OutputConfig `toml:"output"`
}

// InputsConfig names the source files. Learnsets and Areas are optional;
// every other file must exist.
type InputsConfig struct {
	Species     string `toml:"species"`
	Forms       string `toml:"forms"`
	Mondata     string `toml:"mondata"`
	Evodata     string `toml:"evodata"`
	Levelup     string `toml:"levelup"`
	Learnsets   string `toml:"learnsets"`
	Encounters  string `toml:"encounters"`
	Trainers    string `toml:"trainers"`
	Areas       string `toml:"areas"`
	Sprites     string `toml:"sprites"`      // directory holding <name>/male/front.png
	LineEndings string `toml:"line_endings"` // auto, strip-cr or keep
}

type OutputConfig struct {
	Dir      string `toml:"dir"`
	SiteName string `toml:"site_name"`
}

// Defaults returns a Config populated with built-in default values.
// The paths assume the generator runs next to an hg-engine checkout.
func Defaults() *Config {
	return &Config{
		Inputs: InputsConfig{
			Species:     "../hg-engine/include/constants/species.h",
			Forms:       "../hg-engine/data/FormToSpeciesMapping.c",
			Mondata:     "../hg-engine/armips/data/mondata.s",
			Evodata:     "../hg-engine/armips/data/evodata.s",
			Levelup:     "../hg-engine/armips/data/levelupdata.s",
			Learnsets:   "../hg-engine/data/learnsets/learnsets.json",
			Encounters:  "../hg-engine/armips/data/encounters.s",
			Trainers:    "../hg-engine/armips/data/trainers/trainers.s",
			Areas:       "data/trainer_area_mappings.json",
			Sprites:     "../hg-engine/data/graphics/sprites",
			LineEndings: "auto",
		},
		Output: OutputConfig{Dir: "docs", SiteName: "Mirror Gold"},
	}
}

// Load reads a TOML config file. If the file does not exist, built-in
// defaults are returned without error. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
