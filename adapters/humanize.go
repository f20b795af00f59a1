// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package adapters

import (
	"strings"

	"github.com/mdhender/mgdex/model"
	"github.com/mdhender/mgdex/stats"
)

var evolutionMethods = map[string]string{
	"EVO_LEVEL":      "level up to",
	"EVO_ITEM":       "using",
	"EVO_ITEM_DAY":   "held item (day level 25+)",
	"EVO_ITEM_NIGHT": "held item (day level 25+)",
	"EVO_HAPPINESS":  "high friendship",
	"EVO_TRADE":      "trade",
	"EVO_TRADE_ITEM": "trade while holding",
	"EVO_MOVE":       "level up knowing",
	"EVO_STONE":      "stone (level 25+)",
	"EVO_NONE":       "No evolution",
}

// MethodDescription returns the display text for an evolution method.
// Methods without a description are shown as they appear in the source.
func MethodDescription(method string) string {
	if desc, ok := evolutionMethods[method]; ok {
		return desc
	}
	return method
}

// ParameterDescription returns the display text for an evolution parameter.
func ParameterDescription(param string) string {
	for _, prefix := range []string{"ITEM_", "MOVE_", "ABILITY_"} {
		if strings.HasPrefix(param, prefix) {
			return model.PrettyConst(prefix, param)
		}
	}
	if strings.ToUpper(param) == "NONE" {
		return ""
	}
	return param
}

// StatColor buckets a base stat for the stat bar.
func StatColor(base int) string {
	switch {
	case base <= 50:
		return "red"
	case base <= 80:
		return "orange"
	case base <= 100:
		return "yellow"
	case base <= 120:
		return "limegreen"
	case base <= 150:
		return "green"
	}
	return "blue"
}

// StatWidth is the bar width in percent; 180 fills the bar.
func StatWidth(base int) int {
	if w := base * 100 / 180; w < 100 {
		return w
	}
	return 100
}

// StatBars builds one bar per stat. The colour and width follow base,
// the label shows the matching entry in values.
func StatBars(base, values stats.Spread) []model.StatBar {
	bars := make([]model.StatBar, 0, len(stats.Stats))
	for _, s := range stats.Stats {
		bars = append(bars, model.StatBar{
			Label: s.String(),
			Value: values[s],
			Base:  base[s],
			Color: StatColor(base[s]),
			Width: StatWidth(base[s]),
		})
	}
	return bars
}

// AbilityURL is the reference page for an ability name such as "Overgrow".
func AbilityURL(name string) string {
	return "https://bulbapedia.bulbagarden.net/wiki/" + strings.ReplaceAll(name, " ", "_") + "_(Ability)"
}

// ItemName is the display name of a held item. CHARIZARDITE X and Y
// are shown as MEGA STONE X and Y.
func ItemName(item string) string {
	return strings.ReplaceAll(model.Spaced("ITEM_", item), "CHARIZARDITE", "MEGA STONE")
}
