// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package adapters_test

import (
	"testing"

	"github.com/mdhender/mgdex/adapters"
)

func TestMethodDescription(t *testing.T) {
	for _, tc := range []struct {
		method string
		want   string
	}{
		{"EVO_LEVEL", "level up to"},
		{"EVO_ITEM_NIGHT", "held item (day level 25+)"},
		{"EVO_TRADE_ITEM", "trade while holding"},
		{"EVO_NONE", "No evolution"},
		{"EVO_LEVEL_RAIN", "EVO_LEVEL_RAIN"},
	} {
		if got := adapters.MethodDescription(tc.method); got != tc.want {
			t.Errorf("MethodDescription(%q): want %q, got %q", tc.method, tc.want, got)
		}
	}
}

func TestParameterDescription(t *testing.T) {
	for _, tc := range []struct {
		param string
		want  string
	}{
		{"ITEM_FIRE_STONE", "Fire Stone"},
		{"MOVE_ANCIENT_POWER", "Ancient Power"},
		{"ABILITY_SHED_SKIN", "Shed Skin"},
		{"NONE", ""},
		{"none", ""},
		{"20", "20"},
	} {
		if got := adapters.ParameterDescription(tc.param); got != tc.want {
			t.Errorf("ParameterDescription(%q): want %q, got %q", tc.param, tc.want, got)
		}
	}
}

func TestStatColorAndWidth(t *testing.T) {
	for _, tc := range []struct {
		base  int
		color string
		width int
	}{
		{base: 1, color: "red", width: 0},
		{base: 50, color: "red", width: 27},
		{base: 51, color: "orange", width: 28},
		{base: 80, color: "orange", width: 44},
		{base: 100, color: "yellow", width: 55},
		{base: 120, color: "limegreen", width: 66},
		{base: 150, color: "green", width: 83},
		{base: 180, color: "blue", width: 100},
		{base: 255, color: "blue", width: 100},
	} {
		if got := adapters.StatColor(tc.base); got != tc.color {
			t.Errorf("StatColor(%d): want %q, got %q", tc.base, tc.color, got)
		}
		if got := adapters.StatWidth(tc.base); got != tc.width {
			t.Errorf("StatWidth(%d): want %d, got %d", tc.base, tc.width, got)
		}
	}
}

func TestItemName(t *testing.T) {
	for _, tc := range []struct {
		item string
		want string
	}{
		{"ITEM_ORAN_BERRY", "ORAN BERRY"},
		{"ITEM_CHARIZARDITE_X", "MEGA STONE X"},
		{"", ""},
	} {
		if got := adapters.ItemName(tc.item); got != tc.want {
			t.Errorf("ItemName(%q): want %q, got %q", tc.item, tc.want, got)
		}
	}
}

func TestIsFormOf(t *testing.T) {
	for _, tc := range []struct {
		base, form string
		want       bool
	}{
		{"VENUSAUR", "MEGA_VENUSAUR", true},
		{"MEGA_VENUSAUR", "VENUSAUR", true},
		{"MEOWTH", "MEOWTH_GALARIAN", true},
		{"MEOWTH_GALARIAN", "MEOWTH", true},
		{"ROTOM", "ROTOM_HEAT", true},
		{"ROTOM_HEAT", "ROTOM", false},
		{"MEW", "MEWTWO", false},
		{"MEW", "MEW", false},
	} {
		if got := adapters.IsFormOf(tc.base, tc.form); got != tc.want {
			t.Errorf("IsFormOf(%q, %q): want %v, got %v", tc.base, tc.form, tc.want, got)
		}
	}
	if !adapters.Related("ROTOM_HEAT", "ROTOM") {
		t.Errorf("Related(ROTOM_HEAT, ROTOM): want true, got false")
	}
}
