// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package renderer

import (
	"fmt"

	"github.com/a-h/templ"
	"github.com/mdhender/mgdex/model"
)

//go:generate templ generate

// barStyle sizes and colors a stat bar.
func barStyle(bar model.StatBar) templ.SafeCSS {
	return templ.SafeCSS(fmt.Sprintf("width: %d%%; background-color: %s;", bar.Width, bar.Color))
}
