// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package renderer writes the site pages through an afero filesystem.
package renderer

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/a-h/templ"
	"github.com/mdhender/mgdex/adapters"
	"github.com/mdhender/mgdex/model"
	"github.com/spf13/afero"
)

//go:embed style.css
var defaultStylesheet []byte

const (
	PokedexDir  = "pokedex"
	TrainersDir = "trainers"
	Stylesheet  = "style.css"
)

// Site is the full set of views for one run.
type Site struct {
	Species      []model.SpeciesView
	SpeciesIndex []model.IndexEntry
	Trainers     []model.TrainerView
	TrainerIndex []model.AreaGroup
}

// Summary counts what Render wrote.
type Summary struct {
	SpeciesPages int
	TrainerPages int
	Sprites      int
	NoSprite     int
}

type Renderer struct {
	out     afero.Fs
	root    string
	sprites afero.Fs
	site    string
	css     []byte
}

func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		out:  afero.NewOsFs(),
		root: "docs",
		site: "Mirror Gold",
		css:  defaultStylesheet,
	}
	for _, option := range options {
		err := option(r)
		if err != nil {
			return nil, err
		}
	}
	if r.sprites == nil {
		r.sprites = r.out
	}
	return r, nil
}

// Render writes the stylesheet, index pages, species pages, sprites and
// trainer pages. Existing files are overwritten.
func (r *Renderer) Render(ctx context.Context, site Site, quiet, verbose, debug bool) (Summary, error) {
	started := time.Now()
	var sum Summary

	for _, dir := range []string{r.root, r.path(PokedexDir, adapters.SpriteDir), r.path(TrainersDir)} {
		if err := r.out.MkdirAll(dir, 0o755); err != nil {
			return sum, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	if err := afero.WriteFile(r.out, r.path(Stylesheet), r.css, 0o644); err != nil {
		return sum, fmt.Errorf("write %s: %w", r.path(Stylesheet), err)
	}

	css := "../" + Stylesheet
	if err := r.page(ctx, r.path(PokedexDir, "index.html"), Layout(r.site+" Pokédex Index", css, SpeciesIndexPage(r.site, site.SpeciesIndex))); err != nil {
		return sum, err
	}
	for _, v := range site.Species {
		if err := r.page(ctx, r.path(PokedexDir, v.FileName), Layout(v.Name, css, SpeciesPage(r.site, v))); err != nil {
			return sum, err
		}
		sum.SpeciesPages++
		if v.SpriteSource == "" {
			sum.NoSprite++
			continue
		}
		if err := r.copySprite(v); err != nil {
			return sum, err
		}
		sum.Sprites++
	}
	if debug {
		log.Printf("render: pokedex: %d pages: in %v\n", sum.SpeciesPages, time.Since(started))
	}

	if err := r.page(ctx, r.path(TrainersDir, "index.html"), Layout(r.site+" Trainer Index", css, TrainerIndexPage(r.site, site.TrainerIndex))); err != nil {
		return sum, err
	}
	for _, v := range site.Trainers {
		if err := r.page(ctx, r.path(TrainersDir, v.FileName), Layout(v.Name, css, TrainerPage(r.site, v))); err != nil {
			return sum, err
		}
		sum.TrainerPages++
	}

	if verbose {
		log.Printf("render: species %5d: sprites %5d (%d missing)\n", sum.SpeciesPages, sum.Sprites, sum.NoSprite)
		log.Printf("render: trainers %4d\n", sum.TrainerPages)
	}
	if !quiet {
		log.Printf("render: %d pages written to %s in %v\n", sum.SpeciesPages+sum.TrainerPages+2, r.root, time.Since(started))
	}
	return sum, nil
}

func (r *Renderer) path(elem ...string) string {
	return filepath.Join(append([]string{r.root}, elem...)...)
}

func (r *Renderer) page(ctx context.Context, path string, c templ.Component) error {
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	if err := afero.WriteFile(r.out, path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (r *Renderer) copySprite(v model.SpeciesView) error {
	data, err := afero.ReadFile(r.sprites, v.SpriteSource)
	if err != nil {
		return fmt.Errorf("read %s: %w", v.SpriteSource, err)
	}
	dst := r.path(PokedexDir, v.Sprite)
	if err := afero.WriteFile(r.out, dst, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", dst, err)
	}
	return nil
}
