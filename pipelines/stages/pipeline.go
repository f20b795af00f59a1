// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package stages runs the generator in its fixed order: load the sources,
// resolve species identities, extract records, build the views and render.
package stages

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mdhender/mgdex"
	"github.com/mdhender/mgdex/adapters"
	"github.com/mdhender/mgdex/config"
	"github.com/mdhender/mgdex/model"
	"github.com/mdhender/mgdex/parsers"
	"github.com/mdhender/mgdex/parsers/areas"
	"github.com/mdhender/mgdex/parsers/encounters"
	"github.com/mdhender/mgdex/parsers/evodata"
	"github.com/mdhender/mgdex/parsers/learnsets"
	"github.com/mdhender/mgdex/parsers/levelup"
	"github.com/mdhender/mgdex/parsers/mondata"
	"github.com/mdhender/mgdex/parsers/trainers"
	"github.com/mdhender/mgdex/renderer"
	"github.com/mdhender/mgdex/species"
	store "github.com/mdhender/mgdex/stores/sqlite"
	"github.com/spf13/afero"
)

// Service runs the pipeline against one set of inputs.
type Service struct {
	inputs  config.InputsConfig
	fs      afero.Fs
	quiet   bool
	verbose bool
	debug   bool
}

// NewService creates a new Service reading from the OS filesystem.
func NewService(inputs config.InputsConfig) *Service {
	return &Service{
		inputs: inputs,
		fs:     afero.NewOsFs(),
	}
}

// SetFS sets the filesystem for testing.
func (s *Service) SetFS(fs afero.Fs) {
	s.fs = fs
}

// FS returns the filesystem the sources and sprites are read from.
func (s *Service) FS() afero.Fs {
	return s.fs
}

// SetLogging sets how much the stages log.
func (s *Service) SetLogging(quiet, verbose, debug bool) {
	s.quiet, s.verbose, s.debug = quiet, verbose, debug
}

// Sources holds the raw bytes of every input. Optional inputs that were
// not found are nil.
type Sources struct {
	EOL        parsers.EOL // line-ending mode for the line-oriented sources
	Species    []byte
	Forms      []byte
	Mondata    []byte
	Evodata    []byte
	Levelup    []byte
	Learnsets  []byte
	Encounters []byte
	Trainers   []byte
	Areas      []byte
}

// Load reads every source into memory. A missing required source stops
// the run; a missing optional source is logged and left nil.
func (s *Service) Load(ctx context.Context) (*Sources, error) {
	started := time.Now()
	eol, err := parsers.ParseEOL(s.inputs.LineEndings)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	src := &Sources{EOL: eol}
	for _, in := range []struct {
		source   string
		path     string
		dst      *[]byte
		optional bool
	}{
		{"species", s.inputs.Species, &src.Species, false},
		{"forms", s.inputs.Forms, &src.Forms, false},
		{"mondata", s.inputs.Mondata, &src.Mondata, false},
		{"evodata", s.inputs.Evodata, &src.Evodata, false},
		{"levelup", s.inputs.Levelup, &src.Levelup, false},
		{"learnsets", s.inputs.Learnsets, &src.Learnsets, true},
		{"encounters", s.inputs.Encounters, &src.Encounters, false},
		{"trainers", s.inputs.Trainers, &src.Trainers, false},
		{"areas", s.inputs.Areas, &src.Areas, true},
	} {
		if in.optional && in.path == "" {
			continue
		}
		data, err := afero.ReadFile(s.fs, in.path)
		if err != nil {
			if in.optional && os.IsNotExist(err) {
				if !s.quiet {
					log.Printf("load: %s: %s: not found, skipping\n", in.source, in.path)
				}
				continue
			}
			return nil, &ErrReadSource{Source: in.source, Path: in.path, Err: err}
		}
		*in.dst = data
		if s.debug {
			log.Printf("load: %-10s %8d bytes from %s\n", in.source, len(data), in.path)
		}
	}
	if s.verbose {
		log.Printf("load: sources read in %v\n", time.Since(started))
	}
	return src, nil
}

// Records is the output of the extract stage.
// Learnsets is nil when the source was absent or could not be decoded.
type Records struct {
	Resolver    *species.Resolver
	Records     map[string]model.BaseRecord
	Evolutions  *model.Evolutions
	LevelMoves  map[string][]model.LevelMove
	Learnsets   map[string]model.Moveset
	Encounters  map[string][]model.Encounter
	Trainers    []*model.Trainer
	Areas       []model.Area
	Sprites     map[string]string
	Diagnostics []mgdex.Diagnostic
}

// Extract resolves species identities and then runs every extractor.
func (s *Service) Extract(src *Sources) *Records {
	started := time.Now()
	rec := &Records{}
	collect := func(stage string, diags []mgdex.Diagnostic) {
		rec.Diagnostics = append(rec.Diagnostics, diags...)
		if s.verbose {
			log.Printf("extract: %-10s %4d notices\n", stage, len(diags))
		}
	}

	opts := []parsers.Option{parsers.WithEOL(src.EOL)}
	enumeration, diags := species.ParseHeader(s.inputs.Species, src.Species, opts...)
	collect("species", diags)
	rec.Resolver = species.NewResolver(enumeration, species.ParseFormTable(src.Forms))
	if !s.quiet {
		log.Printf("resolve: %d species\n", rec.Resolver.Len())
	}

	rec.Records, diags = mondata.Parse(s.inputs.Mondata, src.Mondata, opts...)
	collect("mondata", diags)
	rec.Evolutions, diags = evodata.Parse(s.inputs.Evodata, src.Evodata, rec.Resolver, opts...)
	collect("evodata", diags)
	rec.LevelMoves, diags = levelup.Parse(s.inputs.Levelup, src.Levelup, opts...)
	collect("levelup", diags)
	if src.Learnsets != nil {
		rec.Learnsets, diags = learnsets.Parse(s.inputs.Learnsets, src.Learnsets)
		collect("learnsets", diags)
		if len(rec.Learnsets) == 0 && mgdex.Count(diags, mgdex.Structural) != 0 {
			rec.Learnsets = nil
		}
	}
	rec.Encounters, diags = encounters.Parse(s.inputs.Encounters, src.Encounters, rec.Resolver, opts...)
	collect("encounters", diags)
	rec.Trainers, diags = trainers.Parse(s.inputs.Trainers, src.Trainers, rec.Resolver, opts...)
	collect("trainers", diags)
	if src.Areas != nil {
		rec.Areas, diags = areas.Parse(s.inputs.Areas, src.Areas)
		collect("areas", diags)
	}
	rec.Sprites = s.sprites(rec.Resolver.Names())

	if !s.quiet {
		log.Printf("extract: %d base records: %d evolutions: %d trainers: in %v\n",
			len(rec.Records), rec.Evolutions.Len(), len(rec.Trainers), time.Since(started))
	}
	return rec
}

// sprites finds <sprites>/<name>/male/front.png for every species.
func (s *Service) sprites(names []string) map[string]string {
	found := map[string]string{}
	if s.inputs.Sprites == "" {
		return found
	}
	for _, name := range names {
		path := filepath.Join(s.inputs.Sprites, strings.ToLower(name), "male", "front.png")
		if ok, err := afero.Exists(s.fs, path); err == nil && ok {
			found[name] = path
		}
	}
	if s.verbose {
		log.Printf("extract: sprites    %4d of %d species\n", len(found), len(names))
	}
	return found
}

// Build joins the records into the site views.
func (s *Service) Build(rec *Records) (renderer.Site, []mgdex.Diagnostic) {
	started := time.Now()
	var site renderer.Site
	var diags, more []mgdex.Diagnostic

	site.Species, diags = adapters.BuildSpecies(adapters.SpeciesInputs{
		Resolver:   rec.Resolver,
		Records:    rec.Records,
		Evolutions: rec.Evolutions,
		LevelMoves: rec.LevelMoves,
		Learnsets:  rec.Learnsets,
		Encounters: rec.Encounters,
		Sprites:    rec.Sprites,
	})
	site.SpeciesIndex = adapters.SpeciesIndex(rec.Resolver)
	site.Trainers, more = adapters.BuildTrainers(rec.Trainers, rec.Records, rec.Areas)
	diags = append(diags, more...)
	site.TrainerIndex = adapters.BuildTrainerIndex(site.Trainers, rec.Areas)

	if s.verbose {
		log.Printf("build: %d species views: %d trainer views: %d areas: in %v\n",
			len(site.Species), len(site.Trainers), len(site.TrainerIndex), time.Since(started))
	}
	return site, diags
}

// Snapshot is the record set for the database export. The movesets come
// from learnsets.json when it was loaded and from levelupdata otherwise.
func (rec *Records) Snapshot() store.Snapshot {
	movesets := rec.Learnsets
	if movesets == nil {
		movesets = make(map[string]model.Moveset, len(rec.LevelMoves))
		for name, list := range rec.LevelMoves {
			movesets[name] = model.Moveset{Level: list}
		}
	}
	return store.Snapshot{
		Species:    rec.Resolver.Identities(),
		Records:    rec.Records,
		Evolutions: rec.Evolutions,
		Movesets:   movesets,
		Encounters: rec.Encounters,
		Trainers:   rec.Trainers,
		Areas:      rec.Areas,
	}
}

// Result is everything a generate run produced.
type Result struct {
	Records     *Records
	Site        renderer.Site
	Summary     renderer.Summary
	Diagnostics []mgdex.Diagnostic
}

// Generate runs every stage and writes the site with r.
func (s *Service) Generate(ctx context.Context, r *renderer.Renderer, outputDir string) (*Result, error) {
	src, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	rec := s.Extract(src)
	site, diags := s.Build(rec)
	result := &Result{
		Records:     rec,
		Site:        site,
		Diagnostics: append(append([]mgdex.Diagnostic(nil), rec.Diagnostics...), diags...),
	}
	result.Summary, err = r.Render(ctx, site, s.quiet, s.verbose, s.debug)
	if err != nil {
		return result, &ErrWriteFile{Op: "render", Path: outputDir, Err: err}
	}
	return result, nil
}

// Export runs the load and extract stages and writes the records to db.
func (s *Service) Export(ctx context.Context, db *store.Store) (*Records, error) {
	src, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	rec := s.Extract(src)
	if err := db.Save(ctx, rec.Snapshot()); err != nil {
		return rec, &ErrDatabase{Op: "save", Err: err}
	}
	if s.verbose {
		counts, err := db.TableStats(ctx)
		if err != nil {
			return rec, &ErrDatabase{Op: "table stats", Err: err}
		}
		for _, table := range store.Tables() {
			log.Printf("export: %-18s %6d rows\n", table, counts[table])
		}
	}
	return rec, nil
}
