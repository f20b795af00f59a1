// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package stages_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mdhender/mgdex"
	"github.com/mdhender/mgdex/adapters"
	"github.com/mdhender/mgdex/config"
	"github.com/mdhender/mgdex/pipelines/stages"
	"github.com/mdhender/mgdex/renderer"
	store "github.com/mdhender/mgdex/stores/sqlite"
	"github.com/spf13/afero"
)

const testdataPath = "../../testdata"

func inputs() config.InputsConfig {
	return config.InputsConfig{
		Species:    "species.h",
		Forms:      "FormToSpeciesMapping.c",
		Mondata:    "mondata.s",
		Evodata:    "evodata.s",
		Levelup:    "levelupdata.s",
		Learnsets:  "learnsets.json", // not in testdata
		Encounters: "encounters.s",
		Trainers:   "trainers.s",
		Areas:      "trainer_area_mappings.json",
		Sprites:    "sprites",
	}
}

func newService(in config.InputsConfig) *stages.Service {
	s := stages.NewService(in)
	s.SetFS(afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), testdataPath)))
	s.SetLogging(true, false, false)
	return s
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()
	s := newService(inputs())
	out := afero.NewMemMapFs()
	r, err := renderer.New(renderer.WithOutput(out, "docs"), renderer.WithSprites(s.FS()))
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}

	result, err := s.Generate(ctx, r, "docs")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	wantSummary := renderer.Summary{SpeciesPages: 9, TrainerPages: 2, Sprites: 2, NoSprite: 7}
	if diff := cmp.Diff(wantSummary, result.Summary); diff != "" {
		t.Errorf("summary (-want +got):\n%s", diff)
	}

	counts := map[mgdex.DiagnosticKind]int{}
	for _, kind := range []mgdex.DiagnosticKind{mgdex.MissingMapping, mgdex.Structural, mgdex.MissingData} {
		counts[kind] = mgdex.Count(result.Diagnostics, kind)
	}
	wantCounts := map[mgdex.DiagnosticKind]int{
		mgdex.MissingMapping: 1, // RATICATE form 7
		mgdex.Structural:     0,
		mgdex.MissingData:    5, // four species pages and the rival's mega
	}
	if diff := cmp.Diff(wantCounts, counts); diff != "" {
		t.Errorf("diagnostics (-want +got):\n%s\n%v", diff, result.Diagnostics)
	}

	if result.Records.Learnsets != nil {
		t.Errorf("learnsets: want nil when the file is absent")
	}

	var groups []string
	for _, g := range result.Site.TrainerIndex {
		groups = append(groups, fmt.Sprintf("%s=%d", g.Name, len(g.Trainers)))
	}
	if diff := cmp.Diff([]string{"Route 30=1", adapters.UnknownArea + "=1"}, groups); diff != "" {
		t.Errorf("trainer index (-want +got):\n%s", diff)
	}

	for _, path := range []string{
		"docs/style.css",
		"docs/pokedex/index.html",
		"docs/pokedex/rattata_alolan.html",
		"docs/pokedex/sprites/bulbasaur.png",
		"docs/trainers/index.html",
		"docs/trainers/Youngster_Joey_1.html",
		"docs/trainers/Rival_2.html",
	} {
		if ok, _ := afero.Exists(out, path); !ok {
			t.Errorf("%s: not written", path)
		}
	}
	if ok, _ := afero.Exists(out, "docs/trainers/-_0.html"); ok {
		t.Errorf("placeholder trainer page was written")
	}

	for _, v := range result.Site.Species {
		switch v.Name {
		case "RATTATA":
			if diff := cmp.Diff([]string{"Route 29 (Morning)"}, v.Locations); diff != "" {
				t.Errorf("rattata locations (-want +got):\n%s", diff)
			}
		case "RATICATE_ALOLAN":
			if len(v.EvolvesFrom) != 1 || v.EvolvesFrom[0].Species != "RATTATA_ALOLAN" {
				t.Errorf("raticate alolan: want one edge from RATTATA_ALOLAN, got %+v", v.EvolvesFrom)
			}
		case "BULBASAUR":
			if len(v.LevelMoves) != 3 || v.LevelMoves[2].Move != "Vine Whip" {
				t.Errorf("bulbasaur level moves: got %+v", v.LevelMoves)
			}
		}
	}
}

func TestLoad_MissingRequiredSource(t *testing.T) {
	in := inputs()
	in.Mondata = "nope.s"
	_, err := newService(in).Load(context.Background())
	var readErr *stages.ErrReadSource
	if !errors.As(err, &readErr) {
		t.Fatalf("Load: want *ErrReadSource, got %v", err)
	}
	if readErr.Source != "mondata" || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load: got %v", err)
	}
	if got := stages.ErrorCode(err); got != stages.ErrCodeReadSource {
		t.Errorf("ErrorCode: want %q, got %q", stages.ErrCodeReadSource, got)
	}
}

func TestLoad_OptionalSourcesMayBeDisabled(t *testing.T) {
	in := inputs()
	in.Areas, in.Learnsets = "", ""
	src, err := newService(in).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if src.Areas != nil || src.Learnsets != nil {
		t.Errorf("optional sources: want nil")
	}
}

func TestLoad_BadLineEndings(t *testing.T) {
	in := inputs()
	in.LineEndings = "crlf"
	if _, err := newService(in).Load(context.Background()); err == nil {
		t.Errorf("Load: want error for line endings %q, got nil", in.LineEndings)
	}
}

// crOnlyFS copies the testdata sources into memory with trainers.s
// rewritten to use lone CR line endings.
func crOnlyFS(t *testing.T) afero.Fs {
	t.Helper()
	base := afero.NewBasePathFs(afero.NewOsFs(), testdataPath)
	mem := afero.NewMemMapFs()
	in := inputs()
	for _, name := range []string{in.Species, in.Forms, in.Mondata, in.Evodata, in.Levelup, in.Encounters, in.Trainers, in.Areas} {
		data, err := afero.ReadFile(base, name)
		if err != nil {
			t.Fatal(err)
		}
		if name == in.Trainers {
			data = bytes.ReplaceAll(data, []byte{'\n'}, []byte{'\r'})
		}
		if err := afero.WriteFile(mem, name, data, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return mem
}

func TestExtract_LineEndings(t *testing.T) {
	for _, tc := range []struct {
		eol      string
		trainers int
	}{
		{"", 3},
		{"auto", 3},
		{"strip-cr", 0},
		{"keep", 0},
	} {
		t.Run(tc.eol, func(t *testing.T) {
			in := inputs()
			in.LineEndings = tc.eol
			s := stages.NewService(in)
			s.SetFS(crOnlyFS(t))
			s.SetLogging(true, false, false)
			src, err := s.Load(context.Background())
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if got := len(s.Extract(src).Trainers); got != tc.trainers {
				t.Errorf("trainers: want %d, got %d", tc.trainers, got)
			}
		})
	}
}

func TestExtractBuild_Deterministic(t *testing.T) {
	run := func() []byte {
		s := newService(inputs())
		src, err := s.Load(context.Background())
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		rec := s.Extract(src)
		site, diags := s.Build(rec)
		data, err := json.Marshal(struct {
			Site        any
			Diagnostics any
			Extracted   any
		}{site, diags, rec.Diagnostics})
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		return data
	}
	first, second := run(), run()
	if !bytes.Equal(first, second) {
		t.Errorf("two runs over the same sources produced different sites")
	}
}

func TestExport(t *testing.T) {
	ctx := context.Background()
	db, err := store.NewStore(ctx, ":memory:")
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	defer db.Close()

	if _, err := newService(inputs()).Export(ctx, db); err != nil {
		t.Fatalf("Export: %v", err)
	}
	counts, err := db.TableStats(ctx)
	if err != nil {
		t.Fatalf("TableStats: %v", err)
	}
	want := map[string]int64{"species": 9, "base_stats": 5, "evolutions": 3, "trainers": 2, "species_moves": 3}
	for table, n := range want {
		if counts[table] != n {
			t.Errorf("%s: want %d rows, got %d", table, n, counts[table])
		}
	}
}

func TestErrorCode(t *testing.T) {
	for _, tc := range []struct {
		err  error
		want string
	}{
		{&stages.ErrReadSource{Path: "x", Err: os.ErrNotExist}, stages.ErrCodeReadSource},
		{fmt.Errorf("wrapped: %w", &stages.ErrWriteFile{Op: "write", Path: "x"}), stages.ErrCodeWriteFile},
		{&stages.ErrDatabase{Op: "save"}, stages.ErrCodeDatabase},
		{errors.New("other"), stages.ErrCodeUnknown},
	} {
		if got := stages.ErrorCode(tc.err); got != tc.want {
			t.Errorf("ErrorCode(%v): want %q, got %q", tc.err, tc.want, got)
		}
	}
}
