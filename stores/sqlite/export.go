// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/mdhender/mgdex/model"
	"github.com/mdhender/mgdex/species"
	"github.com/mdhender/mgdex/stats"
)

// Snapshot is the reconciled record set written by Save.
type Snapshot struct {
	Species    []species.Identity
	Records    map[string]model.BaseRecord
	Evolutions *model.Evolutions
	Movesets   map[string]model.Moveset
	Encounters map[string][]model.Encounter
	Trainers   []*model.Trainer
	Areas      []model.Area
}

// Save writes the snapshot in one transaction. Placeholder trainers are
// skipped. Saving into a database that already holds rows fails on the
// first duplicate key.
func (s *Store) Save(ctx context.Context, snap Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	for _, step := range []func(context.Context, *sql.Tx, Snapshot) error{
		insertSpecies,
		insertRecords,
		insertEvolutions,
		insertMovesets,
		insertEncounters,
		insertTrainers,
		insertAreas,
	} {
		if err := step(ctx, tx, snap); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// sortedKeys gives a stable insert order for map inputs.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func insertSpecies(ctx context.Context, tx *sql.Tx, snap Snapshot) error {
	const query = `INSERT INTO species (name, base, form, ord) VALUES (?, ?, ?, ?)`
	for n, id := range snap.Species {
		if _, err := tx.ExecContext(ctx, query, id.Name, id.Base, id.Form, n); err != nil {
			return fmt.Errorf("insert species %s: %w", id.Name, err)
		}
	}
	return nil
}

func insertRecords(ctx context.Context, tx *sql.Tx, snap Snapshot) error {
	const (
		statsQuery   = `INSERT INTO base_stats (species, hp, attack, defense, sp_atk, sp_def, speed) VALUES (?, ?, ?, ?, ?, ?, ?)`
		typeQuery    = `INSERT INTO species_types (species, slot, type) VALUES (?, ?, ?)`
		abilityQuery = `INSERT INTO species_abilities (species, slot, ability) VALUES (?, ?, ?)`
	)
	for _, name := range sortedKeys(snap.Records) {
		rec := snap.Records[name]
		st := rec.Stats
		if _, err := tx.ExecContext(ctx, statsQuery, name, st[stats.HP], st[stats.Attack], st[stats.Defense], st[stats.SpAtk], st[stats.SpDef], st[stats.Speed]); err != nil {
			return fmt.Errorf("insert base_stats %s: %w", name, err)
		}
		for slot, t := range rec.Types {
			if _, err := tx.ExecContext(ctx, typeQuery, name, slot, t); err != nil {
				return fmt.Errorf("insert species_types %s: %w", name, err)
			}
		}
		for slot, a := range rec.Abilities {
			if _, err := tx.ExecContext(ctx, abilityQuery, name, slot, a); err != nil {
				return fmt.Errorf("insert species_abilities %s: %w", name, err)
			}
		}
	}
	return nil
}

func insertEvolutions(ctx context.Context, tx *sql.Tx, snap Snapshot) error {
	if snap.Evolutions == nil {
		return nil
	}
	const query = `INSERT INTO evolutions (from_species, to_species, method, parameter) VALUES (?, ?, ?, ?)`
	for _, from := range sortedKeys(snap.Evolutions.Forward) {
		for _, edge := range snap.Evolutions.Forward[from] {
			if _, err := tx.ExecContext(ctx, query, edge.From, edge.To, edge.Method, edge.Parameter); err != nil {
				return fmt.Errorf("insert evolution %s -> %s: %w", edge.From, edge.To, err)
			}
		}
	}
	return nil
}

func insertMovesets(ctx context.Context, tx *sql.Tx, snap Snapshot) error {
	const query = `INSERT INTO species_moves (species, category, seq, level, move) VALUES (?, ?, ?, ?, ?)`
	for _, name := range sortedKeys(snap.Movesets) {
		ms := snap.Movesets[name]
		for seq, lm := range ms.Level {
			if _, err := tx.ExecContext(ctx, query, name, "level", seq, lm.Level, lm.Move); err != nil {
				return fmt.Errorf("insert level move %s: %w", name, err)
			}
		}
		for seq, move := range ms.Egg {
			if _, err := tx.ExecContext(ctx, query, name, "egg", seq, nil, move); err != nil {
				return fmt.Errorf("insert egg move %s: %w", name, err)
			}
		}
		for seq, move := range ms.Machine {
			if _, err := tx.ExecContext(ctx, query, name, "machine", seq, nil, move); err != nil {
				return fmt.Errorf("insert machine move %s: %w", name, err)
			}
		}
	}
	return nil
}

func insertEncounters(ctx context.Context, tx *sql.Tx, snap Snapshot) error {
	// duplicate sightings collapse onto the primary key
	const query = `INSERT OR IGNORE INTO encounters (species, location, section) VALUES (?, ?, ?)`
	for _, name := range sortedKeys(snap.Encounters) {
		for _, e := range snap.Encounters[name] {
			if _, err := tx.ExecContext(ctx, query, name, e.Location, e.Section); err != nil {
				return fmt.Errorf("insert encounter %s: %w", name, err)
			}
		}
	}
	return nil
}

func insertTrainers(ctx context.Context, tx *sql.Tx, snap Snapshot) error {
	const (
		trainerQuery = `INSERT INTO trainers (id, name, class, mon_type, battle_type, num_mons) VALUES (?, ?, ?, ?, ?, ?)`
		monQuery     = `INSERT INTO trainer_mons (trainer_id, slot, species, level, difficulty, ability, item, nature) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
		statQuery    = `INSERT INTO trainer_mon_stats (trainer_id, slot, stat, iv, ev) VALUES (?, ?, ?, ?, ?)`
		moveQuery    = `INSERT INTO trainer_mon_moves (trainer_id, slot, seq, move) VALUES (?, ?, ?, ?)`
	)
	for _, t := range snap.Trainers {
		if t.IsPlaceholder() {
			continue
		}
		if _, err := tx.ExecContext(ctx, trainerQuery, t.ID, t.Name, t.Class, t.MonType, t.BattleType, t.NumMons); err != nil {
			return fmt.Errorf("insert trainer %d: %w", t.ID, err)
		}
		for slot, mon := range t.Party {
			if _, err := tx.ExecContext(ctx, monQuery, t.ID, slot, mon.Species, mon.Level, mon.Difficulty, mon.Ability, mon.Item, mon.EffectiveNature()); err != nil {
				return fmt.Errorf("insert trainer %d mon %d: %w", t.ID, slot, err)
			}
			ivs, evs := mon.EffectiveIVs(), mon.EffectiveEVs()
			for _, st := range stats.Stats {
				if _, err := tx.ExecContext(ctx, statQuery, t.ID, slot, st.String(), ivs[st], evs[st]); err != nil {
					return fmt.Errorf("insert trainer %d mon %d %s: %w", t.ID, slot, st, err)
				}
			}
			for seq, move := range mon.Moves {
				if _, err := tx.ExecContext(ctx, moveQuery, t.ID, slot, seq, move); err != nil {
					return fmt.Errorf("insert trainer %d mon %d move: %w", t.ID, slot, err)
				}
			}
		}
	}
	return nil
}

func insertAreas(ctx context.Context, tx *sql.Tx, snap Snapshot) error {
	const (
		areaQuery   = `INSERT OR IGNORE INTO areas (name, ord) VALUES (?, ?)`
		memberQuery = `INSERT OR IGNORE INTO area_trainers (area, trainer_id) VALUES (?, ?)`
	)
	for n, area := range snap.Areas {
		if _, err := tx.ExecContext(ctx, areaQuery, area.Name, n); err != nil {
			return fmt.Errorf("insert area %s: %w", area.Name, err)
		}
		for _, id := range area.TrainerIDs {
			if _, err := tx.ExecContext(ctx, memberQuery, area.Name, id); err != nil {
				return fmt.Errorf("insert area %s trainer %d: %w", area.Name, id, err)
			}
		}
	}
	return nil
}
