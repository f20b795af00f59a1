// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package store

import (
	"context"
	"fmt"
)

// SpeciesByType returns the species with the given TYPE_ suffix in
// enumeration order.
func (s *Store) SpeciesByType(ctx context.Context, typ string) ([]string, error) {
	const query = `
		SELECT s.name
		FROM species s
		JOIN species_types t ON t.species = s.name
		WHERE t.type = ?
		ORDER BY s.ord
	`
	rows, err := s.db.QueryContext(ctx, query, typ)
	if err != nil {
		return nil, fmt.Errorf("query species by type: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// TrainersInArea returns the trainer names listed for an area, by id.
func (s *Store) TrainersInArea(ctx context.Context, area string) ([]string, error) {
	const query = `
		SELECT t.name
		FROM area_trainers a
		JOIN trainers t ON t.id = a.trainer_id
		WHERE a.area = ?
		ORDER BY t.id
	`
	rows, err := s.db.QueryContext(ctx, query, area)
	if err != nil {
		return nil, fmt.Errorf("query trainers in area: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
