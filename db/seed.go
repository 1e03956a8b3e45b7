package db

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"campus-nav/model"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:embed campus_seed.json
var campusSeed []byte

// SeedData is the JSON layout of a campus map import.
type SeedData struct {
	Locations []model.Location `json:"locations"`
	Links     []model.Link     `json:"links"`
}

// SampleCampus returns the bundled campus map.
func SampleCampus() (SeedData, error) {
	var data SeedData
	if err := json.Unmarshal(campusSeed, &data); err != nil {
		return SeedData{}, fmt.Errorf("parse seed data: %w", err)
	}
	return data, nil
}

// SeedIfEmpty imports the bundled campus map when the store has no locations yet.
func (s *Store) SeedIfEmpty(ctx context.Context) error {
	n, err := s.CountLocations(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	s.log.Info("store is empty, importing sample campus")
	data, err := SampleCampus()
	if err != nil {
		return err
	}
	return s.Import(ctx, data)
}

// Import writes locations then links through the same validation as the admin API.
// The import is all-or-nothing: a bad row leaves the store untouched.
func (s *Store) Import(ctx context.Context, data SeedData) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ts := s.withTx(tx)
		for _, loc := range data.Locations {
			if err := ts.AddLocation(ctx, loc); err != nil {
				return fmt.Errorf("import location %q: %w", loc.Name, err)
			}
		}
		for _, link := range data.Links {
			if _, err := ts.Connect(ctx, link.From, link.To, link.Distance); err != nil {
				return fmt.Errorf("import link %q-%q: %w", link.From, link.To, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info("campus imported",
		zap.Int("locations", len(data.Locations)),
		zap.Int("links", len(data.Links)))
	return nil
}
