package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"campus-nav/model"
	"campus-nav/utils"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrInvalidLocation   = errors.New("invalid location")
	ErrDuplicateLocation = errors.New("location already exists")
	ErrLocationNotFound  = errors.New("location not found")
	ErrMissingEndpoint   = errors.New("both endpoints are required")
	ErrSelfLoop          = errors.New("cannot connect a location to itself")
	ErrInvalidDistance   = errors.New("distance must be a positive number")
	ErrDuplicateLink     = errors.New("locations are already connected")
)

// Store is the gorm-backed location store.
type Store struct {
	db       *gorm.DB
	log      *zap.Logger
	validate *validator.Validate
}

// withTx returns a store bound to the transaction tx.
func (s *Store) withTx(tx *gorm.DB) *Store {
	return &Store{db: tx, log: s.log, validate: s.validate}
}

// NewStore wraps an open, migrated connection.
func NewStore(conn *gorm.DB, log *zap.Logger) *Store {
	return &Store{
		db:       conn,
		log:      log,
		validate: validator.New(),
	}
}

// ListLocations returns every location ordered by name.
func (s *Store) ListLocations(ctx context.Context) ([]model.Location, error) {
	var locations []model.Location
	if err := s.db.WithContext(ctx).Order("name").Find(&locations).Error; err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	return locations, nil
}

// ListLinks returns every link in a stable order.
func (s *Store) ListLinks(ctx context.Context) ([]model.Link, error) {
	var links []model.Link
	if err := s.db.WithContext(ctx).Order("from_name").Order("to_name").Find(&links).Error; err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	return links, nil
}

// CountLocations returns the number of stored locations.
func (s *Store) CountLocations(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&model.Location{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count locations: %w", err)
	}
	return n, nil
}

// GetLocation looks up a single location by exact name.
func (s *Store) GetLocation(ctx context.Context, name string) (model.Location, error) {
	var loc model.Location
	err := s.db.WithContext(ctx).Where(&model.Location{Name: name}).First(&loc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Location{}, fmt.Errorf("%w: %q", ErrLocationNotFound, name)
	}
	if err != nil {
		return model.Location{}, fmt.Errorf("get location %q: %w", name, err)
	}
	return loc, nil
}

// SearchLocations returns locations whose name contains query, ignoring case.
func (s *Store) SearchLocations(ctx context.Context, query string) ([]model.Location, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	var locations []model.Location
	err := s.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", pattern).
		Order("name").
		Find(&locations).Error
	if err != nil {
		return nil, fmt.Errorf("search locations: %w", err)
	}
	return locations, nil
}

// AddLocation inserts a new location. Names are unique: a second location with the
// same name is rejected rather than overwriting the first.
func (s *Store) AddLocation(ctx context.Context, loc model.Location) error {
	loc.Name = strings.TrimSpace(loc.Name)
	if err := s.validate.Struct(loc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLocation, err)
	}
	if !utils.IsFinite(loc.X) || !utils.IsFinite(loc.Y) {
		return fmt.Errorf("%w: coordinates must be finite", ErrInvalidLocation)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.Location{}).Where(&model.Location{Name: loc.Name}).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("%w: %q", ErrDuplicateLocation, loc.Name)
		}
		return tx.Create(&loc).Error
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateLocation) {
			return err
		}
		return fmt.Errorf("add location %q: %w", loc.Name, err)
	}

	s.log.Debug("location added", zap.String("name", loc.Name), zap.Float64("x", loc.X), zap.Float64("y", loc.Y))
	return nil
}

// Connect stores an undirected link between two existing locations and returns it
// in canonical form.
func (s *Store) Connect(ctx context.Context, a, b string, distance float64) (model.Link, error) {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	if a == "" || b == "" {
		return model.Link{}, ErrMissingEndpoint
	}
	if a == b {
		return model.Link{}, ErrSelfLoop
	}
	if !utils.IsFinite(distance) {
		return model.Link{}, ErrInvalidDistance
	}

	link := model.NewLink(a, b, distance)
	if err := s.validate.Struct(link); err != nil {
		return model.Link{}, fmt.Errorf("%w: %v", ErrInvalidDistance, err)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		err := tx.Model(&model.Location{}).Where("name IN ?", []string{link.From, link.To}).Count(&n).Error
		if err != nil {
			return err
		}
		if n != 2 {
			return fmt.Errorf("%w: both locations must exist before connecting them", ErrLocationNotFound)
		}

		err = tx.Model(&model.Link{}).Where(&model.Link{From: link.From, To: link.To}).Count(&n).Error
		if err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("%w: %q and %q", ErrDuplicateLink, link.From, link.To)
		}
		return tx.Create(&link).Error
	})
	if err != nil {
		if errors.Is(err, ErrLocationNotFound) || errors.Is(err, ErrDuplicateLink) {
			return model.Link{}, err
		}
		return model.Link{}, fmt.Errorf("connect %q-%q: %w", link.From, link.To, err)
	}

	s.log.Debug("locations connected",
		zap.String("from", link.From),
		zap.String("to", link.To),
		zap.Float64("distance", link.Distance))
	return link, nil
}
