package db

import (
	"context"
	"math"
	"path/filepath"
	"testing"
	"time"

	"campus-nav/config"
	"campus-nav/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	cfg := config.DBConfig{
		Driver:     "sqlite",
		DSN:        filepath.Join(t.TempDir(), "campus.db"),
		MaxRetries: 1,
	}
	conn, err := Open(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := conn.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return NewStore(conn, zap.NewNop())
}

func TestSeedIfEmpty(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.SeedIfEmpty(ctx))

	locations, err := s.ListLocations(ctx)
	require.NoError(t, err)
	require.Len(t, locations, 8)
	assert.Equal(t, "Admin Office", locations[0].Name) // ordered by name

	links, err := s.ListLinks(ctx)
	require.NoError(t, err)
	assert.Len(t, links, 10)
	for _, l := range links {
		assert.Less(t, l.From, l.To, "links are stored in canonical order")
	}

	// second call is a no-op
	require.NoError(t, s.SeedIfEmpty(ctx))
	n, err := s.CountLocations(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 8, n)
}

func TestAddLocation(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.AddLocation(ctx, model.Location{Name: "  Gym ", X: 1, Y: 2}))

	loc, err := s.GetLocation(ctx, "Gym")
	require.NoError(t, err)
	assert.Equal(t, model.Location{Name: "Gym", X: 1, Y: 2}, loc)

	err = s.AddLocation(ctx, model.Location{Name: "Gym", X: 5, Y: 5})
	assert.ErrorIs(t, err, ErrDuplicateLocation)

	// the first write is kept
	loc, err = s.GetLocation(ctx, "Gym")
	require.NoError(t, err)
	assert.Equal(t, 1.0, loc.X)

	assert.ErrorIs(t, s.AddLocation(ctx, model.Location{Name: "   "}), ErrInvalidLocation)
	assert.ErrorIs(t, s.AddLocation(ctx, model.Location{Name: "Pool", X: math.NaN()}), ErrInvalidLocation)
	assert.ErrorIs(t, s.AddLocation(ctx, model.Location{Name: "Pool", Y: math.Inf(1)}), ErrInvalidLocation)
}

func TestImportIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	data, err := SampleCampus()
	require.NoError(t, err)
	data.Links = append(data.Links, model.Link{From: "Library", To: "Demolished Hall", Distance: 4})

	err = s.Import(ctx, data)
	require.ErrorIs(t, err, ErrLocationNotFound)

	n, err := s.CountLocations(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
	links, err := s.ListLinks(ctx)
	require.NoError(t, err)
	assert.Empty(t, links)

	// a failed import does not block the next seed
	require.NoError(t, s.SeedIfEmpty(ctx))
	n, err = s.CountLocations(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 8, n)
}

func TestGetLocationNotFound(t *testing.T) {
	_, err := newTestStore(t).GetLocation(context.Background(), "Nowhere")
	assert.ErrorIs(t, err, ErrLocationNotFound)
}

func TestConnect(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	require.NoError(t, s.AddLocation(ctx, model.Location{Name: "Library", X: 10, Y: 20}))
	require.NoError(t, s.AddLocation(ctx, model.Location{Name: "Block A", X: 20, Y: 30}))

	link, err := s.Connect(ctx, "Library", "Block A", 12)
	require.NoError(t, err)
	assert.Equal(t, model.Link{From: "Block A", To: "Library", Distance: 12}, link)

	links, err := s.ListLinks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.Link{link}, links, "one row per connection")

	tests := []struct {
		name     string
		a, b     string
		distance float64
		wantErr  error
	}{
		{"reverse duplicate", "Block A", "Library", 3, ErrDuplicateLink},
		{"self loop", "Library", "Library", 3, ErrSelfLoop},
		{"zero distance", "Library", "Lab", 0, ErrInvalidDistance},
		{"negative distance", "Library", "Lab", -1, ErrInvalidDistance},
		{"infinite distance", "Library", "Lab", math.Inf(1), ErrInvalidDistance},
		{"unknown endpoint", "Library", "Lab", 4, ErrLocationNotFound},
		{"empty endpoint", "", "Library", 4, ErrMissingEndpoint},
		{"blank endpoint", "Library", "   ", 4, ErrMissingEndpoint},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Connect(ctx, tt.a, tt.b, tt.distance)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSearchLocations(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	require.NoError(t, s.SeedIfEmpty(ctx))

	got, err := s.SearchLocations(ctx, "lab")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Lab 1", got[0].Name)
	assert.Equal(t, "Lab 2", got[1].Name)

	got, err = s.SearchLocations(ctx, "zzz")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), config.DBConfig{Driver: "oracle"}, zap.NewNop())
	assert.Error(t, err)
}

func TestOpenStopsRetryingWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := config.DBConfig{
		Driver:        "postgres",
		DSN:           "host=127.0.0.1 port=1 user=campus dbname=campus sslmode=disable connect_timeout=1",
		MaxRetries:    30,
		RetryInterval: time.Hour,
	}

	start := time.Now()
	_, err := Open(ctx, cfg, zap.NewNop())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), 30*time.Second)
}
