// Package service runs route requests against the current store contents.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"campus-nav/algo"
	"campus-nav/model"
	"campus-nav/utils"

	"go.uber.org/zap"
)

// ErrNoNearbyLocation is returned when no location lies within the search radius.
var ErrNoNearbyLocation = errors.New("no location within radius")

// LocationStore is all the router needs from persistence.
type LocationStore interface {
	ListLocations(ctx context.Context) ([]model.Location, error)
	ListLinks(ctx context.Context) ([]model.Link, error)
}

// Router computes routes. It holds no graph: every call reads the store and builds a
// fresh one, so concurrent calls never share state.
type Router struct {
	store LocationStore
	log   *zap.Logger
}

func NewRouter(store LocationStore, log *zap.Logger) *Router {
	return &Router{store: store, log: log}
}

// ComputeRoute finds the shortest walking route from start to end.
// It fails with *algo.NodeNotFoundError, *algo.NoPathError or *algo.DataIntegrityError,
// or a wrapped store error.
func (r *Router) ComputeRoute(ctx context.Context, start, end string) (*model.Route, error) {
	begin := time.Now()
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)

	graph, err := r.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	result, err := graph.AStar(start, end)
	if err != nil {
		r.log.Info("route not found",
			zap.String("start", start),
			zap.String("end", end),
			zap.Error(err))
		return nil, err
	}

	steps := algo.Directions(result.Path)
	route := &model.Route{
		Start:         start,
		End:           end,
		Path:          result.Path,
		TotalDistance: utils.Round2(result.Distance),
		Steps:         steps,
		Directions:    algo.FormatDirections(steps),
	}

	r.log.Debug("route computed",
		zap.String("start", start),
		zap.String("end", end),
		zap.Int("hops", len(result.Path)-1),
		zap.Float64("distance", result.Distance),
		zap.Duration("took", time.Since(begin)))
	return route, nil
}

// NearestLocation returns the location closest to (x, y) within radius.
func (r *Router) NearestLocation(ctx context.Context, x, y, radius float64) (algo.Nearby, error) {
	locations, err := r.store.ListLocations(ctx)
	if err != nil {
		return algo.Nearby{}, fmt.Errorf("load locations: %w", err)
	}

	nearest, ok := algo.NewSpatialIndex(locations).Nearest(x, y, radius)
	if !ok {
		return algo.Nearby{}, ErrNoNearbyLocation
	}
	return nearest, nil
}

func (r *Router) snapshot(ctx context.Context) (*algo.Graph, error) {
	locations, err := r.store.ListLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("load locations: %w", err)
	}
	links, err := r.store.ListLinks(ctx)
	if err != nil {
		return nil, fmt.Errorf("load links: %w", err)
	}

	graph, err := algo.BuildGraph(locations, links)
	if err != nil {
		r.log.Error("store data is inconsistent", zap.Error(err))
		return nil, err
	}
	return graph, nil
}
