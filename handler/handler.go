package handler

import (
	"context"

	"campus-nav/algo"
	"campus-nav/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RouteService computes routes over the current campus map.
type RouteService interface {
	ComputeRoute(ctx context.Context, start, end string) (*model.Route, error)
	NearestLocation(ctx context.Context, x, y, radius float64) (algo.Nearby, error)
}

// LocationService reads and edits stored locations and links.
type LocationService interface {
	ListLocations(ctx context.Context) ([]model.Location, error)
	GetLocation(ctx context.Context, name string) (model.Location, error)
	SearchLocations(ctx context.Context, query string) ([]model.Location, error)
	AddLocation(ctx context.Context, loc model.Location) error
	Connect(ctx context.Context, a, b string, distance float64) (model.Link, error)
}

// Handler holds the dependencies of the HTTP API.
type Handler struct {
	routes    RouteService
	locations LocationService
	log       *zap.Logger
}

func New(routes RouteService, locations LocationService, log *zap.Logger) *Handler {
	return &Handler{routes: routes, locations: locations, log: log}
}

// Register mounts the API under /api.
func (h *Handler) Register(r gin.IRouter) {
	api := r.Group("/api")
	{
		api.GET("/navigate", h.Navigate)
		api.POST("/scan_qr", h.ScanQR)

		api.GET("/locations", h.GetLocations)
		api.GET("/locations/search", h.SearchLocations)
		api.GET("/locations/nearest", h.NearestLocation)
		api.GET("/locations/:name", h.GetLocation)

		admin := api.Group("/admin")
		admin.POST("/locations", h.AddLocation)
		admin.POST("/connect", h.Connect)
	}
}
