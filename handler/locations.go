package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"campus-nav/db"
	"campus-nav/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultNearestRadius = 10.0

// GetLocations lists every location ordered by name.
func (h *Handler) GetLocations(c *gin.Context) {
	locations, err := h.locations.ListLocations(c.Request.Context())
	if err != nil {
		h.internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":     len(locations),
		"locations": locations,
	})
}

// GetLocation returns one location by name.
func (h *Handler) GetLocation(c *gin.Context) {
	loc, err := h.locations.GetLocation(c.Request.Context(), c.Param("name"))
	if errors.Is(err, db.ErrLocationNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
		return
	}
	if err != nil {
		h.internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, loc)
}

// SearchLocations matches names containing q, ignoring case.
func (h *Handler) SearchLocations(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing search query 'q'."})
		return
	}

	results, err := h.locations.SearchLocations(c.Request.Context(), query)
	if err != nil {
		h.internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":   query,
		"count":   len(results),
		"results": results,
	})
}

// NearestLocation finds the location closest to a point.
// GET /api/locations/nearest?x=11&y=19&radius=5
func (h *Handler) NearestLocation(c *gin.Context) {
	x, errX := strconv.ParseFloat(c.Query("x"), 64)
	y, errY := strconv.ParseFloat(c.Query("y"), 64)
	if errX != nil || errY != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'x' and 'y' are required and must be numbers."})
		return
	}

	radius := defaultNearestRadius
	if raw := c.Query("radius"); raw != "" {
		r, err := strconv.ParseFloat(raw, 64)
		if err != nil || !(r > 0) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "'radius' must be a positive number."})
			return
		}
		radius = r
	}

	nearest, err := h.routes.NearestLocation(c.Request.Context(), x, y, radius)
	if errors.Is(err, service.ErrNoNearbyLocation) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No location within the given radius."})
		return
	}
	if err != nil {
		h.internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, nearest)
}

// ScanQR resolves a scanned QR code (the location name) to the user's current location.
func (h *Handler) ScanQR(c *gin.Context) {
	var req struct {
		QRID string `json:"qr_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.QRID) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'qr_id' is required."})
		return
	}
	qrID := strings.TrimSpace(req.QRID)

	loc, err := h.locations.GetLocation(c.Request.Context(), qrID)
	if errors.Is(err, db.ErrLocationNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "QR ID '" + qrID + "' is invalid."})
		return
	}
	if err != nil {
		h.internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":          "QR scanned successfully.",
		"current_location": loc.Name,
	})
}

func (h *Handler) internalError(c *gin.Context, err error) {
	h.log.Error("request failed",
		zap.String("path", c.FullPath()),
		zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": http.StatusText(http.StatusInternalServerError)})
}
