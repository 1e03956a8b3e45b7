package handler

import (
	"errors"
	"net/http"
	"strings"

	"campus-nav/algo"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Navigate computes the shortest route between two named locations.
// GET /api/navigate?start=Library&end=Canteen
func (h *Handler) Navigate(c *gin.Context) {
	start := strings.TrimSpace(c.Query("start"))
	end := strings.TrimSpace(c.Query("end"))

	if start == "" || end == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Both 'start' and 'end' query parameters are required."})
		return
	}

	route, err := h.routes.ComputeRoute(c.Request.Context(), start, end)
	if err != nil {
		h.routeError(c, err)
		return
	}

	c.JSON(http.StatusOK, route)
}

func (h *Handler) routeError(c *gin.Context, err error) {
	var (
		notFound  *algo.NodeNotFoundError
		noPath    *algo.NoPathError
		integrity *algo.DataIntegrityError
	)

	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
			"kind":  "not_found",
			"which": notFound.Which,
			"name":  notFound.Name,
		})
	case errors.As(err, &noPath):
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
			"kind":  "no_path",
			"start": noPath.Start,
			"end":   noPath.End,
		})
	case errors.As(err, &integrity):
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Unable to calculate route: " + err.Error(),
			"kind":  "data_integrity",
		})
	default:
		h.log.Error("route computation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to calculate route"})
	}
}
