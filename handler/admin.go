package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"campus-nav/db"
	"campus-nav/model"

	"github.com/gin-gonic/gin"
)

// AddLocationRequest is the body of POST /api/admin/locations.
type AddLocationRequest struct {
	Name string   `json:"name" binding:"required"`
	X    *float64 `json:"x_coordinate" binding:"required"`
	Y    *float64 `json:"y_coordinate" binding:"required"`
}

// ConnectRequest is the body of POST /api/admin/connect.
type ConnectRequest struct {
	FromBuilding string   `json:"from_building" binding:"required"`
	ToBuilding   string   `json:"to_building" binding:"required"`
	Distance     *float64 `json:"distance" binding:"required"`
}

// AddLocation creates a location.
func (h *Handler) AddLocation(c *gin.Context) {
	var req AddLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'name', 'x_coordinate', and 'y_coordinate' are required."})
		return
	}

	name := strings.TrimSpace(req.Name)
	loc := model.Location{Name: name, X: *req.X, Y: *req.Y}
	err := h.locations.AddLocation(c.Request.Context(), loc)
	switch {
	case errors.Is(err, db.ErrDuplicateLocation):
		c.JSON(http.StatusConflict, gin.H{"error": "Could not add location: " + err.Error()})
		return
	case errors.Is(err, db.ErrInvalidLocation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not add location: " + err.Error()})
		return
	case err != nil:
		h.internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": fmt.Sprintf("Location '%s' added successfully.", name)})
}

// Connect adds a walkable path between two existing locations.
func (h *Handler) Connect(c *gin.Context) {
	var req ConnectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'from_building', 'to_building', and 'distance' are required."})
		return
	}

	from, to := strings.TrimSpace(req.FromBuilding), strings.TrimSpace(req.ToBuilding)
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'from_building', 'to_building', and 'distance' are required."})
		return
	}

	link, err := h.locations.Connect(c.Request.Context(), from, to, *req.Distance)
	switch {
	case errors.Is(err, db.ErrMissingEndpoint), errors.Is(err, db.ErrSelfLoop), errors.Is(err, db.ErrInvalidDistance):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, db.ErrLocationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Both locations must exist before creating a connection."})
		return
	case errors.Is(err, db.ErrDuplicateLink):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case err != nil:
		h.internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("Connection created between '%s' and '%s' with distance %g.",
			link.From, link.To, link.Distance),
		"link": link,
	})
}
