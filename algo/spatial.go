package algo

import (
	"sort"

	"campus-nav/model"
	"campus-nav/utils"

	"github.com/tidwall/rtree"
)

// Nearby is a location matched by a spatial query with its distance to the query point.
type Nearby struct {
	Location model.Location `json:"location"`
	Distance float64        `json:"distance"`
}

// SpatialIndex answers proximity queries over locations.
type SpatialIndex struct {
	tr *rtree.RTreeG[model.Location]
}

// NewSpatialIndex indexes every location as a point.
func NewSpatialIndex(locations []model.Location) *SpatialIndex {
	var tr rtree.RTreeG[model.Location]
	for _, loc := range locations {
		p := [2]float64{loc.X, loc.Y}
		tr.Insert(p, p, loc)
	}
	return &SpatialIndex{tr: &tr}
}

// Len returns the number of indexed locations.
func (s *SpatialIndex) Len() int { return s.tr.Len() }

// WithinRadius returns locations whose straight-line distance to (x, y) is at most radius,
// closest first. Equal distances are ordered by name.
func (s *SpatialIndex) WithinRadius(x, y, radius float64) []Nearby {
	target := utils.Point{X: x, Y: y}
	results := make([]Nearby, 0, 8)

	s.tr.Search([2]float64{x - radius, y - radius}, [2]float64{x + radius, y + radius},
		func(min, max [2]float64, loc model.Location) bool {
			d := utils.EuclideanDistance(target, utils.Point{X: loc.X, Y: loc.Y})
			if d <= radius {
				results = append(results, Nearby{Location: loc, Distance: d})
			}
			return true
		})

	sort.Slice(results, func(i, j int) bool {
		if results[i].Distance != results[j].Distance {
			return results[i].Distance < results[j].Distance
		}
		return results[i].Location.Name < results[j].Location.Name
	})
	return results
}

// Nearest returns the closest location within radius.
func (s *SpatialIndex) Nearest(x, y, radius float64) (Nearby, bool) {
	found := s.WithinRadius(x, y, radius)
	if len(found) == 0 {
		return Nearby{}, false
	}
	return found[0], true
}
