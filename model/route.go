package model

// Route is the answer to one navigation request. It is never persisted.
type Route struct {
	Start         string   `json:"start"`
	End           string   `json:"end"`
	Path          []string `json:"path"`
	TotalDistance float64  `json:"total_distance"` // rounded to 2 decimals
	Steps         []string `json:"steps"`
	Directions    string   `json:"directions"`
}
