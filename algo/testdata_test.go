package algo

import "campus-nav/model"

// sampleCampus is the seed dataset shipped with the service.
func sampleCampus() ([]model.Location, []model.Link) {
	locations := []model.Location{
		{Name: "Library", X: 10, Y: 20},
		{Name: "Canteen", X: 30, Y: 15},
		{Name: "Block A", X: 20, Y: 30},
		{Name: "Block B", X: 35, Y: 35},
		{Name: "Admin Office", X: 15, Y: 10},
		{Name: "Lab 1", X: 25, Y: 28},
		{Name: "Lab 2", X: 28, Y: 40},
		{Name: "Hostel", X: 45, Y: 20},
	}
	links := []model.Link{
		model.NewLink("Library", "Block A", 12),
		model.NewLink("Library", "Admin Office", 11),
		model.NewLink("Admin Office", "Canteen", 16),
		model.NewLink("Block A", "Lab 1", 7),
		model.NewLink("Lab 1", "Lab 2", 9),
		model.NewLink("Block A", "Block B", 14),
		model.NewLink("Block B", "Lab 2", 8),
		model.NewLink("Canteen", "Hostel", 10),
		model.NewLink("Block B", "Hostel", 12),
		model.NewLink("Lab 1", "Canteen", 13),
	}
	return locations, links
}
