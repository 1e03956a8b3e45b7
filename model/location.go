package model

// Location is a named point on campus (building, gate, landmark).
// Coordinates are planar and use arbitrary units.
type Location struct {
	Name string  `json:"name" gorm:"primaryKey" validate:"required"`
	X    float64 `json:"x_coordinate" gorm:"not null"`
	Y    float64 `json:"y_coordinate" gorm:"not null"`
}

// TableName keeps the table name stable across dialects.
func (Location) TableName() string { return "locations" }
