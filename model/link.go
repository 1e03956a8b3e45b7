package model

// Link is a walkable path between two locations.
// A link is undirected: one row stands for both directions, and From/To are kept in
// canonical order (From < To) by NewLink.
type Link struct {
	From     string  `json:"from" gorm:"primaryKey;column:from_name" validate:"required"`
	To       string  `json:"to" gorm:"primaryKey;column:to_name" validate:"required,nefield=From"`
	Distance float64 `json:"distance" gorm:"not null" validate:"gt=0"`
}

// TableName keeps the table name stable across dialects.
func (Link) TableName() string { return "links" }

// NewLink builds a link with its endpoints in canonical order.
func NewLink(a, b string, distance float64) Link {
	if b < a {
		a, b = b, a
	}
	return Link{From: a, To: b, Distance: distance}
}

