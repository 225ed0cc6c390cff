package domain

import "time"

// Product is a catalog entry. The catalog is read-only from the shop's point
// of view; rows come from migrations or the seed tool.
type Product struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Cost      int64     `json:"cost"`
	Rating    int       `json:"rating"`
	ImageURL  string    `json:"image"`
	CreatedAt time.Time `json:"-"`
}
