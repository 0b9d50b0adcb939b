package domain

import "time"

// Product is a catalog entry.
type Product struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Images      []string  `json:"image"`
	Categories  []string  `json:"category"`
	SubCategory string    `json:"subCategory,omitempty"`
	Brand       string    `json:"brand"`
	Color       string    `json:"color,omitempty"`
	Size        string    `json:"size,omitempty"`
	Quantity    int       `json:"quantity"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
