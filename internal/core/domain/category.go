package domain

import "time"

// DefaultCategoryImage is used when a category has no picture yet.
const DefaultCategoryImage = "https://media.ideadrop.io/defaults/category.jpg"

// Category groups products. Names are unique and stored lowercase.
type Category struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
