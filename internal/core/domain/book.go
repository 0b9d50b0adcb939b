package domain

import "time"

// DefaultBookImage is used when a book is created without a cover image.
const DefaultBookImage = "https://media.ideadrop.io/defaults/cover.jpg"

// Book is a community-submitted book recommendation.
type Book struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Caption     string    `json:"caption"`
	Author      string    `json:"author"`
	Rating      int       `json:"rating"`
	Image       string    `json:"image"`
	PublishedAt time.Time `json:"publishedAt"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
