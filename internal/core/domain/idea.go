package domain

import "time"

// Idea is the representative owned resource: every idea records the user who
// created it, and only that user may update or delete it.
type Idea struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	UserID      string    `json:"user"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
