package models

import (
	"time"

	"github.com/google/uuid"
)

// WorkoutEntry is one logged exercise instance. Entries are append-only:
// once written they are never edited or deleted, only listed by their owner.
type WorkoutEntry struct {
	ID        uuid.UUID `json:"id"`
	AuthorID  uuid.UUID `json:"author_id"` // Owning user; every entry has exactly one
	CreatedAt time.Time `json:"created_at"`

	Date    time.Time `json:"date"`
	Workout string    `json:"workout"` // Exercise name, title-cased before storage
	Sets    int       `json:"sets"`
	Reps    int       `json:"reps"`
	Kgs     float64   `json:"kgs"`
}
