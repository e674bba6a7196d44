package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // Never returned to clients
}
