package entity

import (
	"time"

	"github.com/google/uuid"
)

type Ticket struct {
	Id           uuid.UUID
	Title        string
	Description  string
	Status       string
	Priority     string
	CreatedById  uuid.UUID
	AssignedToId *uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Populated only when the repository is asked for relations.
	CreatedBy  *User
	AssignedTo *User
}
