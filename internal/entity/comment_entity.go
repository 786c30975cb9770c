package entity

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	Id        uuid.UUID
	Content   string
	TicketId  uuid.UUID
	AuthorId  uuid.UUID
	CreatedAt time.Time

	Author *User
}
