package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

type CommentResponse struct {
	Id        uuid.UUID     `json:"id"`
	Content   string        `json:"content"`
	TicketId  uuid.UUID     `json:"ticket_id"`
	Author    *UserResponse `json:"author,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}
