package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTicketRequest struct {
	Title       string `json:"title" validate:"required,min=3"`
	Description string `json:"description" validate:"required"`
	Priority    string `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
}

type UpdateTicketRequest struct {
	Title        string     `json:"title" validate:"omitempty,min=3"`
	Description  string     `json:"description"`
	Status       string     `json:"status" validate:"omitempty,oneof=OPEN IN_PROGRESS CLOSED"`
	Priority     string     `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	AssignedToId *uuid.UUID `json:"assigned_to_id"`
}

type ListTicketsQuery struct {
	Status   string `query:"status" validate:"omitempty,oneof=OPEN IN_PROGRESS CLOSED"`
	Priority string `query:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	Search   string `query:"search"`
	Limit    int    `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset   int    `query:"offset" validate:"omitempty,min=0"`
}

type TicketResponse struct {
	Id          uuid.UUID     `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Status      string        `json:"status"`
	Priority    string        `json:"priority"`
	CreatedBy   *UserResponse `json:"created_by,omitempty"`
	AssignedTo  *UserResponse `json:"assigned_to,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
