package model

import (
	"time"

	"github.com/google/uuid"
)

type Ticket struct {
	Id           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title        string     `gorm:"type:varchar(255);not null"`
	Description  string     `gorm:"type:text;not null"`
	Status       string     `gorm:"type:varchar(20);not null;default:'OPEN';index"`
	Priority     string     `gorm:"type:varchar(20);not null;default:'MEDIUM';index"`
	CreatedById  uuid.UUID  `gorm:"type:uuid;not null;index"`
	AssignedToId *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt    time.Time  `gorm:"autoCreateTime;index"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime"`

	CreatedBy  *User `gorm:"foreignKey:CreatedById"`
	AssignedTo *User `gorm:"foreignKey:AssignedToId"`
}

func (Ticket) TableName() string {
	return "tickets"
}
