package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

type ByPriority struct {
	Priority string
}

func (s ByPriority) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("priority = ?", s.Priority)
}

// TicketSearchQuery filters tickets whose title or description contains the
// query. Uses LIKE, not ILIKE: the assistant tools contract is a
// case-sensitive substring match.
type TicketSearchQuery struct {
	Query string
}

func (s TicketSearchQuery) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.Where("title LIKE ? OR description LIKE ?", pattern, pattern)
}

type ByTicketID struct {
	TicketID uuid.UUID
}

func (s ByTicketID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("ticket_id = ?", s.TicketID)
}
