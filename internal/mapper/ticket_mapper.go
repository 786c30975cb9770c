package mapper

import (
	"ticketdesk-be/internal/entity"
	"ticketdesk-be/internal/model"
)

type TicketMapper struct {
	userMapper *UserMapper
}

func NewTicketMapper() *TicketMapper {
	return &TicketMapper{
		userMapper: NewUserMapper(),
	}
}

func (m *TicketMapper) ToEntity(t *model.Ticket) *entity.Ticket {
	if t == nil {
		return nil
	}
	return &entity.Ticket{
		Id:           t.Id,
		Title:        t.Title,
		Description:  t.Description,
		Status:       t.Status,
		Priority:     t.Priority,
		CreatedById:  t.CreatedById,
		AssignedToId: t.AssignedToId,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
		CreatedBy:    m.userMapper.ToEntity(t.CreatedBy),
		AssignedTo:   m.userMapper.ToEntity(t.AssignedTo),
	}
}

func (m *TicketMapper) ToModel(t *entity.Ticket) *model.Ticket {
	if t == nil {
		return nil
	}
	// Relations are read-only views; they are never written back.
	return &model.Ticket{
		Id:           t.Id,
		Title:        t.Title,
		Description:  t.Description,
		Status:       t.Status,
		Priority:     t.Priority,
		CreatedById:  t.CreatedById,
		AssignedToId: t.AssignedToId,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func (m *TicketMapper) ToEntities(models []*model.Ticket) []*entity.Ticket {
	entities := make([]*entity.Ticket, len(models))
	for i, t := range models {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
