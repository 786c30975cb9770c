package mapper

import (
	"ticketdesk-be/internal/entity"
	"ticketdesk-be/internal/model"
)

type CommentMapper struct {
	userMapper *UserMapper
}

func NewCommentMapper() *CommentMapper {
	return &CommentMapper{
		userMapper: NewUserMapper(),
	}
}

func (m *CommentMapper) ToEntity(c *model.Comment) *entity.Comment {
	if c == nil {
		return nil
	}
	return &entity.Comment{
		Id:        c.Id,
		Content:   c.Content,
		TicketId:  c.TicketId,
		AuthorId:  c.AuthorId,
		CreatedAt: c.CreatedAt,
		Author:    m.userMapper.ToEntity(c.Author),
	}
}

func (m *CommentMapper) ToModel(c *entity.Comment) *model.Comment {
	if c == nil {
		return nil
	}
	return &model.Comment{
		Id:        c.Id,
		Content:   c.Content,
		TicketId:  c.TicketId,
		AuthorId:  c.AuthorId,
		CreatedAt: c.CreatedAt,
	}
}

func (m *CommentMapper) ToEntities(models []*model.Comment) []*entity.Comment {
	entities := make([]*entity.Comment, len(models))
	for i, c := range models {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
