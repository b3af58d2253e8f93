package note

import (
	"context"
	c "quicknotes/internal/core/domain/common"
	"time"
)

type CreateInput struct {
	Title     string
	Content   string
	CreatedAt time.Time
}

type ReadOptions struct {
	OrderBy OrderBy
	Limit   c.Optional[uint]
	Offset  uint
}

type UpdateInput struct {
	ID              ID
	DoTitleUpdate   bool
	Title           string
	DoContentUpdate bool
	Content         string
	UpdatedAt       time.Time
}

type NoteRepository interface {
	Create(ctx context.Context, input CreateInput) (Note, error)
	GetByID(ctx context.Context, id ID) (Note, error)
	Read(ctx context.Context, options ReadOptions) ([]Note, error)
	Count(ctx context.Context, options ReadOptions) (uint, error)
	Update(ctx context.Context, input UpdateInput) (Note, error)
	Delete(ctx context.Context, id ID) error
}
