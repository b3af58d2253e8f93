package listnotes

import (
	"context"
	c "quicknotes/internal/core/domain/common"
	e "quicknotes/internal/core/domain/errors"
	"quicknotes/internal/core/domain/logging"
	"quicknotes/internal/core/domain/note"
	"quicknotes/internal/core/services"
)

type Input struct {
	OrderBy note.OrderBy
	Limit   c.Optional[uint]
	Offset  uint
}

type Result struct {
	Notes      []note.Note
	TotalCount uint
}

type service struct {
	log            logging.Logger
	noteRepository note.NoteRepository
}

func New(
	log logging.Logger,
	noteRepository note.NoteRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if noteRepository == nil {
		panic(e.NewNilArgumentError("noteRepository"))
	}
	return &service{log: log, noteRepository: noteRepository}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	options := note.ReadOptions{
		OrderBy: input.OrderBy,
		Limit:   input.Limit,
		Offset:  input.Offset,
	}

	notes, err := s.noteRepository.Read(ctx, options)
	if err != nil {
		logging.Error(s.log, ctx, err, logging.Entry("input", input))
		return result, err
	}
	totalCount, err := s.noteRepository.Count(ctx, options)
	if err != nil {
		logging.Error(s.log, ctx, err, logging.Entry("input", input))
		return result, err
	}

	result.Notes = notes
	result.TotalCount = totalCount
	return result, nil
}
