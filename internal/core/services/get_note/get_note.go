package getnote

import (
	"context"
	"errors"
	e "quicknotes/internal/core/domain/errors"
	"quicknotes/internal/core/domain/logging"
	"quicknotes/internal/core/domain/note"
	"quicknotes/internal/core/services"
)

type Input struct {
	NoteID note.ID
}

type Result struct {
	Note note.Note
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
	n, err := s.noteRepository.GetByID(ctx, input.NoteID)
	if err != nil {
		if !errors.Is(err, note.ErrNoteDoesNotExist) {
			logging.Error(s.log, ctx, err, logging.Entry("input", input))
		}
		return result, err
	}
	result.Note = n
	return result, nil
}
