package deletenote

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

type Result struct{}

type service struct {
	log            logging.Logger
	noteRepository note.NoteRepository
	eventPublisher note.EventPublisher
}

func New(
	log logging.Logger,
	noteRepository note.NoteRepository,
	eventPublisher note.EventPublisher,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if noteRepository == nil {
		panic(e.NewNilArgumentError("noteRepository"))
	}
	if eventPublisher == nil {
		panic(e.NewNilArgumentError("eventPublisher"))
	}
	return &service{
		log:            log,
		noteRepository: noteRepository,
		eventPublisher: eventPublisher,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	n, err := s.noteRepository.GetByID(ctx, input.NoteID)
	if err != nil {
		if !errors.Is(err, note.ErrNoteDoesNotExist) {
			logging.Error(s.log, ctx, err, logging.Entry("input", input))
		}
		return result, err
	}

	if err := s.noteRepository.Delete(ctx, input.NoteID); err != nil {
		if !errors.Is(err, note.ErrNoteDoesNotExist) {
			logging.Error(s.log, ctx, err, logging.Entry("input", input))
		}
		return result, err
	}

	s.publishEvent(ctx, n)
	s.log.Info(ctx, "Note successfully deleted.", logging.Entry("noteID", input.NoteID))
	return result, nil
}

func (s *service) publishEvent(ctx context.Context, n note.Note) {
	err := s.eventPublisher.Publish(ctx, note.Event{Type: note.EventNoteDeleted, Note: n})
	if err != nil {
		s.log.Warning(
			ctx,
			"Could not publish note deleted event.",
			logging.Entry("err", err),
			logging.Entry("note", n),
		)
	}
}
