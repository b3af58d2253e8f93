package updatenote

import (
	"context"
	"errors"
	c "quicknotes/internal/core/domain/common"
	e "quicknotes/internal/core/domain/errors"
	"quicknotes/internal/core/domain/logging"
	"quicknotes/internal/core/domain/note"
	"quicknotes/internal/core/services"
	"time"
)

type Input struct {
	NoteID  note.ID
	Title   c.Optional[string]
	Content c.Optional[string]
}

func (i Input) Validate() error {
	if !i.Title.IsPresent && !i.Content.IsPresent {
		return note.ErrNothingToUpdate
	}
	if i.Title.IsPresent {
		if err := note.ValidateTitle(i.Title.Value); err != nil {
			return err
		}
	}
	if i.Content.IsPresent {
		if err := note.ValidateContent(i.Content.Value); err != nil {
			return err
		}
	}
	return nil
}

type Result struct {
	Note note.Note
}

type service struct {
	log            logging.Logger
	noteRepository note.NoteRepository
	eventPublisher note.EventPublisher
	now            func() time.Time
}

func New(
	log logging.Logger,
	noteRepository note.NoteRepository,
	eventPublisher note.EventPublisher,
	now func() time.Time,
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
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		noteRepository: noteRepository,
		eventPublisher: eventPublisher,
		now:            now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if err = input.Validate(); err != nil {
		return result, err
	}

	updatedNote, err := s.noteRepository.Update(ctx, note.UpdateInput{
		ID:              input.NoteID,
		DoTitleUpdate:   input.Title.IsPresent,
		Title:           input.Title.Value,
		DoContentUpdate: input.Content.IsPresent,
		Content:         input.Content.Value,
		UpdatedAt:       s.now(),
	})
	if err != nil {
		if !errors.Is(err, note.ErrNoteDoesNotExist) {
			logging.Error(s.log, ctx, err, logging.Entry("input", input))
		}
		return result, err
	}

	s.publishEvent(ctx, updatedNote)
	s.log.Info(ctx, "Note successfully updated.", logging.Entry("note", updatedNote))

	result.Note = updatedNote
	return result, nil
}

func (s *service) publishEvent(ctx context.Context, n note.Note) {
	err := s.eventPublisher.Publish(ctx, note.Event{Type: note.EventNoteUpdated, Note: n})
	if err != nil {
		s.log.Warning(
			ctx,
			"Could not publish note updated event.",
			logging.Entry("err", err),
			logging.Entry("note", n),
		)
	}
}
