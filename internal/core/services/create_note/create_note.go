package createnote

import (
	"context"
	e "quicknotes/internal/core/domain/errors"
	"quicknotes/internal/core/domain/logging"
	"quicknotes/internal/core/domain/note"
	"quicknotes/internal/core/services"
	"time"
)

type Input struct {
	Title   string
	Content string
}

func (i Input) Validate() error {
	if err := note.ValidateTitle(i.Title); err != nil {
		return err
	}
	return note.ValidateContent(i.Content)
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

	createdNote, err := s.noteRepository.Create(ctx, note.CreateInput{
		Title:     input.Title,
		Content:   input.Content,
		CreatedAt: s.now(),
	})
	if err != nil {
		logging.Error(s.log, ctx, err, logging.Entry("input", input))
		return result, err
	}

	s.publishEvent(ctx, createdNote)
	s.log.Info(ctx, "Note successfully created.", logging.Entry("note", createdNote))

	result.Note = createdNote
	return result, nil
}

func (s *service) publishEvent(ctx context.Context, n note.Note) {
	err := s.eventPublisher.Publish(ctx, note.Event{Type: note.EventNoteCreated, Note: n})
	if err != nil {
		s.log.Warning(
			ctx,
			"Could not publish note created event.",
			logging.Entry("err", err),
			logging.Entry("note", n),
		)
	}
}
