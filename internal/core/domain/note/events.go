package note

import "context"

type EventType string

const (
	EventNoteCreated EventType = "note_created"
	EventNoteUpdated EventType = "note_updated"
	EventNoteDeleted EventType = "note_deleted"
)

type Event struct {
	Type EventType
	Note Note
}

type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}
