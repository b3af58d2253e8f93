package noteevents

import (
	"context"
	"encoding/json"
	"fmt"
	e "quicknotes/internal/core/domain/errors"
	"quicknotes/internal/core/domain/note"
	"time"

	"github.com/r3labs/sse/v2"
)

// StreamID is the SSE stream note change events are published to.
const StreamID = "notes"

type eventPayload struct {
	Type string      `json:"type"`
	Note notePayload `json:"note"`
}

type notePayload struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SSEPublisher struct {
	sseServer *sse.Server
}

func NewSSEPublisher(sseServer *sse.Server) *SSEPublisher {
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	return &SSEPublisher{sseServer: sseServer}
}

func (p *SSEPublisher) Publish(ctx context.Context, event note.Event) error {
	switch event.Type {
	case note.EventNoteCreated, note.EventNoteUpdated, note.EventNoteDeleted:
	default:
		return e.NewInvalidStateError(fmt.Sprintf("unknown note event type '%s'", event.Type))
	}

	data, err := json.Marshal(eventPayload{
		Type: string(event.Type),
		Note: notePayload{
			ID:        int64(event.Note.ID),
			Title:     event.Note.Title,
			Content:   event.Note.Content,
			CreatedAt: event.Note.CreatedAt,
			UpdatedAt: event.Note.UpdatedAt,
		},
	})
	if err != nil {
		return err
	}

	p.sseServer.Publish(StreamID, &sse.Event{
		Event: []byte(event.Type),
		Data:  data,
	})
	return nil
}
