package response

import (
	"quicknotes/internal/core/domain/note"
	"time"
)

type Note struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (n *Note) FromDomainType(dn note.Note) {
	n.ID = int64(dn.ID)
	n.Title = dn.Title
	n.Content = dn.Content
	n.CreatedAt = dn.CreatedAt
	n.UpdatedAt = dn.UpdatedAt
}

func NotesFromDomainType(domainNotes []note.Note) []Note {
	notes := make([]Note, len(domainNotes))
	for ix, dn := range domainNotes {
		notes[ix].FromDomainType(dn)
	}
	return notes
}
