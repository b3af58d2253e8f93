package note

import (
	"fmt"
	"time"
	"unicode/utf8"
)

const MAX_TITLE_LENGTH = 256
const MAX_CONTENT_LENGTH = 20000

type ID int64

type Note struct {
	ID        ID
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (n Note) String() string {
	return fmt.Sprintf("Note(ID=%d, Title=%q)", n.ID, n.Title)
}

func ValidateTitle(title string) error {
	if title == "" {
		return ErrNoteTitleIsEmpty
	}
	if utf8.RuneCountInString(title) > MAX_TITLE_LENGTH {
		return ErrNoteTitleTooLong
	}
	return nil
}

func ValidateContent(content string) error {
	if utf8.RuneCountInString(content) > MAX_CONTENT_LENGTH {
		return ErrNoteContentTooLong
	}
	return nil
}
