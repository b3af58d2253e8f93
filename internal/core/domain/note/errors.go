package note

import "errors"

var (
	ErrNoteDoesNotExist   = errors.New("note does not exist")
	ErrNoteTitleIsEmpty   = errors.New("note title is empty")
	ErrNoteTitleTooLong   = errors.New("note title is too long")
	ErrNoteContentTooLong = errors.New("note content is too long")
	ErrNothingToUpdate    = errors.New("nothing to update")
)
