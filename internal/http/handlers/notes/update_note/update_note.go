package updatenote

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	c "quicknotes/internal/core/domain/common"
	e "quicknotes/internal/core/domain/errors"
	"quicknotes/internal/core/domain/note"
	"quicknotes/internal/core/services"
	service "quicknotes/internal/core/services/update_note"
	"quicknotes/internal/http/handlers/response"
	"strconv"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(service services.Service[service.Input, service.Result]) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type Result struct {
	Note response.Note `json:"note"`
}

func (i *Input) FromJSON(r io.Reader) error {
	d := json.NewDecoder(r)
	return d.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Title, validation.Length(1, note.MAX_TITLE_LENGTH)),
		validation.Field(&i.Content, validation.Length(0, note.MAX_CONTENT_LENGTH)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawNoteID := chi.URLParam(r, "noteID")
	noteID, err := strconv.ParseInt(rawNoteID, 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid note ID", http.StatusBadRequest)
		return
	}

	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	serviceInput := service.Input{NoteID: note.ID(noteID)}
	if input.Title != nil {
		serviceInput.Title = c.NewOptional(*input.Title, true)
	}
	if input.Content != nil {
		serviceInput.Content = c.NewOptional(*input.Content, true)
	}

	result, err := h.service.Run(r.Context(), serviceInput)
	if err != nil {
		switch {
		case errors.Is(err, note.ErrNoteDoesNotExist):
			response.RenderError(rw, err.Error(), http.StatusNotFound)
		case isExpectedError(err):
			response.RenderError(rw, err.Error(), http.StatusUnprocessableEntity)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	updatedNote := response.Note{}
	updatedNote.FromDomainType(result.Note)
	response.Render(rw, Result{Note: updatedNote}, http.StatusOK)
}

func isExpectedError(err error) bool {
	return (errors.Is(err, note.ErrNothingToUpdate) ||
		errors.Is(err, note.ErrNoteTitleIsEmpty) ||
		errors.Is(err, note.ErrNoteTitleTooLong) ||
		errors.Is(err, note.ErrNoteContentTooLong))
}
