package createnote

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	e "quicknotes/internal/core/domain/errors"
	"quicknotes/internal/core/domain/note"
	"quicknotes/internal/core/services"
	service "quicknotes/internal/core/services/create_note"
	"quicknotes/internal/http/handlers/response"

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
	Title   string `json:"title"`
	Content string `json:"content"`
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
		validation.Field(&i.Title, validation.Required, validation.Length(1, note.MAX_TITLE_LENGTH)),
		validation.Field(&i.Content, validation.Length(0, note.MAX_CONTENT_LENGTH)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{
		Title:   input.Title,
		Content: input.Content,
	})
	if err != nil {
		switch {
		case isExpectedError(err):
			response.RenderError(rw, err.Error(), http.StatusUnprocessableEntity)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	createdNote := response.Note{}
	createdNote.FromDomainType(result.Note)
	response.Render(rw, Result{Note: createdNote}, http.StatusCreated)
}

func isExpectedError(err error) bool {
	return (errors.Is(err, note.ErrNoteTitleIsEmpty) ||
		errors.Is(err, note.ErrNoteTitleTooLong) ||
		errors.Is(err, note.ErrNoteContentTooLong))
}
