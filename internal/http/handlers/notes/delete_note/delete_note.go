package deletenote

import (
	"errors"
	"net/http"
	e "quicknotes/internal/core/domain/errors"
	"quicknotes/internal/core/domain/note"
	"quicknotes/internal/core/services"
	service "quicknotes/internal/core/services/delete_note"
	"quicknotes/internal/http/handlers/response"
	"strconv"

	"github.com/go-chi/chi/v5"
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

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawNoteID := chi.URLParam(r, "noteID")
	noteID, err := strconv.ParseInt(rawNoteID, 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid note ID", http.StatusBadRequest)
		return
	}

	_, err = h.service.Run(r.Context(), service.Input{NoteID: note.ID(noteID)})
	if err != nil {
		switch {
		case errors.Is(err, note.ErrNoteDoesNotExist):
			response.RenderError(rw, err.Error(), http.StatusNotFound)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	rw.WriteHeader(http.StatusNoContent)
}
