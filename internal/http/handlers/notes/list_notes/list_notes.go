package listnotes

import (
	"errors"
	"net/http"
	c "quicknotes/internal/core/domain/common"
	e "quicknotes/internal/core/domain/errors"
	"quicknotes/internal/core/domain/note"
	"quicknotes/internal/core/services"
	service "quicknotes/internal/core/services/list_notes"
	"quicknotes/internal/http/handlers/response"
	"strconv"
)

var errInvalidLimit = errors.New("invalid limit")
var errInvalidOffset = errors.New("invalid offset")

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(service services.Service[service.Input, service.Result]) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	Notes      []response.Note `json:"notes"`
	TotalCount uint            `json:"total_count"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input, err := parseInput(r)
	if err != nil {
		response.RenderError(rw, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(r.Context(), input)
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(
		rw,
		Result{
			Notes:      response.NotesFromDomainType(result.Notes),
			TotalCount: result.TotalCount,
		},
		http.StatusOK,
	)
}

func parseInput(r *http.Request) (input service.Input, err error) {
	query := r.URL.Query()

	if rawOrderBy := query.Get("order_by"); rawOrderBy != "" {
		input.OrderBy, err = note.ParseOrderBy(rawOrderBy)
		if err != nil {
			return input, err
		}
	}

	if rawLimit := query.Get("limit"); rawLimit != "" {
		limit, err := strconv.ParseUint(rawLimit, 10, 32)
		if err != nil {
			return input, errInvalidLimit
		}
		input.Limit = c.NewOptional(uint(limit), true)
	}

	if rawOffset := query.Get("offset"); rawOffset != "" {
		offset, err := strconv.ParseUint(rawOffset, 10, 32)
		if err != nil {
			return input, errInvalidOffset
		}
		input.Offset = uint(offset)
	}

	return input, nil
}
