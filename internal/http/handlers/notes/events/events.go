package events

import (
	"net/http"
	e "quicknotes/internal/core/domain/errors"
	"quicknotes/internal/core/domain/logging"
	"quicknotes/internal/implementations/noteevents"

	"github.com/r3labs/sse/v2"
)

// Handler subscribes the caller to the note change stream over
// server-sent events.
type Handler struct {
	log       logging.Logger
	sseServer *sse.Server
}

func New(log logging.Logger, sseServer *sse.Server) *Handler {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	return &Handler{log: log, sseServer: sseServer}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	query.Set("stream", noteevents.StreamID)
	r.URL.RawQuery = query.Encode()

	h.log.Info(r.Context(), "Subscribed to note events.")
	h.sseServer.ServeHTTP(rw, r)
}
