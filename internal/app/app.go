package app

import (
	"fmt"
	"net/http"
	"quicknotes/internal/app/deps"
	"quicknotes/internal/app/services"
	drl "quicknotes/internal/core/domain/rate_limiter"
	"quicknotes/internal/http/handlers/health"
	createnote "quicknotes/internal/http/handlers/notes/create_note"
	deletenote "quicknotes/internal/http/handlers/notes/delete_note"
	"quicknotes/internal/http/handlers/notes/events"
	getnote "quicknotes/internal/http/handlers/notes/get_note"
	listnotes "quicknotes/internal/http/handlers/notes/list_notes"
	updatenote "quicknotes/internal/http/handlers/notes/update_note"
	"quicknotes/internal/http/handlers/response"
	"quicknotes/internal/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// RateLimitKey is the shared counter all requests are charged against:
// the limit is one service-wide quota, not a per-client one.
const RateLimitKey = "quicknotes"

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	notesRouter := chi.NewRouter()
	notesRouter.Method(http.MethodGet, "/", listnotes.New(s.ListNotes))
	notesRouter.Method(http.MethodPost, "/", createnote.New(s.CreateNote))
	notesRouter.Method(http.MethodGet, "/events", events.New(deps.Logger, deps.SseServer))
	notesRouter.Method(http.MethodGet, "/{noteID:[0-9]+}", getnote.New(s.GetNote))
	notesRouter.Method(http.MethodPatch, "/{noteID:[0-9]+}", updatenote.New(s.UpdateNote))
	notesRouter.Method(http.MethodDelete, "/{noteID:[0-9]+}", deletenote.New(s.DeleteNote))

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Use(middleware.RateLimit(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Value: deps.Config.RateLimitValue, Window: deps.Config.RateLimitWindow},
		middleware.ConstantKey(RateLimitKey),
	))
	router.NotFound(func(rw http.ResponseWriter, r *http.Request) {
		response.RenderNotFound(rw)
	})
	router.Method(http.MethodGet, "/health", health.New())
	router.Mount("/notes", notesRouter)

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}
