// Package api implements the Sitemarks JSON API using chi.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/starford/sitemarks/internal/bookmarks"
)

// NewRouter creates a chi router with all API routes mounted.
// sseHandler, if non-nil, is mounted at GET /events.
func NewRouter(ctl *bookmarks.Controller, sseHandler http.Handler) chi.Router {
	h := NewHandler(ctl)

	r := chi.NewRouter()

	r.Get("/bookmarks", h.ListBookmarks)
	r.Post("/bookmarks", h.CreateBookmark)
	r.Delete("/bookmarks/{index}", h.DeleteBookmark)
	r.Get("/bookmarks/{index}/visit", h.VisitBookmark)

	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}
