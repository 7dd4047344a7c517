package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/starford/sitemarks/internal/apperr"
	"github.com/starford/sitemarks/internal/bookmarks"
	"github.com/starford/sitemarks/internal/checksum"
	"github.com/starford/sitemarks/internal/render"
)

// Handler holds API route handlers.
type Handler struct {
	ctl *bookmarks.Controller
}

// NewHandler creates a new Handler.
func NewHandler(ctl *bookmarks.Controller) *Handler {
	return &Handler{ctl: ctl}
}

// bookmarkIndex extracts the 0-based {index} URL parameter.
func bookmarkIndex(r *http.Request) (int, bool) {
	i, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		return 0, false
	}
	return i, true
}

// ListBookmarks handles GET /api/bookmarks.
//
//	@Summary		List bookmarks in display order
//	@Tags			bookmarks
//	@Produce		json
//	@Param			If-None-Match	header	string	false	"Checksum of a previously fetched list"
//	@Success		200		{object}	BookmarkListResponse
//	@Success		304		"List unchanged"
//	@Router			/bookmarks [get]
func (h *Handler) ListBookmarks(w http.ResponseWriter, r *http.Request) {
	list := h.ctl.Bookmarks()
	data, err := bookmarks.Encode(list)
	if err != nil {
		slog.Error("encode bookmarks failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	etag := checksum.ETag(data)
	w.Header().Set("ETag", etag)
	if checksum.Matches(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	writeJSON(w, http.StatusOK, BookmarkListResponse{
		Bookmarks: list,
		Rows:      render.Rows(list),
		Total:     len(list),
	})
}

// CreateBookmark handles POST /api/bookmarks.
//
//	@Summary		Submit a bookmark
//	@Tags			bookmarks
//	@Accept			json
//	@Produce		json
//	@Param			body	body		CreateBookmarkRequest	true	"Bookmark to add"
//	@Success		201		{object}	SubmitResponse
//	@Failure		400		{object}	errResponse
//	@Failure		409		{object}	SubmitResponse
//	@Failure		422		{object}	SubmitResponse
//	@Router			/bookmarks [post]
func (h *Handler) CreateBookmark(w http.ResponseWriter, r *http.Request) {
	var req CreateBookmarkRequest
	if err := readJSON(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}

	form := bookmarks.NewForm(req.SiteName, req.SiteURL)
	res, err := h.ctl.Submit(r.Context(), form)
	if err != nil {
		writeError(w, "submit bookmark", err, slog.String("site_name", req.SiteName))
		return
	}

	resp := SubmitResponse{
		State:    res.Outcome,
		Bookmark: res.Bookmark,
		Notice:   res.Notice,
		Fields:   FieldMarks{SiteName: form.Name.Mark, SiteURL: form.URL.Mark},
	}
	switch {
	case errors.Is(res.Err(), apperr.ErrAlreadyExists):
		writeJSON(w, http.StatusConflict, resp)
	case errors.Is(res.Err(), apperr.ErrInvalid):
		writeJSON(w, http.StatusUnprocessableEntity, resp)
	default:
		resp.Index = &res.Index
		writeJSON(w, http.StatusCreated, resp)
	}
}

// DeleteBookmark handles DELETE /api/bookmarks/{index}.
//
//	@Summary		Delete the bookmark at a position
//	@Tags			bookmarks
//	@Param			index	path	int	true	"0-based index"
//	@Success		204		"Bookmark deleted"
//	@Failure		400		{object}	errResponse
//	@Failure		404		{object}	errResponse
//	@Router			/bookmarks/{index} [delete]
func (h *Handler) DeleteBookmark(w http.ResponseWriter, r *http.Request) {
	index, ok := bookmarkIndex(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody("index must be an integer"))
		return
	}
	if _, err := h.ctl.Delete(r.Context(), index); err != nil {
		writeError(w, "delete bookmark", err, slog.Int("index", index))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// VisitBookmark handles GET /api/bookmarks/{index}/visit.
//
//	@Summary		Resolve the address a bookmark opens
//	@Tags			bookmarks
//	@Produce		json
//	@Param			index	path		int	true	"0-based index"
//	@Success		200		{object}	VisitResponse
//	@Failure		400		{object}	errResponse
//	@Failure		404		{object}	errResponse
//	@Router			/bookmarks/{index}/visit [get]
func (h *Handler) VisitBookmark(w http.ResponseWriter, r *http.Request) {
	index, ok := bookmarkIndex(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody("index must be an integer"))
		return
	}
	u, err := h.ctl.Visit(r.Context(), index)
	if err != nil {
		writeError(w, "visit bookmark", err, slog.Int("index", index))
		return
	}
	writeJSON(w, http.StatusOK, VisitResponse{URL: u})
}
