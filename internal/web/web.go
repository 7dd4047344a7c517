// Package web serves the bookmark page: the entry form, the rendered table
// and the notice shown when a submission is rejected.
package web

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/starford/sitemarks/internal/apperr"
	"github.com/starford/sitemarks/internal/bookmarks"
	"github.com/starford/sitemarks/internal/render"
)

// Form field names posted by the page.
const (
	FieldName = "bookmarkName"
	FieldURL  = "bookmarkURL"
)

//go:embed templates/page.html
var templatesFS embed.FS

var pageTmpl = template.Must(template.ParseFS(templatesFS, "templates/page.html"))

type pageData struct {
	Form      *bookmarks.Form
	TableBody template.HTML
	Notice    *bookmarks.Notice
}

// Handler serves the page routes.
type Handler struct {
	ctl *bookmarks.Controller
}

// NewHandler creates a new page handler.
func NewHandler(ctl *bookmarks.Controller) *Handler {
	return &Handler{ctl: ctl}
}

// NewRouter mounts the page routes.
func NewRouter(ctl *bookmarks.Controller) chi.Router {
	h := NewHandler(ctl)

	r := chi.NewRouter()
	r.Get("/", h.Index)
	r.Post("/", h.Submit)
	r.Get("/table", h.Table)
	r.Post("/delete/{index}", h.Delete)
	r.Get("/visit/{index}", h.Visit)
	return r
}

// Index handles GET /.
func (h *Handler) Index(w http.ResponseWriter, _ *http.Request) {
	h.renderPage(w, http.StatusOK, bookmarks.NewForm("", ""), nil)
}

// Submit handles POST / with the form fields bookmarkName and bookmarkURL.
// An accepted bookmark redirects back to the page; a rejection re-renders it
// with the entered values, their marks and the notice.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	form := bookmarks.NewForm(r.PostForm.Get(FieldName), r.PostForm.Get(FieldURL))
	res, err := h.ctl.Submit(r.Context(), form)
	if err != nil {
		slog.Error("submit bookmark failed", slog.String("error", err.Error()))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	switch {
	case errors.Is(res.Err(), apperr.ErrAlreadyExists):
		h.renderPage(w, http.StatusConflict, form, res.Notice)
	case errors.Is(res.Err(), apperr.ErrInvalid):
		h.renderPage(w, http.StatusUnprocessableEntity, form, res.Notice)
	default:
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// Table handles GET /table and returns only the table body rows.
func (h *Handler) Table(w http.ResponseWriter, _ *http.Request) {
	var buf bytes.Buffer
	if err := render.TableBody(&buf, h.ctl.Bookmarks()); err != nil {
		slog.Error("render table failed", slog.String("error", err.Error()))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

// Delete handles POST /delete/{index} and sends the browser back to the page.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "index must be an integer", http.StatusBadRequest)
		return
	}
	if _, err := h.ctl.Delete(r.Context(), index); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		slog.Error("delete bookmark failed", slog.Int("index", index), slog.String("error", err.Error()))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Visit handles GET /visit/{index} by redirecting to the bookmark.
func (h *Handler) Visit(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "index must be an integer", http.StatusBadRequest)
		return
	}
	target, err := h.ctl.Visit(r.Context(), index)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, target, http.StatusFound)
}

func (h *Handler) renderPage(w http.ResponseWriter, status int, form *bookmarks.Form, notice *bookmarks.Notice) {
	var body bytes.Buffer
	if err := render.TableBody(&body, h.ctl.Bookmarks()); err != nil {
		slog.Error("render table failed", slog.String("error", err.Error()))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	var page bytes.Buffer
	data := pageData{
		Form: form,
		// TableBody output is produced by html/template and already escaped.
		TableBody: template.HTML(body.String()), //nolint:gosec
		Notice:    notice,
	}
	if err := pageTmpl.Execute(&page, data); err != nil {
		slog.Error("render page failed", slog.String("error", err.Error()))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(page.Bytes())
}
