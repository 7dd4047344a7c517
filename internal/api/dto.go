package api

import (
	"github.com/starford/sitemarks/internal/bookmarks"
	"github.com/starford/sitemarks/internal/models"
	"github.com/starford/sitemarks/internal/render"
	"github.com/starford/sitemarks/internal/validator"
)

// CreateBookmarkRequest is the request body for submitting a bookmark.
type CreateBookmarkRequest struct {
	SiteName string `json:"siteName" example:"Apple"`
	SiteURL  string `json:"siteURL" example:"apple.com"`
}

// BookmarkListResponse is the current list with its rendered rows.
type BookmarkListResponse struct {
	Bookmarks []models.Bookmark `json:"bookmarks" validate:"required"`
	Rows      []render.Row      `json:"rows" validate:"required"`
	Total     int               `json:"total" example:"2" validate:"required"`
}

// FieldMarks carries the validity mark of each input after a submission.
type FieldMarks struct {
	SiteName validator.Mark `json:"siteName" example:"valid"`
	SiteURL  validator.Mark `json:"siteURL" example:"invalid"`
}

// SubmitResponse is returned for every submission, accepted or not.
type SubmitResponse struct {
	State    bookmarks.State   `json:"state" example:"accepted"`
	Bookmark *models.Bookmark  `json:"bookmark,omitempty"`
	Index    *int              `json:"index,omitempty" example:"0"`
	Notice   *bookmarks.Notice `json:"notice,omitempty"`
	Fields   FieldMarks        `json:"fields"`
}

// VisitResponse is the address a bookmark opens.
type VisitResponse struct {
	URL string `json:"url" example:"https://apple.com" validate:"required"`
}
