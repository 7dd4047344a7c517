package bookmarks

import (
	"strings"

	"github.com/starford/sitemarks/internal/models"
)

// Exists reports whether list already holds name (exact match) or url
// (compared lower-cased).
func Exists(list []models.Bookmark, name, url string) bool {
	lowerURL := strings.ToLower(url)
	for _, b := range list {
		if b.SiteName == name || strings.ToLower(b.SiteURL) == lowerURL {
			return true
		}
	}
	return false
}
