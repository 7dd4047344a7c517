// Package models defines the domain types for Sitemarks.
package models

// Bookmark is a stored (name, URL) pair. Its identity is its position in the list.
type Bookmark struct {
	SiteName string `json:"siteName"`
	SiteURL  string `json:"siteURL"`
}
