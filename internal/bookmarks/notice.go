package bookmarks

// Notice texts.
const (
	RulesTitle     = "Site Name or URL is not valid, Please follow the rules below:"
	NameRuleLine   = "Site name must start with a capital letter and 3 to 9 lowercase letters, optionally followed by a second capitalized word"
	URLRuleLine    = "Site URL must be a valid .com, .org or .net address"
	DuplicateTitle = "The site already exists...!"
)

// Notice is the modal message shown when a submission is rejected.
type Notice struct {
	Title string   `json:"title"`
	Lines []string `json:"lines,omitempty"`
	// HideNavIcons suppresses the arrow icons next to the message lines.
	HideNavIcons bool `json:"hideNavIcons"`
}

// RulesNotice lists both rules, whichever of them failed.
func RulesNotice() *Notice {
	return &Notice{
		Title: RulesTitle,
		Lines: []string{NameRuleLine, URLRuleLine},
	}
}

// DuplicateNotice reports a name or URL collision.
func DuplicateNotice() *Notice {
	return &Notice{
		Title:        DuplicateTitle,
		HideNavIcons: true,
	}
}
