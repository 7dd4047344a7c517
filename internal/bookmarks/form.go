package bookmarks

import "github.com/starford/sitemarks/internal/validator"

// Form holds the two inputs of a submission and their validity marks.
type Form struct {
	Name validator.Input
	URL  validator.Input
}

// NewForm returns an unmarked form with the given values.
func NewForm(name, url string) *Form {
	return &Form{
		Name: validator.Input{Field: validator.FieldName, Value: name},
		URL:  validator.Input{Field: validator.FieldURL, Value: url},
	}
}

// Clear empties both inputs and drops their marks.
func (f *Form) Clear() {
	f.Name.Clear()
	f.URL.Clear()
}
