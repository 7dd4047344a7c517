package validator

// Mark is the visual validity state of an input.
type Mark int

const (
	MarkNone Mark = iota
	MarkValid
	MarkInvalid
)

// Class returns the CSS class the page applies for the mark.
func (m Mark) Class() string {
	switch m {
	case MarkValid:
		return "is-valid"
	case MarkInvalid:
		return "is-invalid"
	default:
		return ""
	}
}

func (m Mark) String() string {
	switch m {
	case MarkValid:
		return "valid"
	case MarkInvalid:
		return "invalid"
	default:
		return "none"
	}
}

// MarshalText encodes the mark for JSON responses.
func (m Mark) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Input is one labeled form field together with its validity mark.
type Input struct {
	Field Field
	Value string
	Mark  Mark
}

// Validate resets the mark, checks the value and sets the mark from the result.
func (in *Input) Validate() bool {
	in.Mark = MarkNone
	if err := Check(in.Field, in.Value); err != nil {
		in.Mark = MarkInvalid
		return false
	}
	in.Mark = MarkValid
	return true
}

// Clear empties the value and drops the mark.
func (in *Input) Clear() {
	in.Value = ""
	in.Mark = MarkNone
}
