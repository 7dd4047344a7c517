package bookmarks

import (
	"fmt"

	"github.com/starford/sitemarks/internal/apperr"
	"github.com/starford/sitemarks/internal/models"
)

// State is a step of the submission workflow.
type State int

const (
	StateIdle State = iota
	StateCheckingDuplicate
	StateCheckingFormat
	StateAccepted
	StateRejectedFormat
	StateRejectedDuplicate
)

var stateNames = map[State]string{
	StateIdle:              "idle",
	StateCheckingDuplicate: "checking_duplicate",
	StateCheckingFormat:    "checking_format",
	StateAccepted:          "accepted",
	StateRejectedFormat:    "rejected_format",
	StateRejectedDuplicate: "rejected_duplicate",
}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// MarshalText encodes the state for JSON responses.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Result is the outcome of one submission.
type Result struct {
	// Outcome is the terminal state: accepted or one of the rejections.
	Outcome State
	// Trace lists every state visited, starting and ending at StateIdle.
	Trace []State
	// Notice is set on rejection.
	Notice *Notice
	// Bookmark and Index are set when accepted.
	Bookmark *models.Bookmark
	Index    int
}

// Err maps a rejection to its sentinel error; nil when accepted.
func (r *Result) Err() error {
	switch r.Outcome {
	case StateRejectedDuplicate:
		return apperr.ErrAlreadyExists
	case StateRejectedFormat:
		return apperr.ErrInvalid
	default:
		return nil
	}
}
