// Package bookmarks implements the bookmark list: duplicate checking, the
// submission workflow, deletion and persistence of the list in a storage slot.
package bookmarks

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/starford/sitemarks/internal/apperr"
	"github.com/starford/sitemarks/internal/models"
)

// Change kinds passed to listeners.
const (
	ChangeCreated = "created"
	ChangeDeleted = "deleted"
)

// Change describes one list mutation after it has been persisted.
type Change struct {
	Kind     string
	Index    int
	Bookmark models.Bookmark
}

// Listener is called after every persisted mutation.
type Listener func(Change)

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for workflow tracing.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

// WithListener registers fn to be told about list mutations.
func WithListener(fn Listener) Option {
	return func(c *Controller) {
		c.listeners = append(c.listeners, fn)
	}
}

// Controller owns the in-memory list and its persisted copy. Operations are
// serialized; each mutation is written to the slot before it becomes visible.
type Controller struct {
	mu        sync.Mutex
	list      []models.Bookmark
	slot      *Slot
	logger    *slog.Logger
	listeners []Listener
}

// NewController loads the list from slot.
func NewController(slot *Slot, opts ...Option) (*Controller, error) {
	c := &Controller{slot: slot, logger: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}
	list, err := slot.Load()
	if err != nil {
		return nil, err
	}
	c.list = list
	c.logger.Debug("bookmarks: loaded", slog.String("key", slot.Key()), slog.Int("count", len(list)))
	return c, nil
}

// Bookmarks returns a copy of the current list in display order.
func (c *Controller) Bookmarks() []models.Bookmark {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Bookmark, len(c.list))
	copy(out, c.list)
	return out
}

// Len returns the number of stored bookmarks.
func (c *Controller) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.list)
}

// Submit runs form through the workflow. Rejections are reported in the
// result, not as an error; the error is only set when saving fails.
// On acceptance the form is cleared, on rejection it keeps its values and
// whatever marks validation left on it.
func (c *Controller) Submit(_ context.Context, form *Form) (*Result, error) {
	c.mu.Lock()
	res, change, err := c.submitLocked(form)
	c.mu.Unlock()

	if change != nil {
		c.notify(*change)
	}
	return res, err
}

func (c *Controller) submitLocked(form *Form) (*Result, *Change, error) {
	res := &Result{Trace: []State{StateIdle}, Index: -1}

	c.enter(res, StateCheckingDuplicate)
	if Exists(c.list, form.Name.Value, form.URL.Value) {
		c.enter(res, StateRejectedDuplicate)
		res.Notice = DuplicateNotice()
		c.enter(res, StateIdle)
		return res, nil, nil
	}

	c.enter(res, StateCheckingFormat)
	// Both inputs are always validated so both get a mark.
	nameOK := form.Name.Validate()
	urlOK := form.URL.Validate()
	if !nameOK || !urlOK {
		c.enter(res, StateRejectedFormat)
		res.Notice = RulesNotice()
		c.enter(res, StateIdle)
		return res, nil, nil
	}

	bm := models.Bookmark{SiteName: form.Name.Value, SiteURL: form.URL.Value}
	next := append(slices.Clone(c.list), bm)
	if err := c.slot.Save(next); err != nil {
		return res, nil, err
	}
	c.list = next

	c.enter(res, StateAccepted)
	form.Clear()
	res.Bookmark = &bm
	res.Index = len(next) - 1
	c.enter(res, StateIdle)

	return res, &Change{Kind: ChangeCreated, Index: res.Index, Bookmark: bm}, nil
}

// Delete removes the bookmark at index (0-based) and persists the list.
func (c *Controller) Delete(_ context.Context, index int) (models.Bookmark, error) {
	c.mu.Lock()
	if index < 0 || index >= len(c.list) {
		c.mu.Unlock()
		return models.Bookmark{}, fmt.Errorf("bookmarks: index %d: %w", index, apperr.ErrNotFound)
	}
	removed := c.list[index]
	next := slices.Delete(slices.Clone(c.list), index, index+1)
	if err := c.slot.Save(next); err != nil {
		c.mu.Unlock()
		return models.Bookmark{}, err
	}
	c.list = next
	c.mu.Unlock()

	c.logger.Debug("bookmarks: deleted", slog.Int("index", index), slog.String("site_name", removed.SiteName))
	c.notify(Change{Kind: ChangeDeleted, Index: index, Bookmark: removed})
	return removed, nil
}

// Visit returns the address the bookmark at index opens.
func (c *Controller) Visit(_ context.Context, index int) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.list) {
		return "", fmt.Errorf("bookmarks: index %d: %w", index, apperr.ErrNotFound)
	}
	return VisitURL(c.list[index].SiteURL), nil
}

func (c *Controller) enter(res *Result, next State) {
	prev := res.Trace[len(res.Trace)-1]
	res.Trace = append(res.Trace, next)
	if next != StateIdle {
		res.Outcome = next
	}
	c.logger.Debug("bookmarks: submit", slog.String("from", prev.String()), slog.String("to", next.String()))
}

func (c *Controller) notify(ch Change) {
	for _, fn := range c.listeners {
		fn(ch)
	}
}
