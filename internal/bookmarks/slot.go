package bookmarks

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/starford/sitemarks/internal/models"
	"github.com/starford/sitemarks/internal/storage"
)

// DefaultKey is the slot the list is stored under.
const DefaultKey = "Sites"

// Slot loads and saves the whole bookmark list under one storage key.
type Slot struct {
	store storage.Provider
	key   string
}

// NewSlot returns a slot for key. An empty key selects DefaultKey.
func NewSlot(store storage.Provider, key string) *Slot {
	if key == "" {
		key = DefaultKey
	}
	return &Slot{store: store, key: key}
}

// Key returns the storage key of the slot.
func (s *Slot) Key() string { return s.key }

// Load reads and decodes the stored list. A missing or empty slot yields an
// empty list; undecodable data is returned as an error.
func (s *Slot) Load() ([]models.Bookmark, error) {
	data, err := s.store.Read(s.key)
	if errors.Is(err, fs.ErrNotExist) {
		return []models.Bookmark{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("bookmarks: load %s: %w", s.key, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []models.Bookmark{}, nil
	}
	var list []models.Bookmark
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("bookmarks: decode %s: %w", s.key, err)
	}
	if list == nil {
		list = []models.Bookmark{}
	}
	return list, nil
}

// Save encodes the full list and overwrites the slot.
func (s *Slot) Save(list []models.Bookmark) error {
	data, err := Encode(list)
	if err != nil {
		return err
	}
	if err := s.store.Write(s.key, data); err != nil {
		return fmt.Errorf("bookmarks: save %s: %w", s.key, err)
	}
	return nil
}

// Encode serializes list as compact JSON without HTML escaping, so a value
// written by a browser page decodes and re-encodes to the same bytes.
// U+2028 and U+2029 are written raw, as JSON.stringify does.
func Encode(list []models.Bookmark) ([]byte, error) {
	if list == nil {
		list = []models.Bookmark{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(list); err != nil {
		return nil, fmt.Errorf("bookmarks: encode: %w", err)
	}
	return unescapeLineSeparators(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

var (
	escLS = []byte(`\u2028`)
	escPS = []byte(`\u2029`)
)

// unescapeLineSeparators replaces the encoder's \u2028 and \u2029 escapes
// with the raw runes. Escapes are walked as pairs so an escaped backslash
// followed by the text u2028 is left alone.
func unescapeLineSeparators(data []byte) []byte {
	if !bytes.Contains(data, escLS) && !bytes.Contains(data, escPS) {
		return data
	}
	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		if data[i] != '\\' || i+1 >= len(data) {
			out = append(out, data[i])
			continue
		}
		switch {
		case bytes.HasPrefix(data[i:], escLS):
			out = append(out, "\u2028"...)
			i += len(escLS) - 1
		case bytes.HasPrefix(data[i:], escPS):
			out = append(out, "\u2029"...)
			i += len(escPS) - 1
		default:
			out = append(out, data[i], data[i+1])
			i++
		}
	}
	return out
}
