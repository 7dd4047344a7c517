// Package testutil provides shared test helpers for setting up slots and controllers.
package testutil

import (
	"os"
	"testing"

	"github.com/starford/sitemarks/internal/bookmarks"
	"github.com/starford/sitemarks/internal/storage"
)

// TestSQLite creates a temporary SQLite slot store that is automatically cleaned up.
func TestSQLite(t *testing.T) *storage.SQLite {
	t.Helper()
	dbFile, err := os.CreateTemp("", "sitemarks-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	db, err := storage.OpenSQLite(dbFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// TestSlots creates a temporary slot directory with an FS provider.
func TestSlots(t *testing.T) (string, storage.Provider) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewFS(dir)
	if err != nil {
		t.Fatal(err)
	}
	return dir, store
}

// TestController builds a controller over store, loading whatever it holds.
func TestController(t *testing.T, store storage.Provider, opts ...bookmarks.Option) *bookmarks.Controller {
	t.Helper()
	ctl, err := bookmarks.NewController(bookmarks.NewSlot(store, ""), opts...)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	return ctl
}
