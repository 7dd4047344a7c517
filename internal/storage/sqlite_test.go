package storage

import (
	"errors"
	"io/fs"
	"os"
	"testing"
)

func testSQLite(t *testing.T) *SQLite {
	t.Helper()
	f, err := os.CreateTemp("", "sitemarks-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	f.Close()
	t.Cleanup(func() { os.Remove(f.Name()) })

	s, err := OpenSQLite(f.Name())
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLite_SchemaCreation(t *testing.T) {
	s := testSQLite(t)
	var count int
	if err := s.conn.QueryRow(`SELECT count(*) FROM slots`).Scan(&count); err != nil {
		t.Fatalf("slots table missing: %v", err)
	}
}

func TestSQLite_WriteRead(t *testing.T) {
	s := testSQLite(t)
	value := []byte(`[{"siteName":"Apple","siteURL":"apple.com"}]`)
	if err := s.Write("Sites", value); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := s.Read("Sites")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != string(value) {
		t.Errorf("value = %q", got)
	}
}

func TestSQLite_UpsertReplaces(t *testing.T) {
	s := testSQLite(t)
	_ = s.Write("Sites", []byte("[]"))
	_ = s.Write("Sites", []byte(`[{"siteName":"Apple","siteURL":"apple.com"}]`))

	var count int
	_ = s.conn.QueryRow(`SELECT count(*) FROM slots`).Scan(&count)
	if count != 1 {
		t.Errorf("rows = %d, want 1", count)
	}
	got, _ := s.Read("Sites")
	if string(got) == "[]" {
		t.Error("upsert did not replace value")
	}
}

func TestSQLite_ReadMissing(t *testing.T) {
	s := testSQLite(t)
	if _, err := s.Read("Sites"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want fs.ErrNotExist", err)
	}
}

