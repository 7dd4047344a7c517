package storage

import (
	"fmt"
	"os"
)

// Drivers.
const (
	DriverFS     = "fs"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// Open returns the provider for driver. For DriverFS, path is the slot
// directory and is created if missing; for DriverSQLite it is the database file.
func Open(driver, path string) (Provider, error) {
	switch driver {
	case DriverFS:
		if err := os.MkdirAll(path, 0o755); err != nil {
			return nil, fmt.Errorf("storage: create dir: %w", err)
		}
		return NewFS(path)
	case DriverSQLite:
		return OpenSQLite(path)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", driver)
	}
}
