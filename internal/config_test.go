package internal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	pkgconfig "github.com/starford/sitemarks/pkg/config"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should pass: %v", err)
	}
	if cfg.Storage.Key != "Sites" {
		t.Errorf("key = %q, want Sites", cfg.Storage.Key)
	}
}

func TestStorageConfig_EmptyKeyDefaults(t *testing.T) {
	cfg := StorageConfig{Driver: "fs", Path: "./data"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("empty key should default: %v", err)
	}
	if cfg.Key != "Sites" {
		t.Errorf("key = %q, want Sites", cfg.Key)
	}
}

func TestStorageConfig_Drivers(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StorageConfig
		wantErr bool
	}{
		{"fs", StorageConfig{Driver: "fs", Path: "./data"}, false},
		{"sqlite", StorageConfig{Driver: "sqlite", Path: "./sitemarks.db"}, false},
		{"memory without path", StorageConfig{Driver: "memory"}, false},
		{"fs without path", StorageConfig{Driver: "fs"}, true},
		{"sqlite without path", StorageConfig{Driver: "sqlite"}, true},
		{"unknown driver", StorageConfig{Driver: "redis", Path: "x"}, true},
		{"empty driver", StorageConfig{Path: "x"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestHTTPConfig_PortRange(t *testing.T) {
	for _, port := range []int{0, -1, 65536} {
		cfg := HTTPConfig{Port: port}
		if err := cfg.Validate(); err == nil {
			t.Errorf("port %d should fail validation", port)
		}
	}
	cfg := HTTPConfig{Port: 9090}
	if got := cfg.Address(); got != ":9090" {
		t.Errorf("Address() = %q", got)
	}
}

func TestEventsConfig_NegativeThrottle(t *testing.T) {
	cfg := EventsConfig{Throttle: -time.Second}
	if err := cfg.Validate(); err == nil {
		t.Error("negative throttle should fail validation")
	}
}

func TestFullConfig_StorageValidationCalled(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Storage.Driver = "nope"
	if err := cfg.Validate(); err == nil {
		t.Fatal("full config validate should catch storage error")
	}
}

func TestLoadConfigFile(t *testing.T) {
	t.Setenv("SITEMARKS_TEST_DIR", "/tmp/marks")
	path := filepath.Join(t.TempDir(), "config.yaml")
	yml := `app:
  log_level: debug
  http:
    port: 9000
storage:
  driver: sqlite
  path: ${SITEMARKS_TEST_DIR}/marks.db
events:
  throttle: 500ms
`
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := NewDefaultConfig()
	if err := pkgconfig.Load(path, cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.App.HTTP.Port != 9000 || cfg.App.LogLevel.String() != "DEBUG" {
		t.Errorf("app = %+v", cfg.App)
	}
	if cfg.Storage.Driver != "sqlite" || cfg.Storage.Path != "/tmp/marks/marks.db" {
		t.Errorf("storage = %+v", cfg.Storage)
	}
	if cfg.Storage.Key != "Sites" {
		t.Errorf("key = %q, want default", cfg.Storage.Key)
	}
	if cfg.Events.Throttle != 500*time.Millisecond {
		t.Errorf("throttle = %v", cfg.Events.Throttle)
	}
}
