package backend

import (
	"strings"
	"testing"

	"cashpilot/internal/config"
)

func TestFromAppConfig(t *testing.T) {
	cfg, err := FromAppConfig(&config.Config{DataBackend: "sqlite", SQLiteDBPath: "/tmp/test.db"})
	if err != nil {
		t.Fatalf("FromAppConfig: %v", err)
	}
	if cfg.Type != SQLiteBackend || cfg.SQLiteDBPath != "/tmp/test.db" {
		t.Errorf("cfg = %+v", cfg)
	}

	if _, err := FromAppConfig(nil); err == nil {
		t.Error("nil app config should be rejected")
	}
}

func TestFromAppConfigInvalidBackendListsValidTypes(t *testing.T) {
	_, err := FromAppConfig(&config.Config{DataBackend: "postgres"})
	if err == nil {
		t.Fatal("expected error for unknown backend type")
	}
	for _, bt := range GetBackendTypes() {
		if !strings.Contains(err.Error(), bt.String()) {
			t.Errorf("error %q should list valid type %q", err, bt)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"memory", Config{Type: MemoryBackend}, false},
		{"sqlite with path", Config{Type: SQLiteBackend, SQLiteDBPath: "/tmp/test.db"}, false},
		{"sqlite without path", Config{Type: SQLiteBackend}, true},
		{"unknown type", Config{Type: "redis"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestConfigValidateUnknownTypeListsValidTypes(t *testing.T) {
	err := Config{Type: "redis"}.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), MemoryBackend.String()) || !strings.Contains(err.Error(), SQLiteBackend.String()) {
		t.Errorf("error %q should name the valid backend types", err)
	}
}
