package config

import (
	"reflect"
	"testing"
)

func TestParseList(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"   ", nil},
		{"http://localhost:3000", []string{"http://localhost:3000"}},
		{"a, b ,c", []string{"a", "b", "c"}},
		{"a,,b,", []string{"a", "b"}},
	}
	for _, c := range cases {
		got := parseList(c.in)
		if !reflect.DeepEqual(got, c.want) {
			t.Fatalf("parseList(%q): expected %v, got %v", c.in, c.want, got)
		}
	}
}

func TestLoadRequiresAccessSecret(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "")
	if _, err := Load(); err == nil {
		t.Fatalf("expected validation error without JWT_ACCESS_SECRET")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "test-secret")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DB_DSN", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTP.Port != 7090 {
		t.Fatalf("expected default port 7090, got %d", cfg.HTTP.Port)
	}
	if cfg.DB.Driver != "sqlite" {
		t.Fatalf("expected default sqlite driver, got %q", cfg.DB.Driver)
	}
	if cfg.DB.DSN != "contracts.db" {
		t.Fatalf("expected default DSN contracts.db, got %q", cfg.DB.DSN)
	}
}
