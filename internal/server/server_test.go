package server

import (
	"os"
	"testing"
	"time"

	"github.com/umaryunusa/wazobia/internal/domain/agent"
	"github.com/umaryunusa/wazobia/internal/domain/knowledge"
	"github.com/umaryunusa/wazobia/internal/infra/config"
	"github.com/umaryunusa/wazobia/internal/infra/eventbus"
	"github.com/umaryunusa/wazobia/internal/infra/sqlite"
)

func TestMain(m *testing.M) {
	os.Setenv("WAZOBIA_JWT_SECRET", "test-secret-key-32-chars-min!!!") //nolint:errcheck
	os.Exit(m.Run())
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Host != "0.0.0.0" {
		t.Fatalf("Host = %q; want %q", cfg.Host, "0.0.0.0")
	}
	if cfg.Port != 8000 {
		t.Fatalf("Port = %d; want %d", cfg.Port, 8000)
	}
	if cfg.ReadTimeout != 15*time.Second {
		t.Fatalf("ReadTimeout = %v; want %v", cfg.ReadTimeout, 15*time.Second)
	}
	if cfg.WriteTimeout != 120*time.Second {
		t.Fatalf("WriteTimeout = %v; want %v", cfg.WriteTimeout, 120*time.Second)
	}
	if cfg.IdleTimeout != 60*time.Second {
		t.Fatalf("IdleTimeout = %v; want %v", cfg.IdleTimeout, 60*time.Second)
	}
}

func TestNewServer_ConfiguresAddressAndHandler(t *testing.T) {
	db, err := sqlite.NewDB(":memory:")
	if err != nil {
		t.Fatalf("sqlite.NewDB error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := sqlite.MigrateUp(db); err != nil {
		t.Fatalf("sqlite.MigrateUp error = %v", err)
	}

	ag := agent.New(nil, knowledge.NewBase(nil), 0.7, 2000)
	cfg := Config{Host: "127.0.0.1", Port: 18000, ReadTimeout: time.Second, WriteTimeout: 2 * time.Second, IdleTimeout: 3 * time.Second}
	s := NewServer(db, ag, eventbus.New(), config.Load(), cfg)

	if s == nil {
		t.Fatal("NewServer() returned nil")
	}
	if s.http == nil {
		t.Fatal("server.http should not be nil")
	}
	if s.http.Addr != "127.0.0.1:18000" {
		t.Fatalf("Addr = %q; want %q", s.http.Addr, "127.0.0.1:18000")
	}
	if s.http.Handler == nil {
		t.Fatal("Handler should not be nil")
	}
}
