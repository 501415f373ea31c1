package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, "postcode"); err != nil || ok {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}
	if err := s.Set(ctx, "postcode", "3000"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set(ctx, "postcode", "3121"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	value, ok, err := s.Get(ctx, "postcode")
	if err != nil || !ok || value != "3121" {
		t.Fatalf("expected last write, got %q ok=%v err=%v", value, ok, err)
	}
	if err := s.Set(ctx, "suburb", ""); err != nil {
		t.Fatalf("set empty: %v", err)
	}
	if value, ok, _ := s.Get(ctx, "suburb"); !ok || value != "" {
		t.Fatalf("expected stored empty value, got %q ok=%v", value, ok)
	}
}

func TestMemory(t *testing.T) {
	exerciseStore(t, &Memory{})
}

func TestMemory_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := NewMemory(nil).Set(ctx, "a", "b"); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "contact.yaml")
	store, err := NewFile(path)
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	exerciseStore(t, store)

	reopened, err := NewFile(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	value, ok, err := reopened.Get(context.Background(), "postcode")
	if err != nil || !ok || value != "3121" {
		t.Fatalf("expected persisted value, got %q ok=%v err=%v", value, ok, err)
	}
}

func TestFile_CorruptDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contact.yaml")
	if err := os.WriteFile(path, []byte("- not\n- a mapping\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	store, _ := NewFile(path)
	if _, _, err := store.Get(context.Background(), "postcode"); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestNewFile_RequiresPath(t *testing.T) {
	if _, err := NewFile(" "); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestRedis(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	store := NewRedisWithClient(client, "")
	defer store.Close()

	exerciseStore(t, store)

	if got, err := server.Get("bookingform:postcode"); err != nil || got != "3121" {
		t.Fatalf("expected default prefix on stored key, got %q err=%v", got, err)
	}
	if server.Exists("postcode") {
		t.Fatalf("expected no unprefixed key")
	}
}

func TestRedis_CustomPrefixIsolatesStores(t *testing.T) {
	server := miniredis.RunT(t)
	ctx := context.Background()

	first := NewRedisWithClient(redis.NewClient(&redis.Options{Addr: server.Addr()}), "dealer-a:")
	defer first.Close()
	second := NewRedisWithClient(redis.NewClient(&redis.Options{Addr: server.Addr()}), "dealer-b:")
	defer second.Close()

	if err := first.Set(ctx, "suburb", "Fitzroy"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, ok, err := second.Get(ctx, "suburb"); err != nil || ok {
		t.Fatalf("expected key to be absent under another prefix, ok=%v err=%v", ok, err)
	}
	server.CheckGet(t, "dealer-a:suburb", "Fitzroy")
}

func TestRedis_ServerErrorsSurface(t *testing.T) {
	server := miniredis.RunT(t)
	store := NewRedisWithClient(redis.NewClient(&redis.Options{Addr: server.Addr()}), "")
	defer store.Close()

	server.SetError("LOADING")
	if _, _, err := store.Get(context.Background(), "postcode"); err == nil {
		t.Fatalf("expected server error to surface")
	}
}

func TestOpen_Redis(t *testing.T) {
	server := miniredis.RunT(t)
	store, closeFn, err := Open(context.Background(), Config{
		Backend: BackendRedis,
		Redis:   RedisOptions{Addr: server.Addr(), Prefix: "open:"},
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer closeFn()

	if err := store.Set(context.Background(), "state", "VIC"); err != nil {
		t.Fatalf("set: %v", err)
	}
	server.CheckGet(t, "open:state", "VIC")
}
