package fonts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureCachedFontSkipsDownload(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "FiraMath-Regular.otf"), []byte("otf"), 0644); err != nil {
		t.Fatal(err)
	}

	m := NewManager(dir)
	m.URL = "http://127.0.0.1:0/unreachable"

	got, err := m.Ensure(context.Background())
	if err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	if got != dir {
		t.Errorf("dir = %q, want %q", got, dir)
	}
}

func TestEnsureDownloadsFont(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("font payload"))
	}))
	defer srv.Close()

	dir := filepath.Join(t.TempDir(), "fonts")
	m := NewManager(dir)
	m.URL = srv.URL

	got, err := m.Ensure(context.Background())
	if err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	if got != dir {
		t.Errorf("dir = %q, want %q", got, dir)
	}

	data, err := os.ReadFile(filepath.Join(dir, "FiraMath-Regular.otf"))
	if err != nil {
		t.Fatalf("cached file: %v", err)
	}
	if string(data) != "font payload" {
		t.Errorf("cached data = %q", data)
	}
}

func TestNewManagerDefaultDir(t *testing.T) {
	m := NewManager("")
	if m.Dir == "" {
		t.Fatal("empty default dir")
	}
	if m.URL != DefaultURL {
		t.Errorf("URL = %q", m.URL)
	}
}
