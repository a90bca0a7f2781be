package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n")

func TestLoadLogo_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.png")
	if err := os.WriteFile(path, pngHeader, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	data, err := LoadLogo(context.Background(), path)
	if err != nil {
		t.Fatalf("LoadLogo: %v", err)
	}
	if !isPNG(data) {
		t.Error("expected PNG signature on loaded bytes")
	}
}

func TestLoadLogo_FileMissing(t *testing.T) {
	_, err := LoadLogo(context.Background(), filepath.Join(t.TempDir(), "missing.png"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadLogo_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(pngHeader)
	}))
	defer srv.Close()

	data, err := LoadLogo(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("LoadLogo over HTTP: %v", err)
	}
	if !isPNG(data) {
		t.Error("expected PNG signature on fetched bytes")
	}
}

func TestLoadLogo_HTTPStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	if _, err := LoadLogo(context.Background(), srv.URL); err == nil {
		t.Fatal("expected error for 404 response")
	}
}

func TestLoadLogo_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write(pngHeader)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if _, err := LoadLogo(ctx, srv.URL); err == nil {
		t.Fatal("expected error when deadline expires")
	}
}

func TestIsPNG(t *testing.T) {
	if isPNG([]byte("\xff\xd8\xff")) {
		t.Error("JPEG bytes misdetected as PNG")
	}
	if !isPNG(pngHeader) {
		t.Error("PNG header not detected")
	}
}
