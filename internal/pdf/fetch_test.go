package pdf

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestFetchLocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.7 test"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	data, err := Fetch(context.Background(), nil, path)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if string(data) != "%PDF-1.7 test" {
		t.Errorf("data = %q", data)
	}
}

func TestFetchMissingFile(t *testing.T) {
	if _, err := Fetch(context.Background(), nil, filepath.Join(t.TempDir(), "missing.pdf")); err == nil {
		t.Error("Fetch() with missing file, wantErr, got nil")
	}
}

func TestFetchHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("%PDF-1.7 remote"))
	}))
	defer server.Close()

	data, err := Fetch(context.Background(), server.Client(), server.URL+"/doc.pdf")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if string(data) != "%PDF-1.7 remote" {
		t.Errorf("data = %q", data)
	}
}

func TestFetchHTTPErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	if _, err := Fetch(context.Background(), server.Client(), server.URL+"/doc.pdf"); err == nil {
		t.Error("Fetch() with 404 response, wantErr, got nil")
	}
}
