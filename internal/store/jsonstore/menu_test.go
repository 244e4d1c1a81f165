package jsonstore

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const sampleMenu = `{
  "panini": [{"name": "Classico", "price": "6.00", "description": "Pane caldo", "ingredients": "prosciutto, mozzarella"}],
  "birre": [{"name": "Moretti", "price": 4}]
}`

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "menu.json")
	if err := os.WriteFile(p, []byte(sampleMenu), 0o644); err != nil {
		t.Fatal(err)
	}

	data, err := NewMenuLoader(p, quietLogger()).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(data) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(data))
	}
	if got := data.Items("panini")[0].Ingredients; got != "prosciutto, mozzarella" {
		t.Errorf("ingredients: got %q", got)
	}
	if got := data.Items("birre")[0].Price; got != "4" {
		t.Errorf("price: got %q", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	l := NewMenuLoader(filepath.Join(t.TempDir(), "nope.json"), quietLogger())
	if _, err := l.Load(context.Background()); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}
}

func TestLoadBadJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "menu.json")
	if err := os.WriteFile(p, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewMenuLoader(p, quietLogger()).Load(context.Background()); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/menu.json" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, sampleMenu)
	}))
	defer srv.Close()

	data, err := NewMenuLoader(srv.URL+"/menu.json", quietLogger()).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(data.Items("panini")) != 1 {
		t.Fatalf("expected 1 panino, got %d", len(data.Items("panini")))
	}
}

func TestLoadFromURLBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewMenuLoader(srv.URL, quietLogger()).Load(context.Background())
	if !errors.Is(err, ErrBadStatus) {
		t.Fatalf("expected ErrBadStatus, got %v", err)
	}
}

func TestNewMenuLoaderDefaultSource(t *testing.T) {
	if l := NewMenuLoader("  ", nil); l.Source != DefaultMenuSource {
		t.Errorf("source: got %q, want %q", l.Source, DefaultMenuSource)
	}
}

func TestLoadKeepsWellFormedCategories(t *testing.T) {
	docs := map[string]string{
		"bool price":         `{"birre":[{"name":"Moretti","price":4}],"vini":[{"name":"Barolo","price":true}]}`,
		"number description": `{"birre":[{"name":"Moretti","price":4}],"vini":[{"name":"Barolo","description":5}]}`,
		"object category":    `{"birre":[{"name":"Moretti","price":4}],"amari":{"oops":1}}`,
	}
	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			p := filepath.Join(t.TempDir(), "menu.json")
			if err := os.WriteFile(p, []byte(doc), 0o644); err != nil {
				t.Fatal(err)
			}
			data, err := NewMenuLoader(p, quietLogger()).Load(context.Background())
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if got := data.Items("birre"); len(got) != 1 || got[0].Price != "4" {
				t.Fatalf("birre: got %#v", got)
			}
		})
	}
}

func TestLoadFromURLAny2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNonAuthoritativeInfo)
		_, _ = io.WriteString(w, sampleMenu)
	}))
	defer srv.Close()

	data, err := NewMenuLoader(srv.URL, quietLogger()).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(data.Items("birre")) != 1 {
		t.Fatalf("expected 1 birra, got %d", len(data.Items("birre")))
	}
}
