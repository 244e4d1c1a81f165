package ui

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/urbancafe/internal/model"
	"github.com/Makepad-fr/urbancafe/internal/site"
)

func TestForMode(t *testing.T) {
	if ForMode(true).Name != "dark" || ForMode(false).Name != "light" {
		t.Fatal("wrong theme for mode")
	}
}

func TestDots(t *testing.T) {
	got := Dots(1, 4)
	if strings.Count(got, "○") != 3 || strings.Count(got, "●") != 1 {
		t.Fatalf("got %q", got)
	}
	if Dots(0, 0) != "" {
		t.Fatal("no slides should render nothing")
	}
}

func TestLeader(t *testing.T) {
	got := Leader("Moretti", "€4.50", 30)
	if lipgloss.Width(got) != 30 {
		t.Fatalf("width %d: %q", lipgloss.Width(got), got)
	}
	if !strings.HasPrefix(got, "Moretti ") || !strings.HasSuffix(got, " €4.50") {
		t.Fatalf("got %q", got)
	}
	if got := Leader("long name", "€1", 5); got != "long name €1" {
		t.Fatalf("narrow: got %q", got)
	}
}

func TestRowLines(t *testing.T) {
	th := Light()
	compact := RowLines(th, site.Row{Layout: model.LayoutCompact, Name: "Moretti", Price: "4.50", Description: "x"}, 40)
	if len(compact) != 1 || !strings.Contains(compact[0], "Moretti") || !strings.Contains(compact[0], "€4.50") {
		t.Fatalf("compact: %q", compact)
	}

	ext := RowLines(th, site.Row{Layout: model.LayoutExtended, Name: "Negroni", Price: "8", Ingredients: "gin"}, 40)
	if len(ext) != 3 {
		t.Fatalf("extended rows should have 3 lines, got %d", len(ext))
	}
	if !strings.Contains(ext[0], "Negroni") || !strings.Contains(ext[0], "€8") {
		t.Errorf("first line: %q", ext[0])
	}
	if strings.TrimSpace(ext[1]) != "" {
		t.Errorf("missing description should render blank, got %q", ext[1])
	}
	if !strings.Contains(ext[2], "Ingredienti:") || !strings.Contains(ext[2], "gin") {
		t.Errorf("ingredients line: %q", ext[2])
	}
}

func TestDetailViewEmpty(t *testing.T) {
	out := DetailView(Dark(), site.Detail{Title: "Vini"}, 40)
	if !strings.Contains(out, "Vini") || !strings.Contains(out, "Nessun prodotto") {
		t.Fatalf("got %q", out)
	}
}

func TestCategoryGrid(t *testing.T) {
	buttons := []site.CategoryButton{
		{Name: "birre", Label: "Birre", Icon: "fa-beer"},
		{Name: "vini", Label: "Vini", Icon: "fa-wine-bottle"},
		{Name: "amari", Label: "Amari", Icon: "unknown"},
	}
	out := CategoryGrid(Light(), buttons, 1, 40)
	for _, b := range buttons {
		if !strings.Contains(out, b.Label) {
			t.Errorf("grid misses %q", b.Label)
		}
	}
	if !strings.Contains(out, "•") {
		t.Error("unknown icon should fall back to a bullet")
	}
	if GridColumns(0) != 1 {
		t.Error("at least one column")
	}
}

func TestHalfBlocks(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 3; x++ {
			img.Set(x, y, color.NRGBA{R: 255, A: 255})
		}
	}
	out := HalfBlocks(img)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(lines))
	}
	if strings.Count(lines[0], "▀") != 3 {
		t.Fatalf("expected 3 cells, got %q", lines[0])
	}
}

func TestPicturesPlaceholderAndRender(t *testing.T) {
	dir := t.TempDir()
	p := NewPictures(dir)

	out := p.Render(Light(), "img/missing.jpg", "Urban Cafè", 20, 6)
	if !strings.Contains(out, "Urban Cafè") || !strings.Contains(out, "missing.jpg") {
		t.Fatalf("placeholder: %q", out)
	}

	if err := os.MkdirAll(filepath.Join(dir, "img"), 0o755); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(filepath.Join(dir, "img", "hero.png"))
	if err != nil {
		t.Fatal(err)
	}
	src := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	if err := png.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	f.Close()

	out = p.Render(Light(), "img/hero.png", "hero", 8, 3)
	if strings.Count(out, "▀") != 24 {
		t.Fatalf("expected 8x3 cells, got %q", out)
	}
	if again := p.Render(Light(), "img/hero.png", "hero", 8, 3); again != out {
		t.Fatal("cached render differs")
	}
}

func TestPicturesMissingNotRetried(t *testing.T) {
	dir := t.TempDir()
	p := NewPictures(dir)
	if out := p.Render(Dark(), "late.png", "late", 8, 3); strings.Contains(out, "▀") {
		t.Fatalf("expected placeholder, got %q", out)
	}

	f, err := os.Create(filepath.Join(dir, "late.png"))
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, image.NewNRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatal(err)
	}
	f.Close()

	out := p.Render(Dark(), "late.png", "late", 8, 3)
	if strings.Contains(out, "▀") || !strings.Contains(out, "late") {
		t.Fatalf("missing source was opened again: %q", out)
	}
}
