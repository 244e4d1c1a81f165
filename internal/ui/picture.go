package ui

import (
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // register webp for imaging.Open
)

type pictureKey struct {
	path string
	w, h int
}

// Pictures draws images as half-block art, caching each size it renders.
// A source that failed to open is not retried.
type Pictures struct {
	Dir string

	mu      sync.Mutex
	cache   map[pictureKey]string
	missing map[string]bool
}

func NewPictures(dir string) *Pictures {
	return &Pictures{Dir: dir, cache: map[pictureKey]string{}, missing: map[string]bool{}}
}

// Render draws src into a w×h cell box. Missing or unreadable files fall
// back to a framed placeholder carrying alt.
func (p *Pictures) Render(t Theme, src, alt string, w, h int) string {
	if w < 4 || h < 2 {
		return alt
	}
	key := pictureKey{path: src, w: w, h: h}
	p.mu.Lock()
	s, ok := p.cache[key]
	gone := p.missing[src]
	p.mu.Unlock()
	switch {
	case ok:
		return s
	case gone:
		return placeholder(t, src, alt, w, h)
	}

	s, err := p.draw(src, w, h)
	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		p.missing[src] = true
		return placeholder(t, src, alt, w, h)
	}
	p.cache[key] = s
	return s
}

func (p *Pictures) draw(src string, w, h int) (string, error) {
	path := src
	if p.Dir != "" && !filepath.IsAbs(src) {
		path = filepath.Join(p.Dir, src)
	}
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	return HalfBlocks(imaging.Fill(img, w, h*2, imaging.Center, imaging.Lanczos)), nil
}

// HalfBlocks turns an image into rows of "▀" cells, two pixels per cell.
func HalfBlocks(img image.Image) string {
	bounds := img.Bounds()
	var b strings.Builder
	for y := bounds.Min.Y; y < bounds.Max.Y; y += 2 {
		if y > bounds.Min.Y {
			b.WriteByte('\n')
		}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			top := hex(img.At(x, y))
			bottom := top
			if y+1 < bounds.Max.Y {
				bottom = hex(img.At(x, y+1))
			}
			b.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom)).
				Render("▀"))
		}
	}
	return b.String()
}

func hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

func placeholder(t Theme, src, alt string, w, h int) string {
	body := t.Accent.Render(alt) + "\n" + t.Muted.Render(filepath.Base(src))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Brand).
		Width(w-2).
		Height(h-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}
