package site

import "time"

const (
	// MobileBreakpoint is the widest viewport, in pixels, using the mobile set.
	MobileBreakpoint = 768
	// AdvanceInterval is the time between slides.
	AdvanceInterval = 5 * time.Second
	parallaxRate    = 1.5
)

var (
	DesktopSlides = []string{
		"img/hero.jpg",
		"img/photo5.jpg",
		"img/photo6.jpg",
		"img/slide2.jpg",
		"img/slide5.jpg",
	}
	MobileSlides = []string{
		"img/slide3.jpg",
		"img/slide1.jpg",
		"img/slide4.jpg",
		"img/slide2.jpg",
		"img/slide5.jpg",
	}
)

// Slide is one carousel picture. Opaque marks the visible slide and
// OffsetY is the parallax translation in pixels.
type Slide struct {
	Src     string
	Alt     string
	Opaque  bool
	OffsetY float64
}

type Carousel struct {
	slides  []Slide
	current int
	Mobile  bool
}

// NewCarousel builds the slide list for a viewport width in pixels.
// The list is fixed afterwards.
func NewCarousel(viewportWidth int) *Carousel {
	mobile := viewportWidth <= MobileBreakpoint
	srcs := DesktopSlides
	if mobile {
		srcs = MobileSlides
	}
	return newCarousel(srcs, mobile)
}

func newCarousel(srcs []string, mobile bool) *Carousel {
	c := &Carousel{Mobile: mobile, slides: make([]Slide, len(srcs))}
	for i, src := range srcs {
		c.slides[i] = Slide{Src: src, Alt: "Urban Cafè", Opaque: i == 0}
	}
	return c
}

func (c *Carousel) Len() int { return len(c.slides) }

func (c *Carousel) Current() int { return c.current }

// Slides returns a copy of the slide list.
func (c *Carousel) Slides() []Slide {
	out := make([]Slide, len(c.slides))
	copy(out, c.slides)
	return out
}

// Active returns the visible slide; the zero Slide when there are none.
func (c *Carousel) Active() Slide {
	if len(c.slides) == 0 {
		return Slide{}
	}
	return c.slides[c.current]
}

// Next fades the current slide out and the following one in, wrapping around.
func (c *Carousel) Next() {
	if len(c.slides) == 0 {
		return
	}
	c.slides[c.current].Opaque = false
	c.current = (c.current + 1) % len(c.slides)
	c.slides[c.current].Opaque = true
}

// Parallax recomputes every slide's offset from the scroll position and the
// carousel height, both in pixels, and returns the offset.
func (c *Carousel) Parallax(scroll, height int) float64 {
	if height <= 0 {
		return 0
	}
	pct := float64(scroll) / float64(height) * 100
	off := pct * parallaxRate
	for i := range c.slides {
		c.slides[i].OffsetY = off
	}
	return off
}
