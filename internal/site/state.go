package site

import (
	"context"
	"log/slog"
	"time"
)

// Options configure a new State.
type Options struct {
	Prefs         PrefStore
	ViewportWidth int // pixels
	Scroll        ScrollConfig
	Now           func() time.Time
	Log           *slog.Logger
}

// State is everything the page mutates, built once at startup and handed
// to the front end.
type State struct {
	Lock     *ScrollLock
	Modals   *Modals
	Nav      *NavOverlay
	Scroll   *ScrollEffects
	Carousel *Carousel
	Theme    *ThemeStore
	Menu     *Menu
	Splash   *Splash

	log *slog.Logger
}

func NewState(opt Options) *State {
	if opt.Now == nil {
		opt.Now = time.Now
	}
	if opt.Log == nil {
		opt.Log = slog.Default()
	}
	if opt.Scroll == (ScrollConfig{}) {
		opt.Scroll = DefaultScrollConfig()
	}
	lock := NewScrollLock()
	modals := NewModals(lock)
	return &State{
		Lock:     lock,
		Modals:   modals,
		Nav:      NewNavOverlay(lock),
		Scroll:   NewScrollEffects(opt.Scroll),
		Carousel: NewCarousel(opt.ViewportWidth),
		Theme:    NewThemeStore(opt.Prefs, opt.Now, opt.Log),
		Menu:     NewMenu(modals, opt.Log),
		Splash:   NewSplash(opt.Now()),
		log:      opt.Log,
	}
}

// Start runs the page-ready sequence: load the menu, build the grid and
// apply the initial theme. A menu failure leaves the grid with empty
// categories; the error is returned for display only.
func (s *State) Start(ctx context.Context, src MenuSource) error {
	var err error
	if src != nil {
		err = s.Menu.Load(ctx, src)
	}
	s.Menu.RenderCategories()
	mode := s.Theme.Init()
	s.log.Info("page ready",
		"categories", len(s.Menu.Buttons()),
		"theme", mode,
		"slides", s.Carousel.Len(),
		"mobile", s.Carousel.Mobile,
	)
	return err
}

// OpenGallery shows picture i of the gallery.
func (s *State) OpenGallery(i int) error {
	if i < 0 || i >= len(Gallery) {
		return nil
	}
	return s.Modals.OpenGallery(Gallery[i])
}
