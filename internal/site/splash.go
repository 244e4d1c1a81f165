package site

import "time"

type SplashPhase int

const (
	SplashVisible SplashPhase = iota
	SplashFading
	SplashGone
)

const (
	splashHold = 3 * time.Second
	splashFade = 500 * time.Millisecond
)

// Splash is the intro screen shown while the page starts.
type Splash struct {
	start time.Time
	phase SplashPhase
}

func NewSplash(start time.Time) *Splash {
	return &Splash{start: start}
}

func (s *Splash) Phase() SplashPhase { return s.phase }

// Advance moves the phase forward for the given time. It never goes back.
func (s *Splash) Advance(now time.Time) SplashPhase {
	el := now.Sub(s.start)
	next := SplashVisible
	switch {
	case el >= splashHold+splashFade:
		next = SplashGone
	case el >= splashHold:
		next = SplashFading
	}
	if next > s.phase {
		s.phase = next
	}
	return s.phase
}

// Dismiss removes the splash immediately.
func (s *Splash) Dismiss() { s.phase = SplashGone }
