package site

// ScrollConfig holds the pixel thresholds of the scroll effects.
type ScrollConfig struct {
	HideAfter      int // header hides when moving down past this
	BackToTopAfter int // back-to-top shows above this
	HeaderOffset   int // subtracted from anchor targets
}

// DefaultScrollConfig matches the page layout: 100px, 300px, 80px.
func DefaultScrollConfig() ScrollConfig {
	return ScrollConfig{HideAfter: 100, BackToTopAfter: 300, HeaderOffset: 80}
}

// ScrollEffects derives header and back-to-top visibility from scroll events.
type ScrollEffects struct {
	cfg  ScrollConfig
	last int

	HeaderHidden     bool
	BackToTopVisible bool
}

func NewScrollEffects(cfg ScrollConfig) *ScrollEffects {
	return &ScrollEffects{cfg: cfg}
}

func (s *ScrollEffects) Last() int { return s.last }

// OnScroll handles one scroll event at pos.
func (s *ScrollEffects) OnScroll(pos int) {
	switch {
	case pos <= 0:
		s.HeaderHidden = false
	case pos > s.last && pos > s.cfg.HideAfter:
		s.HeaderHidden = true
	case pos < s.last:
		s.HeaderHidden = false
	}
	s.last = pos
	s.BackToTopVisible = pos > s.cfg.BackToTopAfter
}

// Anchor resolves an in-page link. The nav overlay is closed first when it
// is open. A bare "#" or an unknown section yields ok=false.
func (s *ScrollEffects) Anchor(href string, sections map[string]int, nav *NavOverlay) (target int, ok bool) {
	if nav != nil && nav.IsOpen() {
		nav.Toggle()
	}
	if href == "#" || href == "" {
		return 0, false
	}
	if href[0] == '#' {
		href = href[1:]
	}
	top, found := sections[href]
	if !found {
		return 0, false
	}
	target = top - s.cfg.HeaderOffset
	if target < 0 {
		target = 0
	}
	return target, true
}

// SmoothScroller eases a position toward a target over several frames.
type SmoothScroller struct {
	pos, target int
	active      bool
}

func (sc *SmoothScroller) Start(from, to int) {
	sc.pos, sc.target = from, to
	sc.active = from != to
}

func (sc *SmoothScroller) Active() bool { return sc.active }

func (sc *SmoothScroller) Target() int { return sc.target }

// Step moves a quarter of the remaining distance, at least one unit,
// and reports whether the target was reached.
func (sc *SmoothScroller) Step() (pos int, done bool) {
	if !sc.active {
		return sc.pos, true
	}
	d := sc.target - sc.pos
	step := d / 4
	if step == 0 {
		if d > 0 {
			step = 1
		} else {
			step = -1
		}
	}
	sc.pos += step
	if sc.pos == sc.target {
		sc.active = false
	}
	return sc.pos, !sc.active
}
