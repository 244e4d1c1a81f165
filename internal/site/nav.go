package site

// Hamburger holds the per-line state of the menu icon.
// All flags set means the icon is drawn as a cross.
type Hamburger struct {
	TopRotated    bool
	MiddleHidden  bool
	BottomRotated bool
	Shifted       bool
}

func (h *Hamburger) toggle() {
	h.TopRotated = !h.TopRotated
	h.MiddleHidden = !h.MiddleHidden
	h.BottomRotated = !h.BottomRotated
	h.Shifted = !h.Shifted
}

// NavOverlay is the full-screen navigation menu.
type NavOverlay struct {
	lock  *ScrollLock
	open  bool
	Lines Hamburger
}

func NewNavOverlay(lock *ScrollLock) *NavOverlay {
	return &NavOverlay{lock: lock}
}

func (n *NavOverlay) IsOpen() bool { return n.open }

// Toggle is used by the open button, the close button and anchor links alike.
func (n *NavOverlay) Toggle() {
	n.open = !n.open
	n.Lines.toggle()
	n.lock.Set(OwnerNav, n.open)
}

// Icon draws the hamburger from its line state.
func (n *NavOverlay) Icon() string {
	l := n.Lines
	if l.TopRotated && l.MiddleHidden && l.BottomRotated {
		return "✕"
	}
	return "≡"
}
