package site

import "sort"

// Lock owners.
const (
	OwnerModal = "modal"
	OwnerNav   = "nav"
)

// ScrollLock disables page scrolling while at least one owner holds it.
// Each owner counts once, so a release from one owner never clears
// the hold of another.
type ScrollLock struct {
	holders map[string]struct{}
}

func NewScrollLock() *ScrollLock {
	return &ScrollLock{holders: map[string]struct{}{}}
}

func (l *ScrollLock) Acquire(owner string) {
	l.holders[owner] = struct{}{}
}

func (l *ScrollLock) Release(owner string) {
	delete(l.holders, owner)
}

// Set acquires when on is true and releases otherwise.
func (l *ScrollLock) Set(owner string, on bool) {
	if on {
		l.Acquire(owner)
		return
	}
	l.Release(owner)
}

func (l *ScrollLock) Locked() bool { return len(l.holders) > 0 }

// Holders lists current owners, sorted.
func (l *ScrollLock) Holders() []string {
	out := make([]string, 0, len(l.holders))
	for h := range l.holders {
		out = append(out, h)
	}
	sort.Strings(out)
	return out
}
