package site

import (
	"errors"
	"fmt"
)

// ModalKind identifies which overlay is shown. Only one can be active.
type ModalKind int

const (
	ModalNone ModalKind = iota
	ModalMenu
	ModalGallery
)

func (k ModalKind) String() string {
	switch k {
	case ModalMenu:
		return "menu"
	case ModalGallery:
		return "gallery"
	default:
		return "none"
	}
}

// ClickTarget tells whether a click landed on the modal backdrop or its box.
type ClickTarget int

const (
	TargetBackground ClickTarget = iota
	TargetContent
)

// ErrModalActive is returned when opening a modal while a different one is shown.
var ErrModalActive = errors.New("another modal is open")

// GalleryImage is the content of the gallery modal.
type GalleryImage struct {
	Src string
	Alt string
}

// Modals tracks the single active overlay and holds the scroll lock for it.
type Modals struct {
	lock   *ScrollLock
	active ModalKind
	detail Detail
	image  GalleryImage
}

func NewModals(lock *ScrollLock) *Modals {
	return &Modals{lock: lock}
}

func (m *Modals) Active() ModalKind { return m.active }

func (m *Modals) IsOpen(kind ModalKind) bool { return kind != ModalNone && m.active == kind }

// Detail is the content of the menu modal, valid while it is open.
func (m *Modals) Detail() Detail { return m.detail }

// Image is the content of the gallery modal, valid while it is open.
func (m *Modals) Image() GalleryImage { return m.image }

func (m *Modals) open(kind ModalKind) error {
	if m.active != ModalNone && m.active != kind {
		return fmt.Errorf("open %s: %w (%s)", kind, ErrModalActive, m.active)
	}
	m.active = kind
	m.lock.Acquire(OwnerModal)
	return nil
}

// OpenMenu shows a category detail. Reopening the menu modal swaps its content.
func (m *Modals) OpenMenu(d Detail) error {
	if err := m.open(ModalMenu); err != nil {
		return err
	}
	m.detail = d
	return nil
}

// OpenGallery shows one picture.
func (m *Modals) OpenGallery(img GalleryImage) error {
	if err := m.open(ModalGallery); err != nil {
		return err
	}
	m.image = img
	return nil
}

// Close hides kind if it is the active modal; otherwise it does nothing.
func (m *Modals) Close(kind ModalKind) {
	if kind == ModalNone || m.active != kind {
		return
	}
	m.active = ModalNone
	m.detail = Detail{}
	m.image = GalleryImage{}
	m.lock.Release(OwnerModal)
}

func (m *Modals) CloseActive() { m.Close(m.active) }

// Click closes the active modal when the backdrop was hit.
func (m *Modals) Click(target ClickTarget) {
	if target == TargetBackground {
		m.CloseActive()
	}
}
