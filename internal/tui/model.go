package tui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/urbancafe/internal/model"
	"github.com/Makepad-fr/urbancafe/internal/site"
	"github.com/Makepad-fr/urbancafe/internal/ui"
)

const (
	frameInterval  = 30 * time.Millisecond
	splashInterval = 100 * time.Millisecond
)

type section struct {
	ID, Title string
}

var sections = []section{
	{"home", "Home"},
	{"about", "Chi siamo"},
	{"menu", "Menu"},
	{"gallery", "Galleria"},
	{"contact", "Contatti"},
}

type focus int

const (
	focusMenu focus = iota
	focusGallery
)

type (
	menuLoadedMsg struct {
		data model.MenuData
		err  error
	}
	slideTickMsg  time.Time
	splashTickMsg time.Time
	// frameMsg belongs to one smooth-scroll run; ticks of an earlier run are dropped.
	frameMsg struct{ gen int }
)

// Options wire a Model to its state and collaborators.
type Options struct {
	Context   context.Context
	State     *site.State
	Loader    site.MenuSource
	Pictures  *ui.Pictures
	RowHeight int // pixels per terminal row
	Log       *slog.Logger
}

// Model is the Bubble Tea model of the page.
type Model struct {
	ctx    context.Context
	st     *site.State
	loader site.MenuSource
	pics   *ui.Pictures
	log    *slog.Logger

	keys keyMap
	help help.Model
	vp   viewport.Model
	mvp  viewport.Model // modal body

	width, height int
	rowPx         int

	offsets    map[string]int // section id -> first content line
	heroRows   int
	smooth     site.SmoothScroller
	animating  bool
	frameGen   int
	focus      focus
	selCat     int
	selPic     int
	navCursor  int
	loading    bool
	status     string
	splashLive bool
}

// New builds the model. The state should already carry the initial theme.
func New(opt Options) Model {
	if opt.Context == nil {
		opt.Context = context.Background()
	}
	if opt.Log == nil {
		opt.Log = slog.Default()
	}
	if opt.RowHeight <= 0 {
		opt.RowHeight = 20
	}
	if opt.Pictures == nil {
		opt.Pictures = ui.NewPictures(".")
	}
	h := help.New()
	h.ShortSeparator = "  "
	return Model{
		ctx:        opt.Context,
		st:         opt.State,
		loader:     opt.Loader,
		pics:       opt.Pictures,
		log:        opt.Log,
		keys:       defaultKeys(),
		help:       h,
		vp:         viewport.New(80, 20),
		mvp:        viewport.New(40, 10),
		width:      80,
		height:     24,
		rowPx:      opt.RowHeight,
		offsets:    map[string]int{},
		heroRows:   12,
		loading:    opt.Loader != nil,
		splashLive: true,
	}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{slideTick(), splashTick()}
	if m.loader != nil {
		cmds = append(cmds, loadMenu(m.ctx, m.loader))
	}
	return tea.Batch(cmds...)
}

func loadMenu(ctx context.Context, src site.MenuSource) tea.Cmd {
	return func() tea.Msg {
		data, err := src.Load(ctx)
		return menuLoadedMsg{data: data, err: err}
	}
}

func slideTick() tea.Cmd {
	return tea.Tick(site.AdvanceInterval, func(t time.Time) tea.Msg { return slideTickMsg(t) })
}

func splashTick() tea.Cmd {
	return tea.Tick(splashInterval, func(t time.Time) tea.Msg { return splashTickMsg(t) })
}

func frameTick(gen int) tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return frameMsg{gen: gen} })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.refresh()
		return m, nil

	case menuLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.log.Warn("menu unavailable", "error", msg.err)
		} else {
			m.st.Menu.Replace(msg.data)
		}
		m.st.Menu.RenderCategories()
		m.refresh()
		return m, nil

	case slideTickMsg:
		m.st.Carousel.Next()
		m.refresh()
		return m, slideTick()

	case splashTickMsg:
		if m.st.Splash.Advance(time.Time(msg)) == site.SplashGone {
			m.splashLive = false
			return m, nil
		}
		return m, splashTick()

	case frameMsg:
		if !m.animating || msg.gen != m.frameGen {
			return m, nil
		}
		px, done := m.smooth.Step()
		m.setScrollPx(px)
		if done {
			m.animating = false
			return m, nil
		}
		return m, frameTick(m.frameGen)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) && msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.st.Splash.Phase() != site.SplashGone {
			m.st.Splash.Dismiss()
			m.splashLive = false
			return m, nil
		}
		switch {
		case m.st.Modals.Active() != site.ModalNone:
			return m.updateModal(msg)
		case m.st.Nav.IsOpen():
			return m.updateNav(msg)
		}
		return m.updatePage(msg)
	}
	return m, nil
}

func (m Model) updatePage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.scrollRows(-1)
	case key.Matches(msg, m.keys.Down):
		m.scrollRows(1)
	case key.Matches(msg, m.keys.PageUp):
		m.scrollRows(-m.vp.Height)
	case key.Matches(msg, m.keys.PageDown):
		m.scrollRows(m.vp.Height)
	case key.Matches(msg, m.keys.Top):
		cmd := m.scrollTo(0)
		return m, cmd
	case key.Matches(msg, m.keys.Nav):
		m.st.Nav.Toggle()
		m.navCursor = 0
	case key.Matches(msg, m.keys.Theme):
		m.st.Theme.Toggle()
		m.refresh()
	case key.Matches(msg, m.keys.Switch):
		if m.focus == focusMenu {
			m.focus = focusGallery
		} else {
			m.focus = focusMenu
		}
		m.refresh()
	case key.Matches(msg, m.keys.Left):
		m.moveSelection(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveSelection(1)
	case key.Matches(msg, m.keys.Open):
		m.openSelection()
	case key.Matches(msg, m.keys.Anchor):
		cmd := m.anchor(anchorFor(msg.String()))
		return m, cmd
	}
	return m, nil
}

func (m Model) updateNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Nav), key.Matches(msg, m.keys.Close):
		m.st.Nav.Toggle()
	case key.Matches(msg, m.keys.Up):
		if m.navCursor > 0 {
			m.navCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.navCursor < len(sections)-1 {
			m.navCursor++
		}
	case key.Matches(msg, m.keys.Open):
		cmd := m.anchor("#" + sections[m.navCursor].ID)
		return m, cmd
	case key.Matches(msg, m.keys.Anchor):
		cmd := m.anchor(anchorFor(msg.String()))
		return m, cmd
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.st.Modals.CloseActive()
		m.refresh()
	case key.Matches(msg, m.keys.Up):
		m.mvp.SetYOffset(m.mvp.YOffset - 1)
	case key.Matches(msg, m.keys.Down):
		m.mvp.SetYOffset(m.mvp.YOffset + 1)
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.splashLive {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if m.st.Modals.Active() != site.ModalNone {
			m.mvp.SetYOffset(m.mvp.YOffset - 1)
		} else {
			m.scrollRows(-1)
		}
	case tea.MouseButtonWheelDown:
		if m.st.Modals.Active() != site.ModalNone {
			m.mvp.SetYOffset(m.mvp.YOffset + 1)
		} else {
			m.scrollRows(1)
		}
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress || m.st.Modals.Active() == site.ModalNone {
			return m, nil
		}
		x, y, w, h := m.modalRect()
		target := site.TargetBackground
		if msg.X >= x && msg.X < x+w && msg.Y >= y && msg.Y < y+h {
			target = site.TargetContent
		}
		m.st.Modals.Click(target)
		m.refresh()
	}
	return m, nil
}

func anchorFor(digit string) string {
	i := int(digit[0] - '1')
	if i < 0 || i >= len(sections) {
		return "#"
	}
	return "#" + sections[i].ID
}

// anchor closes the nav overlay when open and smooth-scrolls to a section.
func (m *Model) anchor(href string) tea.Cmd {
	px := make(map[string]int, len(m.offsets))
	for id, line := range m.offsets {
		px[id] = line * m.rowPx
	}
	target, ok := m.st.Scroll.Anchor(href, px, m.st.Nav)
	m.refresh()
	if !ok {
		return nil
	}
	return m.scrollTo(target)
}

func (m *Model) scrollTo(px int) tea.Cmd {
	if m.st.Lock.Locked() {
		return nil
	}
	m.smooth.Start(m.scrollPx(), px)
	if !m.smooth.Active() {
		return nil
	}
	if m.animating {
		return nil
	}
	m.animating = true
	m.frameGen++
	return frameTick(m.frameGen)
}

func (m *Model) scrollPx() int { return m.vp.YOffset * m.rowPx }

func (m *Model) scrollRows(n int) {
	if m.st.Lock.Locked() || n == 0 {
		return
	}
	m.animating = false
	m.vp.SetYOffset(m.vp.YOffset + n)
	m.onScroll()
}

func (m *Model) setScrollPx(px int) {
	m.vp.SetYOffset(px / m.rowPx)
	m.onScroll()
}

// onScroll feeds the scroll position to the header and parallax logic.
func (m *Model) onScroll() {
	px := m.scrollPx()
	m.st.Scroll.OnScroll(px)
	m.st.Carousel.Parallax(px, m.heroRows*m.rowPx)
	m.refresh()
}

func (m *Model) moveSelection(d int) {
	if m.focus == focusGallery {
		m.selPic = wrap(m.selPic+d, len(site.Gallery))
	} else {
		m.selCat = wrap(m.selCat+d, len(m.st.Menu.Buttons()))
	}
	m.refresh()
}

func wrap(i, n int) int {
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}

func (m *Model) openSelection() {
	var err error
	if m.focus == focusGallery {
		err = m.st.OpenGallery(m.selPic)
	} else {
		buttons := m.st.Menu.Buttons()
		if len(buttons) == 0 {
			return
		}
		_, err = m.st.Menu.RenderCategoryDetail(buttons[m.selCat].Name)
	}
	if err != nil {
		if errors.Is(err, site.ErrModalActive) {
			m.status = "chiudi la finestra aperta prima"
		}
		m.log.Debug("open rejected", "error", err)
		return
	}
	m.mvp.SetYOffset(0)
	m.refresh()
}
