package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/urbancafe/internal/site"
	"github.com/Makepad-fr/urbancafe/internal/ui"
)

const (
	thumbWidth  = 18
	thumbHeight = 5
)

func (m *Model) theme() ui.Theme { return ui.ForMode(m.st.Theme.Dark()) }

// refresh resizes the viewports and rebuilds everything they show.
func (m *Model) refresh() {
	t := m.theme()

	headerH := 1
	if m.st.Scroll.HeaderHidden {
		headerH = 0
	}
	m.vp.Width = m.width
	m.vp.Height = max(1, m.height-headerH-1)
	m.heroRows = max(6, m.height/2)

	content, offsets := m.buildPage(t)
	m.offsets = offsets
	m.vp.SetContent(content)

	if m.st.Modals.Active() == site.ModalMenu {
		w := m.modalInnerWidth()
		body := ui.DetailView(t, m.st.Modals.Detail(), w)
		m.mvp.Width = w
		m.mvp.Height = max(1, min(lipgloss.Height(body), m.height-10))
		m.mvp.SetContent(body)
	}
}

func (m *Model) buildPage(t ui.Theme) (string, map[string]int) {
	offsets := make(map[string]int, len(sections))
	var lines []string
	add := func(id, block string) {
		offsets[id] = len(lines)
		lines = append(lines, strings.Split(block, "\n")...)
		lines = append(lines, "")
	}
	add("home", m.heroView(t))
	add("about", m.aboutView(t))
	add("menu", m.menuView(t))
	add("gallery", m.galleryView(t))
	add("contact", m.contactView(t))
	return strings.Join(lines, "\n"), offsets
}

func heading(t ui.Theme, title string) string {
	return t.Accent.Render(strings.ToUpper(title))
}

func (m *Model) heroView(t ui.Theme) string {
	slide := m.st.Carousel.Active()
	pic := m.pics.Render(t, slide.Src, slide.Alt, m.width, m.heroRows)
	picLines := strings.Split(pic, "\n")

	// parallax: the picture drifts up as the page scrolls
	shift := int(slide.OffsetY) / m.rowPx
	if shift > len(picLines) {
		shift = len(picLines)
	}
	picLines = picLines[shift:]
	for len(picLines) < m.heroRows {
		picLines = append(picLines, "")
	}

	center := lipgloss.NewStyle().Width(m.width).Align(lipgloss.Center)
	tagline := center.Render(t.Title.Render("Urban Cafè") + t.Muted.Render("  ·  caffè, cocktail e panini dal 2010"))
	dots := center.Render(ui.Dots(m.st.Carousel.Current(), m.st.Carousel.Len()))
	return strings.Join(picLines, "\n") + "\n" + tagline + "\n" + dots
}

func (m *Model) aboutView(t ui.Theme) string {
	body := lipgloss.NewStyle().Width(max(20, m.width-4)).PaddingLeft(2).Render(t.Page.Render(
		"Nel cuore della città, Urban Cafè è il posto per la colazione, " +
			"la pausa pranzo e l'aperitivo. Miscele selezionate, birre artigianali " +
			"e cocktail preparati al momento."))
	return heading(t, "Chi siamo") + "\n\n" + body
}

func (m *Model) menuView(t ui.Theme) string {
	var b strings.Builder
	b.WriteString(heading(t, "Menu"))
	b.WriteString("\n\n")
	switch {
	case m.loading:
		b.WriteString(t.Muted.Render("Caricamento del menu…"))
	default:
		sel := -1
		if m.focus == focusMenu {
			sel = m.selCat
		}
		b.WriteString(ui.CategoryGrid(t, m.st.Menu.Buttons(), sel, m.width))
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(t.Error.Render(m.status))
	}
	return b.String()
}

func (m *Model) galleryView(t ui.Theme) string {
	cols := max(1, m.width/(thumbWidth+2))
	var rows []string
	for start := 0; start < len(site.Gallery); start += cols {
		end := min(start+cols, len(site.Gallery))
		cells := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			img := site.Gallery[i]
			border := lipgloss.NewStyle().Border(lipgloss.HiddenBorder())
			if m.focus == focusGallery && i == m.selPic {
				border = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ui.Brand)
			}
			cells = append(cells, border.Render(m.pics.Render(t, img.Src, img.Alt, thumbWidth, thumbHeight)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return heading(t, "Galleria") + "\n\n" + lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) contactView(t ui.Theme) string {
	lines := []string{
		heading(t, "Contatti"),
		"",
		t.Page.Render("Via Roma 12, Torino"),
		t.Page.Render("Lun-Dom 07:00 - 01:00"),
		t.Muted.Render("info@urbancafe.it"),
	}
	return strings.Join(lines, "\n")
}

func (m *Model) headerView(t ui.Theme) string {
	links := make([]string, len(sections))
	for i, s := range sections {
		links[i] = fmt.Sprintf("%d %s", i+1, s.Title)
	}
	left := t.Accent.Render("☕ Urban Cafè")
	right := m.st.Theme.ToggleIcon() + " " + m.st.Nav.Icon()
	mid := strings.Join(links, " · ")
	gap := m.width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	line := left + " " + mid
	if lipgloss.Width(line) > gap {
		line = left
	}
	line = ui.PadRight(line, max(0, gap)) + right
	return t.Header.Width(m.width).MaxWidth(m.width).Render(line)
}

func (m *Model) footerView(t ui.Theme) string {
	line := m.help.View(m.keys)
	if m.st.Scroll.BackToTopVisible {
		line = t.Accent.Render("↑ g torna su") + "  " + line
	}
	return t.Footer.MaxWidth(m.width).Render(line)
}

func (m *Model) modalInnerWidth() int {
	return max(20, min(m.width-10, 60))
}

func (m *Model) modalBox(t ui.Theme) string {
	w := m.modalInnerWidth()
	hint := t.Muted.Render("esc chiudi")
	var body string
	switch m.st.Modals.Active() {
	case site.ModalMenu:
		body = m.mvp.View()
	case site.ModalGallery:
		img := m.st.Modals.Image()
		h := max(4, min(m.height-10, w/2))
		body = m.pics.Render(t, img.Src, img.Alt, w, h) + "\n" + t.Title.Render(img.Alt)
	}
	inner := lipgloss.NewStyle().Width(w).Render(body + "\n\n" + hint)
	return t.Box.Render(inner)
}

// modalRect is the screen rectangle of the modal box.
func (m *Model) modalRect() (x, y, w, h int) {
	box := m.modalBox(m.theme())
	w, h = lipgloss.Width(box), lipgloss.Height(box)
	x, y = max(0, (m.width-w)/2), max(0, (m.height-h)/2)
	return x, y, w, h
}

// overlay draws box at (x, y) on an otherwise blank screen.
func overlay(width, height, x, y int, box string) string {
	boxLines := strings.Split(box, "\n")
	out := make([]string, height)
	pad := strings.Repeat(" ", x)
	for i := range out {
		if j := i - y; j >= 0 && j < len(boxLines) {
			out[i] = pad + boxLines[j]
		}
	}
	return strings.Join(out, "\n")
}

func (m *Model) navView(t ui.Theme) string {
	var b strings.Builder
	b.WriteString(ui.PadRight("", max(0, m.width-6)))
	b.WriteString(t.Accent.Render(m.st.Nav.Icon()))
	b.WriteString("\n\n")
	for i, s := range sections {
		cursor := "  "
		style := t.Page
		if i == m.navCursor {
			cursor = t.Accent.Render("› ")
			style = t.Title
		}
		b.WriteString(cursor + style.Render(fmt.Sprintf("%d  %s", i+1, s.Title)) + "\n\n")
	}
	b.WriteString(t.Muted.Render("enter vai · m/esc chiudi"))
	return t.Overlay.Width(m.width).Height(m.height).Render(b.String())
}

func (m *Model) splashView(t ui.Theme) string {
	logo := t.Accent.Render("☕  U R B A N   C A F È")
	if m.st.Splash.Phase() == site.SplashFading {
		logo = t.Muted.Render("☕  U R B A N   C A F È")
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, logo)
}

func (m Model) View() string {
	t := m.theme()
	if m.splashLive && m.st.Splash.Phase() != site.SplashGone {
		return m.splashView(t)
	}
	if m.st.Nav.IsOpen() {
		return m.navView(t)
	}
	if m.st.Modals.Active() != site.ModalNone {
		x, y, _, _ := m.modalRect()
		return overlay(m.width, m.height, x, y, m.modalBox(t))
	}
	var parts []string
	if !m.st.Scroll.HeaderHidden {
		parts = append(parts, m.headerView(t))
	}
	parts = append(parts, m.vp.View(), m.footerView(t))
	return strings.Join(parts, "\n")
}
