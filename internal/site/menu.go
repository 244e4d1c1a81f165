package site

import (
	"context"
	"log/slog"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Makepad-fr/urbancafe/internal/model"
)

// MenuSource yields the menu document.
type MenuSource interface {
	Load(ctx context.Context) (model.MenuData, error)
}

// CategoryButton is one entry of the category grid.
type CategoryButton struct {
	Name   string
	Label  string
	Icon   string
	Layout model.Layout
}

// Row is one rendered menu item. Compact rows leave Description and
// Ingredients empty.
type Row struct {
	Layout      model.Layout
	Name        string
	Price       string
	Description string
	Ingredients string
}

// Detail is the content of the menu modal for one category.
type Detail struct {
	Category string
	Title    string
	Layout   model.Layout
	Rows     []Row
}

// Menu holds the loaded data and renders the category grid and details.
type Menu struct {
	data       model.MenuData
	categories []model.Category
	buttons    []CategoryButton
	modals     *Modals
	log        *slog.Logger
}

func NewMenu(modals *Modals, log *slog.Logger) *Menu {
	if log == nil {
		log = slog.Default()
	}
	return &Menu{
		data:       model.MenuData{},
		categories: model.Categories(),
		modals:     modals,
		log:        log,
	}
}

// Data is the menu currently held.
func (m *Menu) Data() model.MenuData { return m.data }

// Load replaces the data on success. On failure the previous data is kept
// and the error is returned for the caller to ignore or report.
func (m *Menu) Load(ctx context.Context, src MenuSource) error {
	data, err := src.Load(ctx)
	if err != nil {
		m.log.Warn("keeping previous menu", "categories", len(m.data), "error", err)
		return err
	}
	m.Replace(data)
	return nil
}

// Replace swaps in freshly loaded data. Nil data is ignored.
func (m *Menu) Replace(data model.MenuData) {
	if data == nil {
		return
	}
	m.data = data
}

// Capitalize upper-cases the first letter of a category name.
func Capitalize(name string) string {
	return cases.Title(language.Italian).String(name)
}

// RenderCategories rebuilds the category grid from the static list.
func (m *Menu) RenderCategories() []CategoryButton {
	m.buttons = m.buttons[:0]
	for _, c := range m.categories {
		m.buttons = append(m.buttons, CategoryButton{
			Name:   c.Name,
			Label:  Capitalize(c.Name),
			Icon:   c.Icon,
			Layout: c.Layout,
		})
	}
	out := make([]CategoryButton, len(m.buttons))
	copy(out, m.buttons)
	return out
}

// Buttons returns the last rendered grid.
func (m *Menu) Buttons() []CategoryButton {
	out := make([]CategoryButton, len(m.buttons))
	copy(out, m.buttons)
	return out
}

// BuildDetail renders the rows of a category without opening anything.
// Categories missing from the data produce no rows.
func (m *Menu) BuildDetail(name string) Detail {
	layout := model.LayoutCompact
	if c, ok := model.LookupCategory(name); ok {
		layout = c.Layout
	}
	items := m.data.Items(name)
	d := Detail{
		Category: name,
		Title:    Capitalize(name),
		Layout:   layout,
		Rows:     make([]Row, 0, len(items)),
	}
	for _, it := range items {
		r := Row{Layout: layout, Name: it.Name, Price: it.Price.String()}
		if layout == model.LayoutExtended {
			r.Description = it.Description
			r.Ingredients = it.Ingredients
		}
		d.Rows = append(d.Rows, r)
	}
	return d
}

// RenderCategoryDetail builds the detail of a category and shows it in the
// menu modal.
func (m *Menu) RenderCategoryDetail(name string) (Detail, error) {
	d := m.BuildDetail(name)
	if err := m.modals.OpenMenu(d); err != nil {
		return d, err
	}
	m.log.Debug("category opened", "category", name, "rows", len(d.Rows))
	return d, nil
}
