package model

// Layout selects how a category's items are rendered.
type Layout int

const (
	// LayoutCompact shows name and price only.
	LayoutCompact Layout = iota
	// LayoutExtended adds description and ingredients.
	LayoutExtended
)

func (l Layout) String() string {
	if l == LayoutExtended {
		return "extended"
	}
	return "compact"
}

// Category is a named group of menu items with a display icon.
type Category struct {
	Name   string
	Icon   string
	Layout Layout
}

var categories = []Category{
	{Name: "caffetteria", Icon: "fa-coffee"},
	{Name: "bevande", Icon: "fa-glass-water"},
	{Name: "birre", Icon: "fa-beer"},
	{Name: "aperitivi", Icon: "fa-wine-glass"},
	{Name: "panini", Icon: "fa-burger", Layout: LayoutExtended},
	{Name: "amari", Icon: "fa-glass-whiskey"},
	{Name: "cocktail", Icon: "fa-martini-glass-citrus", Layout: LayoutExtended},
	{Name: "vini", Icon: "fa-wine-bottle"},
	{Name: "whiskey", Icon: "fa-whiskey-glass"},
	{Name: "distillati", Icon: "fa-bottle-droplet"},
}

// Categories returns a copy of the static category list in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// LookupCategory finds a category by name.
func LookupCategory(name string) (Category, bool) {
	for _, c := range categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}
