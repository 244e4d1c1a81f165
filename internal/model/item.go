package model

import (
	"bytes"
	"encoding/json"
	"strings"
)

// MenuItem is a single entry of a category.
// Description and Ingredients are only filled for some categories.
type MenuItem struct {
	Name        string `json:"name"`
	Price       Price  `json:"price"`
	Description string `json:"description,omitempty"`
	Ingredients string `json:"ingredients,omitempty"`
}

// UnmarshalJSON never fails: fields of the wrong shape are left blank so a
// single odd entry cannot hide the rest of the menu.
func (it *MenuItem) UnmarshalJSON(b []byte) error {
	*it = MenuItem{}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return nil
	}
	it.Name = scalarText(fields["name"])
	it.Price = Price(scalarText(fields["price"]))
	it.Description = stringField(fields["description"])
	it.Ingredients = stringField(fields["ingredients"])
	return nil
}

// Price keeps the textual form of a price written either as a JSON
// string ("4.50") or any other scalar (4.5, true).
type Price string

func (p *Price) UnmarshalJSON(b []byte) error {
	*p = Price(scalarText(b))
	return nil
}

func (p Price) String() string { return string(p) }

// scalarText is the printed form of a JSON scalar. Strings are trimmed;
// null, objects and arrays give "".
func scalarText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	switch raw[0] {
	case '"':
		return stringField(raw)
	case 't', 'f':
		var v bool
		if json.Unmarshal(raw, &v) == nil {
			if v {
				return "true"
			}
			return "false"
		}
	case '{', '[', 'n':
		return ""
	default:
		var n json.Number
		if json.Unmarshal(raw, &n) == nil {
			return n.String()
		}
	}
	return ""
}

func stringField(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}

// MenuData maps a category name to its ordered items.
// Read-only once loaded.
type MenuData map[string][]MenuItem

// UnmarshalJSON decodes categories one by one. A category whose value is
// not an array is kept empty; a document that is not an object yields an
// empty menu. Only malformed JSON is an error.
func (d *MenuData) UnmarshalJSON(b []byte) error {
	if !json.Valid(b) {
		var v any
		return json.Unmarshal(b, &v)
	}
	out := MenuData{}
	var cats map[string]json.RawMessage
	if err := json.Unmarshal(b, &cats); err != nil {
		*d = out
		return nil
	}
	for name, raw := range cats {
		var elems []json.RawMessage
		if err := json.Unmarshal(raw, &elems); err != nil {
			out[name] = []MenuItem{}
			continue
		}
		items := make([]MenuItem, len(elems))
		for i, e := range elems {
			_ = items[i].UnmarshalJSON(e)
		}
		out[name] = items
	}
	*d = out
	return nil
}

// Items returns the items of a category, empty when the category is absent.
func (d MenuData) Items(category string) []MenuItem {
	if d == nil {
		return []MenuItem{}
	}
	items, ok := d[category]
	if !ok || items == nil {
		return []MenuItem{}
	}
	return items
}

// Count is the total number of items across categories.
func (d MenuData) Count() int {
	n := 0
	for _, items := range d {
		n += len(items)
	}
	return n
}
