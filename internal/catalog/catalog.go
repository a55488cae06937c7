// Package catalog exposes the fixed set of counting modes.
package catalog

import "github.com/verte-zerg/skipcount/internal/model"

var modes = []model.CountingMode{
	{ID: "two", Label: "By Twos", Step: 2, Color: "#FF6F91", Accent: "#FFE0E9", Emoji: "🦄"},
	{ID: "three", Label: "By Threes", Step: 3, Color: "#FF9671", Accent: "#FFE8D6", Emoji: "🚀"},
	{ID: "four", Label: "By Fours", Step: 4, Color: "#FFC75F", Accent: "#FFF4D9", Emoji: "🐯"},
}

// ListModes returns the catalog in display order. The slice is a copy.
func ListModes() []model.CountingMode {
	return append([]model.CountingMode(nil), modes...)
}

// Lookup finds a mode by id.
func Lookup(id string) (model.CountingMode, bool) {
	for _, m := range modes {
		if m.ID == id {
			return m, true
		}
	}
	return model.CountingMode{}, false
}

// IDs lists the mode ids in display order.
func IDs() []string {
	ids := make([]string, len(modes))
	for i, m := range modes {
		ids[i] = m.ID
	}
	return ids
}
