package view

import (
	"sort"
	"strings"

	"go-inventory-tracker/internal/model"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type Filter struct {
	Search   string `query:"search" json:"search"`
	Category string `query:"category" json:"category"`
}

func (f Filter) matchesCategory(category string) bool {
	return f.Category == "" || f.Category == model.AllCategories || f.Category == category
}

// Sorter orders product names with the collation rules of a locale.
type Sorter struct {
	Tag language.Tag
}

func NewSorter(tag language.Tag) Sorter {
	return Sorter{Tag: tag}
}

// FilterAndSort returns the products whose name or category contains the
// search term (case-insensitive) and that belong to the selected category,
// sorted by name. The input slice is left untouched.
func FilterAndSort(products []model.Product, f Filter, s Sorter) []model.Product {
	fold := cases.Fold()
	term := fold.String(f.Search)

	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if !f.matchesCategory(p.Category) {
			continue
		}
		if term != "" &&
			!strings.Contains(fold.String(p.Name), term) &&
			!strings.Contains(fold.String(p.Category), term) {
			continue
		}
		out = append(out, p)
	}

	// A Collator is not safe for concurrent use.
	col := collate.New(s.Tag)
	sort.SliceStable(out, func(i, j int) bool {
		return col.CompareString(out[i].Name, out[j].Name) < 0
	})
	return out
}
