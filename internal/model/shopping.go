package model

import (
	"strings"
	"time"
)

// ShoppingItem is one aggregated line of a shopping list
type ShoppingItem struct {
	Name     string
	Quantity float64
	Unit     string
	Recipes  []string // titles of the recipes that contributed to this item
	Checked  bool
}

// ShoppingList is the aggregated ingredient list generated from a week plan
type ShoppingList struct {
	Items       []ShoppingItem
	GeneratedAt time.Time
}

// DisplayString renders the item as a single line, e.g. "450 g flour"
func (si ShoppingItem) DisplayString() string {
	var b strings.Builder
	if si.Quantity > 0 {
		b.WriteString(FormatQuantity(si.Quantity))
		if si.Unit != "" {
			b.WriteString(" ")
			b.WriteString(si.Unit)
		}
		b.WriteString(" ")
	}
	b.WriteString(si.Name)
	return b.String()
}

// Remaining returns the number of unchecked items
func (sl *ShoppingList) Remaining() int {
	count := 0
	for _, item := range sl.Items {
		if !item.Checked {
			count++
		}
	}
	return count
}

// ExportText renders the list as a plain-text checklist suitable for saving
// or printing. Checked items are marked with [x].
func (sl *ShoppingList) ExportText() string {
	var b strings.Builder

	b.WriteString("Shopping list (")
	b.WriteString(sl.GeneratedAt.Format("2006-01-02"))
	b.WriteString(")\n\n")

	for _, item := range sl.Items {
		if item.Checked {
			b.WriteString("[x] ")
		} else {
			b.WriteString("[ ] ")
		}
		b.WriteString(item.DisplayString())
		if len(item.Recipes) > 0 {
			b.WriteString("  (for: ")
			b.WriteString(strings.Join(item.Recipes, ", "))
			b.WriteString(")")
		}
		b.WriteString("\n")
	}
	return b.String()
}
