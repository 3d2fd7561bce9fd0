package model

import (
	"strconv"
	"strings"
	"time"
)

// Recipe represents a single recipe with its ingredients and preparation steps
type Recipe struct {
	ID          string       `toml:"id"`
	Title       string       `toml:"title"`
	Description string       `toml:"description,omitempty"`
	Servings    int          `toml:"servings"`
	PrepMinutes int          `toml:"prep_minutes,omitempty"`
	CookMinutes int          `toml:"cook_minutes,omitempty"`
	Tags        []string     `toml:"tags,omitempty"`
	Ingredients []Ingredient `toml:"ingredients,omitempty"`
	Steps       []string     `toml:"steps,omitempty"`
	CreatedAt   time.Time    `toml:"created_at,omitempty"`
	UpdatedAt   time.Time    `toml:"updated_at,omitempty"`
}

// Ingredient is one line of a recipe's ingredient list
type Ingredient struct {
	Name     string  `toml:"name"`
	Quantity float64 `toml:"quantity,omitempty"` // 0 means "to taste" / unmeasured
	Unit     string  `toml:"unit,omitempty"`
	Note     string  `toml:"note,omitempty"`
}

// TotalMinutes returns combined preparation and cooking time
func (r *Recipe) TotalMinutes() int {
	return r.PrepMinutes + r.CookMinutes
}

// DisplayTitle returns the title, falling back to the ID for untitled recipes
func (r *Recipe) DisplayTitle() string {
	if strings.TrimSpace(r.Title) != "" {
		return r.Title
	}
	return r.ID
}

// HasTag reports whether the recipe carries the given tag (case-insensitive)
func (r *Recipe) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Scaled returns a copy of the ingredient list with quantities scaled to the
// requested number of servings. Servings of zero or an unset recipe servings
// count leave quantities unchanged.
func (r *Recipe) Scaled(servings int) []Ingredient {
	scaled := make([]Ingredient, len(r.Ingredients))
	copy(scaled, r.Ingredients)

	if servings <= 0 || r.Servings <= 0 || servings == r.Servings {
		return scaled
	}

	factor := float64(servings) / float64(r.Servings)
	for i := range scaled {
		scaled[i].Quantity *= factor
	}
	return scaled
}

// DisplayString renders the ingredient as a single human readable line,
// e.g. "200 g flour (sifted)". Zero quantities elide the amount.
func (in Ingredient) DisplayString() string {
	var b strings.Builder

	if in.Quantity > 0 {
		b.WriteString(FormatQuantity(in.Quantity))
		if in.Unit != "" {
			b.WriteString(" ")
			b.WriteString(in.Unit)
		}
		b.WriteString(" ")
	}
	b.WriteString(in.Name)

	if in.Note != "" {
		b.WriteString(" (")
		b.WriteString(in.Note)
		b.WriteString(")")
	}
	return b.String()
}

// FormatQuantity renders a quantity without trailing zeros, rounded to two
// decimal places so scaled amounts stay readable.
func FormatQuantity(q float64) string {
	rounded := strconv.FormatFloat(q, 'f', 2, 64)
	rounded = strings.TrimRight(rounded, "0")
	rounded = strings.TrimSuffix(rounded, ".")
	if rounded == "" {
		return "0"
	}
	return rounded
}
