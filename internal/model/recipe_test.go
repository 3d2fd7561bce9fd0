package model

import (
	"testing"
)

func TestRecipe_DisplayTitle(t *testing.T) {
	tests := []struct {
		title    string
		id       string
		expected string
	}{
		{"Pancakes", "recipe-1", "Pancakes"},
		{"", "recipe-1", "recipe-1"},
		{"   ", "recipe-2", "recipe-2"},
	}

	for _, test := range tests {
		recipe := &Recipe{ID: test.id, Title: test.title}
		result := recipe.DisplayTitle()
		if result != test.expected {
			t.Errorf("DisplayTitle() with title='%s', id='%s' = '%s', expected '%s'",
				test.title, test.id, result, test.expected)
		}
	}
}

func TestRecipe_TotalMinutes(t *testing.T) {
	recipe := &Recipe{PrepMinutes: 15, CookMinutes: 25}
	if recipe.TotalMinutes() != 40 {
		t.Errorf("TotalMinutes() = %d, expected 40", recipe.TotalMinutes())
	}
}

func TestRecipe_HasTag(t *testing.T) {
	recipe := &Recipe{Tags: []string{"vegetarian", "Quick"}}

	tests := []struct {
		tag      string
		expected bool
	}{
		{"vegetarian", true},
		{"Vegetarian", true},
		{"quick", true},
		{"vegan", false},
		{"", false},
	}

	for _, test := range tests {
		result := recipe.HasTag(test.tag)
		if result != test.expected {
			t.Errorf("HasTag(%q) = %v, expected %v", test.tag, result, test.expected)
		}
	}
}

func TestRecipe_Scaled(t *testing.T) {
	recipe := &Recipe{
		Servings: 2,
		Ingredients: []Ingredient{
			{Name: "flour", Quantity: 200, Unit: "g"},
			{Name: "salt", Quantity: 0, Unit: ""},
		},
	}

	scaled := recipe.Scaled(4)
	if len(scaled) != 2 {
		t.Fatalf("Scaled(4) returned %d ingredients, expected 2", len(scaled))
	}
	if scaled[0].Quantity != 400 {
		t.Errorf("Scaled(4) flour quantity = %v, expected 400", scaled[0].Quantity)
	}
	if scaled[1].Quantity != 0 {
		t.Errorf("Scaled(4) salt quantity = %v, expected 0", scaled[1].Quantity)
	}

	// Original must stay untouched
	if recipe.Ingredients[0].Quantity != 200 {
		t.Errorf("Scaled mutated the original ingredient list: %v", recipe.Ingredients[0].Quantity)
	}

	// Zero target servings leaves quantities unchanged
	same := recipe.Scaled(0)
	if same[0].Quantity != 200 {
		t.Errorf("Scaled(0) flour quantity = %v, expected 200", same[0].Quantity)
	}
}

func TestIngredient_DisplayString(t *testing.T) {
	tests := []struct {
		ingredient Ingredient
		expected   string
	}{
		{Ingredient{Name: "flour", Quantity: 200, Unit: "g"}, "200 g flour"},
		{Ingredient{Name: "salt"}, "salt"},
		{Ingredient{Name: "butter", Quantity: 0.5, Unit: "cup", Note: "softened"}, "0.5 cup butter (softened)"},
		{Ingredient{Name: "eggs", Quantity: 3}, "3 eggs"},
	}

	for _, test := range tests {
		result := test.ingredient.DisplayString()
		if result != test.expected {
			t.Errorf("DisplayString() = %q, expected %q", result, test.expected)
		}
	}
}

func TestFormatQuantity(t *testing.T) {
	tests := []struct {
		quantity float64
		expected string
	}{
		{200, "200"},
		{0.5, "0.5"},
		{1.25, "1.25"},
		{1.333333, "1.33"},
		{0, "0"},
	}

	for _, test := range tests {
		result := FormatQuantity(test.quantity)
		if result != test.expected {
			t.Errorf("FormatQuantity(%v) = %q, expected %q", test.quantity, result, test.expected)
		}
	}
}
