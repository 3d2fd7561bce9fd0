package model

import "testing"

func TestMealSlot_IsValid(t *testing.T) {
	tests := []struct {
		slot     MealSlot
		expected bool
	}{
		{SlotBreakfast, true},
		{SlotLunch, true},
		{SlotDinner, true},
		{MealSlot("Brunch"), false},
		{MealSlot(""), false},
	}

	for _, test := range tests {
		result := test.slot.IsValid()
		if result != test.expected {
			t.Errorf("MealSlot(%s).IsValid() = %v, expected %v", test.slot, result, test.expected)
		}
	}
}

func TestMealSlot_Index(t *testing.T) {
	tests := []struct {
		slot     MealSlot
		expected int
	}{
		{SlotBreakfast, 0},
		{SlotLunch, 1},
		{SlotDinner, 2},
		{MealSlot("Snack"), -1},
	}

	for _, test := range tests {
		result := test.slot.Index()
		if result != test.expected {
			t.Errorf("MealSlot(%s).Index() = %d, expected %d", test.slot, result, test.expected)
		}
	}
}

func TestAllMealSlots(t *testing.T) {
	slots := AllMealSlots()
	if len(slots) != 3 {
		t.Fatalf("AllMealSlots() returned %d slots, expected 3", len(slots))
	}

	for i, slot := range slots {
		if slot.Index() != i {
			t.Errorf("AllMealSlots()[%d] = %s with Index() %d, expected %d", i, slot, slot.Index(), i)
		}
	}
}

func TestMealSlot_String(t *testing.T) {
	slot := SlotDinner
	expected := "Dinner"
	result := slot.String()

	if result != expected {
		t.Errorf("MealSlot.String() = %s, expected %s", result, expected)
	}
}
