package model

// MealSlot represents one of the three meal positions of a planned day
type MealSlot string

const (
	// SlotBreakfast is the first meal of the day
	SlotBreakfast MealSlot = "Breakfast"

	// SlotLunch is the midday meal
	SlotLunch MealSlot = "Lunch"

	// SlotDinner is the evening meal
	SlotDinner MealSlot = "Dinner"
)

// String returns the string representation of MealSlot
func (ms MealSlot) String() string {
	return string(ms)
}

// IsValid returns true if the slot is one of the known meal positions
func (ms MealSlot) IsValid() bool {
	return ms == SlotBreakfast || ms == SlotLunch || ms == SlotDinner
}

// Index returns the stable display order of the slot within a day, -1 if unknown
func (ms MealSlot) Index() int {
	switch ms {
	case SlotBreakfast:
		return 0
	case SlotLunch:
		return 1
	case SlotDinner:
		return 2
	default:
		return -1
	}
}

// AllMealSlots returns the slots in display order
func AllMealSlots() []MealSlot {
	return []MealSlot{SlotBreakfast, SlotLunch, SlotDinner}
}
