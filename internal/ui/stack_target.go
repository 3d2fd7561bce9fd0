package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// StackTarget is a mount target backed by a stack container. Every view that
// has ever been shown stays in the stack hidden, so reusable view instances
// keep their widget state between visits; Show just flips visibility.
type StackTarget struct {
	stack *fyne.Container
}

// NewStackTarget creates an empty stack target
func NewStackTarget() *StackTarget {
	return &StackTarget{stack: container.NewStack()}
}

// Show makes the given view the single visible occupant of the target,
// inserting it on first sight
func (st *StackTarget) Show(view fyne.CanvasObject) error {
	if view == nil {
		return fmt.Errorf("cannot show a nil view")
	}

	found := false
	for _, object := range st.stack.Objects {
		if object == view {
			found = true
			continue
		}
		object.Hide()
	}
	if !found {
		st.stack.Add(view)
	}

	view.Show()
	st.stack.Refresh()
	return nil
}

// Container returns the underlying container for embedding into a layout
func (st *StackTarget) Container() *fyne.Container {
	return st.stack
}
