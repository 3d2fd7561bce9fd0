package navigation

import "fyne.io/fyne/v2"

// Target hosts the single visible primary view of a navigation context.
// Show inserts the view if the target has not seen it before and makes it
// the one visible occupant. The service never destroys a target, only what
// is placed inside it.
type Target interface {
	Show(view fyne.CanvasObject) error
}

// NavigationContext is one independent navigation lane: a name, a mount
// target for primary content, its own history stack, and the currently
// mounted view. Contexts are created lazily on first use and live for the
// process lifetime. Target and Current are non-owning references.
type NavigationContext struct {
	Name    string
	Target  Target
	Stack   *NavigationStack
	Current fyne.CanvasObject
}

func newNavigationContext(name string) *NavigationContext {
	return &NavigationContext{
		Name:  name,
		Stack: NewNavigationStack(),
	}
}
