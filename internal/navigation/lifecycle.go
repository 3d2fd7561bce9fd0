package navigation

// Lifecycle is the optional capability a navigable view may implement to
// participate in transitions. Conformance is structural: the service checks
// with a type assertion, no base type is required, and a view without the
// interface behaves as if every before hook returned true and every after
// hook did nothing.
//
// Before hooks gate the transition: returning false cancels it with no state
// mutated. After hooks are side-effect points (refresh data, persist state)
// and run only once the mount has succeeded.
type Lifecycle interface {
	BeforeNavigateTo(path string, params map[string]string) bool
	AfterNavigateTo(path string, params map[string]string)
	BeforeNavigateFrom(path string, params map[string]string) bool
	AfterNavigateFrom(path string, params map[string]string)
}

// LifecycleBase is an embeddable no-op implementation so views override only
// the hooks they need
type LifecycleBase struct{}

// BeforeNavigateTo permits the transition
func (LifecycleBase) BeforeNavigateTo(string, map[string]string) bool { return true }

// AfterNavigateTo does nothing
func (LifecycleBase) AfterNavigateTo(string, map[string]string) {}

// BeforeNavigateFrom permits the transition
func (LifecycleBase) BeforeNavigateFrom(string, map[string]string) bool { return true }

// AfterNavigateFrom does nothing
func (LifecycleBase) AfterNavigateFrom(string, map[string]string) {}

// Standalone marks an embeddable view that can also run as primary content.
// The embedded mount strategy calls SetStandalone(true) before showing the
// view so it can switch click handling from emitting to an embedding parent
// to navigating itself. Views nested as plain components never receive the
// call and default to embedded behavior.
type Standalone interface {
	SetStandalone(standalone bool)
}

// Dismissable lets a modal or overlay view receive the function that closes
// its surface. Invoking the injected func is how the view reports its own
// destruction, which removes it from the service's tracking list.
type Dismissable interface {
	SetDismiss(dismiss func())
}
