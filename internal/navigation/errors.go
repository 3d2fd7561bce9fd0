package navigation

import "errors"

// Sentinel errors for the failure classes a navigation attempt can hit. All
// of them are normalized at the NavigateTo boundary into a navigation_failed
// event plus a false return; none escape to the caller. Wrapped causes stay
// matchable with errors.Is inside the package, and their text is what the
// failed event carries as its message.
var (
	// ErrRouteNotFound means no registered pattern matches the requested path
	ErrRouteNotFound = errors.New("route not found")

	// ErrNavigationCancelled means a lifecycle hook vetoed the transition
	ErrNavigationCancelled = errors.New("navigation cancelled")

	// ErrMountFailure means the mount strategy could not complete
	ErrMountFailure = errors.New("mount failure")

	// ErrNavigationInProgress means NavigateTo was re-entered while another
	// attempt was still in flight
	ErrNavigationInProgress = errors.New("navigation already in progress")
)
