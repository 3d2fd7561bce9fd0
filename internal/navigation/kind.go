package navigation

// ViewKind classifies how a routed view is mounted
type ViewKind string

const (
	// KindMain is single-slot primary content shown inside a context's mount target
	KindMain ViewKind = "Main"

	// KindModal is a blocking, application-modal surface
	KindModal ViewKind = "Modal"

	// KindOverlay is a non-blocking popup
	KindOverlay ViewKind = "Overlay"

	// KindEmbedded is a nestable component that can also run standalone as
	// primary content; it is told which mode it is in when mounted directly
	KindEmbedded ViewKind = "Embedded"
)

// String returns the string representation of ViewKind
func (vk ViewKind) String() string {
	return string(vk)
}

// IsValid returns true if the kind is one of the known view kinds
func (vk ViewKind) IsValid() bool {
	return vk == KindMain || vk == KindModal || vk == KindOverlay || vk == KindEmbedded
}

// ReusesByDefault returns true for kinds whose instances are cached and
// reused across navigations. Modal and overlay surfaces are rebuilt on every
// show and never cached.
func (vk ViewKind) ReusesByDefault() bool {
	return vk == KindMain || vk == KindEmbedded
}
