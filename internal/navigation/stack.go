package navigation

// NavigationEntry is one visited (path, params) record. Params are a
// snapshot taken at push time; entries are immutable once pushed.
type NavigationEntry struct {
	Path   string
	Params map[string]string
	Order  int
}

// NavigationStack is the ordered, pointer-addressed history of one
// navigation context, with standard browser semantics: pushing while the
// pointer sits before the end truncates the stale forward entries.
//
// The stack is not safe for concurrent use; the owning service serializes
// access on the UI thread.
type NavigationStack struct {
	entries   []NavigationEntry
	current   int
	nextOrder int
}

// NewNavigationStack creates an empty stack
func NewNavigationStack() *NavigationStack {
	return &NavigationStack{current: -1}
}

// Push records a visit. With replaceCurrent the entry at the pointer is
// overwritten (back/forward replay must not grow history); otherwise every
// entry past the pointer is discarded, the new entry appended, and the
// pointer advanced to it. Replacing on an empty stack degrades to a normal
// push.
func (ns *NavigationStack) Push(path string, params map[string]string, replaceCurrent bool) {
	entry := NavigationEntry{
		Path:   path,
		Params: copyParams(params),
		Order:  ns.nextOrder,
	}
	ns.nextOrder++

	if replaceCurrent && ns.current >= 0 {
		ns.entries[ns.current] = entry
		return
	}

	ns.entries = append(ns.entries[:ns.current+1], entry)
	ns.current = len(ns.entries) - 1
}

// GoBack moves the pointer one entry back and returns the entry now under
// it. At the beginning of history it returns false and changes nothing.
func (ns *NavigationStack) GoBack() (NavigationEntry, bool) {
	if !ns.CanGoBack() {
		return NavigationEntry{}, false
	}
	ns.current--
	return ns.entries[ns.current], true
}

// GoForward is the symmetric counterpart of GoBack, bounded by the stack end
func (ns *NavigationStack) GoForward() (NavigationEntry, bool) {
	if !ns.CanGoForward() {
		return NavigationEntry{}, false
	}
	ns.current++
	return ns.entries[ns.current], true
}

// CanGoBack reports whether an earlier entry exists
func (ns *NavigationStack) CanGoBack() bool {
	return ns.current > 0
}

// CanGoForward reports whether a later entry exists
func (ns *NavigationStack) CanGoForward() bool {
	return ns.current >= 0 && ns.current < len(ns.entries)-1
}

// Current returns the entry under the pointer
func (ns *NavigationStack) Current() (NavigationEntry, bool) {
	if ns.current < 0 {
		return NavigationEntry{}, false
	}
	return ns.entries[ns.current], true
}

// Len returns the number of recorded entries
func (ns *NavigationStack) Len() int {
	return len(ns.entries)
}

// copyParams snapshots a parameter map; nil stays nil-safe as an empty map
func copyParams(params map[string]string) map[string]string {
	copied := make(map[string]string, len(params))
	for k, v := range params {
		copied[k] = v
	}
	return copied
}
