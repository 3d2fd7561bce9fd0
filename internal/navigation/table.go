package navigation

import (
	"fmt"
	"sort"
	"sync"

	"fyne.io/fyne/v2"
)

// RouteTable stores route definitions and caches long-lived view instances
// for reusable kinds. Static (fully literal) patterns sit in a map for exact
// lookup; dynamic patterns are kept sorted by specificity so overlapping
// registrations resolve deterministically regardless of registration order.
type RouteTable struct {
	mu        sync.RWMutex
	static    map[string]*RouteConfig
	dynamic   []*RouteConfig
	instances map[string]fyne.CanvasObject
}

// NewRouteTable creates an empty route table
func NewRouteTable() *RouteTable {
	return &RouteTable{
		static:    make(map[string]*RouteConfig),
		instances: make(map[string]fyne.CanvasObject),
	}
}

// Register stores a route definition. It rejects a nil factory, an invalid
// kind, a malformed pattern, and any pattern that duplicates the shape of an
// existing one (identical static path, or parameters in the same positions).
func (rt *RouteTable) Register(path string, factory ViewFactory, kind ViewKind, opts ...RouteOption) (*RouteConfig, error) {
	if factory == nil {
		return nil, fmt.Errorf("route %s: factory must not be nil", path)
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("route %s: unknown view kind %q", path, kind)
	}

	segments, err := compilePath(path)
	if err != nil {
		return nil, err
	}

	config := &RouteConfig{
		Path:     path,
		Factory:  factory,
		Kind:     kind,
		Reuse:    kind.ReusesByDefault(),
		segments: segments,
		literals: countLiterals(segments),
	}
	for _, opt := range opts {
		opt(config)
	}
	if !config.Kind.ReusesByDefault() {
		// Modal and overlay surfaces are never cached
		config.Reuse = false
	}

	rt.mu.Lock()
	defer rt.mu.Unlock()

	if isStatic(segments) {
		normalized := normalizePath(segments)
		if _, exists := rt.static[normalized]; exists {
			return nil, fmt.Errorf("route already registered: %s", path)
		}
		rt.static[normalized] = config
	} else {
		for _, existing := range rt.dynamic {
			if sameShape(existing.segments, segments) {
				return nil, fmt.Errorf("route conflicts with already registered %s: %s", existing.Path, path)
			}
		}
		rt.dynamic = append(rt.dynamic, config)
		sort.SliceStable(rt.dynamic, func(i, j int) bool {
			return moreSpecific(rt.dynamic[i], rt.dynamic[j])
		})
	}
	return config, nil
}

// Match resolves a request path to a route, extracting named parameters.
// A fully literal registration always outranks parameterized ones for the
// same path. Returns nil when nothing matches.
func (rt *RouteTable) Match(requestPath string) *RouteMatch {
	parts := splitRequestPath(requestPath)

	rt.mu.RLock()
	defer rt.mu.RUnlock()

	if config, ok := rt.static[joinSegments(parts)]; ok {
		return &RouteMatch{Config: config, Params: make(map[string]string)}
	}

	for _, config := range rt.dynamic {
		if params, ok := matchSegments(config.segments, parts); ok {
			return &RouteMatch{Config: config, Params: params}
		}
	}
	return nil
}

// Instance returns the view for a match. Reusable routes hand back the
// cached instance when present, constructing and caching otherwise;
// non-reusable routes construct fresh every time and are never cached.
func (rt *RouteTable) Instance(match *RouteMatch, args ViewArgs) (fyne.CanvasObject, error) {
	config := match.Config

	if config.Reuse {
		rt.mu.RLock()
		cached, ok := rt.instances[config.Path]
		rt.mu.RUnlock()
		if ok {
			return cached, nil
		}
	}

	view := config.Factory(args)
	if view == nil {
		return nil, fmt.Errorf("view factory for %s returned nil", config.Path)
	}

	if config.Reuse {
		rt.mu.Lock()
		rt.instances[config.Path] = view
		rt.mu.Unlock()
	}
	return view, nil
}

// Invalidate evicts the cached instance for one route path, forcing the next
// navigation there to construct anew. Cached instances otherwise live for
// the whole application session.
func (rt *RouteTable) Invalidate(path string) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	delete(rt.instances, path)
}

// Reset clears the entire instance cache
func (rt *RouteTable) Reset() {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.instances = make(map[string]fyne.CanvasObject)
}

// Routes returns all registered configs, static first, then dynamic in
// specificity order. The slice is a copy; configs are shared and immutable.
func (rt *RouteTable) Routes() []*RouteConfig {
	rt.mu.RLock()
	defer rt.mu.RUnlock()

	routes := make([]*RouteConfig, 0, len(rt.static)+len(rt.dynamic))
	staticPaths := make([]string, 0, len(rt.static))
	for path := range rt.static {
		staticPaths = append(staticPaths, path)
	}
	sort.Strings(staticPaths)
	for _, path := range staticPaths {
		routes = append(routes, rt.static[path])
	}
	routes = append(routes, rt.dynamic...)
	return routes
}

// normalizePath renders compiled segments back to a canonical "/a/b" form so
// "/recipes" and "/recipes/" register and match identically
func normalizePath(segments []segment) string {
	parts := make([]string, len(segments))
	for i, seg := range segments {
		if seg.param != "" {
			parts[i] = "{" + seg.param + "}"
		} else {
			parts[i] = seg.literal
		}
	}
	return joinSegments(parts)
}

func joinSegments(parts []string) string {
	result := "/"
	for i, part := range parts {
		if i > 0 {
			result += "/"
		}
		result += part
	}
	return result
}
