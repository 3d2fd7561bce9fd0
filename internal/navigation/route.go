package navigation

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
)

// ViewArgs carries everything a view factory receives at construction time:
// the navigation service handle (injected so views never reach for a global),
// the merged path/caller parameters, and any extra props the caller supplied.
type ViewArgs struct {
	Nav    *Service
	Params map[string]string
	Props  map[string]any
}

// ViewFactory constructs a view instance for a route. Returning nil is
// treated as a construction failure.
type ViewFactory func(args ViewArgs) fyne.CanvasObject

// RouteConfig is one registered route: a path pattern bound to a view
// factory and a view kind. Immutable once registered.
type RouteConfig struct {
	Path        string
	Factory     ViewFactory
	Kind        ViewKind
	Title       string
	Description string
	Reuse       bool

	segments []segment
	literals int // count of literal segments, the specificity rank
}

// segment is one compiled path component; param is set for {name} segments
type segment struct {
	literal string
	param   string
}

// RouteMatch pairs a resolved route with the parameters extracted from the
// request path. Created fresh per navigation attempt, never persisted.
type RouteMatch struct {
	Config *RouteConfig
	Params map[string]string
}

// RouteOption customizes a route at registration time
type RouteOption func(*RouteConfig)

// WithTitle sets the human readable title used by modal frames and menus
func WithTitle(title string) RouteOption {
	return func(rc *RouteConfig) { rc.Title = title }
}

// WithDescription sets the route description
func WithDescription(description string) RouteOption {
	return func(rc *RouteConfig) { rc.Description = description }
}

// WithReuse overrides the kind's default instance reuse behavior
func WithReuse(reuse bool) RouteOption {
	return func(rc *RouteConfig) { rc.Reuse = reuse }
}

// compilePath splits a pattern into segments once, at registration time.
// A segment written as {name} binds that path component; everything else
// must match literally.
func compilePath(path string) ([]segment, error) {
	if !strings.HasPrefix(path, "/") {
		return nil, fmt.Errorf("route path must start with '/': %q", path)
	}

	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return []segment{}, nil
	}

	parts := strings.Split(trimmed, "/")
	segments := make([]segment, 0, len(parts))
	seen := make(map[string]bool)

	for _, part := range parts {
		if part == "" {
			return nil, fmt.Errorf("route path contains an empty segment: %q", path)
		}

		if strings.HasPrefix(part, "{") && strings.HasSuffix(part, "}") {
			name := part[1 : len(part)-1]
			if name == "" {
				return nil, fmt.Errorf("route path contains an unnamed parameter: %q", path)
			}
			if seen[name] {
				return nil, fmt.Errorf("route path binds parameter %q twice: %q", name, path)
			}
			seen[name] = true
			segments = append(segments, segment{param: name})
			continue
		}

		segments = append(segments, segment{literal: part})
	}
	return segments, nil
}

// splitRequestPath splits a concrete request path into its components
func splitRequestPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return []string{}
	}
	return strings.Split(trimmed, "/")
}

// countLiterals returns the number of literal segments in a compiled pattern
func countLiterals(segments []segment) int {
	count := 0
	for _, seg := range segments {
		if seg.param == "" {
			count++
		}
	}
	return count
}

// isStatic reports whether the pattern has no parameter segments
func isStatic(segments []segment) bool {
	for _, seg := range segments {
		if seg.param != "" {
			return false
		}
	}
	return true
}

// sameShape reports whether two patterns would compete for the exact same
// request paths: equal length, literals equal where both are literal, and
// parameters in the same positions (names do not matter).
func sameShape(a, b []segment) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		aParam := a[i].param != ""
		bParam := b[i].param != ""
		if aParam != bParam {
			return false
		}
		if !aParam && a[i].literal != b[i].literal {
			return false
		}
	}
	return true
}

// moreSpecific orders overlapping patterns deterministically: more literal
// segments win; among equal counts, a literal in an earlier position wins.
func moreSpecific(a, b *RouteConfig) bool {
	if a.literals != b.literals {
		return a.literals > b.literals
	}
	limit := len(a.segments)
	if len(b.segments) < limit {
		limit = len(b.segments)
	}
	for i := 0; i < limit; i++ {
		aLiteral := a.segments[i].param == ""
		bLiteral := b.segments[i].param == ""
		if aLiteral != bLiteral {
			return aLiteral
		}
	}
	return false
}

// matchSegments tries a compiled pattern against request path components,
// returning extracted parameters on success. A parameter segment matches any
// single non-empty component.
func matchSegments(segments []segment, parts []string) (map[string]string, bool) {
	if len(segments) != len(parts) {
		return nil, false
	}

	var params map[string]string
	for i, seg := range segments {
		if seg.param != "" {
			if parts[i] == "" {
				return nil, false
			}
			if params == nil {
				params = make(map[string]string)
			}
			params[seg.param] = parts[i]
			continue
		}
		if seg.literal != parts[i] {
			return nil, false
		}
	}
	if params == nil {
		params = make(map[string]string)
	}
	return params, true
}
