package navigation

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"fyne.io/fyne/v2"
	"go.uber.org/atomic"
)

// DefaultContext is the navigation lane used when the caller names none
const DefaultContext = "main"

// Service is the navigation orchestrator. It owns the route table, the map
// of navigation contexts, and the transient lists of open modal and overlay
// surfaces. One instance is constructed explicitly at application start and
// handed to views through ViewArgs; SetDefault keeps a single root-level
// accessor for legacy call sites.
//
// NavigateTo runs synchronously to completion on the calling goroutine and
// assumes a single UI thread dispatching callbacks. Overlapping attempts,
// including re-entrant calls from inside a lifecycle hook, are rejected
// deterministically rather than left to corrupt history state.
type Service struct {
	table      *RouteTable
	window     fyne.Window
	logger     *slog.Logger
	closeLabel string

	contextsMutex sync.RWMutex
	contexts      map[string]*NavigationContext

	strategies map[ViewKind]MountStrategy

	surfacesMutex sync.Mutex
	modals        []trackedSurface
	overlays      []trackedSurface

	subscribersMutex sync.RWMutex
	subscribers      map[EventKind][]subscription
	nextSubscriberID int

	navigating atomic.Bool
}

// trackedSurface is one open modal or overlay: the route that produced it,
// the view instance, and the func that hides its surface
type trackedSurface struct {
	path  string
	view  fyne.CanvasObject
	close func()
}

// Option configures a Service at construction time
type Option func(*Service)

// WithLogger sets the structured logger; the default discards everything
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithWindow sets the window hosting modal dialogs and overlay popups.
// Without it, navigating to a modal or overlay route fails as a mount error.
func WithWindow(window fyne.Window) Option {
	return func(s *Service) { s.window = window }
}

// WithCloseLabel sets the dismiss button label modal frames use, so the
// presentation layer can localize it
func WithCloseLabel(label string) Option {
	return func(s *Service) {
		if label != "" {
			s.closeLabel = label
		}
	}
}

// New creates a navigation service
func New(opts ...Option) *Service {
	s := &Service{
		table:       NewRouteTable(),
		logger:      noopLogger(),
		closeLabel:  "Close",
		contexts:    make(map[string]*NavigationContext),
		subscribers: make(map[EventKind][]subscription),
	}
	s.strategies = map[ViewKind]MountStrategy{
		KindMain:     mainStrategy{},
		KindModal:    modalStrategy{svc: s},
		KindOverlay:  overlayStrategy{svc: s},
		KindEmbedded: embeddedStrategy{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func noopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var (
	defaultMutex   sync.RWMutex
	defaultService *Service
)

// SetDefault installs the process-wide service handle created at startup
func SetDefault(s *Service) {
	defaultMutex.Lock()
	defer defaultMutex.Unlock()
	defaultService = s
}

// Default returns the handle installed by SetDefault, nil before that. New
// code should receive the service through ViewArgs instead.
func Default() *Service {
	defaultMutex.RLock()
	defer defaultMutex.RUnlock()
	return defaultService
}

// Register adds a route to the service's table
func (s *Service) Register(path string, factory ViewFactory, kind ViewKind, opts ...RouteOption) (*RouteConfig, error) {
	return s.table.Register(path, factory, kind, opts...)
}

// Routes lists the registered routes for menu and sidebar construction
func (s *Service) Routes() []*RouteConfig {
	return s.table.Routes()
}

// Invalidate evicts one cached view instance (see RouteTable.Invalidate)
func (s *Service) Invalidate(path string) {
	s.table.Invalidate(path)
}

// ResetInstances clears the whole view instance cache
func (s *Service) ResetInstances() {
	s.table.Reset()
}

// Window returns the hosting window, nil when none was configured
func (s *Service) Window() fyne.Window {
	return s.window
}

// BindContext attaches a mount target to the named context, creating the
// context when it does not exist yet
func (s *Service) BindContext(name string, target Target) *NavigationContext {
	ctx := s.context(name)
	ctx.Target = target
	return ctx
}

// Context returns the named context if it exists
func (s *Service) Context(name string) (*NavigationContext, bool) {
	return s.lookupContext(name)
}

// context returns the named context, creating it lazily
func (s *Service) context(name string) *NavigationContext {
	s.contextsMutex.Lock()
	defer s.contextsMutex.Unlock()
	if ctx, ok := s.contexts[name]; ok {
		return ctx
	}
	ctx := newNavigationContext(name)
	s.contexts[name] = ctx
	return ctx
}

func (s *Service) lookupContext(name string) (*NavigationContext, bool) {
	if name == "" {
		name = DefaultContext
	}
	s.contextsMutex.RLock()
	defer s.contextsMutex.RUnlock()
	ctx, ok := s.contexts[name]
	return ctx, ok
}

// navigateRequest collects the optional arguments of one attempt
type navigateRequest struct {
	contextName string
	replace     bool
	props       map[string]any
}

// NavigateOption customizes one NavigateTo call
type NavigateOption func(*navigateRequest)

// InContext routes the navigation through the named context lane
func InContext(name string) NavigateOption {
	return func(r *navigateRequest) {
		if name != "" {
			r.contextName = name
		}
	}
}

// ReplaceCurrent overwrites the current history entry instead of pushing,
// used by back/forward replay so history does not grow
func ReplaceCurrent() NavigateOption {
	return func(r *navigateRequest) { r.replace = true }
}

// WithProps passes extra construction arguments through to the view factory
func WithProps(props map[string]any) NavigateOption {
	return func(r *navigateRequest) { r.props = props }
}

// NavigateTo transitions the named context to the view registered for path.
// It publishes navigation_started, resolves the route, runs the cancellable
// lifecycle hooks on the outgoing and incoming views, mounts through the
// strategy for the route's kind, records the transition in the context's
// history, and publishes navigation_completed plus route_changed.
//
// Every failure, including a panic anywhere in resolution, construction, or
// mounting, is normalized into a single navigation_failed event and a false
// return; nothing escapes to the caller. A failed or cancelled attempt
// mutates no state. Panics are logged at error level before normalization;
// expected failures at debug.
func (s *Service) NavigateTo(path string, params map[string]string, opts ...NavigateOption) (success bool) {
	req := navigateRequest{contextName: DefaultContext}
	for _, opt := range opts {
		opt(&req)
	}

	merged := copyParams(params)
	s.publish(Event{Kind: EventNavigationStarted, Context: req.contextName, Path: path, Params: copyParams(merged)})

	if !s.navigating.CompareAndSwap(false, true) {
		s.logger.Debug("navigation rejected", "path", path, "context", req.contextName, "reason", ErrNavigationInProgress)
		s.failNavigation(req.contextName, path, merged, ErrNavigationInProgress.Error())
		return false
	}
	defer s.navigating.Store(false)

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("panic during navigation", "path", path, "context", req.contextName, "recovered", r)
			s.failNavigation(req.contextName, path, merged, fmt.Sprintf("internal error: %v", r))
			success = false
		}
	}()

	if err := s.navigate(path, merged, req); err != nil {
		if isExpectedFailure(err) {
			s.logger.Debug("navigation failed", "path", path, "context", req.contextName, "error", err)
		} else {
			s.logger.Error("navigation failed unexpectedly", "path", path, "context", req.contextName, "error", err)
		}
		s.failNavigation(req.contextName, path, merged, err.Error())
		return false
	}

	s.logger.Debug("navigation completed", "path", path, "context", req.contextName)
	return true
}

// navigate runs steps 2..7 of the attempt; params is mutated to include the
// values extracted from the path
func (s *Service) navigate(path string, params map[string]string, req navigateRequest) error {
	match := s.table.Match(path)
	if match == nil {
		return fmt.Errorf("%w: %s", ErrRouteNotFound, path)
	}
	for name, value := range match.Params {
		params[name] = value
	}

	ctx := s.context(req.contextName)

	if lc, ok := ctx.Current.(Lifecycle); ok {
		if !lc.BeforeNavigateFrom(path, params) {
			return fmt.Errorf("%w by current view", ErrNavigationCancelled)
		}
	}

	view, err := s.table.Instance(match, ViewArgs{Nav: s, Params: copyParams(params), Props: req.props})
	if err != nil {
		return err
	}

	if lc, ok := view.(Lifecycle); ok {
		if !lc.BeforeNavigateTo(path, params) {
			return fmt.Errorf("%w by target view", ErrNavigationCancelled)
		}
	}

	strategy, ok := s.strategies[match.Config.Kind]
	if !ok {
		return fmt.Errorf("%w: no strategy for view kind %s", ErrMountFailure, match.Config.Kind)
	}
	if err := strategy.Mount(ctx, view, match); err != nil {
		return err
	}

	outgoing := ctx.Current
	if lc, ok := outgoing.(Lifecycle); ok && outgoing != view {
		lc.AfterNavigateFrom(path, params)
	}
	if lc, ok := view.(Lifecycle); ok {
		lc.AfterNavigateTo(path, params)
	}

	ctx.Current = view
	ctx.Stack.Push(path, params, req.replace)

	s.publish(Event{Kind: EventNavigationCompleted, Context: ctx.Name, Path: path, Params: copyParams(params)})
	s.publish(Event{Kind: EventRouteChanged, Context: ctx.Name, Path: path, Params: copyParams(params)})
	return nil
}

func isExpectedFailure(err error) bool {
	return errors.Is(err, ErrRouteNotFound) ||
		errors.Is(err, ErrNavigationCancelled) ||
		errors.Is(err, ErrMountFailure) ||
		errors.Is(err, ErrNavigationInProgress)
}

func (s *Service) failNavigation(contextName, path string, params map[string]string, message string) {
	s.publish(Event{
		Kind:    EventNavigationFailed,
		Context: contextName,
		Path:    path,
		Params:  copyParams(params),
		Message: message,
	})
}

// GoBack replays the previous history entry of the named context with
// replace-current, so the pointer moves but history does not grow. Returns
// false with no side effects when no earlier entry exists; when the replay
// itself fails (for example the current view vetoes), the pointer move is
// rolled back so history stays consistent.
func (s *Service) GoBack(contextName string) bool {
	ctx, ok := s.lookupContext(contextName)
	if !ok {
		return false
	}
	entry, ok := ctx.Stack.GoBack()
	if !ok {
		return false
	}
	if !s.NavigateTo(entry.Path, entry.Params, InContext(ctx.Name), ReplaceCurrent()) {
		ctx.Stack.GoForward()
		return false
	}
	return true
}

// GoForward is the symmetric counterpart of GoBack
func (s *Service) GoForward(contextName string) bool {
	ctx, ok := s.lookupContext(contextName)
	if !ok {
		return false
	}
	entry, ok := ctx.Stack.GoForward()
	if !ok {
		return false
	}
	if !s.NavigateTo(entry.Path, entry.Params, InContext(ctx.Name), ReplaceCurrent()) {
		ctx.Stack.GoBack()
		return false
	}
	return true
}

// CanGoBack reports whether the named context has an earlier entry
func (s *Service) CanGoBack(contextName string) bool {
	ctx, ok := s.lookupContext(contextName)
	if !ok {
		return false
	}
	return ctx.Stack.CanGoBack()
}

// CanGoForward reports whether the named context has a later entry
func (s *Service) CanGoForward(contextName string) bool {
	ctx, ok := s.lookupContext(contextName)
	if !ok {
		return false
	}
	return ctx.Stack.CanGoForward()
}

func (s *Service) trackModal(path string, view fyne.CanvasObject, close func()) {
	s.surfacesMutex.Lock()
	defer s.surfacesMutex.Unlock()
	s.modals = append(s.modals, trackedSurface{path: path, view: view, close: close})
}

func (s *Service) untrackModal(view fyne.CanvasObject) {
	s.surfacesMutex.Lock()
	defer s.surfacesMutex.Unlock()
	for i, surface := range s.modals {
		if surface.view == view {
			s.modals = append(s.modals[:i], s.modals[i+1:]...)
			return
		}
	}
}

// trackOverlay records an open overlay, first closing a previous overlay of
// the same route so a path shows at most one popup at a time
func (s *Service) trackOverlay(path string, view fyne.CanvasObject, close func()) {
	s.surfacesMutex.Lock()
	var stale func()
	for i, surface := range s.overlays {
		if surface.path == path {
			stale = surface.close
			s.overlays = append(s.overlays[:i], s.overlays[i+1:]...)
			break
		}
	}
	s.overlays = append(s.overlays, trackedSurface{path: path, view: view, close: close})
	s.surfacesMutex.Unlock()

	if stale != nil {
		stale()
	}
}

func (s *Service) untrackOverlay(view fyne.CanvasObject) {
	s.surfacesMutex.Lock()
	defer s.surfacesMutex.Unlock()
	for i, surface := range s.overlays {
		if surface.view == view {
			s.overlays = append(s.overlays[:i], s.overlays[i+1:]...)
			return
		}
	}
}

// OpenModals returns the route paths of the currently tracked modal surfaces
func (s *Service) OpenModals() []string {
	s.surfacesMutex.Lock()
	defer s.surfacesMutex.Unlock()
	paths := make([]string, len(s.modals))
	for i, surface := range s.modals {
		paths[i] = surface.path
	}
	return paths
}

// OpenOverlays returns the route paths of the currently tracked overlays
func (s *Service) OpenOverlays() []string {
	s.surfacesMutex.Lock()
	defer s.surfacesMutex.Unlock()
	paths := make([]string, len(s.overlays))
	for i, surface := range s.overlays {
		paths[i] = surface.path
	}
	return paths
}

// CloseOverlays hides and untracks every open overlay. Overlays dismissed by
// the toolkit without the view reporting it stay tracked until this runs or
// their route is shown again.
func (s *Service) CloseOverlays() {
	s.surfacesMutex.Lock()
	open := s.overlays
	s.overlays = nil
	s.surfacesMutex.Unlock()

	for _, surface := range open {
		surface.close()
	}
}
