package navigation

// EventKind identifies one of the observable navigation events
type EventKind string

const (
	// EventNavigationStarted fires at the top of every attempt, before resolution
	EventNavigationStarted EventKind = "navigation_started"

	// EventNavigationCompleted fires after a successful mount and history push
	EventNavigationCompleted EventKind = "navigation_completed"

	// EventNavigationFailed fires exactly once per failed attempt with a reason
	EventNavigationFailed EventKind = "navigation_failed"

	// EventRouteChanged fires after EventNavigationCompleted; subscribers like
	// a sidebar use it to highlight the active route
	EventRouteChanged EventKind = "route_changed"
)

// Event is the payload delivered to subscribers
type Event struct {
	Kind    EventKind
	Context string
	Path    string
	Params  map[string]string
	Message string // failure reason, set for EventNavigationFailed only
}

// EventHandler receives published navigation events. Handlers run
// synchronously on the navigating goroutine in subscription order.
type EventHandler func(Event)

type subscription struct {
	id      int
	handler EventHandler
}

// Subscribe registers a handler for one event kind and returns the function
// that removes it again
func (s *Service) Subscribe(kind EventKind, handler EventHandler) (unsubscribe func()) {
	s.subscribersMutex.Lock()
	s.nextSubscriberID++
	id := s.nextSubscriberID
	s.subscribers[kind] = append(s.subscribers[kind], subscription{id: id, handler: handler})
	s.subscribersMutex.Unlock()

	return func() {
		s.subscribersMutex.Lock()
		defer s.subscribersMutex.Unlock()
		subs := s.subscribers[kind]
		for i, sub := range subs {
			if sub.id == id {
				s.subscribers[kind] = append(subs[:i], subs[i+1:]...)
				return
			}
		}
	}
}

// publish delivers an event to every subscriber of its kind. The handler
// list is snapshotted first so handlers may subscribe or unsubscribe freely.
func (s *Service) publish(event Event) {
	s.subscribersMutex.RLock()
	subs := make([]subscription, len(s.subscribers[event.Kind]))
	copy(subs, s.subscribers[event.Kind])
	s.subscribersMutex.RUnlock()

	for _, sub := range subs {
		sub.handler(event)
	}
}
