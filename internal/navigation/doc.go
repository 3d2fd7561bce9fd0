package navigation

// Package navigation implements the route-based screen orchestration core:
// a route table mapping path patterns to view factories, per-context history
// stacks with browser-style back/forward semantics, and a service that runs
// cancellable lifecycle hooks and mounts views through per-kind strategies
// (main, modal, overlay, embedded). Views are plain Fyne canvas objects; the
// package knows nothing about the domain they render.
