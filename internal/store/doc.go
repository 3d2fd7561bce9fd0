package store

// Package store persists the domain data as TOML files under the configured
// data directory: one file per recipe plus a single plan.toml for the weekly
// meal plan. Stores keep an in-memory map guarded by a RWMutex, write through
// atomically (temp file then rename), and watch the directory with fsnotify
// so external edits show up without restarting the app. Shopping lists are
// derived data: built on demand from the plan and the recipe set, never
// persisted, only exported as plain text.
