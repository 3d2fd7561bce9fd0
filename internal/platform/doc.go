package platform

// Package platform contains OS integration helpers: standard directory
// resolution, filesystem setup, and opening exported files in the system
// file manager or default application.
