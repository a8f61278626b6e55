package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It collects texture requirements from the user, runs folder validation through
// the validate service and renders the per-set results, export and settings.
// All UI strings are localized via Localization.
