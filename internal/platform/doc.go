package platform

// Package platform contains OS/platform integration: filesystem discovery of
// texture files, config directory lookup, and OS open/reveal helpers.
