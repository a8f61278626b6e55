package model

// Package model defines domain data structures used across the app: texture
// sets, map labels, requirement configs and validation results. Structures
// are plain values so the UI, CLI and MCP layers can render them directly.
