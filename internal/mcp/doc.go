// Package mcp exposes texture validation as Model Context Protocol tools
// served over stdio.
package mcp
