// Package export writes validation reports to JSON or YAML files.
package export
