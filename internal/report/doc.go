// Package report renders validation reports for the terminal.
package report
