// Package viz renders lookup tables and accuracy reports for the terminal.
//
// Tables and summaries are styled with lipgloss; curves are drawn with
// asciigraph. Every function returns a string and never writes to stdout.
package viz
