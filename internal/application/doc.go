// Package application wires a single search run: it reads the target file,
// selects the case-appropriate search function, and writes the matching
// lines to the configured output. It keeps the main package focused on CLI
// parsing and exit-code selection.
package application
