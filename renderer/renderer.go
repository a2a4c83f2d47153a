// Package renderer turns finplan results into markdown reports.
//
// Every function here takes a fully computed domain value and returns a
// string; nothing in this package reads plan files or recomputes figures.
package renderer
