// Package table holds the tabular side of a simulation: the immutable
// period template supplied by the caller, the column-oriented tables that
// formulas are evaluated against, and the assembler that overlays one
// simulation's random draws onto the template.
//
// Orientation:
//
//	Template: rows = variables, columns = periods   (as the user writes it)
//	Table:    rows = periods,   columns = variables (as formulas consume it)
//
// The assembler performs the transpose once per iteration. It never mutates
// the template, and AssembleInto lets a worker refill one private buffer
// for every iteration it owns instead of allocating a new table each time.
package table
