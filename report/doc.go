// Package report turns the scalar series of a run into figures a reader
// can act on: descriptive statistics, an equal-width histogram with its
// cumulative probability, and fixed-point money formatting.
//
// TextVisualizer satisfies simulation.Visualizer and prints the same
// information the interactive chart of a run shows: counts per bin and the
// increasing cumulative probability including the current bin.
package report
