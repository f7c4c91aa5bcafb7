// Package matrix provides the dense numeric storage behind every variate
// matrix produced by the simulator.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked accessors
//     (At, Set, Row, SetRow) and a zero-copy RowView for hot loops.
//   - A numeric policy that rejects NaN/±Inf on Set unless relaxed through
//     WithNoValidateNaNInf.
//   - Small deterministic statistics (ColumnMeans, RowMeans) used to report
//     per-period and per-iteration means of a simulated column.
//
// A variate matrix has one row per simulation and one column per period,
// so Row(i) is exactly the overlay the iteration assembler needs for
// simulation i.
//
// Complexity quicksheet:
//   - NewDense: O(r*c); At/Set: O(1); Row: O(c); Clone: O(r*c).
package matrix
