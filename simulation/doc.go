// Package simulation orchestrates a Monte Carlo run over a cash-flow
// template.
//
// An Engine moves through Configured → Running → Completed (or Failed).
// While Configured, random variables are declared per distribution family;
// each declaration draws a sims × periods matrix into the engine's registry.
// Run then, for every simulation i:
//
//  1. assembles the iteration table (template with row i of every variate),
//  2. evaluates the derivation query against it,
//  3. reduces the target column to the outcome sum and, when configured,
//     NPV and modified IRR.
//
// Iterations are independent and are spread over a worker pool; every
// result is written to the slot of its iteration index, so output order
// never depends on scheduling. Workers check the context between
// iterations. Any failure aborts the run and no partial results are
// returned.
//
// After the loop, undefined IRR values are replaced by the minimum defined
// IRR of the run (see metrics.PatchIRR).
package simulation
