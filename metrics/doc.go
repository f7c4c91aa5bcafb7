// Package metrics reduces one evaluated iteration table to the per-iteration
// scalars of a run (outcome sum, NPV, IRR) and applies the end-of-run IRR
// fallback policy.
//
// Sign convention: the initial investment is an outflow. A positive
// caller-supplied investment is negated, a non-positive one is kept, so
// 500 and -500 describe the same project.
//
// IRR here is a modified IRR. By default the single required rate serves as
// both the finance and the reinvestment rate; Params.ReinvestRate opts into
// distinct rates.
package metrics
