// Package simul8 is a Monte Carlo engine for cash-flow models.
//
// A model is a period template (one row per variable, one column per
// period), a derivation query that computes dependent columns such as
// sales, expenses and cash, and a set of random variables drawn from
// parametric distributions. Every simulation overlays one draw of each
// random variable onto the template, evaluates the query, and reduces the
// target column to an outcome sum and, optionally, NPV and modified IRR.
//
// Packages:
//
//	matrix/     dense row-major storage for variate matrices
//	variate/    distribution families, seeded streams, generation, registry
//	table/      period template, column tables, iteration assembler
//	formula/    the SELECT-style derivation language
//	finance/    NPV and MIRR
//	metrics/    per-iteration aggregation and the IRR fallback policy
//	simulation/ the engine: declarations, worker pool, results
//	report/     summary statistics, histograms, money formatting
//	scenario/   TOML/YAML scenario documents
//
// Quick start:
//
//	tpl, _ := table.NewTemplate(
//		[]string{"demand", "price", "cost"}, nil,
//		[][]float64{{100, 110}, {10, 10}, {6, 6}},
//	)
//	q := formula.MustParse("select demand*(price-cost) as cash from df")
//	e, _ := simulation.New(tpl, 10000, "cash", q,
//		simulation.WithInitialInvestment(500),
//		simulation.WithRequiredRate(0.1),
//		simulation.WithNPVIRR(true),
//	)
//	_ = e.Normal(map[string]variate.Params{"demand": {100, 15}})
//	res, err := e.Run(ctx)
package simul8
