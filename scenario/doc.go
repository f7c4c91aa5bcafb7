// Package scenario loads a complete simulation setup (template, query,
// distributions and finance settings) from a TOML or YAML document.
//
// A TOML scenario:
//
//	simulations = 1000
//	target      = "cash"
//	query       = "select demand*(price-cost) as cash from df"
//	seed        = 42
//	periods     = ["year1", "year2"]
//
//	[finance]
//	initial_investment = -500.0
//	required_rate      = 0.1
//	npv_irr            = true
//
//	[[variables]]
//	name   = "demand"
//	values = [100.0, 110.0]
//
//	[[distributions]]
//	family = "normal"
//	name   = "demand"
//	params = [100.0, 10.0]
//
// The YAML form uses the same keys. Distributions are declared in document
// order, so a later entry for the same variable replaces an earlier one
// unless strict = true.
package scenario
