// Package finplan provides the deterministic computation core for a
// personal financial planner: historical-return analysis, multi-year
// portfolio projection, and German income-tax estimation.
//
// The core functionalities include:
//   - Return Analysis: turning a monthly price series into an annualized
//     return, volatility, Sharpe ratio, and maximum drawdown.
//   - Return Defaults: a static policy table mapping asset types and
//     exchange-suffixed symbols to default expected annual returns.
//   - Projection: a month-by-month compounding simulator that applies
//     recurring savings plans and produces a scenario-adjusted net-worth
//     trajectory with per-symbol breakdowns.
//   - German Tax: the published progressive income-tax formula with
//     income splitting, flat-rate capital-gains tax with saver allowance,
//     solidarity surcharge, church tax, and capped social-insurance
//     contribution estimates.
//   - Plan Documents: encoding and decoding of the JSONL plan files that
//     feed the `fpl` command-line tool.
//
// Every computation in this package is a pure function over in-memory
// values: no I/O and no shared state. Zero dates default to today, so
// anchor them explicitly where reproducible output matters. Callers may
// invoke the computations concurrently; identical inputs produce
// identical outputs.
//
// This package serves as the foundational logic for the `fpl`
// command-line tool.
package finplan
