// Package brickfolio provides a deterministic simulation engine for
// multi-property real-estate investment growth, with an optional
// dividend-reinvestment stock overlay. It is designed to be local-first
// and auditable: every projection is a pure function of its inputs, so
// the same assumptions always produce the same numbers.
//
// The core functionalities include:
//   - Amortization Math: fixed-payment mortgage installment and
//     remaining-balance calculations.
//   - Portfolio Simulation: per-property valuation, loan and cash-flow
//     accounting across staggered purchase dates, aggregated to
//     portfolio totals at any horizon.
//   - Yearly Series: the full year-0..30 time series used for charts,
//     tables and downstream reporting.
//   - Stock Reinvestment Overlay: a parallel equity position funded by
//     purchase cashback and positive property cash flow, with
//     discounted purchases and optional dividend reinvestment.
//   - Scenario Persistence: named snapshots of inputs and results,
//     keyed by owner, in a human-readable JSONL format.
//
// This package serves as the foundational logic for the `brick`
// command-line tool, ensuring that all projections are consistent and
// based on a single source of truth.
package brickfolio
