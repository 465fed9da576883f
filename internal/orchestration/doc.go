// Package orchestration coordinates the baseline-versus-scenario comparison:
// it runs the model engine once per trajectory (concurrently), aligns the two
// series by year, and derives the per-year and cumulative deltas plus the
// terminal-year summary.
package orchestration
