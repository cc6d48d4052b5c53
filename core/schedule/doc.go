// Package schedule implements the team scheduling core: validating raw
// availability submissions into candidates, ranking them by fairness and
// assembling a work team under leader and experience constraints.
//
// The package is pure. Every run takes immutable snapshots and returns
// values; all I/O lives in the surrounding layers.
package schedule
