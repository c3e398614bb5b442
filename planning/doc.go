// Package planning wraps an env.Environment in a State that can be
// simulated without mutating the state of record.
//
// What & why
//
//	Simulate snapshots the wrapped environment, steps only the snapshot,
//	and validates the result against the Environment Contract before
//	handing back a brand new State. The receiver is never touched: a HOOT
//	driver can call Simulate from many HOO leaves against the same
//	parent State and get back independent, mutually invisible futures.
package planning
