// Package simulate drives a HOOT run end-to-end: it resolves an
// environment by name, builds the initial planning state and outer
// decision tree, runs a fixed number of committed real-world actions,
// and emits the resulting trajectory as a Trace.
//
// What & why
//
//	Config mirrors the original experiment runner's configuration
//	dataclass field-for-field (algorithm, environment, horizon,
//	planning-iteration budget, discount, HOO constants). EnvFactory is
//	this package's analogue of the original's name-to-constructor
//	lookup table, populated by concrete environments registering
//	themselves at init time rather than hand-maintained here.
package simulate
