// Package env defines the Environment Contract: the capability set a
// simulated or real system must expose for planning.State to drive it.
//
// What & why
//
//	An Environment is deliberately a small interface rather than a base
//	type to embed: any struct with these four methods plugs into
//	planning.Simulate and, from there, the whole hoot driver, without
//	inheriting anything. Step's error return is this package's one
//	addition beyond a bare reward/done pair — it is how a contract
//	violation (an action outside the declared region, a non-finite
//	reward) is reported, since Go has no exception channel to raise one
//	through.
package env
