// Package rng centralizes deterministic random-number-generator
// construction and derivation so every component in a run — HOO bandits,
// environment resets, driver tie-breaks — draws from seeds traceable back
// to a single run seed.
//
// Grounded on the same SplitMix64-style seed mixing this codebase already
// uses for deterministic graph algorithms: derive a child seed from a
// parent seed plus a small integer label, never reseed from wall-clock
// time.
package rng
