// Package envs supplies concrete env.Environment implementations: a
// 1-D test function for exercising planning in isolation, a continuous
// cart-pole for a genuine control task, and a mountain-car variant
// recovered from the reference implementation's environment set.
//
// Every environment registers an EnvFactory-compatible constructor with
// the simulate package at init time, mirroring the reference
// implementation's name-to-constructor lookup table.
package envs
