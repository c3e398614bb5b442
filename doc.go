// Package hoot is the root of an online planner for sequential decision
// problems with continuous, bounded, multi-dimensional action spaces.
//
// What is hoot?
//
//	A generative-model planner built from two layers:
//
//	  • hoo   — Hierarchical Optimistic Optimization, a bandit over one
//	            decision's action region, with three variants (depth-capped
//	            LD-HOO, polynomial-bound Poly-HOO, path-truncated t-HOO).
//	  • hoot  — the outer tree that strings HOO instances across imagined
//	            environment states, discounting and backpropagating
//	            simulated returns, and committing one real action at a time.
//
// Why hoot?
//
//   - Works against any environment satisfying the small env.Environment
//     contract — no function approximation, no replay buffer, no network.
//   - Deterministic given a fixed seed and a deterministic environment.
//   - Node reuse: a committed action's sub-tree survives into the next
//     decision instead of being thrown away.
//
// Package layout:
//
//	region/             — axis-aligned hyper-rectangle action regions
//	hoo/                — the HOO bandit and its node partition tree
//	env/                — the environment contract consumed by the planner
//	planning/           — non-destructive state simulation
//	hoot/               — outer decision tree + driver
//	simulate/           — end-to-end run loop, configuration, trace output
//	envs/               — a handful of concrete environments for testing
//	internal/rng/       — deterministic RNG seeding and derivation
//	internal/telemetry/ — planning metrics
//	cmd/hoot/           — CLI front-end
//
// See SPEC_FULL.md and DESIGN.md for the full design and grounding notes.
package hoot
