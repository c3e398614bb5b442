// Package hoot implements the outer decision-tree driver: it composes a
// hoo.Bandit at every decision node, simulates candidate actions through
// a planning.State, and backpropagates discounted returns up the visited
// path before committing one action and sliding the root forward.
//
// What & why
//
//	A Node owns a HOO bandit whose region is the action space at that
//	node's planning.State. SelectAction asks the bandit for a leaf,
//	turns it into an action, and either reuses a previously simulated
//	child (keyed by the leaf center's canonical string) or simulates a
//	new one — successor states are never re-simulated once memoized.
//	Backpropagate discounts the reward sequence collected along one
//	root-to-leaf trajectory and feeds the normalized tail to each
//	ancestor's bandit, walking back up to the root.
//
//	Driver runs n_iter such trajectories from the current root, then
//	commits the bandit's best action: Advance looks up the matching
//	child, resets its depths to treat it as the new root, and discards
//	every sibling — the committed subtree survives, nothing else does.
package hoot
