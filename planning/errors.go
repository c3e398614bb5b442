package planning

import "errors"

// ErrContractViolation wraps a failure of the Environment Contract
// surfaced during Simulate: an out-of-range action, or a step that
// produced a non-finite reward.
var ErrContractViolation = errors.New("planning: environment contract violated")
