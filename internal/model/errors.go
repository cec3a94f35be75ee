package model

import "errors"

// Optimization failure taxonomy. The engine wraps these sentinels with the
// offending cross-section and values, so callers can classify failures with
// errors.Is while still surfacing a specific message.
var (
	// ErrInvalidInput marks a cut or board with a non-positive length,
	// quantity or cross-section, or a negative price.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoBoardsForDimension marks a cross-section with cut demand but no
	// purchasable board offerings.
	ErrNoBoardsForDimension = errors.New("no boards available for dimension")

	// ErrCutExceedsMaxBoard marks a cut longer than every board offered in
	// its cross-section group.
	ErrCutExceedsMaxBoard = errors.New("cut exceeds maximum board length")

	// ErrNoPatternForLength marks a required length that no generated
	// cutting pattern can produce. Group validation makes this unreachable
	// in practice, but it is checked before every solve.
	ErrNoPatternForLength = errors.New("no cutting pattern produces length")

	// ErrNoFeasiblePlan marks a group whose integer program came back
	// infeasible, errored, or ran out of time without a usable solution.
	ErrNoFeasiblePlan = errors.New("no feasible cutting plan")
)
