package model

import "time"

// Settings holds optimizer configuration. The defaults are a completeness vs
// runtime trade-off: a higher pattern cap widens the search space the integer
// program sees, a higher bound multiplier loosens the per-variable bounds,
// and both cost solve time.
type Settings struct {
	// MaxPatternsPerBoardType caps pattern enumeration per board type.
	// Once the cap is hit the search stops and is no longer exhaustive.
	MaxPatternsPerBoardType int `json:"max_patterns_per_board_type"`

	// BoundMultiplier scales the worst-case usage estimate used as the
	// upper bound of each (board type, pattern) count variable.
	BoundMultiplier int `json:"bound_multiplier"`

	// SolveTimeout is the wall-clock limit for one group's solve. Expiry
	// without an incumbent solution fails the whole optimization.
	SolveTimeout time.Duration `json:"solve_timeout"`
}

func DefaultSettings() Settings {
	return Settings{
		MaxPatternsPerBoardType: 1000,
		BoundMultiplier:         2,
		SolveTimeout:            30 * time.Second,
	}
}
