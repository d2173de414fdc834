package scramble

import "errors"

// Sentinel errors for the scramble package.
var (
	ErrInvalidPuzzleType = errors.New("scramble: invalid puzzle type")
	ErrInvalidDifficulty = errors.New("scramble: invalid difficulty")
)
