package scramble

// PuzzleType identifies a puzzle family in the competition event rotation.
//
// BLD and OH are distinct events but scramble identically to 3x3; they
// exist as separate values so callers can label output per event.
type PuzzleType string

const (
	Puzzle2x2      PuzzleType = "2x2"
	Puzzle3x3      PuzzleType = "3x3"
	Puzzle3x3BLD   PuzzleType = "3x3 BLD"
	Puzzle3x3OH    PuzzleType = "3x3 OH"
	PuzzlePyraminx PuzzleType = "Pyraminx"
	PuzzleSkewb    PuzzleType = "Skewb"
	PuzzleClock    PuzzleType = "Clock"
)

// PuzzleTypes lists every supported puzzle in rotation order.
var PuzzleTypes = []PuzzleType{
	Puzzle2x2,
	Puzzle3x3,
	Puzzle3x3BLD,
	Puzzle3x3OH,
	PuzzlePyraminx,
	PuzzleSkewb,
	PuzzleClock,
}

// String returns the canonical display label.
func (p PuzzleType) String() string {
	return string(p)
}

// Valid reports whether p is one of the supported puzzle types.
func (p PuzzleType) Valid() bool {
	switch p {
	case Puzzle2x2, Puzzle3x3, Puzzle3x3BLD, Puzzle3x3OH,
		PuzzlePyraminx, PuzzleSkewb, PuzzleClock:
		return true
	}
	return false
}

// ParsePuzzleType parses a canonical puzzle label (case-sensitive).
// Returns ErrInvalidPuzzleType for anything outside the closed set.
//
// Generation itself is permissive (an unknown type falls back to 3x3,
// matching the behavior collaborators rely on); callers that want
// strict input validation should parse first.
func ParsePuzzleType(s string) (PuzzleType, error) {
	p := PuzzleType(s)
	if !p.Valid() {
		return "", ErrInvalidPuzzleType
	}
	return p, nil
}

// Difficulty tunes the custom 2x2/3x3 generators: it selects the
// modifier alphabet and the allowed move-count range.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// String returns the canonical difficulty label.
func (d Difficulty) String() string {
	return string(d)
}

// Valid reports whether d is a recognized difficulty.
func (d Difficulty) Valid() bool {
	switch d {
	case Easy, Medium, Hard:
		return true
	}
	return false
}

// ParseDifficulty parses a difficulty label.
// Returns ErrInvalidDifficulty for anything outside {easy, medium, hard}.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if !d.Valid() {
		return "", ErrInvalidDifficulty
	}
	return d, nil
}
