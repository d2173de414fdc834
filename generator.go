package scramble

import "math/rand"

// Generator produces scramble sequences. The zero value (and New with
// no options) draws from the process-wide random source and is safe
// for concurrent use. A Generator built with WithSeed or WithRand owns
// a private source and must be confined to one goroutine.
type Generator struct {
	rng *rand.Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed makes the Generator deterministic: two Generators with the
// same seed emit identical scramble sequences in the same call order.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies an explicit random source, mainly for tests.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) {
		g.rng = rng
	}
}

// New creates a Generator.
func New(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var defaultGenerator = New()

// Generate returns a scramble for the given puzzle type using the
// package default Generator.
func Generate(pt PuzzleType) string {
	return defaultGenerator.Generate(pt)
}

// GenerateCustom returns a difficulty/move-count tuned scramble using
// the package default Generator.
func GenerateCustom(pt PuzzleType, moveCount int, difficulty Difficulty) string {
	return defaultGenerator.GenerateCustom(pt, moveCount, difficulty)
}

// Generate returns a standard competition-style scramble for the given
// puzzle type. An unrecognized type falls back to the 3x3 generator;
// use ParsePuzzleType first for strict validation.
func (g *Generator) Generate(pt PuzzleType) string {
	switch pt {
	case Puzzle2x2:
		return g.generate2x2()
	case Puzzle3x3, Puzzle3x3BLD, Puzzle3x3OH:
		return g.generate3x3()
	case PuzzlePyraminx:
		return g.generatePyraminx()
	case PuzzleSkewb:
		return g.generateSkewb()
	case PuzzleClock:
		return g.generateClock()
	default:
		return g.generate3x3()
	}
}

// GenerateCustom returns a scramble tuned by moveCount and difficulty.
// Only the 2x2 and 3x3 families honor the parameters; Pyraminx, Skewb,
// and Clock have fixed competition shapes and fall back to their
// standard generators. An unrecognized type or difficulty falls back
// to the custom 3x3 path with medium defaults.
func (g *Generator) GenerateCustom(pt PuzzleType, moveCount int, difficulty Difficulty) string {
	if !difficulty.Valid() {
		difficulty = Medium
	}
	switch pt {
	case Puzzle2x2:
		return g.generateCustom2x2(moveCount, difficulty)
	case PuzzlePyraminx, PuzzleSkewb, PuzzleClock:
		return g.Generate(pt)
	default:
		return g.generateCustom3x3(moveCount, difficulty)
	}
}
