// Package scramble generates WCA-style random scramble sequences for
// twisty puzzles.
//
// # Supported puzzles
//
//   - 3x3 (plus the BLD and OH event labels, which scramble identically)
//   - 2x2
//   - Pyraminx
//   - Skewb
//   - Clock
//
// # Quick Start
//
// Generate a scramble for a puzzle type:
//
//	seq := scramble.Generate(scramble.Puzzle3x3)
//	fmt.Println(seq) // e.g. "B U2 R' F D2 L U' ..."
//
// Tune move count and difficulty for the 2x2/3x3 families:
//
//	seq := scramble.GenerateCustom(scramble.Puzzle3x3, 25, scramble.Hard)
//
// # Reproducible output
//
// A seeded Generator replays the same scrambles, which is how the
// daily-challenge feature derives one scramble per calendar day:
//
//	g := scramble.New(scramble.WithSeed(20260827))
//	seq := g.Generate(scramble.PuzzleSkewb)
//
// Every scramble is a single space-delimited string of move tokens in
// the puzzle's standard notation. Generation is pure: no I/O, no state
// shared between calls beyond the random source.
package scramble
