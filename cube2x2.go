package scramble

import "strings"

// 2x2 scrambles only need three of the six faces: turning R and L (or
// U and D) in one scramble just rotates the whole cube.
var faces2x2 = []string{"R", "U", "F"}

// hardPairs2x2 are face pairs that tend to produce awkward-to-read
// states on a 2x2; the generator occasionally steers onto them.
var hardPairs2x2 = [][2]string{
	{"R", "U"},
	{"U", "F"},
	{"F", "R"},
}

const (
	cube2x2MinLength = 9
	cube2x2MaxLength = 11
)

// generate2x2 emits 9-11 moves over {R, U, F} with no immediate face
// repeat. The three faces sit on distinct axes, so the axis rule from
// 3x3 reduces to excluding the previous face.
func (g *Generator) generate2x2() string {
	count := g.randomInt(cube2x2MinLength, cube2x2MaxLength)
	tokens := make([]string, 0, count)
	var last string

	for i := 0; i < count; i++ {
		var face string
		if i > 0 && i%3 == 0 && g.chance(60) {
			face = g.pickHardPair2x2(last)
		}
		if face == "" {
			face = randomElement(g, g.filterFaces(faces2x2, last, ""))
		}

		tokens = append(tokens, face+g.modifierSplit(30, 35))
		last = face
	}

	return strings.Join(tokens, " ")
}

// pickHardPair2x2 selects the lead face of a hard pair whose lead
// differs from the previous move. Returns "" when none qualifies.
func (g *Generator) pickHardPair2x2(last string) string {
	cands := make([]string, 0, len(hardPairs2x2))
	for _, p := range hardPairs2x2 {
		if p[0] != last {
			cands = append(cands, p[0])
		}
	}
	if len(cands) == 0 {
		return ""
	}
	return randomElement(g, cands)
}

// generateCustom2x2 emits a 2x2 scramble with a difficulty-clamped
// move count: easy always uses 8, hard floors at 11, medium stays in
// the regulation 9-11 window.
func (g *Generator) generateCustom2x2(moveCount int, difficulty Difficulty) string {
	if moveCount <= 0 {
		moveCount = 10
	}
	switch difficulty {
	case Easy:
		moveCount = 8
	case Hard:
		if moveCount < 11 {
			moveCount = 11
		}
	default:
		if moveCount < cube2x2MinLength {
			moveCount = cube2x2MinLength
		}
		if moveCount > cube2x2MaxLength {
			moveCount = cube2x2MaxLength
		}
	}

	mods := []string{"", "'", "2"}
	if difficulty == Easy {
		mods = []string{"", "'"}
	}

	tokens := make([]string, 0, moveCount)
	var last string
	for i := 0; i < moveCount; i++ {
		cands := make([]string, 0, len(faces2x2))
		for _, f := range faces2x2 {
			if f != last {
				cands = append(cands, f)
			}
		}
		face := randomElement(g, cands)
		tokens = append(tokens, face+randomElement(g, mods))
		last = face
	}

	return strings.Join(tokens, " ")
}
