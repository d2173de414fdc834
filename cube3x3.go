package scramble

import "strings"

// cube3x3Length is the WCA-regulation scramble length for 3x3.
const cube3x3Length = 20

var cubeFaces = []string{"R", "L", "U", "D", "F", "B"}

// moveAxis groups moves by rotation axis. Slice moves share the axis
// of the layers they sit between.
var moveAxis = map[string]int{
	"R": 0, "L": 0, "M": 0,
	"U": 1, "D": 1, "E": 1,
	"F": 2, "B": 2, "S": 2,
}

// oppositeFace pairs the two faces on each axis.
var oppositeFace = map[string]string{
	"R": "L", "L": "R",
	"U": "D", "D": "U",
	"F": "B", "B": "F",
}

// adjacentFaces lists the faces sharing an edge with each face, i.e.
// everything off the face's own axis.
var adjacentFaces = map[string][]string{
	"R": {"U", "D", "F", "B"},
	"L": {"U", "D", "F", "B"},
	"U": {"R", "L", "F", "B"},
	"D": {"R", "L", "F", "B"},
	"F": {"R", "L", "U", "D"},
	"B": {"R", "L", "U", "D"},
}

var sliceMoves = []string{"M", "E", "S"}

// modifierSplit picks a turn modifier with the given cumulative
// percentages for plain and inverse; the remainder goes to double.
func (g *Generator) modifierSplit(nonePct, invPct int) string {
	r := g.intn(100)
	switch {
	case r < nonePct:
		return ""
	case r < nonePct+invPct:
		return "'"
	default:
		return "2"
	}
}

// generate3x3 emits a 20-move scramble over all six faces. Consecutive
// moves never share an axis, and the face moved two turns ago is kept
// out of the candidate pool so a pair cannot immediately cancel.
func (g *Generator) generate3x3() string {
	tokens := make([]string, 0, cube3x3Length)
	var last, secondLast string

	for i := 0; i < cube3x3Length; i++ {
		// Every 5th move, usually steer onto a face adjacent to the
		// previous one. Adjacent pairs read harder than alternating
		// opposite faces.
		if i > 0 && i%5 == 0 && g.chance(60) {
			if face := g.pickAdjacent(last, secondLast); face != "" {
				tokens = append(tokens, face+g.modifierSplit(30, 35))
				secondLast, last = last, face
				continue
			}
		}

		face := randomElement(g, g.filterFaces(cubeFaces, last, secondLast))
		tokens = append(tokens, face+g.modifierSplit(33, 33))
		secondLast, last = last, face
	}

	return strings.Join(tokens, " ")
}

// filterFaces removes faces on the previous move's axis plus the face
// from two moves back. If that empties the pool the exclusions relax
// to just the previous face, so a choice always exists.
func (g *Generator) filterFaces(alphabet []string, last, secondLast string) []string {
	cands := make([]string, 0, len(alphabet))
	for _, f := range alphabet {
		if last != "" && moveAxis[f] == moveAxis[last] {
			continue
		}
		if f == secondLast {
			continue
		}
		cands = append(cands, f)
	}
	if len(cands) == 0 {
		for _, f := range alphabet {
			if f != last {
				cands = append(cands, f)
			}
		}
	}
	return cands
}

// pickAdjacent chooses a face adjacent to last, skipping the face from
// two moves back. Returns "" when nothing qualifies.
func (g *Generator) pickAdjacent(last, secondLast string) string {
	if last == "" {
		return ""
	}
	cands := make([]string, 0, 4)
	for _, f := range adjacentFaces[last] {
		if f != secondLast {
			cands = append(cands, f)
		}
	}
	if len(cands) == 0 {
		return ""
	}
	return randomElement(g, cands)
}

// generateCustom3x3 emits a scramble of exactly moveCount tokens.
// Difficulty widens the alphabets: easy drops double turns, hard adds
// slice moves and wide variants.
func (g *Generator) generateCustom3x3(moveCount int, difficulty Difficulty) string {
	if moveCount <= 0 {
		moveCount = cube3x3Length
	}

	faces := cubeFaces
	if difficulty == Hard {
		faces = make([]string, 0, len(cubeFaces)+len(sliceMoves))
		faces = append(faces, cubeFaces...)
		faces = append(faces, sliceMoves...)
	}

	var mods []string
	switch difficulty {
	case Easy:
		mods = []string{"", "'"}
	case Hard:
		mods = []string{"", "'", "2", "w", "w'", "w2"}
	default:
		mods = []string{"", "'", "2"}
	}

	tokens := make([]string, 0, moveCount)
	var last string
	lastAxis := -1

	for i := 0; i < moveCount; i++ {
		cands := make([]string, 0, len(faces))
		for _, f := range faces {
			if f == last || f == oppositeFace[last] {
				continue
			}
			if moveAxis[f] == lastAxis {
				continue
			}
			cands = append(cands, f)
		}
		if len(cands) == 0 {
			for _, f := range faces {
				if f != last {
					cands = append(cands, f)
				}
			}
		}

		face := randomElement(g, cands)
		mod := randomElement(g, mods)
		// Slice moves have no wide form; drop the wide marker and keep
		// the direction.
		if (face == "M" || face == "E" || face == "S") && strings.HasPrefix(mod, "w") {
			mod = strings.TrimPrefix(mod, "w")
		}

		tokens = append(tokens, face+mod)
		last = face
		lastAxis = moveAxis[face]
	}

	return strings.Join(tokens, " ")
}
