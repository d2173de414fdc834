package scramble

import "strings"

// Skewb moves are corner turns named by the fixed-corner notation.
var skewbCorners = []string{"R", "U", "L", "B"}

// skewbAdjacent maps each corner to the corners its turn overlaps
// with; chaining adjacent corners disturbs more pieces per move.
var skewbAdjacent = map[string][]string{
	"R": {"U", "B"},
	"U": {"R", "L"},
	"L": {"U", "B"},
	"B": {"R", "L"},
}

const skewbLength = 9

// generateSkewb emits exactly 9 corner turns; a corner never repeats
// back to back, and modifiers are limited to plain and inverse.
func (g *Generator) generateSkewb() string {
	tokens := make([]string, 0, skewbLength)
	var last, secondLast string

	for i := 0; i < skewbLength; i++ {
		var corner string
		if last != "" && g.chance(70) {
			corner = g.pickSkewbAdjacent(last, secondLast)
		}
		if corner == "" {
			cands := make([]string, 0, len(skewbCorners))
			for _, c := range skewbCorners {
				if c != last {
					cands = append(cands, c)
				}
			}
			corner = randomElement(g, cands)
		}

		mod := ""
		if g.chance(55) {
			mod = "'"
		}
		tokens = append(tokens, corner+mod)
		secondLast, last = last, corner
	}

	return strings.Join(tokens, " ")
}

func (g *Generator) pickSkewbAdjacent(last, secondLast string) string {
	cands := make([]string, 0, 2)
	for _, c := range skewbAdjacent[last] {
		if c != secondLast {
			cands = append(cands, c)
		}
	}
	if len(cands) == 0 {
		return ""
	}
	return randomElement(g, cands)
}
