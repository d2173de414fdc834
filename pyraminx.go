package scramble

import "strings"

var pyraFaces = []string{"R", "L", "U", "B"}

// pyraOpposite maps each Pyraminx face to the face whose turn most
// directly cancels it.
var pyraOpposite = map[string]string{
	"R": "L", "L": "R",
	"U": "B", "B": "U",
}

// pyraHardPairs are adjacent-face two-move patterns injected to break
// up runs of isolated turns.
var pyraHardPairs = [][2]string{
	{"R", "U"},
	{"U", "L"},
	{"L", "B"},
	{"B", "R"},
}

// Lowercase letters are tip moves: small corner twists independent of
// the main face turns.
var pyraTips = []string{"r", "l", "u", "b"}

const (
	pyraMinLength = 8
	pyraMaxLength = 10
)

// generatePyraminx emits 8-10 face moves followed by 0-2 tip moves,
// each tip used at most once.
func (g *Generator) generatePyraminx() string {
	count := g.randomInt(pyraMinLength, pyraMaxLength)
	tokens := make([]string, 0, count+2)
	var last, secondLast string

	for iter := 0; len(tokens) < count; iter++ {
		// Every 3rd round, spend two moves on a hard pair when there
		// is room and the pair's lead move does not repeat the last.
		if iter > 0 && iter%3 == 0 && count-len(tokens) >= 2 {
			if pair, ok := g.pickPyraPair(last); ok {
				tokens = append(tokens, pair[0]+g.pyraModifier(), pair[1]+g.pyraModifier())
				secondLast, last = pair[0], pair[1]
				continue
			}
		}

		cands := make([]string, 0, len(pyraFaces))
		for _, f := range pyraFaces {
			if f == last {
				continue
			}
			if secondLast != "" && f == pyraOpposite[secondLast] {
				continue
			}
			cands = append(cands, f)
		}
		if len(cands) == 0 {
			for _, f := range pyraFaces {
				if f != last {
					cands = append(cands, f)
				}
			}
		}

		face := randomElement(g, cands)
		tokens = append(tokens, face+g.pyraModifier())
		secondLast, last = last, face
	}

	// Tip moves, 0-2, no tip twice.
	avail := make([]string, len(pyraTips))
	copy(avail, pyraTips)
	for n := g.intn(3); n > 0; n-- {
		j := g.intn(len(avail))
		tip := avail[j]
		avail = append(avail[:j], avail[j+1:]...)

		mod := ""
		if g.chance(50) {
			mod = "'"
		}
		tokens = append(tokens, tip+mod)
	}

	return strings.Join(tokens, " ")
}

func (g *Generator) pickPyraPair(last string) ([2]string, bool) {
	cands := make([][2]string, 0, len(pyraHardPairs))
	for _, p := range pyraHardPairs {
		if p[0] != last {
			cands = append(cands, p)
		}
	}
	if len(cands) == 0 {
		return [2]string{}, false
	}
	return randomElement(g, cands), true
}

// Pyraminx notation only uses plain and inverse turns.
func (g *Generator) pyraModifier() string {
	if g.chance(60) {
		return "'"
	}
	return ""
}
