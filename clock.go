package scramble

import (
	"fmt"
	"strings"
)

// clockPositions is the dial order used for both halves of a Clock
// scramble.
var clockPositions = []string{"UL", "UR", "DR", "DL", "ALL"}

// generateClock emits the fixed Clock shape: a pin configuration,
// five dial turns, a y2 flip, and five more dial turns. 12 tokens.
func (g *Generator) generateClock() string {
	// Pin state for UR, DR, DL, UL. At least two pins stay down so the
	// scramble cannot degenerate into a single-dial twiddle.
	pins := make([]string, 4)
	down := 0
	for i := range pins {
		if g.chance(50) {
			pins[i] = "d"
			down++
		} else {
			pins[i] = "u"
		}
	}
	for down < 2 {
		i := g.intn(len(pins))
		if pins[i] == "u" {
			pins[i] = "d"
			down++
		}
	}

	tokens := make([]string, 0, 12)
	tokens = append(tokens, "("+strings.Join(pins, ",")+")")
	for _, pos := range clockPositions {
		tokens = append(tokens, fmt.Sprintf("%s%d", pos, g.intn(7)))
	}
	tokens = append(tokens, "y2")
	for _, pos := range clockPositions {
		tokens = append(tokens, fmt.Sprintf("%s%d", pos, g.intn(7)))
	}

	return strings.Join(tokens, " ")
}
