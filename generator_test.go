package scramble

import (
	"regexp"
	"strings"
	"testing"
)

const samples = 1000

// faceOf returns the face/position letter of a move token.
func faceOf(token string) string {
	return token[:1]
}

func Test3x3HasTwentyMoves(t *testing.T) {
	g := New(WithSeed(1))
	for i := 0; i < samples; i++ {
		tokens := strings.Fields(g.Generate(Puzzle3x3))
		if len(tokens) != 20 {
			t.Fatalf("3x3 scramble has %d tokens, want 20: %v", len(tokens), tokens)
		}
	}
}

func Test3x3NoAxisRepeat(t *testing.T) {
	g := New(WithSeed(2))
	for i := 0; i < samples; i++ {
		tokens := strings.Fields(g.Generate(Puzzle3x3))
		for j := 1; j < len(tokens); j++ {
			a, b := faceOf(tokens[j-1]), faceOf(tokens[j])
			if moveAxis[a] == moveAxis[b] {
				t.Fatalf("adjacent moves %s %s share an axis in %v", tokens[j-1], tokens[j], tokens)
			}
		}
	}
}

func Test3x3NoImmediateCancellation(t *testing.T) {
	g := New(WithSeed(3))
	for i := 0; i < samples; i++ {
		tokens := strings.Fields(g.Generate(Puzzle3x3))
		for j := 2; j < len(tokens); j++ {
			if faceOf(tokens[j]) == faceOf(tokens[j-2]) {
				t.Fatalf("move %s repeats the face from two moves back in %v", tokens[j], tokens)
			}
		}
	}
}

func Test3x3TokenShape(t *testing.T) {
	re := regexp.MustCompile(`^[RLUDFB]['2]?$`)
	g := New(WithSeed(4))
	for i := 0; i < 100; i++ {
		for _, tok := range strings.Fields(g.Generate(Puzzle3x3)) {
			if !re.MatchString(tok) {
				t.Fatalf("unexpected 3x3 token %q", tok)
			}
		}
	}
}

func TestBLDAndOHMatch3x3Shape(t *testing.T) {
	g := New(WithSeed(5))
	for _, pt := range []PuzzleType{Puzzle3x3BLD, Puzzle3x3OH} {
		for i := 0; i < 100; i++ {
			tokens := strings.Fields(g.Generate(pt))
			if len(tokens) != 20 {
				t.Fatalf("%s scramble has %d tokens, want 20", pt, len(tokens))
			}
		}
	}
}

func Test2x2Invariants(t *testing.T) {
	re := regexp.MustCompile(`^[RUF]['2]?$`)
	g := New(WithSeed(6))
	for i := 0; i < samples; i++ {
		tokens := strings.Fields(g.Generate(Puzzle2x2))
		if len(tokens) < 9 || len(tokens) > 11 {
			t.Fatalf("2x2 scramble has %d tokens, want 9-11: %v", len(tokens), tokens)
		}
		for j, tok := range tokens {
			if !re.MatchString(tok) {
				t.Fatalf("unexpected 2x2 token %q", tok)
			}
			if j > 0 && faceOf(tok) == faceOf(tokens[j-1]) {
				t.Fatalf("2x2 repeats face %s back to back in %v", faceOf(tok), tokens)
			}
		}
	}
}

func TestPyraminxInvariants(t *testing.T) {
	baseRe := regexp.MustCompile(`^[RLUB]'?$`)
	tipRe := regexp.MustCompile(`^[rlub]'?$`)
	g := New(WithSeed(7))

	for i := 0; i < samples; i++ {
		tokens := strings.Fields(g.Generate(PuzzlePyraminx))
		if len(tokens) < 8 || len(tokens) > 12 {
			t.Fatalf("Pyraminx scramble has %d tokens, want 8-12: %v", len(tokens), tokens)
		}

		// Base moves come first, tips last.
		base := 0
		for base < len(tokens) && baseRe.MatchString(tokens[base]) {
			base++
		}
		if base < 8 || base > 10 {
			t.Fatalf("Pyraminx has %d base moves, want 8-10: %v", base, tokens)
		}

		tips := tokens[base:]
		if len(tips) > 2 {
			t.Fatalf("Pyraminx has %d tip moves, want 0-2: %v", len(tips), tokens)
		}
		seen := map[string]bool{}
		for _, tip := range tips {
			if !tipRe.MatchString(tip) {
				t.Fatalf("unexpected tip token %q in %v", tip, tokens)
			}
			letter := faceOf(tip)
			if seen[letter] {
				t.Fatalf("tip %s used twice in %v", letter, tokens)
			}
			seen[letter] = true
		}

		for j := 1; j < base; j++ {
			if faceOf(tokens[j]) == faceOf(tokens[j-1]) {
				t.Fatalf("Pyraminx repeats %s back to back in %v", faceOf(tokens[j]), tokens)
			}
		}
	}
}

func TestSkewbInvariants(t *testing.T) {
	re := regexp.MustCompile(`^[RULB]'?( [RULB]'?){8}$`)
	g := New(WithSeed(8))
	for i := 0; i < samples; i++ {
		s := g.Generate(PuzzleSkewb)
		if !re.MatchString(s) {
			t.Fatalf("Skewb scramble %q does not match expected shape", s)
		}
		tokens := strings.Fields(s)
		for j := 1; j < len(tokens); j++ {
			if faceOf(tokens[j]) == faceOf(tokens[j-1]) {
				t.Fatalf("Skewb repeats corner %s back to back in %v", faceOf(tokens[j]), tokens)
			}
		}
	}
}

func TestClockInvariants(t *testing.T) {
	pinRe := regexp.MustCompile(`^\([ud],[ud],[ud],[ud]\)$`)
	dialRe := regexp.MustCompile(`^(UL|UR|DR|DL|ALL)[0-6]$`)
	g := New(WithSeed(9))

	for i := 0; i < samples; i++ {
		tokens := strings.Fields(g.Generate(PuzzleClock))
		if len(tokens) != 12 {
			t.Fatalf("Clock scramble has %d tokens, want 12: %v", len(tokens), tokens)
		}
		if !pinRe.MatchString(tokens[0]) {
			t.Fatalf("unexpected pin token %q", tokens[0])
		}
		if down := strings.Count(tokens[0], "d"); down < 2 {
			t.Fatalf("pin token %q has %d pins down, want at least 2", tokens[0], down)
		}
		if tokens[6] != "y2" {
			t.Fatalf("token 7 is %q, want y2: %v", tokens[6], tokens)
		}
		for _, j := range []int{1, 2, 3, 4, 5, 7, 8, 9, 10, 11} {
			if !dialRe.MatchString(tokens[j]) {
				t.Fatalf("unexpected dial token %q in %v", tokens[j], tokens)
			}
		}
	}
}

func TestCustom3x3MoveCount(t *testing.T) {
	g := New(WithSeed(10))
	for i := 0; i < 100; i++ {
		tokens := strings.Fields(g.GenerateCustom(Puzzle3x3, 15, Medium))
		if len(tokens) != 15 {
			t.Fatalf("custom 3x3 has %d tokens, want 15", len(tokens))
		}
	}

	// Zero or negative counts use the regulation default.
	tokens := strings.Fields(g.GenerateCustom(Puzzle3x3, 0, Medium))
	if len(tokens) != 20 {
		t.Fatalf("custom 3x3 with zero count has %d tokens, want 20", len(tokens))
	}
}

func TestCustom3x3Alphabets(t *testing.T) {
	easyRe := regexp.MustCompile(`^[RLUDFB]'?$`)
	mediumRe := regexp.MustCompile(`^[RLUDFB]['2]?$`)
	hardRe := regexp.MustCompile(`^([RLUDFB]w?['2]?|[MES]['2]?)$`)

	g := New(WithSeed(11))
	cases := []struct {
		difficulty Difficulty
		re         *regexp.Regexp
	}{
		{Easy, easyRe},
		{Medium, mediumRe},
		{Hard, hardRe},
	}
	for _, tc := range cases {
		for i := 0; i < 200; i++ {
			for _, tok := range strings.Fields(g.GenerateCustom(Puzzle3x3, 20, tc.difficulty)) {
				if !tc.re.MatchString(tok) {
					t.Fatalf("unexpected %s token %q", tc.difficulty, tok)
				}
			}
		}
	}
}

func TestCustom3x3NoAxisRepeat(t *testing.T) {
	g := New(WithSeed(12))
	for i := 0; i < samples; i++ {
		tokens := strings.Fields(g.GenerateCustom(Puzzle3x3, 25, Hard))
		for j := 1; j < len(tokens); j++ {
			a, b := faceOf(tokens[j-1]), faceOf(tokens[j])
			if moveAxis[a] == moveAxis[b] {
				t.Fatalf("adjacent custom moves %s %s share an axis in %v", tokens[j-1], tokens[j], tokens)
			}
		}
	}
}

func TestCustom2x2MoveCountClamping(t *testing.T) {
	g := New(WithSeed(13))
	cases := []struct {
		requested  int
		difficulty Difficulty
		want       int
	}{
		{5, Easy, 8},
		{20, Easy, 8},
		{10, Medium, 10},
		{5, Medium, 9},
		{15, Medium, 11},
		{5, Hard, 11},
		{20, Hard, 20},
	}
	for _, tc := range cases {
		tokens := strings.Fields(g.GenerateCustom(Puzzle2x2, tc.requested, tc.difficulty))
		if len(tokens) != tc.want {
			t.Errorf("custom 2x2 (%d, %s) has %d tokens, want %d",
				tc.requested, tc.difficulty, len(tokens), tc.want)
		}
	}
}

func TestCustom2x2Invariants(t *testing.T) {
	easyRe := regexp.MustCompile(`^[RUF]'?$`)
	g := New(WithSeed(14))
	for i := 0; i < samples; i++ {
		tokens := strings.Fields(g.GenerateCustom(Puzzle2x2, 8, Easy))
		for j, tok := range tokens {
			if !easyRe.MatchString(tok) {
				t.Fatalf("unexpected easy 2x2 token %q", tok)
			}
			if j > 0 && faceOf(tok) == faceOf(tokens[j-1]) {
				t.Fatalf("custom 2x2 repeats face back to back in %v", tokens)
			}
		}
	}
}

func TestCustomFixedPuzzlesIgnoreParameters(t *testing.T) {
	g := New(WithSeed(15))

	if n := len(strings.Fields(g.GenerateCustom(PuzzleSkewb, 30, Hard))); n != 9 {
		t.Errorf("custom Skewb has %d tokens, want 9", n)
	}
	tokens := strings.Fields(g.GenerateCustom(PuzzleClock, 3, Easy))
	if len(tokens) != 12 || tokens[6] != "y2" {
		t.Errorf("custom Clock does not match standard shape: %v", tokens)
	}
	if n := len(strings.Fields(g.GenerateCustom(PuzzlePyraminx, 50, Hard))); n < 8 || n > 12 {
		t.Errorf("custom Pyraminx has %d tokens, want 8-12", n)
	}
}

func TestUnknownTypeFallsBackTo3x3(t *testing.T) {
	g := New(WithSeed(16))

	tokens := strings.Fields(g.Generate(PuzzleType("unknown-type")))
	if len(tokens) != 20 {
		t.Errorf("unknown type scramble has %d tokens, want 20", len(tokens))
	}

	hardRe := regexp.MustCompile(`^([RLUDFB]w?['2]?|[MES]['2]?)$`)
	tokens = strings.Fields(g.GenerateCustom(PuzzleType("unknown-type"), 12, Hard))
	if len(tokens) != 12 {
		t.Errorf("unknown custom scramble has %d tokens, want 12", len(tokens))
	}
	for _, tok := range tokens {
		if !hardRe.MatchString(tok) {
			t.Errorf("unexpected fallback token %q", tok)
		}
	}
}

func TestScramblesVary(t *testing.T) {
	g := New(WithSeed(17))
	seen := make(map[string]int, samples)
	for i := 0; i < samples; i++ {
		seen[g.Generate(Puzzle3x3)]++
	}
	dupes := samples - len(seen)
	if dupes >= 5 {
		t.Errorf("%d duplicate scrambles in %d samples", dupes, samples)
	}
}

func TestSeededGeneratorsReplay(t *testing.T) {
	a := New(WithSeed(42))
	b := New(WithSeed(42))
	for _, pt := range PuzzleTypes {
		for i := 0; i < 10; i++ {
			sa, sb := a.Generate(pt), b.Generate(pt)
			if sa != sb {
				t.Fatalf("seeded generators diverged for %s: %q vs %q", pt, sa, sb)
			}
		}
	}
}

func TestPackageLevelFunctions(t *testing.T) {
	if n := len(strings.Fields(Generate(Puzzle3x3))); n != 20 {
		t.Errorf("Generate(3x3) has %d tokens, want 20", n)
	}
	if n := len(strings.Fields(GenerateCustom(Puzzle3x3, 15, Medium))); n != 15 {
		t.Errorf("GenerateCustom(3x3, 15) has %d tokens, want 15", n)
	}
	// Unknown difficulty falls back to medium.
	if n := len(strings.Fields(GenerateCustom(Puzzle2x2, 10, Difficulty("extreme")))); n != 10 {
		t.Errorf("GenerateCustom with bad difficulty has %d tokens, want 10", n)
	}
}
