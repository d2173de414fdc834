package scramble

import (
	"errors"
	"testing"
)

func TestParsePuzzleType(t *testing.T) {
	for _, label := range []string{"2x2", "3x3", "3x3 BLD", "3x3 OH", "Pyraminx", "Skewb", "Clock"} {
		pt, err := ParsePuzzleType(label)
		if err != nil {
			t.Errorf("ParsePuzzleType(%q) returned error: %v", label, err)
		}
		if pt.String() != label {
			t.Errorf("ParsePuzzleType(%q) = %q", label, pt)
		}
	}
}

func TestParsePuzzleTypeRejectsUnknown(t *testing.T) {
	for _, label := range []string{"", "4x4", "3X3", "skewb", "3x3 bld"} {
		if _, err := ParsePuzzleType(label); !errors.Is(err, ErrInvalidPuzzleType) {
			t.Errorf("ParsePuzzleType(%q) err = %v, want ErrInvalidPuzzleType", label, err)
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	for _, label := range []string{"easy", "medium", "hard"} {
		d, err := ParseDifficulty(label)
		if err != nil {
			t.Errorf("ParseDifficulty(%q) returned error: %v", label, err)
		}
		if d.String() != label {
			t.Errorf("ParseDifficulty(%q) = %q", label, d)
		}
	}

	if _, err := ParseDifficulty("extreme"); !errors.Is(err, ErrInvalidDifficulty) {
		t.Errorf("ParseDifficulty(extreme) err = %v, want ErrInvalidDifficulty", err)
	}
}

func TestPuzzleTypesListIsValid(t *testing.T) {
	if len(PuzzleTypes) != 7 {
		t.Fatalf("PuzzleTypes has %d entries, want 7", len(PuzzleTypes))
	}
	for _, pt := range PuzzleTypes {
		if !pt.Valid() {
			t.Errorf("PuzzleTypes contains invalid entry %q", pt)
		}
	}
}
