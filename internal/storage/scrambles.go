package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Scramble is a saved scramble row.
type Scramble struct {
	ScrambleID   string
	Puzzle       string
	ScrambleText string
	MoveCount    int
	Difficulty   *string
	CreatedAt    time.Time
}

// ScrambleRepository provides CRUD operations for saved scrambles.
type ScrambleRepository struct {
	db *DB
}

// NewScrambleRepository creates a new scramble repository.
func NewScrambleRepository(db *DB) *ScrambleRepository {
	return &ScrambleRepository{db: db}
}

// Save stores a scramble and returns its ID. difficulty may be empty
// for standard (non-custom) scrambles.
func (r *ScrambleRepository) Save(puzzle, text, difficulty string) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	var difficultyPtr *string
	if difficulty != "" {
		difficultyPtr = &difficulty
	}

	_, err := r.db.Exec(`
		INSERT INTO scrambles (scramble_id, puzzle, scramble_text, move_count, difficulty, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, puzzle, text, len(strings.Fields(text)), difficultyPtr, createdAt.Format(time.RFC3339))

	if err != nil {
		return "", fmt.Errorf("failed to save scramble: %w", err)
	}

	return id, nil
}

// Get retrieves a scramble by ID. Returns nil when not found.
func (r *ScrambleRepository) Get(scrambleID string) (*Scramble, error) {
	var s Scramble
	var createdAtStr string

	err := r.db.QueryRow(`
		SELECT scramble_id, puzzle, scramble_text, move_count, difficulty, created_at
		FROM scrambles
		WHERE scramble_id = ?
	`, scrambleID).Scan(
		&s.ScrambleID, &s.Puzzle, &s.ScrambleText,
		&s.MoveCount, &s.Difficulty, &createdAtStr,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scramble: %w", err)
	}

	s.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return &s, nil
}

// List returns the most recent scrambles, newest first. puzzle filters
// by puzzle label when non-empty.
func (r *ScrambleRepository) List(puzzle string, limit int) ([]Scramble, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT scramble_id, puzzle, scramble_text, move_count, difficulty, created_at
		FROM scrambles
	`
	args := []any{}
	if puzzle != "" {
		query += " WHERE puzzle = ?"
		args = append(args, puzzle)
	}
	query += " ORDER BY created_at DESC LIMIT ?"
	args = append(args, limit)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list scrambles: %w", err)
	}
	defer rows.Close()

	var out []Scramble
	for rows.Next() {
		var s Scramble
		var createdAtStr string
		if err := rows.Scan(&s.ScrambleID, &s.Puzzle, &s.ScrambleText,
			&s.MoveCount, &s.Difficulty, &createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan scramble: %w", err)
		}
		s.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		out = append(out, s)
	}

	return out, rows.Err()
}

// CountByPuzzle returns the number of saved scrambles per puzzle label.
func (r *ScrambleRepository) CountByPuzzle() (map[string]int, error) {
	rows, err := r.db.Query("SELECT puzzle, COUNT(*) FROM scrambles GROUP BY puzzle")
	if err != nil {
		return nil, fmt.Errorf("failed to count scrambles: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var puzzle string
		var n int
		if err := rows.Scan(&puzzle, &n); err != nil {
			return nil, fmt.Errorf("failed to scan count: %w", err)
		}
		counts[puzzle] = n
	}

	return counts, rows.Err()
}
