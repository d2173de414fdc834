package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/cubetools/scramble"
	"github.com/cubetools/scramble/internal/storage"
)

var practicePuzzle string

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Interactive practice mode",
	Long: `Start an interactive TUI that deals scrambles one after another.

Keyboard shortcuts:
  n/space - Next scramble
  s       - Save the current scramble to history
  tab     - Cycle to the next puzzle type
  1-7     - Jump to a puzzle type
  q/Esc   - Quit`,
	RunE: runPractice,
}

func init() {
	rootCmd.AddCommand(practiceCmd)
	practiceCmd.Flags().StringVar(&practicePuzzle, "puzzle", "3x3", "Puzzle type to start with")
}

type tickMsg time.Time

type scrambleSavedMsg struct {
	id  string
	err error
}

type practiceModel struct {
	generator *scramble.Generator
	repo      *storage.ScrambleRepository

	puzzleIdx int
	current   string
	dealt     int
	savedID   string
	startTime time.Time
	elapsed   time.Duration

	width    int
	height   int
	err      error
	quitting bool
}

func newPracticeModel(repo *storage.ScrambleRepository, start scramble.PuzzleType) *practiceModel {
	idx := 0
	for i, pt := range scramble.PuzzleTypes {
		if pt == start {
			idx = i
			break
		}
	}

	m := &practiceModel{
		generator: scramble.New(),
		repo:      repo,
		puzzleIdx: idx,
	}
	m.deal()
	return m
}

func (m *practiceModel) puzzle() scramble.PuzzleType {
	return scramble.PuzzleTypes[m.puzzleIdx]
}

func (m *practiceModel) deal() {
	m.current = m.generator.Generate(m.puzzle())
	m.dealt++
	m.savedID = ""
	m.startTime = time.Now()
	m.elapsed = 0
}

func (m *practiceModel) Init() tea.Cmd {
	return m.tickCmd()
}

func (m *practiceModel) tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *practiceModel) saveCurrent() tea.Cmd {
	seq := m.current
	puzzle := m.puzzle().String()
	return func() tea.Msg {
		id, err := m.repo.Save(puzzle, seq, "")
		return scrambleSavedMsg{id: id, err: err}
	}
}

func (m *practiceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "n", " ", "enter":
			m.deal()

		case "s":
			if m.savedID == "" {
				return m, m.saveCurrent()
			}

		case "tab":
			m.puzzleIdx = (m.puzzleIdx + 1) % len(scramble.PuzzleTypes)
			m.deal()

		case "1", "2", "3", "4", "5", "6", "7":
			m.puzzleIdx = int(msg.String()[0] - '1')
			m.deal()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		m.elapsed = time.Since(m.startTime)
		return m, m.tickCmd()

	case scrambleSavedMsg:
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.savedID = msg.id
		}
	}

	return m, nil
}

func (m *practiceModel) View() string {
	if m.quitting {
		return fmt.Sprintf("Dealt %d scrambles. Goodbye!\n", m.dealt)
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Scramble Practice"))
	b.WriteString("\n\n")

	// Puzzle selector line
	var labels []string
	for i, pt := range scramble.PuzzleTypes {
		label := fmt.Sprintf("%d:%s", i+1, pt)
		if i == m.puzzleIdx {
			label = puzzleStyle.Render("[" + label + "]")
		} else {
			label = statusStyle.Render(label)
		}
		labels = append(labels, label)
	}
	b.WriteString(strings.Join(labels, " "))
	b.WriteString("\n\n")

	b.WriteString(moveStyle.Render(m.current))
	b.WriteString("\n\n")

	b.WriteString(statusStyle.Render(fmt.Sprintf("Timer: %s   Dealt: %d", m.formatElapsed(), m.dealt)))
	b.WriteString("\n")

	if m.savedID != "" {
		b.WriteString(statusStyle.Render("Saved: " + m.savedID))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Keys: n=next  s=save  tab=puzzle  1-7=jump  q=quit"))
	b.WriteString("\n")

	return b.String()
}

func (m *practiceModel) formatElapsed() string {
	if m.elapsed < time.Minute {
		return fmt.Sprintf("%.1fs", m.elapsed.Seconds())
	}
	mins := int(m.elapsed.Minutes())
	secs := m.elapsed.Seconds() - float64(mins*60)
	return fmt.Sprintf("%d:%04.1f", mins, secs)
}

func runPractice(cmd *cobra.Command, args []string) error {
	pt, err := scramble.ParsePuzzleType(practicePuzzle)
	if err != nil {
		return fmt.Errorf("unknown puzzle type %q", practicePuzzle)
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	model := newPracticeModel(storage.NewScrambleRepository(db), pt)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
