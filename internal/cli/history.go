package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cubetools/scramble/internal/storage"
)

var (
	historyPuzzle string
	historyLimit  int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect saved scrambles",
	Long:  `Commands for listing and showing scrambles saved with 'scramble gen --save'.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent saved scrambles",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <scramble-id>",
	Short: "Show a saved scramble",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.AddCommand(historyListCmd)
	historyListCmd.Flags().StringVar(&historyPuzzle, "puzzle", "", "Filter by puzzle label")
	historyListCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of scrambles to display")

	historyCmd.AddCommand(historyShowCmd)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewScrambleRepository(db)
	scrambles, err := repo.List(historyPuzzle, historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list scrambles: %w", err)
	}

	if len(scrambles) == 0 {
		fmt.Println("No saved scrambles yet")
		fmt.Println("Save one with: scramble gen 3x3 --save")
		return nil
	}

	fmt.Printf("%-36s  %-19s  %-10s  %-6s  %s\n", "ID", "Created", "Puzzle", "Moves", "Difficulty")
	fmt.Println("------------------------------------  -------------------  ----------  ------  ----------")

	for _, s := range scrambles {
		diff := "-"
		if s.Difficulty != nil {
			diff = *s.Difficulty
		}
		fmt.Printf("%-36s  %-19s  %-10s  %-6d  %s\n",
			s.ScrambleID,
			s.CreatedAt.Format("2006-01-02 15:04:05"),
			s.Puzzle,
			s.MoveCount,
			diff,
		)
	}

	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewScrambleRepository(db)
	s, err := repo.Get(args[0])
	if err != nil {
		return fmt.Errorf("failed to get scramble: %w", err)
	}
	if s == nil {
		return fmt.Errorf("scramble not found: %s", args[0])
	}

	fmt.Printf("ID:       %s\n", s.ScrambleID)
	fmt.Printf("Puzzle:   %s\n", s.Puzzle)
	fmt.Printf("Created:  %s\n", s.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Moves:    %d\n", s.MoveCount)
	if s.Difficulty != nil {
		fmt.Printf("Difficulty: %s\n", *s.Difficulty)
	}
	fmt.Println()
	fmt.Println(moveStyle.Render(s.ScrambleText))

	return nil
}
