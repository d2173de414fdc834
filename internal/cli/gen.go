package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cubetools/scramble"
	"github.com/cubetools/scramble/internal/storage"
)

var (
	genCount      int
	genMoves      int
	genDifficulty string
	genSave       bool
)

var genCmd = &cobra.Command{
	Use:   "gen [puzzle]",
	Short: "Generate scrambles for a puzzle",
	Long: `Generate one or more scrambles for a puzzle type.

Puzzle types: 2x2, 3x3, "3x3 BLD", "3x3 OH", Pyraminx, Skewb, Clock
(default: 3x3).

Passing --moves or --difficulty switches the 2x2/3x3 families to the
custom generator; Pyraminx, Skewb, and Clock always use their fixed
competition shapes.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGen,
}

func init() {
	rootCmd.AddCommand(genCmd)
	genCmd.Flags().IntVarP(&genCount, "count", "n", 1, "Number of scrambles to generate")
	genCmd.Flags().IntVar(&genMoves, "moves", 0, "Move count for custom 2x2/3x3 scrambles")
	genCmd.Flags().StringVar(&genDifficulty, "difficulty", "", "Difficulty for custom scrambles (easy|medium|hard)")
	genCmd.Flags().BoolVar(&genSave, "save", false, "Save generated scrambles to history")
}

func runGen(cmd *cobra.Command, args []string) error {
	pt := scramble.Puzzle3x3
	if len(args) > 0 {
		var err error
		pt, err = scramble.ParsePuzzleType(args[0])
		if err != nil {
			return fmt.Errorf("unknown puzzle type %q (try: 2x2, 3x3, \"3x3 BLD\", \"3x3 OH\", Pyraminx, Skewb, Clock)", args[0])
		}
	}

	custom := genMoves > 0 || genDifficulty != ""
	difficulty := scramble.Medium
	if genDifficulty != "" {
		var err error
		difficulty, err = scramble.ParseDifficulty(genDifficulty)
		if err != nil {
			return fmt.Errorf("unknown difficulty %q (try: easy, medium, hard)", genDifficulty)
		}
	}

	var repo *storage.ScrambleRepository
	if genSave {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()
		repo = storage.NewScrambleRepository(db)
	}

	g := scramble.New()

	for i := 0; i < genCount; i++ {
		var seq string
		if custom {
			seq = g.GenerateCustom(pt, genMoves, difficulty)
		} else {
			seq = g.Generate(pt)
		}

		fmt.Printf("%s  %s\n", puzzleStyle.Render(pt.String()), moveStyle.Render(seq))

		if repo != nil {
			diff := ""
			if custom {
				diff = difficulty.String()
			}
			id, err := repo.Save(pt.String(), seq, diff)
			if err != nil {
				return fmt.Errorf("failed to save scramble: %w", err)
			}
			if verbose {
				fmt.Println(statusStyle.Render("saved: " + id))
			}
		}
	}

	return nil
}
