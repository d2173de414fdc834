package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cubetools/scramble"
)

var dailyDate string

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Show the daily challenge scrambles",
	Long: `Print the daily challenge scramble for every puzzle in the rotation.

The generator is seeded from the calendar date, so everyone running
the command on the same day sees the same scrambles. The puzzle whose
turn it is on the weekly rotation is marked with an asterisk.`,
	RunE: runDaily,
}

func init() {
	rootCmd.AddCommand(dailyCmd)
	dailyCmd.Flags().StringVar(&dailyDate, "date", "", "Date to generate for (YYYY-MM-DD, default today)")
}

func runDaily(cmd *cobra.Command, args []string) error {
	day := time.Now().UTC()
	if dailyDate != "" {
		var err error
		day, err = time.Parse("2006-01-02", dailyDate)
		if err != nil {
			return fmt.Errorf("invalid date %q, want YYYY-MM-DD", dailyDate)
		}
	}

	seed := dailySeed(day)
	g := scramble.New(scramble.WithSeed(seed))
	featured := featuredPuzzle(day)

	fmt.Println(titleStyle.Render("Daily Scrambles - " + day.Format("Mon 2006-01-02")))
	fmt.Println()

	for _, pt := range scramble.PuzzleTypes {
		marker := "  "
		if pt == featured {
			marker = "* "
		}
		fmt.Printf("%s%-10s %s\n", marker, puzzleStyle.Render(pt.String()), moveStyle.Render(g.Generate(pt)))
	}

	fmt.Println()
	fmt.Println(helpStyle.Render("* = today's challenge puzzle on the weekly rotation"))
	return nil
}

// dailySeed derives a deterministic seed from the calendar date.
func dailySeed(day time.Time) int64 {
	y, m, d := day.Date()
	return int64(y)*10000 + int64(m)*100 + int64(d)
}

// featuredPuzzle rotates through the puzzle list by weekday.
func featuredPuzzle(day time.Time) scramble.PuzzleType {
	return scramble.PuzzleTypes[int(day.Weekday())%len(scramble.PuzzleTypes)]
}
