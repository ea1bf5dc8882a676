package cmd

import (
	"fmt"

	"github.com/ayato/kanadrill/internal/stats"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print lifetime statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, sess, err := buildSession(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		s := sess.Statistics()
		practiced, total := stats.PracticedCount(s)

		fmt.Printf("Questions answered  %d\n", s.TotalQuestions)
		fmt.Printf("Correct             %d\n", s.CorrectAnswers)
		fmt.Printf("Incorrect           %d\n", s.IncorrectAnswers)
		fmt.Printf("Accuracy            %.1f%%\n", s.Accuracy)
		fmt.Printf("Avg response        %.1fs\n", s.AverageResponseTimeMs/1000)
		fmt.Printf("Kana practiced      %d / %d\n", practiced, total)

		weak := stats.WeakSpots(s, 15)
		if len(weak) > 0 {
			fmt.Println("\nWeak spots (lowest accuracy first):")
			for i, e := range weak {
				fmt.Printf("  %2d. %s  %3.0f%%  %d tries  %.1fs\n",
					i+1, e.Char, 100*e.Accuracy, e.Attempts,
					e.AverageResponseTimeMs/1000)
			}
		}
		return nil
	},
}
