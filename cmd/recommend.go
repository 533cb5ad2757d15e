package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sowmya1811d/edupath/internal/pathgen"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend <student-id>",
	Short: "Suggest candidate learning paths",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		studentID := args[0]
		count, _ := cmd.Flags().GetInt("count")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		log, err := newLogger(cmd)
		if err != nil {
			return err
		}
		defer log.Sync()

		ctx := context.Background()
		p, err := s.StudentRepo().Get(ctx, studentID)
		if err != nil {
			return fmt.Errorf("load student: %w", err)
		}

		repo := s.ContentRepo()
		gen := pathgen.NewGenerator(repo, repo, pathgen.Config{Logger: log})
		recs := gen.Recommendations(ctx, p, count)

		if len(recs) == 0 {
			fmt.Println("No recommendations available.")
			return nil
		}

		fmt.Printf("%-40s  %-12s  %5s  %4s\n", "Subjects", "Difficulty", "Min", "Objs")
		fmt.Println(strings.Repeat("─", 68))
		for _, rec := range recs {
			fmt.Printf("%-40s  %-12s  %5d  %4d\n",
				truncate(strings.Join(rec.Subjects, ", "), 40),
				rec.Difficulty,
				rec.TotalDuration,
				rec.ObjectiveCount)
		}
		return nil
	},
}

func init() {
	recommendCmd.Flags().IntP("count", "n", 3, "Number of candidate paths")
}
