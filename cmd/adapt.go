package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sowmya1811d/edupath/internal/pathgen"
	"github.com/sowmya1811d/edupath/internal/profile"
)

var adaptCmd = &cobra.Command{
	Use:   "adapt <path-id>",
	Short: "Adapt a learning path to student progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pathID := args[0]

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
		path, err := s.PathRepo().Get(ctx, pathID)
		if err != nil {
			return fmt.Errorf("load path: %w", err)
		}

		progress := &profile.Progress{StudentID: path.StudentID}
		if cmd.Flags().Changed("completion") {
			v, _ := cmd.Flags().GetFloat64("completion")
			progress.CompletionRate = &v
		}
		if cmd.Flags().Changed("performance") {
			v, _ := cmd.Flags().GetFloat64("performance")
			progress.AveragePerformance = &v
		}
		progress.CompletedContent, _ = cmd.Flags().GetStringSlice("completed")

		repo := s.ContentRepo()
		gen := pathgen.NewGenerator(repo, repo, pathgen.Config{Logger: log})
		before := path.UpdatedAt
		adapted, err := gen.AdaptLearningPath(ctx, path, progress)
		if err != nil {
			return fmt.Errorf("adapt path: %w", err)
		}

		if adapted.UpdatedAt.Equal(before) {
			fmt.Println("Progress is within the current path's range; nothing to adapt.")
			return nil
		}

		if err := s.PathRepo().Save(ctx, adapted); err != nil {
			return fmt.Errorf("save path: %w", err)
		}
		printPath(adapted)
		return nil
	},
}

func init() {
	adaptCmd.Flags().Float64("completion", 0, "Completion rate over the current path, 0..1")
	adaptCmd.Flags().Float64("performance", 0, "Average performance, 0..1")
	adaptCmd.Flags().StringSlice("completed", nil, "Content IDs completed since generation")
}
