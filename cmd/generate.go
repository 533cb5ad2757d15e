package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sowmya1811d/edupath/internal/pathgen"
	"github.com/sowmya1811d/edupath/internal/pathplan"
)

var generateCmd = &cobra.Command{
	Use:   "generate <student-id>",
	Short: "Generate a personalized learning path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		studentID := args[0]
		subjects, _ := cmd.Flags().GetStringSlice("subjects")
		duration, _ := cmd.Flags().GetInt("duration")
		save, _ := cmd.Flags().GetBool("save")

		if len(subjects) == 0 {
			return fmt.Errorf("at least one --subjects entry is required")
		}

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
		path, err := gen.GenerateLearningPath(ctx, p, subjects, duration)
		if err != nil {
			return fmt.Errorf("generate path: %w", err)
		}

		if save {
			if err := s.PathRepo().Save(ctx, path); err != nil {
				return fmt.Errorf("save path: %w", err)
			}
		}

		printPath(path)
		if save {
			fmt.Println("\nSaved.")
		}
		return nil
	},
}

// printPath renders one path with its objectives and validation findings.
func printPath(path *pathgen.LearningPath) {
	sep := strings.Repeat("─", 72)

	fmt.Printf("Path:      %s\n", path.PathID)
	fmt.Printf("Student:   %s\n", path.StudentID)
	fmt.Printf("Title:     %s\n", path.Title)
	fmt.Printf("Status:    %s\n", path.Status)
	fmt.Printf("Subjects:  %s\n", strings.Join(path.Subjects, ", "))
	fmt.Printf("Duration:  %d min\n", path.TotalDuration)
	fmt.Printf("Level:     %s\n", strings.Join(path.DifficultyProgression, " → "))

	fmt.Println()
	fmt.Printf("%-32s  %-14s  %-12s  %s\n", "Objective", "Subject", "Difficulty", "Min")
	fmt.Println(sep)
	for _, obj := range path.Objectives {
		fmt.Printf("%-32s  %-14s  %-12s  %d\n",
			truncate(obj.Title, 32), obj.Subject, obj.Difficulty, obj.EstimatedDuration)
	}

	v := pathplan.Validate(path.Objectives)
	if len(v.Issues) > 0 {
		fmt.Println()
		for _, issue := range v.Issues {
			fmt.Printf("Issue:   %s\n", issue)
		}
	}
	if len(v.Warnings) > 0 {
		fmt.Println()
		for _, w := range v.Warnings {
			fmt.Printf("Warning: %s\n", w)
		}
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func init() {
	generateCmd.Flags().StringSliceP("subjects", "s", nil, "Subjects to cover (repeat or comma-separate)")
	generateCmd.Flags().IntP("duration", "d", 0, "Target total duration in minutes (0 = level default)")
	generateCmd.Flags().Bool("save", true, "Persist the generated path")
}
