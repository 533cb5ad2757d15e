package cmd

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sowmya1811d/edupath/internal/learnstyle"
)

var assessCmd = &cobra.Command{
	Use:   "assess <student-id>",
	Short: "Assess a student's learning style",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		studentID := args[0]
		random, _ := cmd.Flags().GetBool("random")
		save, _ := cmd.Flags().GetBool("save")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		p, err := s.StudentRepo().Get(ctx, studentID)
		if err != nil {
			return fmt.Errorf("load student: %w", err)
		}

		if random {
			// Demo mode: answer the questionnaire at random.
			p.StyleAssessment = learnstyle.RandomAssessment(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
		}

		result := learnstyle.Assess(p)
		printAssessment(result)

		if save && random {
			if err := s.StudentRepo().Save(ctx, p); err != nil {
				return fmt.Errorf("save student: %w", err)
			}
		}
		return nil
	},
}

// printAssessment renders the style result and its accommodation
// strategies.
func printAssessment(r *learnstyle.Result) {
	sep := strings.Repeat("─", 60)

	source := "questionnaire"
	if r.Inferred {
		source = "inferred from profile"
	}
	fmt.Printf("Primary:    %s (%.0f%% confidence, %s)\n", r.Primary, r.PrimaryConfidence*100, source)
	fmt.Printf("Secondary:  %s (%.0f%% confidence)\n", r.Secondary, r.SecondaryConfidence*100)
	fmt.Println()
	fmt.Println(r.Description)

	fmt.Println()
	fmt.Println("Strengths")
	fmt.Println(sep)
	for _, s := range r.Strengths {
		fmt.Printf("  - %s\n", s)
	}

	fmt.Println()
	fmt.Println("Suggested strategies")
	fmt.Println(sep)
	strategies := learnstyle.AccommodationStrategies(r)
	for _, s := range strategies.ContentPresentation {
		fmt.Printf("  - %s\n", s)
	}
	for _, s := range strategies.StudyTechniques {
		fmt.Printf("  - %s\n", s)
	}
}

func init() {
	assessCmd.Flags().Bool("random", false, "Answer the questionnaire randomly (demo)")
	assessCmd.Flags().Bool("save", true, "Persist random questionnaire answers to the profile")
}
