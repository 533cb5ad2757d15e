package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sowmya1811d/edupath/internal/profile"
)

var studentCmd = &cobra.Command{
	Use:   "student",
	Short: "Manage student profiles",
}

var studentSetCmd = &cobra.Command{
	Use:   "set <student-id>",
	Short: "Create or update a student profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		studentID := args[0]
		file, _ := cmd.Flags().GetString("file")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		repo := s.StudentRepo()

		var p *profile.StudentProfile
		if file != "" {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read profile file: %w", err)
			}
			p = &profile.StudentProfile{}
			if err := json.Unmarshal(data, p); err != nil {
				return fmt.Errorf("parse profile file: %w", err)
			}
			p.StudentID = studentID
		} else {
			// Start from the stored profile when present, so flags
			// patch rather than reset.
			p, err = repo.Get(ctx, studentID)
			if err != nil {
				p = &profile.StudentProfile{StudentID: studentID}
			}
		}

		if v, _ := cmd.Flags().GetString("name"); v != "" {
			p.Name = v
		}
		if v, _ := cmd.Flags().GetString("level"); v != "" {
			p.CurrentLevel = profile.Level(v)
		}
		if v, _ := cmd.Flags().GetString("pace"); v != "" {
			p.LearningPace = profile.Pace(v)
		}
		if v, _ := cmd.Flags().GetString("availability"); v != "" {
			p.TimeAvailability = profile.Availability(v)
		}
		if cmd.Flags().Changed("performance") {
			v, _ := cmd.Flags().GetFloat64("performance")
			p.AveragePerformance = &v
		}

		if err := repo.Save(ctx, p); err != nil {
			return fmt.Errorf("save profile: %w", err)
		}
		fmt.Printf("Saved profile for %s.\n", studentID)
		return nil
	},
}

var studentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored student profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		profiles, err := s.StudentRepo().List(context.Background())
		if err != nil {
			return fmt.Errorf("list students: %w", err)
		}
		if len(profiles) == 0 {
			fmt.Println("No students found.")
			return nil
		}

		fmt.Printf("%-20s  %-16s  %-13s  %-7s  %-6s\n", "Student", "Name", "Level", "Pace", "Perf")
		fmt.Println(strings.Repeat("─", 72))
		for _, p := range profiles {
			perf := "-"
			if p.AveragePerformance != nil {
				perf = fmt.Sprintf("%.2f", *p.AveragePerformance)
			}
			fmt.Printf("%-20s  %-16s  %-13s  %-7s  %-6s\n",
				truncate(p.StudentID, 20),
				truncate(p.Name, 16),
				p.EffectiveLevel(),
				p.EffectivePace(),
				perf)
		}
		return nil
	},
}

var studentViewCmd = &cobra.Command{
	Use:   "view <student-id>",
	Short: "View one student profile as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		p, err := s.StudentRepo().Get(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("load student: %w", err)
		}
		data, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal profile: %w", err)
		}
		fmt.Println(string(data))
		return nil
	},
}

var studentDeleteCmd = &cobra.Command{
	Use:   "delete <student-id>",
	Short: "Delete a student profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.StudentRepo().Delete(context.Background(), args[0]); err != nil {
			return fmt.Errorf("delete student: %w", err)
		}
		fmt.Printf("Deleted %s.\n", args[0])
		return nil
	},
}

func init() {
	studentSetCmd.Flags().String("file", "", "Load the full profile from a JSON file")
	studentSetCmd.Flags().String("name", "", "Display name")
	studentSetCmd.Flags().String("level", "", "Current level: beginner, intermediate, or advanced")
	studentSetCmd.Flags().String("pace", "", "Learning pace: slow, normal, or fast")
	studentSetCmd.Flags().String("availability", "", "Time availability: low, medium, or high")
	studentSetCmd.Flags().Float64("performance", 0, "Average performance, 0..1")

	studentCmd.AddCommand(studentSetCmd)
	studentCmd.AddCommand(studentListCmd)
	studentCmd.AddCommand(studentViewCmd)
	studentCmd.AddCommand(studentDeleteCmd)
}
