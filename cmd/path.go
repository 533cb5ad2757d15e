package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sowmya1811d/edupath/internal/pathgen"
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Inspect and manage stored learning paths",
}

var pathListCmd = &cobra.Command{
	Use:   "list <student-id>",
	Short: "List a student's paths",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		paths, err := s.PathRepo().ListByStudent(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("list paths: %w", err)
		}
		if len(paths) == 0 {
			fmt.Println("No paths found.")
			return nil
		}

		fmt.Printf("%-36s  %-10s  %-26s  %5s  %4s\n", "Path", "Status", "Subjects", "Min", "Objs")
		fmt.Println(strings.Repeat("─", 90))
		for _, p := range paths {
			fmt.Printf("%-36s  %-10s  %-26s  %5d  %4d\n",
				truncate(p.PathID, 36),
				p.Status,
				truncate(strings.Join(p.Subjects, ", "), 26),
				p.TotalDuration,
				len(p.Objectives))
		}
		return nil
	},
}

var pathViewCmd = &cobra.Command{
	Use:   "view <path-id>",
	Short: "View one path in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		path, err := s.PathRepo().Get(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("load path: %w", err)
		}
		printPath(path)
		return nil
	},
}

var pathStatusCmd = &cobra.Command{
	Use:   "status <path-id> <active|completed|paused>",
	Short: "Change a path's status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		status := pathgen.Status(args[1])
		if err := s.PathRepo().SetStatus(context.Background(), args[0], status); err != nil {
			return fmt.Errorf("set status: %w", err)
		}
		fmt.Printf("Path %s is now %s.\n", args[0], status)
		return nil
	},
}

func init() {
	pathCmd.AddCommand(pathListCmd)
	pathCmd.AddCommand(pathViewCmd)
	pathCmd.AddCommand(pathStatusCmd)
}
