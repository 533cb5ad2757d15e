package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sowmya1811d/edupath/internal/content"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Manage the content pool",
}

var contentImportCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Import content items from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read content file: %w", err)
		}
		var items []content.Item
		if err := json.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("parse content file: %w", err)
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		n, err := s.ContentRepo().Import(context.Background(), items)
		if err != nil {
			return fmt.Errorf("import content: %w", err)
		}
		fmt.Printf("Imported %d items.\n", n)
		return nil
	},
}

var contentExportCmd = &cobra.Command{
	Use:   "export [file.json]",
	Short: "Export the content pool as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		items, err := s.ContentRepo().Export(context.Background())
		if err != nil {
			return fmt.Errorf("export content: %w", err)
		}
		data, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal content: %w", err)
		}

		if len(args) == 0 {
			fmt.Println(string(data))
			return nil
		}
		if err := os.WriteFile(args[0], data, 0o644); err != nil {
			return fmt.Errorf("write content file: %w", err)
		}
		fmt.Printf("Exported %d items to %s.\n", len(items), args[0])
		return nil
	},
}

var contentStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show content pool statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		stats, err := s.ContentRepo().Statistics(context.Background())
		if err != nil {
			return fmt.Errorf("content statistics: %w", err)
		}

		fmt.Printf("Total items: %d\n", stats.TotalItems)
		printCounts("By subject", stats.Subjects)
		printCounts("By difficulty", stats.Difficulties)
		printCounts("By content type", stats.ContentTypes)
		return nil
	},
}

// printCounts renders one tag dimension, largest first.
func printCounts(title string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})

	fmt.Println()
	fmt.Println(title)
	fmt.Println(strings.Repeat("─", 40))
	for _, k := range keys {
		fmt.Printf("%-28s  %6d\n", k, counts[k])
	}
}

func init() {
	contentCmd.AddCommand(contentImportCmd)
	contentCmd.AddCommand(contentExportCmd)
	contentCmd.AddCommand(contentStatsCmd)
}
