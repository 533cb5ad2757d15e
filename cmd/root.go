package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sowmya1811d/edupath/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "edupath",
	Short: "Personalized learning path engine",
	Long:  "Edupath — generates, adapts, and recommends personalized learning paths over a tagged content pool.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides EDUPATH_DB env var)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log generation details to stderr")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(adaptCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(studentCmd)
	rootCmd.AddCommand(contentCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then EDUPATH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the store at the resolved database path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// newLogger builds the command logger. Quiet by default; --verbose logs
// to stderr.
func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return zap.NewNop(), nil
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return log, nil
}
