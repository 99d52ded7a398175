package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/sevigo/repograph/internal/wire"
)

var (
	outputJSON   bool
	historyLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Shows past generation runs recorded on this machine",
	RunE: func(_ *cobra.Command, _ []string) error {
		ctx := context.Background()

		appInstance, cleanup, err := wire.InitializeApp(ctx)
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}
		defer cleanup()

		gens, err := appInstance.History.ListGenerations(ctx, historyLimit)
		if err != nil {
			return fmt.Errorf("failed to retrieve history: %w", err)
		}

		if outputJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(gens)
		}

		if len(gens) == 0 {
			slog.Info("No generation runs recorded yet.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "REPOSITORY\tPROVIDER\tINSTRUCTIONS\tCOST\tOWN KEY\tWHEN")
		for _, gen := range gens {
			fmt.Fprintf(w, "%s/%s\t%s\t%s\t%s\t%v\t%s\n",
				gen.Owner, gen.Repo,
				gen.Provider,
				truncate(gen.Instructions, 40),
				gen.Cost,
				gen.UsedOwnKey,
				gen.CreatedAt.Format(time.RFC822),
			)
		}
		return w.Flush()
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	historyCmd.Flags().BoolVar(&outputJSON, "json", false, "Output history as JSON")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of runs to show")
	rootCmd.AddCommand(historyCmd)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
