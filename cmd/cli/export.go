package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sevigo/repograph/internal/app"
	"github.com/sevigo/repograph/internal/core"
	"github.com/sevigo/repograph/internal/util"
	"github.com/sevigo/repograph/internal/wire"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export [repo]",
	Short: "Export the current diagram as a PNG image",
	Long: `Export the repository's diagram as a PNG image without re-generating
it. The diagram is loaded from the backend cache, falling back to the most
recent run in the local history.

Examples:
  repograph export -o diagram.png
  repograph export sevigo/repograph -o docs/architecture.png`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path (defaults to <owner>-<repo>.png)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	repo, err := resolveRepo(args)
	if err != nil {
		return err
	}

	appInstance, cleanup, err := wire.InitializeApp(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}
	defer cleanup()

	diagram, err := loadDiagram(ctx, appInstance, repo)
	if err != nil {
		return err
	}

	if exportOutput == "" {
		exportOutput = util.ExportFileName(repo.FullName())
	}

	if err := appInstance.Exporter.PNG(ctx, diagram, exportOutput); err != nil {
		return fmt.Errorf("failed to export PNG: %w", err)
	}

	successColor.Printf("Exported %s\n", exportOutput)
	return nil
}

// loadDiagram finds the repository's diagram without starting a run: the
// backend cache first, then the local history.
func loadDiagram(ctx context.Context, a *app.App, repo core.RepoRef) (string, error) {
	cached, err := a.Backend.CachedDiagram(ctx, repo)
	if err != nil {
		a.Logger.Warn("cache lookup failed, trying local history", "repo", repo.FullName(), "error", err)
	}
	if cached != nil && cached.Diagram != "" {
		return cached.Diagram, nil
	}

	gen, err := a.History.LatestForRepo(ctx, repo)
	if err != nil {
		return "", fmt.Errorf("failed to read local history: %w", err)
	}
	if gen == nil || gen.Diagram == "" {
		return "", fmt.Errorf("no diagram found for %s\n\nTip: run 'repograph generate %s' first", repo.FullName(), repo.FullName())
	}
	return gen.Diagram, nil
}
