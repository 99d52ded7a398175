package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sevigo/repograph/internal/wire"
)

var previewCmd = &cobra.Command{
	Use:   "preview [repo]",
	Short: "Serve the diagram in a local browser page",
	Long: `Serve the repository's diagram on a local HTTP port. The page
re-renders automatically when the diagram changes, which makes it useful to
keep open while iterating with 'repograph modify'.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreview,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	rootCmd.AddCommand(previewCmd)
}

func runPreview(_ *cobra.Command, args []string) error {
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

	srv := appInstance.NewPreviewServer()

	cached, err := appInstance.Backend.CachedDiagram(ctx, repo)
	if err != nil {
		appInstance.Logger.Warn("cache lookup failed", "repo", repo.FullName(), "error", err)
	}
	if cached != nil {
		srv.SetContent(cached.Diagram, cached.Explanation)
	} else if gen, err := appInstance.History.LatestForRepo(ctx, repo); err == nil && gen != nil {
		srv.SetContent(gen.Diagram, gen.Explanation)
	}

	titleColor.Printf("Previewing %s at %s\n", repo.FullName(), srv.URL())
	dimColor.Println("Press Ctrl+C to stop")

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
		return srv.Stop()
	}
}
