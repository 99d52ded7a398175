package main

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/sevigo/repograph/internal/wire"
)

var copyCmd = &cobra.Command{
	Use:   "copy [repo]",
	Short: "Copy the diagram's Mermaid source to the clipboard",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
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

		if err := clipboard.WriteAll(diagram); err != nil {
			return fmt.Errorf("failed to write to clipboard: %w", err)
		}

		successColor.Printf("Copied diagram for %s to clipboard\n", repo.FullName())
		return nil
	},
}

func init() { //nolint:gochecknoinits // Cobra command registration
	rootCmd.AddCommand(copyCmd)
}
