package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sevigo/repograph/internal/wire"
)

var regenerateCmd = &cobra.Command{
	Use:   "regenerate [instructions...]",
	Short: "Discard the cached diagram and generate a fresh one",
	Long: `Discard the cached diagram and generate a fresh one, optionally with
instructions. The cost is re-estimated before the run starts.

Examples:
  repograph regenerate
  repograph regenerate --repo sevigo/repograph "group packages by layer"`,
	RunE: runRegenerate,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	regenerateCmd.Flags().StringVar(&repoFlag, "repo", "", "Repository (owner/repo or URL); defaults to the current directory")
	regenerateCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output with phase timing")
	regenerateCmd.Flags().BoolVar(&showExplain, "explain", false, "Print the textual explanation after the diagram")
	regenerateCmd.Flags().StringVar(&exportPath, "export", "", "Also export the diagram as a PNG to the given path")
	regenerateCmd.Flags().BoolVar(&copyResult, "copy", false, "Copy the diagram source to the clipboard")
	rootCmd.AddCommand(regenerateCmd)
}

func runRegenerate(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	instructions := strings.Join(args, " ")
	if instructions == "" {
		instructions = loadRepoInstructions()
	}

	repo, err := resolveRepoFlag()
	if err != nil {
		return err
	}

	appInstance, cleanup, err := wire.InitializeApp(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}
	defer cleanup()

	titleColor.Println("repograph")
	dimColor.Printf("   Target: %s (%s)\n\n", repo.FullName(), repo.Provider)

	sess := appInstance.NewSession(repo)
	printer := newProgressPrinter(verbose)
	sess.SetOnUpdate(printer.update)

	if err := sess.Regenerate(ctx, instructions); err != nil {
		return sessionError(sess)
	}

	return finishRun(ctx, sess)
}
