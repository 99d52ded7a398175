package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sevigo/repograph/internal/config"
	"github.com/sevigo/repograph/internal/session"
	"github.com/sevigo/repograph/internal/stream"
	"github.com/sevigo/repograph/internal/wire"
)

var (
	verbose     bool
	showExplain bool
	exportPath  string
	copyResult  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [repo]",
	Short: "Generate (or load the cached) architecture diagram for a repository",
	Long: `Generate an architecture diagram for a repository.

A previously generated diagram is served from the backend cache; otherwise a
new generation run is started and streamed. With no argument the repository
is detected from the current directory's origin remote.

Examples:
  repograph generate
  repograph generate sevigo/repograph
  repograph generate https://github.com/sevigo/repograph --export diagram.png`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	generateCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output with phase timing")
	generateCmd.Flags().BoolVar(&showExplain, "explain", false, "Print the textual explanation after the diagram")
	generateCmd.Flags().StringVar(&exportPath, "export", "", "Also export the diagram as a PNG to the given path")
	generateCmd.Flags().BoolVar(&copyResult, "copy", false, "Copy the diagram source to the clipboard")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, args []string) error {
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

	titleColor.Println("repograph")
	dimColor.Printf("   Target: %s (%s)\n\n", repo.FullName(), repo.Provider)

	exists, err := appInstance.ValidateRepo(ctx, repo)
	if err != nil {
		appInstance.Logger.Warn("repository validation failed, continuing", "repo", repo.FullName(), "error", err)
	} else if !exists {
		return fmt.Errorf("repository %s was not found\n\nTip: private repositories need a token; run 'repograph auth set github <token>'", repo.FullName())
	}

	sess := appInstance.NewSession(repo)
	printer := newProgressPrinter(verbose)
	sess.SetOnUpdate(printer.update)

	if err := sess.InitialLoad(ctx); err != nil {
		return sessionError(sess)
	}

	return finishRun(ctx, sess)
}

// finishRun prints the session result and applies the shared --export and
// --copy flags. It is reused by the modify and regenerate commands.
func finishRun(ctx context.Context, sess *session.Session) error {
	snap := sess.Snapshot()
	if snap.State.Status == stream.StatusError {
		return sessionError(sess)
	}

	printResult(snap, showExplain)

	if copyResult {
		sess.CopyDiagram()
		successColor.Println("   Copied diagram to clipboard")
	}
	if exportPath != "" {
		if err := sess.ExportPNG(ctx, exportPath); err != nil {
			return fmt.Errorf("failed to export PNG: %w", err)
		}
		successColor.Printf("   Exported %s\n", exportPath)
	}
	return nil
}

func sessionError(sess *session.Session) error {
	message := sess.Snapshot().State.Error
	errorColor.Fprintf(os.Stderr, "\n✗ %s\n", message)
	return fmt.Errorf("%s", message)
}

// loadRepoInstructions reads per-repository default instructions from the
// working directory's config file, when one exists.
func loadRepoInstructions() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	repoCfg, err := config.LoadRepoConfig(cwd)
	if err != nil {
		return ""
	}
	return repoCfg.Instructions
}
