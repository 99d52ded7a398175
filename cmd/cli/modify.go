package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sevigo/repograph/internal/core"
	"github.com/sevigo/repograph/internal/wire"
)

var modifyCmd = &cobra.Command{
	Use:   "modify [instructions...]",
	Short: "Re-generate the diagram with custom instructions",
	Long: `Re-generate the current repository's diagram following custom
instructions, for example to focus on one subsystem or hide infrastructure.

With no instructions on the command line, the instructions from the
repository's .repograph.yml are used.

Examples:
  repograph modify "focus on the storage layer"
  repograph modify --repo sevigo/repograph "hide test packages"`,
	RunE: runModify,
}

var repoFlag string

func init() { //nolint:gochecknoinits // Cobra command registration
	modifyCmd.Flags().StringVar(&repoFlag, "repo", "", "Repository (owner/repo or URL); defaults to the current directory")
	modifyCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output with phase timing")
	modifyCmd.Flags().BoolVar(&showExplain, "explain", false, "Print the textual explanation after the diagram")
	modifyCmd.Flags().StringVar(&exportPath, "export", "", "Also export the diagram as a PNG to the given path")
	modifyCmd.Flags().BoolVar(&copyResult, "copy", false, "Copy the diagram source to the clipboard")
	rootCmd.AddCommand(modifyCmd)
}

func runModify(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	instructions := strings.Join(args, " ")
	if instructions == "" {
		instructions = loadRepoInstructions()
	}
	if instructions == "" {
		return fmt.Errorf("no instructions given\n\nTip: pass them as arguments or set them in .repograph.yml")
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
	dimColor.Printf("   Target: %s (%s)\n", repo.FullName(), repo.Provider)
	dimColor.Printf("   Instructions: %s\n\n", instructions)

	sess := appInstance.NewSession(repo)
	printer := newProgressPrinter(verbose)
	sess.SetOnUpdate(printer.update)

	if err := sess.Modify(ctx, instructions); err != nil {
		return sessionError(sess)
	}

	return finishRun(ctx, sess)
}

func resolveRepoFlag() (core.RepoRef, error) {
	if repoFlag != "" {
		return resolveRepo([]string{repoFlag})
	}
	return resolveRepo(nil)
}
