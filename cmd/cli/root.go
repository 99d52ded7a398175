package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sevigo/repograph/internal/core"
	"github.com/sevigo/repograph/internal/gitutil"
)

var (
	providerFlag string
)

var rootCmd = &cobra.Command{
	Use:   "repograph",
	Short: "repograph turns a repository into an interactive architecture diagram.",
	Long: `A CLI for generating, refining, and exporting architecture diagrams of
git repositories. Diagrams are produced by the repograph backend and cached
so repeated lookups are instant.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&providerFlag, "provider", "p", "", "Repository provider (github or azure)")

	if err := viper.BindPFlag("PROVIDER", rootCmd.PersistentFlags().Lookup("provider")); err != nil {
		slog.Error("Error binding flag", "error", err)
		os.Exit(1)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetEnvPrefix("RG")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// resolveRepo turns the optional positional argument into a repository
// reference. With no argument the current directory's origin remote is
// used.
func resolveRepo(args []string) (core.RepoRef, error) {
	if len(args) > 0 {
		ref, err := gitutil.ParseRepoURL(args[0])
		if err != nil {
			return core.RepoRef{}, fmt.Errorf("invalid repository %q: %w\n\nExpected owner/repo or a repository URL", args[0], err)
		}
		return applyProviderFlag(ref), nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return core.RepoRef{}, err
	}
	ref, err := gitutil.Detect(cwd)
	if err != nil {
		return core.RepoRef{}, fmt.Errorf("could not detect a repository here: %w\n\nTip: pass one explicitly, e.g. repograph generate owner/repo", err)
	}
	return applyProviderFlag(ref), nil
}

func applyProviderFlag(ref core.RepoRef) core.RepoRef {
	if providerFlag != "" {
		ref.Provider = core.Provider(providerFlag)
	}
	return ref
}
