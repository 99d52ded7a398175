package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sevigo/repograph/internal/api"
	"github.com/sevigo/repograph/internal/core"
	"github.com/sevigo/repograph/internal/wire"
)

var costCmd = &cobra.Command{
	Use:   "cost [repo]",
	Short: "Estimate the cost of generating a diagram",
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

		pat, err := appInstance.Creds.PAT(repo.Provider)
		if err != nil {
			return fmt.Errorf("failed to read stored credentials: %w", err)
		}

		req := api.GenerateRequest{
			Username: repo.Owner,
			Repo:     repo.Repo,
			Provider: string(repo.Provider),
		}
		switch repo.Provider {
		case core.ProviderGitHub:
			req.GitHubPAT = pat
		case core.ProviderAzure:
			req.AzurePAT = pat
		}

		cost, err := appInstance.Backend.EstimateCost(ctx, req)
		if err != nil {
			var backendErr *api.BackendError
			if errors.As(err, &backendErr) {
				return fmt.Errorf("%s", backendErr.Message)
			}
			return fmt.Errorf("failed to estimate cost: %w", err)
		}

		fmt.Printf("%s: %s\n", repo.FullName(), cost)
		return nil
	},
}

func init() { //nolint:gochecknoinits // Cobra command registration
	rootCmd.AddCommand(costCmd)
}
