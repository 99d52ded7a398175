package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sevigo/repograph/internal/core"
	"github.com/sevigo/repograph/internal/store"
	"github.com/sevigo/repograph/internal/wire"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage stored API keys and access tokens",
	Long: `Manage the credentials repograph keeps in the system keychain.

Credential names:
  openai   API key used for generation on your own account
  github   GitHub personal access token (private repositories)
  azure    Azure DevOps personal access token`,
}

var authSetCmd = &cobra.Command{
	Use:   "set <name> <value>",
	Short: "Store a credential in the system keychain",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		creds, cleanup, err := openCredentials()
		if err != nil {
			return err
		}
		defer cleanup()

		name, value := args[0], args[1]
		switch name {
		case "openai":
			err = creds.SetAPIKey(value)
		case "github":
			err = creds.SetPAT(core.ProviderGitHub, value)
		case "azure":
			err = creds.SetPAT(core.ProviderAzure, value)
		default:
			return fmt.Errorf("unknown credential %q (expected openai, github, or azure)", name)
		}
		if err != nil {
			return fmt.Errorf("failed to store credential: %w", err)
		}

		successColor.Printf("Stored %s credential\n", name)
		return nil
	},
}

var authDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Remove a credential from the system keychain",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		creds, cleanup, err := openCredentials()
		if err != nil {
			return err
		}
		defer cleanup()

		name := args[0]
		switch name {
		case "openai":
			err = creds.DeleteAPIKey()
		case "github":
			err = creds.DeletePAT(core.ProviderGitHub)
		case "azure":
			err = creds.DeletePAT(core.ProviderAzure)
		default:
			return fmt.Errorf("unknown credential %q (expected openai, github, or azure)", name)
		}
		if err != nil {
			return fmt.Errorf("failed to delete credential: %w", err)
		}

		successColor.Printf("Deleted %s credential\n", name)
		return nil
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which credentials are configured",
	RunE: func(_ *cobra.Command, _ []string) error {
		creds, cleanup, err := openCredentials()
		if err != nil {
			return err
		}
		defer cleanup()

		printCredential := func(label string, read func() (string, error)) {
			value, err := read()
			switch {
			case err != nil:
				errorColor.Printf("  %-8s error: %v\n", label, err)
			case value == "":
				dimColor.Printf("  %-8s not set\n", label)
			default:
				successColor.Printf("  %-8s configured\n", label)
			}
		}

		titleColor.Println("Credentials")
		printCredential("openai", creds.APIKey)
		printCredential("github", func() (string, error) { return creds.PAT(core.ProviderGitHub) })
		printCredential("azure", func() (string, error) { return creds.PAT(core.ProviderAzure) })

		used, err := creds.HasUsedFreeGeneration()
		if err != nil {
			return err
		}
		fmt.Println()
		if used {
			dimColor.Println("  Free generation: used")
		} else {
			infoColor.Println("  Free generation: available")
		}
		return nil
	},
}

func init() { //nolint:gochecknoinits // Cobra command registration
	authCmd.AddCommand(authSetCmd)
	authCmd.AddCommand(authDeleteCmd)
	authCmd.AddCommand(authStatusCmd)
	rootCmd.AddCommand(authCmd)
}

func openCredentials() (*store.Credentials, func(), error) {
	appInstance, cleanup, err := wire.InitializeApp(context.Background())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize app: %w", err)
	}
	return appInstance.Creds, cleanup, nil
}
