package cmd

import (
	"fmt"

	"ppauth/internal/commands"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Log in and print the bearer token",
	Long: `Authenticate with the configured profile and print the bearer token and its
remaining lease. --probe only checks the session, --renew re-authenticates first.`,
	RunE: runToken,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().Bool("renew", false, "Re-authenticate with stored credentials before printing")
	tokenCmd.Flags().Bool("probe", false, "Check the session without renewing it")
	tokenCmd.MarkFlagsMutuallyExclusive("renew", "probe")
}

func runToken(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	if err := login(ctx, a); err != nil {
		return err
	}

	renew, _ := cmd.Flags().GetBool("renew")
	probe, _ := cmd.Flags().GetBool("probe")

	tokenCommand := commands.NewTokenCommand(a.Tokens, a.Logger)
	result, err := tokenCommand.Execute(ctx, commands.TokenRequest{Renew: renew, Probe: probe})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.Token)
	fmt.Fprintf(cmd.ErrOrStderr(), "lease: %ds\n", result.LeaseSeconds)
	return nil
}
