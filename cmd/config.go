package cmd

import (
	"fmt"

	"ppauth/internal/commands"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the connection profile",
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the connection profile",
	Long: `Write host, port, username, timezone and TOTP secret from the global flags
(or PPAUTH_ environment variables) to the profile file. Passwords are never stored.`,
	RunE: runConfigInit,
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the connection profile",
	RunE:  runConfigShow,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd, configShowCmd)

	configInitCmd.Flags().Bool("force", false, "Overwrite an existing profile")
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	force, _ := cmd.Flags().GetBool("force")

	initCommand := commands.NewConfigInitCommand(a.ProfileRepo, a.Logger)
	err = initCommand.Execute(commandContext(cmd), commands.ConfigInitRequest{
		Profile: a.Config.Runtime.Profile(),
		Force:   force,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Profile written to %s\n", a.ProfileRepo.Path())
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	showCommand := commands.NewConfigShowCommand(a.ProfileRepo, a.Logger)
	profile, err := showCommand.Execute(commandContext(cmd))
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to render profile: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", a.ProfileRepo.Path(), out)
	return nil
}
