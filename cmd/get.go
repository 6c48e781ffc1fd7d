package cmd

import (
	"fmt"
	"net/http"

	"ppauth/internal/commands"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var getCmd = &cobra.Command{
	Use:   "get <path>",
	Short: "Send an authenticated GET request",
	Long:  `Log in, then GET https://host:port/<path> with the bearer token and print the response body.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(getCmd)
	addRequestFlags(getCmd)
	getCmd.Flags().StringArrayP("query", "q", nil, "Query parameter as key=value (repeatable)")
}

func runGet(cmd *cobra.Command, args []string) error {
	queries, _ := cmd.Flags().GetStringArray("query")
	params, err := parsePairs("query", queries)
	if err != nil {
		return err
	}

	req, err := requestFromFlags(cmd, http.MethodGet, args[0])
	if err != nil {
		return err
	}
	req.Params = params

	return runRequest(cmd, req)
}

func runRequest(cmd *cobra.Command, req commands.RequestRequest) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	if err := login(ctx, a); err != nil {
		return err
	}

	requestCommand := commands.NewRequestCommand(a.Dispatcher, a.Logger)
	body, err := requestCommand.Execute(ctx, req)
	if err != nil {
		return withHint(fmt.Errorf("%s %s failed: %w", req.Method, req.Path, err))
	}

	fmt.Fprintln(cmd.OutOrStdout(), body)
	return nil
}

func addRequestFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayP("header", "H", nil, "Request header as key=value (repeatable)")
	cmd.Flags().Duration("timeout", 0, "Per-attempt timeout (default from request.timeout)")
	cmd.Flags().Bool("verify", false, "Verify the server TLS certificate (default from request.verify_tls)")
	cmd.Flags().Int("retry", 0, "Extra attempts after a network error or 5xx response")
}

func requestFromFlags(cmd *cobra.Command, method, path string) (commands.RequestRequest, error) {
	a, err := requireApp()
	if err != nil {
		return commands.RequestRequest{}, err
	}
	runtime := a.Config.Runtime

	rawHeaders, _ := cmd.Flags().GetStringArray("header")
	headers, err := parsePairs("header", rawHeaders)
	if err != nil {
		return commands.RequestRequest{}, err
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout <= 0 {
		timeout = runtime.Request.Timeout
	}

	verify := runtime.Request.VerifyTLS
	if cmd.Flags().Changed("verify") {
		verify, _ = cmd.Flags().GetBool("verify")
	}

	retry, _ := cmd.Flags().GetInt("retry")

	return commands.RequestRequest{
		Method:  method,
		Path:    path,
		Headers: headers,
		Timeout: timeout,
		Verify:  verify,
		Retry:   retry,
	}, nil
}
