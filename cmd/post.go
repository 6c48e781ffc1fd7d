package cmd

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var postCmd = &cobra.Command{
	Use:   "post <path>",
	Short: "Send an authenticated POST request",
	Long: `Log in, then POST a JSON document to https://host:port/<path> with the bearer
token and print the response body. The optional body comes from --data or
--data-file; without either the request is sent with no body.`,
	Args: cobra.ExactArgs(1),
	RunE: runPost,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(postCmd)
	addRequestFlags(postCmd)
	postCmd.Flags().StringP("data", "d", "", "JSON request body")
	postCmd.Flags().String("data-file", "", "Read the JSON request body from a file")
	postCmd.MarkFlagsMutuallyExclusive("data", "data-file")
}

func runPost(cmd *cobra.Command, args []string) error {
	body, err := postBody(cmd)
	if err != nil {
		return err
	}

	req, err := requestFromFlags(cmd, http.MethodPost, args[0])
	if err != nil {
		return err
	}
	req.Body = body

	return runRequest(cmd, req)
}

func postBody(cmd *cobra.Command) (string, error) {
	if path, _ := cmd.Flags().GetString("data-file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read request body: %w", err)
		}
		return string(data), nil
	}

	data, _ := cmd.Flags().GetString("data")
	return data, nil
}
