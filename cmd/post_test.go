package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostFlags(t *testing.T, args ...string) *cobra.Command {
	t.Helper()

	c := &cobra.Command{Use: "post"}
	c.Flags().StringP("data", "d", "", "")
	c.Flags().String("data-file", "", "")
	require.NoError(t, c.Flags().Parse(args))
	return c
}

func TestPostBody(t *testing.T) {
	path := filepath.Join(t.TempDir(), "body.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"from":"file"}`), 0o600))

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "no body", args: nil, expected: ""},
		{name: "inline data", args: []string{"--data", `{"a":1}`}, expected: `{"a":1}`},
		{name: "data file", args: []string{"--data-file", path}, expected: `{"from":"file"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := postBody(newPostFlags(t, tt.args...))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, body)
		})
	}
}

func TestPostBody_MissingFile(t *testing.T) {
	_, err := postBody(newPostFlags(t, "--data-file", filepath.Join(t.TempDir(), "missing.json")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read request body")
}
