package config_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ppauth/internal/mocks"
	"ppauth/internal/services/config"
)

func TestProvider_Paths(t *testing.T) {
	fs := mocks.NewMockFileSystemAdapter(t)
	fs.EXPECT().UserHomeDir().Return("/home/alice", nil)

	provider := config.NewProvider(fs)

	dir, err := provider.GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/home/alice/.config/ppauth", dir)

	path, err := provider.GetConfigPath()
	require.NoError(t, err)
	assert.Equal(t, "/home/alice/.config/ppauth/config.yaml", path)
}

func TestProvider_HomeDirError(t *testing.T) {
	fs := mocks.NewMockFileSystemAdapter(t)
	fs.EXPECT().UserHomeDir().Return("", errors.New("no home"))

	_, err := config.NewProvider(fs).GetConfigPath()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get home directory")
}
