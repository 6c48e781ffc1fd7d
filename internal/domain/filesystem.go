package domain

import (
	"os"
)

// FileSystemAdapter defines the file operations used for profile persistence.
type FileSystemAdapter interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm os.FileMode) error
	MkdirAll(path string, perm os.FileMode) error
	Chmod(path string, perm os.FileMode) error
	UserHomeDir() (string, error)
}
