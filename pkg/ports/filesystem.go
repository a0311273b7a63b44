// Package ports defines interfaces for external dependencies.
package ports

// FileSystem abstracts file system operations.
type FileSystem interface {
	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to a file, creating it if necessary.
	WriteFile(path string, data []byte) error

	// ListFiles returns the names of regular files directly inside dir.
	// Symlinks are followed; subdirectories are not listed.
	ListFiles(dir string) ([]string, error)

	// IsDir reports whether path exists and is a directory.
	IsDir(path string) (bool, error)

	// Exists checks if a file or directory exists.
	Exists(path string) (bool, error)

	// Size returns the size of a file in bytes.
	Size(path string) (int64, error)
}
