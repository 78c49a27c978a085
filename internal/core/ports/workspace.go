package ports

// Workspace defines the filesystem operations kiln needs around a build.
//
//go:generate mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks
type Workspace interface {
	// RequireFile returns domain.ErrPrerequisiteMissing if path is not a regular file.
	RequireFile(path string) error

	// EnsureDir creates the directory if needed and reports whether it was created.
	EnsureDir(path string) (bool, error)
}
