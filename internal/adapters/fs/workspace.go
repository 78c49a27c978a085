// Package fs implements the filesystem operations kiln performs around a build.
package fs

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/zerr"
)

// Workspace implements ports.Workspace on the local filesystem.
type Workspace struct{}

// NewWorkspace creates a new Workspace.
func NewWorkspace() *Workspace {
	return &Workspace{}
}

// RequireFile returns domain.ErrPrerequisiteMissing unless path is a regular file.
func (w *Workspace) RequireFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return zerr.With(zerr.Wrap(domain.ErrPrerequisiteMissing, "prerequisite check failed"), "path", path)
		}
		return zerr.With(zerr.Wrap(err, "failed to stat file"), "path", path)
	}
	if !info.Mode().IsRegular() {
		err := zerr.Wrap(domain.ErrPrerequisiteMissing, "prerequisite check failed")
		err = zerr.With(err, "path", path)
		return zerr.With(err, "reason", "not a regular file")
	}
	return nil
}

// EnsureDir creates path and its parents if needed. It reports whether the
// directory was created by this call.
func (w *Workspace) EnsureDir(path string) (bool, error) {
	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return false, nil
	case err == nil:
		err := zerr.Wrap(domain.ErrBuildDirCreateFailed, "path exists and is not a directory")
		return false, zerr.With(err, "path", path)
	case !errors.Is(err, fs.ErrNotExist):
		wrapped := zerr.With(zerr.Wrap(domain.ErrBuildDirCreateFailed, "cannot stat build directory"), "path", path)
		return false, zerr.With(wrapped, "cause", err.Error())
	}

	if err := os.MkdirAll(path, domain.DirPerm); err != nil {
		wrapped := zerr.Wrap(domain.ErrBuildDirCreateFailed, "cannot create build directory")
		wrapped = zerr.With(wrapped, "path", path)
		return false, zerr.With(wrapped, "cause", err.Error())
	}
	return true, nil
}
