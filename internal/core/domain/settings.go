package domain

// Settings are the project-level defaults, loaded from kiln.yaml when present.
// Paths are absolute once loaded.
type Settings struct {
	Root      string
	SourceDir string
	BuildDir  string
	Makefile  string
	Config    string
	Jobs      int
}
