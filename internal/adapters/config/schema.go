package config

// SupportedVersion is the only kiln.yaml schema version understood by this loader.
const SupportedVersion = "1"

// Kilnfile represents the structure of the kiln.yaml configuration file.
type Kilnfile struct {
	Version   string `yaml:"version"`
	BuildDir  string `yaml:"build_dir"`
	SourceDir string `yaml:"source_dir"`
	Makefile  string `yaml:"makefile"`
	Jobs      int    `yaml:"jobs"`
	Config    string `yaml:"config"`
}
