package config

// Config is the parsed .interviewdocs.yml file.
type Config struct {
	Version     int         `yaml:"version"`
	OutputDir   string      `yaml:"output_dir"`
	Style       string      `yaml:"style"`
	NoOverwrite bool        `yaml:"no_overwrite"`
	Log         LogConfig   `yaml:"log"`
	Sets        []SetConfig `yaml:"sets"`
}

// LogConfig selects structured diagnostics output.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// SetConfig points at one question set and where to emit it.
type SetConfig struct {
	File    string `yaml:"file"`
	Builtin string `yaml:"builtin"`
	Dir     string `yaml:"dir"`
	Offset  int    `yaml:"offset"`
}

// Label names a set entry for messages.
func (s SetConfig) Label() string {
	if s.Builtin != "" {
		return "builtin:" + s.Builtin
	}
	return s.File
}
