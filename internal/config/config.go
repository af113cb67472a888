package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape. Every field mirrors a
// command-line flag and is nil when the file does not set it.
type FileConfig struct {
	Baseline      *string `yaml:"baseline"`
	ExcludeLines  *string `yaml:"exclude_lines"`
	ExcludeFiles  *string `yaml:"exclude_files"`
	AllFiles      *bool   `yaml:"all_files"`
	UseAllPlugins *bool   `yaml:"use_all_plugins"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches for a repo-local config file in the given root.
// It supports .secrets.yml/.yaml and detect-secrets.yml/.yaml.
func LoadLocal(repoRoot string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".secrets.yml", ".secrets.yaml", "detect-secrets.yml", "detect-secrets.yaml"} {
		p := filepath.Join(repoRoot, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the global config file from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, errors.New("no config dir")
	}
	p := filepath.Join(base, "detect-secrets", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}

// Merge returns local with unset fields taken from global.
func Merge(local, global FileConfig) FileConfig {
	out := local
	if out.Baseline == nil {
		out.Baseline = global.Baseline
	}
	if out.ExcludeLines == nil {
		out.ExcludeLines = global.ExcludeLines
	}
	if out.ExcludeFiles == nil {
		out.ExcludeFiles = global.ExcludeFiles
	}
	if out.AllFiles == nil {
		out.AllFiles = global.AllFiles
	}
	if out.UseAllPlugins == nil {
		out.UseAllPlugins = global.UseAllPlugins
	}
	return out
}

// FlagDefaults maps the fields that are set to the flag names they fill in.
// Flags the invoked grammar does not declare are ignored by the parser.
func (fc FileConfig) FlagDefaults() map[string]string {
	out := map[string]string{}
	if fc.Baseline != nil {
		out["baseline"] = *fc.Baseline
	}
	if fc.ExcludeLines != nil {
		out["exclude-lines"] = *fc.ExcludeLines
	}
	if fc.ExcludeFiles != nil {
		out["exclude-files"] = *fc.ExcludeFiles
	}
	if fc.AllFiles != nil {
		out["all-files"] = strconv.FormatBool(*fc.AllFiles)
	}
	if fc.UseAllPlugins != nil {
		out["use-all-plugins"] = strconv.FormatBool(*fc.UseAllPlugins)
	}
	return out
}
