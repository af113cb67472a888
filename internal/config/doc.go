// Package config loads detect-secrets defaults from local and global YAML
// files. Local settings win over global ones, and flags given on the command
// line win over both. Plugin options are deliberately not configurable here.
package config
