package plugins

import "strings"

// ArgName converts a flag token into the identifier its value is stored
// under, e.g. `--no-hex-string-scan` becomes `no_hex_string_scan`.
func ArgName(flag string) string {
	return strings.ReplaceAll(strings.TrimLeft(flag, "-"), "-", "_")
}

// FlagName strips the leading dashes, giving the name pflag registers.
func FlagName(flag string) string {
	return strings.TrimLeft(flag, "-")
}
