// Package version normalises the version string printed by --version.
package version

import semver "github.com/blang/semver/v4"

// Normalize returns v as a canonical semantic version ("v1.2" becomes
// "1.2.0"). Strings that are not versions, such as a VCS revision, are
// returned unchanged.
func Normalize(v string) string {
	ver, err := semver.ParseTolerant(v)
	if err != nil {
		return v
	}
	return ver.String()
}
