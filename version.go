package reedit

import (
	_ "embed"
	"regexp"
	"strings"
)

// devVersion is reported when VERSION does not hold a SemVer string.
const devVersion = "0.0.0-dev"

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var versionFile string

// Version is the release shipped in VERSION, without a leading "v".
func Version() string {
	return releaseVersion(versionFile)
}

// VersionTag is Version in git tag form, as printed by --version.
func VersionTag() string {
	return "v" + Version()
}

func releaseVersion(raw string) string {
	v := strings.TrimSpace(raw)
	if !IsSemver(v) {
		return devVersion
	}
	return v
}

// IsSemver reports whether v is a SemVer 2.0.0 string.
func IsSemver(v string) bool {
	return semverRE.MatchString(v)
}
