package format

import "github.com/blang/semver/v4"

// Version is this build's wire-format version (spec §6 parenthetical
// "implementer-defined but stable across runs"): bumping Major signals an
// incompatible wire-format change. The writers in this package do not
// write it into their output.
var Version = semver.MustParse("1.0.0")

// CompatibleVersion reports whether a stream tagged with v can be read by
// this build: same major version, at least this build's minor/patch level
// is not required (readers only need to understand the wire shapes
// introduced up to their own version).
func CompatibleVersion(v semver.Version) bool {
	return v.Major == Version.Major
}
