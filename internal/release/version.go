package release

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// BumpKind selects which part of the version is incremented
type BumpKind string

const (
	BumpMajor    BumpKind = "major"
	BumpMinor    BumpKind = "minor"
	BumpPatch    BumpKind = "patch"
	BumpExplicit BumpKind = "explicit"
)

// TagPrefix is prepended to versions to form git tag names
const TagPrefix = "v"

// ParseVersion parses X.Y.Z with optional pre-release and build metadata.
// A leading "v" is accepted.
func ParseVersion(s string) (*semver.Version, error) {
	input := strings.TrimSpace(s)

	v, err := semver.StrictNewVersion(strings.TrimPrefix(input, TagPrefix))
	if err != nil {
		return nil, &InvalidVersionError{Input: s, Err: err}
	}

	return v, nil
}

// ParseBumpKind maps a user argument to a kind; anything that is not a
// keyword is treated as an explicit version.
func ParseBumpKind(arg string) BumpKind {
	switch BumpKind(strings.ToLower(arg)) {
	case BumpMajor:
		return BumpMajor
	case BumpMinor:
		return BumpMinor
	case BumpPatch:
		return BumpPatch
	}

	return BumpExplicit
}

// NextVersion computes the version following current. For BumpExplicit,
// explicit is parsed and returned.
func NextVersion(current *semver.Version, kind BumpKind, explicit string) (*semver.Version, error) {
	var next semver.Version

	switch kind {
	case BumpMajor:
		next = current.IncMajor()
	case BumpMinor:
		next = current.IncMinor()
	case BumpPatch:
		next = current.IncPatch()
	case BumpExplicit:
		return ParseVersion(explicit)
	default:
		return nil, fmt.Errorf("unknown bump kind %q", kind)
	}

	return &next, nil
}

// TagName returns the git tag for a version
func TagName(v *semver.Version) string {
	return TagPrefix + v.String()
}
