package convert

import "regexp"

// Patterns for deriving repository URL and version from a GitHub release
// tag URL such as https://github.com/org/tool/tree/v2.0.0.
var (
	treeSuffixPattern    = regexp.MustCompile(`(/tree/.*)$`)
	versionPrefixPattern = regexp.MustCompile(`^.*(/tree/v?)`)
)

// TagURLToRepo strips the /tree/... suffix from a release tag URL,
// leaving the repository URL.
func TagURLToRepo(tagURL string) string {
	return treeSuffixPattern.ReplaceAllString(tagURL, "")
}

// TagURLToVersion strips everything up to and including the /tree/
// segment (and an optional leading "v") from a release tag URL, leaving
// the bare version.
func TagURLToVersion(tagURL string) string {
	return versionPrefixPattern.ReplaceAllString(tagURL, "")
}
