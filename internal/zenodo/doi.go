package zenodo

import (
	"fmt"
	"strings"
)

// doiPrefix is the DOI prefix shared by all Zenodo records.
const doiPrefix = "10.5281/zenodo."

// doi.org resolver prefixes stripped by NormalizeDOI.
var resolverPrefixes = []string{
	"https://doi.org/",
	"http://doi.org/",
	"https://dx.doi.org/",
	"http://dx.doi.org/",
	"doi:",
}

// IsZenodoDOI reports whether a DOI (or DOI URL) points at a Zenodo record.
func IsZenodoDOI(doi string) bool {
	return strings.Contains(doi, doiPrefix)
}

// NormalizeDOI strips any doi.org resolver prefix, reducing a DOI URL to
// the bare DOI. Bare DOIs pass through unchanged.
func NormalizeDOI(input string) string {
	input = strings.TrimSpace(input)
	for _, prefix := range resolverPrefixes {
		if rest, ok := strings.CutPrefix(input, prefix); ok {
			return rest
		}
	}
	return input
}

// RecordID extracts the numeric record ID from a Zenodo DOI or DOI URL.
func RecordID(doi string) (string, error) {
	doi = NormalizeDOI(doi)
	id, ok := strings.CutPrefix(doi, doiPrefix)
	if !ok || id == "" {
		return "", fmt.Errorf("%w: %s", ErrNotZenodoDOI, doi)
	}
	return id, nil
}
