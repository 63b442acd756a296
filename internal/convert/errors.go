package convert

import "errors"

// Errors returned by the conversion core.
var (
	// ErrUnsupportedDOI indicates a DOI the converter cannot handle:
	// outside the Zenodo prefix, or resolving to a non-software record.
	ErrUnsupportedDOI = errors.New("unable to process DOI, converter only supports Zenodo software records")

	// ErrUnrecognizedAuthor indicates an author entry matching none of
	// the known creator shapes.
	ErrUnrecognizedAuthor = errors.New("unrecognized author shape")
)
