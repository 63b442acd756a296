package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/matsen/doi2cff/internal/convert"
	"github.com/matsen/doi2cff/internal/csl"
	"github.com/matsen/doi2cff/internal/zenodo"
)

// exitWithError writes an error message to stderr and exits.
func exitWithError(code int, format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(code)
}

// exitCodeFor classifies a conversion error into an exit code.
func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, convert.ErrUnsupportedDOI),
		errors.Is(err, convert.ErrUnrecognizedAuthor),
		errors.Is(err, zenodo.ErrNotZenodoDOI),
		errors.Is(err, zenodo.ErrNoTagURL):
		return ExitDataError
	case zenodo.IsNotFound(err),
		errors.Is(err, zenodo.ErrRateLimited),
		errors.Is(err, zenodo.ErrNetworkError),
		errors.Is(err, csl.ErrNotFound),
		errors.Is(err, csl.ErrNoMetadata),
		errors.Is(err, csl.ErrNetworkError):
		return ExitFetchError
	}
	return ExitError
}
