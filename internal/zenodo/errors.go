package zenodo

import (
	"errors"
	"fmt"
)

// Common errors returned by the Zenodo client and DOI helpers.
var (
	// ErrNotFound indicates the record does not exist.
	ErrNotFound = errors.New("record not found on Zenodo")

	// ErrNotZenodoDOI indicates a DOI outside the Zenodo prefix.
	ErrNotZenodoDOI = errors.New("not a Zenodo DOI")

	// ErrNoTagURL indicates a record without an isSupplementTo related
	// identifier, so no release tag URL can be derived.
	ErrNoTagURL = errors.New("record has no related identifier with isSupplementTo relation")

	// ErrRateLimited indicates the API rate limit has been exceeded.
	ErrRateLimited = errors.New("Zenodo rate limit exceeded")

	// ErrNetworkError indicates a connectivity problem.
	ErrNetworkError = errors.New("network error communicating with Zenodo")

	// ErrInvalidResponse indicates an unexpected API response body.
	ErrInvalidResponse = errors.New("invalid response from Zenodo")
)

// APIError represents a non-success response from the Zenodo API.
type APIError struct {
	StatusCode int
	RecordID   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Zenodo API error (status %d, record %s)", e.StatusCode, e.RecordID)
}

// IsNotFound returns true if the error indicates a missing record.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 404
}
