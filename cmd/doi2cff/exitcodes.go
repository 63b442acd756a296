package main

// Exit codes.
const (
	ExitSuccess    = 0 // Success
	ExitError      = 1 // General error (invalid arguments, file errors)
	ExitFetchError = 2 // A record fetch failed
	ExitDataError  = 3 // Record or author data failed validation
)
