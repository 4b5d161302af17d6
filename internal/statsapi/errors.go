package statsapi

import "fmt"

// Stage identifies which part of a schedule fetch failed.
type Stage int

const (
	// StageURLParsing means the endpoint string was not a valid URL.
	StageURLParsing Stage = iota

	// StageConnection means the HTTP request could not be completed.
	StageConnection

	// StageDownload means the response body could not be read in full.
	StageDownload

	// StageDeserialization means the body was not a valid schedule document.
	StageDeserialization
)

// String returns the operator-facing description of the stage.
func (s Stage) String() string {
	switch s {
	case StageURLParsing:
		return "Failed to parse the given API endpoint"
	case StageConnection:
		return "Failed to establish a connection with the given API endpoint"
	case StageDownload:
		return "Failed to download data from the given API endpoint"
	case StageDeserialization:
		return "Failed to deserialize data from the given API endpoint"
	default:
		return "Unknown schedule fetch failure"
	}
}

// APIError describes a failed schedule fetch. It keeps the source endpoint
// and the failing stage so the error screen can tell the operator exactly
// what broke.
type APIError struct {
	Source string
	Stage  Stage
	Err    error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s. Error: %v. Source: %s", e.Stage, e.Err, e.Source)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e *APIError) Unwrap() error {
	return e.Err
}
