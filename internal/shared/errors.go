package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Library errors
	ErrMissingLibrary   = fmt.Errorf("library not found")
	ErrInvalidLibrary   = fmt.Errorf("invalid library document")
	ErrUnknownReference = fmt.Errorf("unknown reference")
	ErrDuplicateEntry   = fmt.Errorf("duplicate entry")
	ErrPlaylistNotFound = fmt.Errorf("playlist not found")
	ErrTrackNotFound    = fmt.Errorf("track not found")

	// Input validation errors
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFormat   = fmt.Errorf("unsupported output format")
)
