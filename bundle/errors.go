package bundle

import "errors"

var (
	// ErrDirectoryUnreadable is returned when an asset directory is missing or cannot be listed.
	ErrDirectoryUnreadable = errors.New("asset directory unreadable")

	// ErrFileUnreadable is returned when an asset file cannot be read as text.
	ErrFileUnreadable = errors.New("asset file unreadable")

	// ErrOutputUnwritable is returned when the generated module cannot be written.
	ErrOutputUnwritable = errors.New("output unwritable")

	// ErrStale is returned by Check when the generated module on disk is out of date.
	ErrStale = errors.New("generated module is out of date")
)
