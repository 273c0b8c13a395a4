// Package logfields defines common logging fields which are used across packages
package logfields

const (
	// LogSubsys is the field denoting the subsystem when logging
	LogSubsys = "subsys"

	// Path is a file system path
	Path = "path"

	// Dialect is the scanner dialect in use
	Dialect = "dialect"

	// Position is a line:column source position
	Position = "position"

	// Char is a single source character
	Char = "char"

	// Tokens is a number of tokens
	Tokens = "tokens"

	// Event is a file system event
	Event = "event"

	// Version is a tool version string
	Version = "version"

	// Snippet is a rendered excerpt of the source
	Snippet = "snippet"
)
