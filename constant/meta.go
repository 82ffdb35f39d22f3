// Package constant holds the application identity and build metadata.
package constant

import _ "embed"

const (
	// App names the binary, the config file and the environment prefix.
	App = "tmdb"

	Version = "1.0.0"

	// UserAgent is sent with every catalog request.
	UserAgent = App + "-cli/" + Version
)

// Logo is the banner printed at the top of the root command help.
//
//go:embed logo.txt
var Logo string

// Build metadata, overridden at link time with -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
