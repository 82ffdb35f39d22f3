// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Catalog Provider - these keys govern how the movie catalog is queried.
const (
	CatalogBaseURL      = "catalog.base_url"
	CatalogLanguage     = "catalog.language"
	CatalogDefaultType  = "catalog.default_type"
	CatalogDefaultLimit = "catalog.default_limit"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern terminal output.
const (
	CliColored  = "cli.colored"
	CliTruncate = "cli.truncate"
)
