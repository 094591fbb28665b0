// Package constants provides shared constants for the purchase-cost application.
package constants

// Rounding constants
const (
	// CurrencyPlaces is the number of decimals every named currency amount is rounded to
	CurrencyPlaces = 2

	// UnitPlaces is the number of decimals used for per-unit values
	UnitPlaces = 4

	// CurrencyTolerance is the tolerance for currency comparisons (half a cent)
	CurrencyTolerance = 0.005

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Presentation defaults
const (
	// DefaultCurrency is the currency symbol used when none is supplied
	DefaultCurrency = "€"

	// DefaultLocale is the BCP 47 tag used for number formatting
	DefaultLocale = "de-DE"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable diagram output format
	OutputFormatPretty = "pretty"

	// OutputFormatJSON is the machine-readable output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// StdinConfigPath makes the CLI read its configuration from stdin
	StdinConfigPath = "-"

	// DotEnvFile is loaded into the environment before the configuration is read
	DotEnvFile = ".env"

	// EnvPrefix prefixes environment overrides, e.g. PURCHASE_COST_CURRENCY
	EnvPrefix = "PURCHASE_COST"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (256 KB)
	DefaultMaxBodySizeBytes int64 = 256 * 1024
)
