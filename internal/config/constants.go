package config

// AppVersion is overridden at link time by build.go
var AppVersion = "1.0.0"

// Application constants
const (
	AppName = "watchlist"

	// EnvPrefix namespaces every environment variable read by Load.
	EnvPrefix = "WATCHLIST"
	// ConfigFileEnv names a YAML config file when no -config flag is given.
	ConfigFileEnv = "WATCHLIST_CONFIG"
)

// Default values for optional configuration fields.
const (
	DefaultLogLevel       = "info"
	DefaultLogOutput      = "stderr"
	DefaultLogFilePath    = "logs/watchlist.log"
	DefaultExportFormat   = FormatAuto
	DefaultLineTerminator = LineTerminatorCRLF
	DefaultSheetName      = "Watchlist"
	DefaultTraceExporter  = "stdout"
	DefaultSampleRatio    = 1.0
)

// Output formats.
const (
	FormatAuto = "auto"
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// Line terminators for delimited output.
const (
	LineTerminatorCRLF = "crlf"
	LineTerminatorLF   = "lf"
)
