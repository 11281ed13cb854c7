// Package app wires configuration, logging, telemetry and the conversion
// pipeline into the watchlist command.
//
// # Flow
//
// A run goes through these steps in order:
//
//	1. Parse flags and the two positional paths
//	2. Load configuration from the optional YAML file and WATCHLIST_* variables
//	3. Initialize logging and telemetry
//	4. Validate the input path, read and decode it
//	5. Normalize the text into lines and extract exchange/ticker pairs
//	6. Write the header and one row per pair in the selected format
//	7. Flush telemetry
//
// # Error Handling
//
// Errors are AppError values from internal/errors. Run turns them into an
// exit status and a message; it never calls os.Exit itself, leaving that to
// the main function.
package app
