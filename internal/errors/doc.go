// Package errors defines the typed application errors of the watchlist
// converter and maps them to process exit codes.
package errors
