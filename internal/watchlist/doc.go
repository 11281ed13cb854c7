// Package watchlist turns free-form watchlist exports into (exchange, ticker)
// pairs.
//
// Two pure functions make up the pipeline:
//
// Normalize: raw file text to an ordered list of non-empty trimmed lines. It
// unifies line endings and detects exports that put the whole watchlist on a
// single comma-separated, quoted line.
//
// Extract: lines to pairs. A line may hold a chained pair such as
// "CRYPTOCAP:ETH-AMEX:USD", which yields one pair per hyphen segment.
//
// Example usage:
//
//	lines := watchlist.Normalize(text)
//	pairs := watchlist.Extract(lines)
//	for _, p := range pairs {
//	    fmt.Println(p.Exchange, p.Ticker)
//	}
//
// Nothing in this package validates symbols, removes duplicates or sorts.
package watchlist
