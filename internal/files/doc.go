// Package files reads watchlist inputs and prepares output locations.
//
// Manager wraps the file system operations the converter needs: existence
// checks, parent directory creation and reading a watchlist into text.
//
// Text inputs are decoded best-effort. A UTF-8 or UTF-16 byte order mark
// selects the encoding; without one the bytes are taken as UTF-8 and invalid
// sequences are dropped rather than reported. Spreadsheet inputs (.xlsx)
// contribute one line per non-empty cell of their first sheet.
//
// Example usage:
//
//	manager := files.NewManager(logger)
//	src, err := manager.ReadWatchlist("~/Downloads/tv.txt")
//	if err != nil {
//	    return err
//	}
//	lines := watchlist.Normalize(src.Text)
package files
