// Package shared holds helpers used across the watchlist packages that belong
// to no single layer.
//
// The testutil subpackage captures slog output so tests can assert on what a
// component logged:
//
//	logger, handler := testutil.NewTestLogger(t)
//	converter := app.NewConverter(cfg.Export, nil, logger)
//	...
//	testutil.AssertLogContains(t, handler, slog.LevelInfo, "Conversion completed")
package shared
