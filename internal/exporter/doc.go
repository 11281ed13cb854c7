// Package exporter writes converted watchlist pairs to disk.
//
// Two formats are supported: delimited CSV through encoding/csv and xlsx
// workbooks through excelize. Both write the header row "Exchange,Ticker"
// followed by one row per pair, in input order.
package exporter
