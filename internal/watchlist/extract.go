package watchlist

import "strings"

const (
	// SegmentSeparator joins the halves of a chained pair.
	SegmentSeparator = "-"
	// ExchangeSeparator splits an exchange prefix from its ticker.
	ExchangeSeparator = ":"
)

// Pair is one output row. Exchange is empty when the source did not name one.
type Pair struct {
	Exchange string
	Ticker   string
}

// Record returns the pair as a tabular row in header order.
func (p Pair) Record() []string {
	return []string{p.Exchange, p.Ticker}
}

// Stats counts what Extract did with the segments it saw.
type Stats struct {
	Lines     int
	Segments  int
	Discarded int
}

// Extract converts lines into pairs, in line order and then segment order.
// Every returned pair has a non-empty ticker.
func Extract(lines []string) []Pair {
	pairs, _ := ExtractWithStats(lines)
	return pairs
}

// ExtractWithStats is Extract that also reports segment counts.
func ExtractWithStats(lines []string) ([]Pair, Stats) {
	stats := Stats{Lines: len(lines)}
	pairs := make([]Pair, 0, len(lines))

	for _, line := range lines {
		for _, seg := range strings.Split(line, SegmentSeparator) {
			stats.Segments++
			p, ok := parseSegment(seg)
			if !ok {
				stats.Discarded++
				continue
			}
			pairs = append(pairs, p)
		}
	}

	return pairs, stats
}

// parseSegment splits one hyphen segment on its first colon. Segments that are
// blank, or whose ticker part is blank, are rejected.
func parseSegment(seg string) (Pair, bool) {
	seg = strings.Trim(strings.TrimSpace(seg), `"`)
	if seg == "" {
		return Pair{}, false
	}

	var p Pair
	if exchange, ticker, found := strings.Cut(seg, ExchangeSeparator); found {
		p = Pair{Exchange: exchange, Ticker: ticker}
	} else {
		p = Pair{Ticker: seg}
	}

	p.Exchange = strings.TrimSpace(p.Exchange)
	p.Ticker = strings.TrimSpace(p.Ticker)
	if p.Ticker == "" {
		return Pair{}, false
	}
	return p, true
}

// Convert runs the whole pipeline over raw text.
func Convert(text string) []Pair {
	return Extract(Normalize(text))
}
