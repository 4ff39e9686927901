package polygon

import "strings"

// CurrencyTicker translates a plain currency-pair code into Polygon's
// prefixed ticker format: "USDGBP" -> "C:USDGBP". Tickers that already carry
// a market prefix ("C:...", "I:...", "X:...") and non-pair symbols (stocks,
// index codes) pass through unchanged.
func CurrencyTicker(symbol string) string {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	if strings.Contains(s, ":") {
		return s
	}
	if isCurrencyPair(s) {
		return "C:" + s
	}
	return s
}

// isCurrencyPair reports whether s looks like two concatenated ISO currency
// codes (six letters, no separators).
func isCurrencyPair(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
