package yahoo

// ChartResponse is the Yahoo v8 chart API envelope. Quote values come as
// parallel arrays with null slots for missing bars, so they decode into
// pointer slices.
type ChartResponse struct {
	Chart struct {
		Result []ChartResult `json:"result"`
		Error  *APIError     `json:"error"`
	} `json:"chart"`
}

// APIError is Yahoo's in-band error object.
type APIError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// ChartResult is one instrument's chart payload: epoch-second timestamps plus
// nested indicator blocks. Only the quote block is used; adjclose and event
// blocks (dividends, splits) are vendor extras dropped during normalization.
type ChartResult struct {
	Meta struct {
		Symbol          string `json:"symbol"`
		Currency        string `json:"currency"`
		DataGranularity string `json:"dataGranularity"`
	} `json:"meta"`
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []QuoteBlock `json:"quote"`
	} `json:"indicators"`
}

// QuoteBlock holds the OHLCV arrays, index-aligned with Timestamp.
type QuoteBlock struct {
	Open   []*float64 `json:"open"`
	High   []*float64 `json:"high"`
	Low    []*float64 `json:"low"`
	Close  []*float64 `json:"close"`
	Volume []*int64   `json:"volume"`
}
