package fred

// ObservationsResponse is the FRED series/observations envelope.
type ObservationsResponse struct {
	RealtimeStart string           `json:"realtime_start"`
	RealtimeEnd   string           `json:"realtime_end"`
	Count         int              `json:"count"`
	Observations  []ObservationRaw `json:"observations"`

	// Populated instead of observations when the request is rejected.
	ErrorCode    int    `json:"error_code,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// ObservationRaw is one raw release row. Value comes as a string and may be
// "." for missing observations.
type ObservationRaw struct {
	RealtimeStart string `json:"realtime_start"`
	RealtimeEnd   string `json:"realtime_end"`
	Date          string `json:"date"`
	Value         string `json:"value"`
}
