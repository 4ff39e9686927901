package provider

import (
	"errors"
	"fmt"
)

// Failure kinds for vendor fetches. Callers pick retry vs. abort policy with
// errors.Is; the fetch functions never panic and never return partial data
// alongside an error.
var (
	// ErrTransport covers network, auth and HTTP-status failures.
	ErrTransport = errors.New("vendor transport failure")

	// ErrEmptyResult means the call succeeded but returned zero rows.
	ErrEmptyResult = errors.New("vendor returned no data")

	// ErrMalformed means the response body could not be interpreted.
	ErrMalformed = errors.New("malformed vendor response")
)

// FetchError wraps a vendor failure with instrument context. Unwrap yields
// the kind sentinel so errors.Is(err, ErrEmptyResult) etc. work through it.
type FetchError struct {
	Vendor string
	Symbol string
	Kind   error
	Err    error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s [%s]: %v: %v", e.Vendor, e.Symbol, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Vendor, e.Symbol, e.Kind)
}

func (e *FetchError) Unwrap() error { return e.Kind }

// NewFetchError builds a classified fetch failure.
func NewFetchError(vendor, symbol string, kind, err error) *FetchError {
	return &FetchError{Vendor: vendor, Symbol: symbol, Kind: kind, Err: err}
}
