package feature

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"fxmacro/internal/model"
)

// ErrNoData is returned when there is no market data to augment. The
// extractor never panics; a nil or empty series comes back as (nil, ErrNoData)
// with a diagnostic logged.
var ErrNoData = errors.New("no market data to augment")

// Bar is a canonical bar augmented with volatility signals. Feature fields
// are nil where they are undefined: always on the first row, and wherever the
// previous close is missing or non-positive.
type Bar struct {
	model.Bar
	LogReturn  *float64 `json:"log_return,omitempty"`
	Volatility *float64 `json:"volatility,omitempty"`
	Multiplier *float64 `json:"volatility_multiplier,omitempty"`
}

// Result is the augmented series. AverageVolatility is a single scalar: the
// arithmetic mean of every defined volatility value in the input.
type Result struct {
	Symbol            string
	Vendor            string
	AverageVolatility float64
	Bars              []Bar
}

// Augment derives log returns, absolute-return volatility and the
// volatility multiplier (volatility over the whole-series average, rounded
// to 2 decimals) for one instrument's series. The average spans the entire
// input including rows after t, so multipliers are descriptive, not causal;
// use AugmentRolling for a trailing-window variant.
func Augment(s *model.Series) (*Result, error) {
	res, vols, err := logReturns(s)
	if err != nil {
		return nil, err
	}

	avg := mean(vols)
	res.AverageVolatility = avg
	if avg > 0 {
		for i := range res.Bars {
			if res.Bars[i].Volatility == nil {
				continue
			}
			m := round2(*res.Bars[i].Volatility / avg)
			res.Bars[i].Multiplier = &m
		}
	}
	return res, nil
}

// AugmentRolling is the causal variant: each row's multiplier is computed
// against the mean volatility of the prior window rows only, so no future
// bar leaks into the signal. Rows without any defined prior volatility get a
// nil multiplier. AverageVolatility still reports the whole-series mean for
// reference.
func AugmentRolling(s *model.Series, window int) (*Result, error) {
	if window < 1 {
		return nil, fmt.Errorf("rolling window must be >= 1, got %d", window)
	}
	res, vols, err := logReturns(s)
	if err != nil {
		return nil, err
	}
	res.AverageVolatility = mean(vols)

	for i := range res.Bars {
		if res.Bars[i].Volatility == nil {
			continue
		}
		lo := i - window
		if lo < 0 {
			lo = 0
		}
		var sum float64
		var n int
		for j := lo; j < i; j++ {
			if res.Bars[j].Volatility != nil {
				sum += *res.Bars[j].Volatility
				n++
			}
		}
		if n == 0 || sum == 0 {
			continue
		}
		m := round2(*res.Bars[i].Volatility / (sum / float64(n)))
		res.Bars[i].Multiplier = &m
	}
	return res, nil
}

// logReturns validates the input and fills LogReturn/Volatility, returning
// the defined volatility values for averaging.
func logReturns(s *model.Series) (*Result, []float64, error) {
	if s.Len() == 0 {
		slog.Warn("volatility extractor called without data")
		return nil, nil, ErrNoData
	}

	res := &Result{
		Symbol: s.Symbol,
		Vendor: s.Vendor,
		Bars:   make([]Bar, len(s.Bars)),
	}
	vols := make([]float64, 0, len(s.Bars))
	for i, b := range s.Bars {
		res.Bars[i] = Bar{Bar: b}
		if i == 0 {
			continue
		}
		prev := s.Bars[i-1].Close
		if prev <= 0 || b.Close <= 0 {
			continue
		}
		lr := math.Log(b.Close / prev)
		vol := math.Abs(lr)
		res.Bars[i].LogReturn = &lr
		res.Bars[i].Volatility = &vol
		vols = append(vols, vol)
	}
	return res, vols, nil
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
