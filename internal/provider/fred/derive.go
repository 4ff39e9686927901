package fred

import (
	"math"

	"fxmacro/internal/model"
)

// Derive fills PeriodChange on every observation after the first, and
// YoYChange when yoyLag > 0 and at least yoyLag prior rows exist. Both
// lookbacks are window-local: an observation near the start of the requested
// range gets nil changes even when older history exists at the vendor.
func Derive(obs []model.Observation, yoyLag int) {
	for t := range obs {
		if t >= 1 && obs[t-1].Value != 0 {
			v := round(obs[t].Value/obs[t-1].Value-1, 4)
			obs[t].PeriodChange = &v
		}
		if yoyLag > 0 && t >= yoyLag && obs[t-yoyLag].Value != 0 {
			v := round((obs[t].Value/obs[t-yoyLag].Value-1)*100, 2)
			obs[t].YoYChange = &v
		}
	}
}

func round(x float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(x*p) / p
}
