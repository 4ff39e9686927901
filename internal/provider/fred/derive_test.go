package fred

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fxmacro/internal/model"
)

func monthlyObs(values ...float64) []model.Observation {
	obs := make([]model.Observation, len(values))
	for i, v := range values {
		obs[i] = model.Observation{
			Date:  time.Date(2023, time.Month(1+i%12), 1, 0, 0, 0, 0, time.UTC).AddDate(i/12, 0, 0),
			Value: v,
		}
	}
	return obs
}

func TestDerivePeriodChange(t *testing.T) {
	obs := monthlyObs(300.0, 301.5, 300.9)
	Derive(obs, 0)

	assert.Nil(t, obs[0].PeriodChange)
	require.NotNil(t, obs[1].PeriodChange)
	require.NotNil(t, obs[2].PeriodChange)
	// 301.5/300 - 1 = 0.005, 300.9/301.5 - 1 = -0.00199...
	assert.Equal(t, 0.005, *obs[1].PeriodChange)
	assert.Equal(t, -0.002, *obs[2].PeriodChange)

	t.Run("no yoy without a lag", func(t *testing.T) {
		for _, o := range obs {
			assert.Nil(t, o.YoYChange)
		}
	})
}

func TestDeriveYoY(t *testing.T) {
	// 14 monthly CPI levels: YoY defined from index 12 on
	values := []float64{
		296.0, 296.8, 297.7, 298.4, 299.0, 299.6, 300.1,
		300.8, 301.4, 302.0, 302.7, 303.3, 304.9, 305.7,
	}
	obs := monthlyObs(values...)
	Derive(obs, 12)

	for i := 0; i < 12; i++ {
		assert.Nil(t, obs[i].YoYChange, "index %d", i)
	}
	require.NotNil(t, obs[12].YoYChange)
	require.NotNil(t, obs[13].YoYChange)
	// (304.9/296.0 - 1) * 100 = 3.0067... -> 3.01
	assert.Equal(t, 3.01, *obs[12].YoYChange)
	// (305.7/296.8 - 1) * 100 = 2.9987... -> 3.0
	assert.Equal(t, 3.0, *obs[13].YoYChange)
}

func TestDeriveWindowLocalLookback(t *testing.T) {
	// the lookback counts rows inside the filtered window only, so a short
	// window yields no YoY at all even for an indicator with the lag set
	obs := monthlyObs(300.0, 301.0, 302.0)
	Derive(obs, 12)
	for i, o := range obs {
		assert.Nil(t, o.YoYChange, "index %d", i)
	}
}

func TestDeriveZeroValueGuard(t *testing.T) {
	obs := monthlyObs(0, 5.0)
	Derive(obs, 0)
	assert.Nil(t, obs[1].PeriodChange)
}
