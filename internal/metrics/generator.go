package metrics

import (
	"math"
	"math/rand"
	"time"
)

// trendEndpoints pins the linear growth curve for each metric: the expected
// value at the first and last month of the window, before noise and
// multipliers.
var trendEndpoints = map[Metric]struct {
	Start float64
	End   float64
}{
	SubscribersGained: {30, 6000},
	SubscribersLost:   {10, 900},
	Views:             {1000, 250000},
	WatchHours:        {50, 12000},
	Likes:             {100, 30000},
	Shares:            {20, 5000},
	Comments:          {40, 8000},
}

// viralMetrics are the engagement metrics amplified on viral months.
var viralMetrics = []Metric{Views, Likes, Shares, Comments}

// GeneratorConfig parameterises the synthetic series. The RNG is derived from
// Seed inside Generate; there is no global rand state.
type GeneratorConfig struct {
	Seed                 int64
	StartMonth           time.Time
	EndMonth             time.Time
	NoiseStdDev          float64
	SeasonalAmplitude    float64
	SeasonalPeriodMonths int
	ViralEveryMonths     int
	ViralMultiplier      float64
}

// withDefaults fills zero-valued tuning knobs with the standard curve shape.
func (c GeneratorConfig) withDefaults() GeneratorConfig {
	if c.NoiseStdDev == 0 {
		c.NoiseStdDev = 0.1
	}
	if c.SeasonalAmplitude == 0 {
		c.SeasonalAmplitude = 0.2
	}
	if c.SeasonalPeriodMonths <= 0 {
		c.SeasonalPeriodMonths = 12
	}
	if c.ViralEveryMonths <= 0 {
		c.ViralEveryMonths = 6
	}
	if c.ViralMultiplier == 0 {
		c.ViralMultiplier = 5
	}
	return c
}

// Generate produces the deterministic monthly series covering every month in
// the closed interval [StartMonth, EndMonth]. The same seed and window always
// yield an identical series.
func Generate(cfg GeneratorConfig) Series {
	cfg = cfg.withDefaults()

	n := monthsBetween(cfg.StartMonth, cfg.EndMonth)
	if n == 0 {
		return Series{}
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	// One noise-scaled linear trend per metric, drawn in canonical metric
	// order so the stream of random values is reproducible.
	values := make(map[Metric][]float64, metricCount)
	for _, m := range Metrics() {
		endpoints := trendEndpoints[m]
		series := make([]float64, n)
		for i := 0; i < n; i++ {
			trend := endpoints.Start
			if n > 1 {
				trend += (endpoints.End - endpoints.Start) * float64(i) / float64(n-1)
			}
			noise := 1 + rng.NormFloat64()*cfg.NoiseStdDev
			series[i] = trend * noise
		}
		values[m] = series
	}

	// Seasonality applies to views only, tiled across the window.
	period := float64(cfg.SeasonalPeriodMonths)
	for i := 0; i < n; i++ {
		cycle := float64(i % cfg.SeasonalPeriodMonths)
		values[Views][i] *= 1 + cfg.SeasonalAmplitude*math.Sin(2*math.Pi*cycle/period)
	}

	// Roughly one month in six goes viral. The first month is never eligible
	// and months are picked without replacement.
	viralCount := n / cfg.ViralEveryMonths
	if viralCount > n-1 {
		viralCount = n - 1
	}
	if viralCount > 0 {
		perm := rng.Perm(n - 1)
		for _, idx := range perm[:viralCount] {
			month := idx + 1
			for _, m := range viralMetrics {
				values[m][month] *= cfg.ViralMultiplier
			}
		}
	}

	start := monthStart(cfg.StartMonth)
	rows := make(Series, n)
	for i := 0; i < n; i++ {
		row := MetricRow{
			Date:              start.AddDate(0, i, 0),
			SubscribersGained: clampToInt(values[SubscribersGained][i]),
			SubscribersLost:   clampToInt(values[SubscribersLost][i]),
			Views:             clampToInt(values[Views][i]),
			WatchHours:        clampToInt(values[WatchHours][i]),
			Likes:             clampToInt(values[Likes][i]),
			Shares:            clampToInt(values[Shares][i]),
			Comments:          clampToInt(values[Comments][i]),
		}
		row.NetSubscribers = row.SubscribersGained - row.SubscribersLost
		if row.NetSubscribers < 0 {
			row.NetSubscribers = 0
		}
		rows[i] = row
	}
	return rows
}

// clampToInt truncates toward zero and clips negatives to zero.
func clampToInt(v float64) int64 {
	truncated := int64(v)
	if truncated < 0 {
		return 0
	}
	return truncated
}
