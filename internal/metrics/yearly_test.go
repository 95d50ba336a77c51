package metrics

import (
	"testing"
)

func TestReshapeByYearCompleteness(t *testing.T) {
	series := Generate(testConfig(t, 42, "2019-08", "2024-09"))
	years := ReshapeByYear(series)

	if len(years) != 6 {
		t.Fatalf("expected 6 calendar years, got %d", len(years))
	}
	if years[0].Year != 2019 || years[len(years)-1].Year != 2024 {
		t.Fatalf("years should span 2019..2024, got %d..%d", years[0].Year, years[len(years)-1].Year)
	}

	// Partial first and last years produce shorter sequences.
	if got := len(years[0].Views); got != 5 {
		t.Fatalf("2019 should hold 5 months, got %d", got)
	}
	if got := len(years[len(years)-1].Views); got != 9 {
		t.Fatalf("2024 should hold 9 months, got %d", got)
	}

	// Concatenating the yearly sequences reconstructs every metric's raw
	// monthly sequence in order.
	for _, m := range Metrics() {
		var rebuilt []int64
		for _, year := range years {
			rebuilt = append(rebuilt, year.MetricValues(m)...)
		}
		if len(rebuilt) != len(series) {
			t.Fatalf("%s: rebuilt %d values, want %d", m, len(rebuilt), len(series))
		}
		for i, v := range rebuilt {
			if v != series[i].Value(m) {
				t.Fatalf("%s: rebuilt value %d = %d, want %d", m, i, v, series[i].Value(m))
			}
		}
	}
}

func TestReshapeByYearNetTakesLast(t *testing.T) {
	series := Series{
		{Date: month(t, "2023-01"), NetSubscribers: 5},
		{Date: month(t, "2023-02"), NetSubscribers: 9},
		{Date: month(t, "2024-01"), NetSubscribers: 3},
	}

	years := ReshapeByYear(series)
	if len(years) != 2 {
		t.Fatalf("expected 2 years, got %d", len(years))
	}
	if years[0].NetSubscribers != 9 {
		t.Fatalf("2023 net should be the last month's value 9, got %d", years[0].NetSubscribers)
	}
	if years[1].NetSubscribers != 3 {
		t.Fatalf("2024 net should be 3, got %d", years[1].NetSubscribers)
	}
}

func TestReshapeByYearEmpty(t *testing.T) {
	if years := ReshapeByYear(Series{}); len(years) != 0 {
		t.Fatalf("empty series should produce no yearly rows, got %d", len(years))
	}
}
