package metrics

import (
	"reflect"
	"testing"
	"time"
)

func testConfig(t *testing.T, seed int64, start, end string) GeneratorConfig {
	t.Helper()

	startMonth, err := ParseMonth(start)
	if err != nil {
		t.Fatalf("parse start month: %v", err)
	}
	endMonth, err := ParseMonth(end)
	if err != nil {
		t.Fatalf("parse end month: %v", err)
	}

	return GeneratorConfig{Seed: seed, StartMonth: startMonth, EndMonth: endMonth}
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := testConfig(t, 42, "2019-08", "2024-09")

	first := Generate(cfg)
	second := Generate(cfg)

	if !reflect.DeepEqual(first, second) {
		t.Fatal("same seed and window should produce identical series")
	}
}

func TestGenerateSeedsDiffer(t *testing.T) {
	a := Generate(testConfig(t, 1, "2019-08", "2024-09"))
	b := Generate(testConfig(t, 2, "2019-08", "2024-09"))

	if reflect.DeepEqual(a, b) {
		t.Fatal("different seeds should produce different series")
	}
}

func TestGenerateWindowShape(t *testing.T) {
	series := Generate(testConfig(t, 42, "2019-08", "2024-09"))

	if len(series) != 62 {
		t.Fatalf("expected 62 rows, got %d", len(series))
	}

	first := series[0]
	last := series[len(series)-1]

	if got := first.Date.Format(MonthLayout); got != "2019-08" {
		t.Fatalf("first row should be dated 2019-08, got %s", got)
	}
	if got := last.Date.Format(MonthLayout); got != "2024-09" {
		t.Fatalf("last row should be dated 2024-09, got %s", got)
	}

	// Subscribers gained trends 30 to 6000 with N(1, 0.1) noise and no viral
	// multiplier, so the endpoints stay within generous noise bounds.
	if first.SubscribersGained > 60 {
		t.Fatalf("first subscribers_gained should be near 30, got %d", first.SubscribersGained)
	}
	if last.SubscribersGained < 3000 || last.SubscribersGained > 9000 {
		t.Fatalf("last subscribers_gained should be near 6000, got %d", last.SubscribersGained)
	}
}

func TestGenerateNonNegativeContiguous(t *testing.T) {
	series := Generate(testConfig(t, 7, "2019-08", "2024-09"))

	for i, row := range series {
		for _, m := range Metrics() {
			if row.Value(m) < 0 {
				t.Fatalf("row %d: %s is negative", i, m)
			}
		}
		if row.NetSubscribers < 0 {
			t.Fatalf("row %d: net_subscribers is negative", i)
		}

		want := row.SubscribersGained - row.SubscribersLost
		if want < 0 {
			want = 0
		}
		if row.NetSubscribers != want {
			t.Fatalf("row %d: net_subscribers should be gained minus lost clamped to zero, got %d want %d", i, row.NetSubscribers, want)
		}

		if i > 0 {
			prev := series[i-1].Date
			if !row.Date.Equal(prev.AddDate(0, 1, 0)) {
				t.Fatalf("row %d: dates should advance by one month, got %s after %s", i, row.Date, prev)
			}
		}
	}
}

func TestGenerateEmptyWindow(t *testing.T) {
	start, _ := ParseMonth("2024-09")
	end, _ := ParseMonth("2019-08")
	series := Generate(GeneratorConfig{Seed: 42, StartMonth: start, EndMonth: end})

	if len(series) != 0 {
		t.Fatalf("inverted window should produce an empty series, got %d rows", len(series))
	}
}

func TestGenerateSingleMonth(t *testing.T) {
	series := Generate(testConfig(t, 42, "2020-02", "2020-02"))

	if len(series) != 1 {
		t.Fatalf("expected a single row, got %d", len(series))
	}
	if got := series[0].Date; !got.Equal(time.Date(2020, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected row date %s", got)
	}
}
