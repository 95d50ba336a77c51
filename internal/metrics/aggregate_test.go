package metrics

import (
	"testing"
	"time"
)

func month(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := ParseMonth(value)
	if err != nil {
		t.Fatalf("parse month %s: %v", value, err)
	}
	return parsed
}

func TestParseGranularity(t *testing.T) {
	cases := map[string]Granularity{
		"daily":     Daily,
		"Weekly":    Weekly,
		" monthly ": Monthly,
		"QUARTERLY": Quarterly,
	}
	for input, want := range cases {
		got, err := ParseGranularity(input)
		if err != nil {
			t.Fatalf("ParseGranularity(%q): %v", input, err)
		}
		if got != want {
			t.Fatalf("ParseGranularity(%q) = %v, want %v", input, got, want)
		}
	}

	if _, err := ParseGranularity("hourly"); err == nil {
		t.Fatal("unknown granularity should error")
	}
}

func TestMonthlyConservation(t *testing.T) {
	series := Generate(testConfig(t, 42, "2023-01", "2023-12"))

	rows, _ := FilterAggregate(series, month(t, "2023-01"), month(t, "2023-12"), Monthly)
	if len(rows) != 12 {
		t.Fatalf("expected 12 monthly buckets, got %d", len(rows))
	}

	var rawViews, bucketViews int64
	for _, row := range series {
		rawViews += row.Views
	}
	for _, row := range rows {
		bucketViews += row.Views
	}
	if rawViews != bucketViews {
		t.Fatalf("monthly aggregation should conserve views: raw %d, bucketed %d", rawViews, bucketViews)
	}
}

func TestQuarterlyBuckets(t *testing.T) {
	series := Generate(testConfig(t, 42, "2023-01", "2023-12"))

	rows, _ := FilterAggregate(series, month(t, "2023-01"), month(t, "2023-12"), Quarterly)
	if len(rows) != 4 {
		t.Fatalf("expected 4 quarterly buckets, got %d", len(rows))
	}

	wantAnchors := []string{"2023-01", "2023-04", "2023-07", "2023-10"}
	for i, row := range rows {
		if got := row.Bucket.Format(MonthLayout); got != wantAnchors[i] {
			t.Fatalf("bucket %d anchored at %s, want %s", i, got, wantAnchors[i])
		}
	}

	wantViews := series[0].Views + series[1].Views + series[2].Views
	if rows[0].Views != wantViews {
		t.Fatalf("first quarter views = %d, want %d", rows[0].Views, wantViews)
	}
}

func TestWeeklyAnchorsOnMonday(t *testing.T) {
	series := Generate(testConfig(t, 42, "2023-01", "2023-12"))

	rows, _ := FilterAggregate(series, month(t, "2023-01"), month(t, "2023-12"), Weekly)
	if len(rows) == 0 {
		t.Fatal("expected weekly buckets")
	}
	for i, row := range rows {
		if row.Bucket.Weekday() != time.Monday {
			t.Fatalf("bucket %d anchored on %s, want Monday", i, row.Bucket.Weekday())
		}
	}
}

func TestDailyPassThrough(t *testing.T) {
	series := Generate(testConfig(t, 42, "2023-01", "2023-12"))

	rows, _ := FilterAggregate(series, month(t, "2023-03"), month(t, "2023-05"), Daily)
	if len(rows) != 3 {
		t.Fatalf("expected 3 pass-through rows, got %d", len(rows))
	}
	for i, row := range rows {
		source := series[i+2]
		if !row.Bucket.Equal(source.Date) {
			t.Fatalf("row %d bucket %s should match source date %s", i, row.Bucket, source.Date)
		}
		if row.Views != source.Views {
			t.Fatalf("row %d views %d should match source %d", i, row.Views, source.Views)
		}
	}
}

func TestFilterEmptyRange(t *testing.T) {
	series := Generate(testConfig(t, 42, "2023-01", "2023-12"))

	rows, growth := FilterAggregate(series, month(t, "2010-01"), month(t, "2010-12"), Monthly)
	if len(rows) != 0 {
		t.Fatalf("out-of-range selection should be empty, got %d rows", len(rows))
	}
	if growth != (Growth{}) {
		t.Fatalf("empty selection should have zero growth, got %+v", growth)
	}
}

func TestGrowthSingleRow(t *testing.T) {
	series := Generate(testConfig(t, 42, "2023-01", "2023-12"))

	rows, growth := FilterAggregate(series, month(t, "2023-06"), month(t, "2023-06"), Monthly)
	if len(rows) != 1 {
		t.Fatalf("expected a single bucket, got %d", len(rows))
	}
	if growth != (Growth{}) {
		t.Fatalf("single bucket should have zero growth, got %+v", growth)
	}
}

func TestGrowthDeltas(t *testing.T) {
	series := Series{
		{Date: month(t, "2023-01"), Views: 100, WatchHours: 10, NetSubscribers: 5, Likes: 20},
		{Date: month(t, "2023-02"), Views: 150, WatchHours: 12, NetSubscribers: 8, Likes: 15},
		{Date: month(t, "2023-03"), Views: 120, WatchHours: 20, NetSubscribers: 6, Likes: 25},
	}

	_, growth := FilterAggregate(series, month(t, "2023-01"), month(t, "2023-03"), Monthly)

	want := Growth{Views: -30, WatchHours: 8, NetSubscribers: -2, Likes: 10}
	if growth != want {
		t.Fatalf("growth = %+v, want %+v", growth, want)
	}
}
