package ledger

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		want    Date
		wantErr bool
	}{
		{name: "iso", in: "2025-03-10", want: NewDate(2025, time.March, 10)},
		{name: "permissive single digits", in: "2025-3-1", want: NewDate(2025, time.March, 1)},
		{name: "surrounding spaces", in: " 2025-03-10 ", want: NewDate(2025, time.March, 10)},
		{name: "long format", in: "2025-03-10T15:04:05.000+0200", want: NewDate(2025, time.March, 10)},
		{name: "garbage", in: "not a date", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDate(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) = %v, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestDate_Add(t *testing.T) {
	testCases := []struct {
		name string
		in   Date
		days int
		want Date
	}{
		{name: "within month", in: NewDate(2025, time.March, 10), days: 5, want: NewDate(2025, time.March, 15)},
		{name: "across month end", in: NewDate(2025, time.March, 31), days: 1, want: NewDate(2025, time.April, 1)},
		{name: "across year end", in: NewDate(2025, time.December, 31), days: 1, want: NewDate(2026, time.January, 1)},
		{name: "backwards", in: NewDate(2025, time.March, 1), days: -1, want: NewDate(2025, time.February, 28)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Add(tc.days); got != tc.want {
				t.Errorf("%v.Add(%d) = %v, want %v", tc.in, tc.days, got, tc.want)
			}
		})
	}
}

func TestDate_MonthBoundaries(t *testing.T) {
	testCases := []struct {
		name      string
		in        Date
		wantStart Date
		wantEnd   Date
	}{
		{name: "mid month", in: NewDate(2025, time.March, 10), wantStart: NewDate(2025, time.March, 1), wantEnd: NewDate(2025, time.March, 31)},
		{name: "february", in: NewDate(2025, time.February, 14), wantStart: NewDate(2025, time.February, 1), wantEnd: NewDate(2025, time.February, 28)},
		{name: "leap february", in: NewDate(2024, time.February, 14), wantStart: NewDate(2024, time.February, 1), wantEnd: NewDate(2024, time.February, 29)},
		{name: "december", in: NewDate(2025, time.December, 25), wantStart: NewDate(2025, time.December, 1), wantEnd: NewDate(2025, time.December, 31)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.StartOfMonth(); got != tc.wantStart {
				t.Errorf("StartOfMonth() = %v, want %v", got, tc.wantStart)
			}
			if got := tc.in.EndOfMonth(); got != tc.wantEnd {
				t.Errorf("EndOfMonth() = %v, want %v", got, tc.wantEnd)
			}
		})
	}
}

func TestRange_Contains(t *testing.T) {
	r := NewRange(MustParse("2025-03-01"), MustParse("2025-03-31"))

	testCases := []struct {
		date string
		want bool
	}{
		{"2025-02-28", false},
		{"2025-03-01", true}, // start boundary included
		{"2025-03-15", true},
		{"2025-03-31", true}, // end boundary included
		{"2025-04-01", false},
	}
	for _, tc := range testCases {
		if got := r.Contains(MustParse(tc.date)); got != tc.want {
			t.Errorf("Contains(%s) = %v, want %v", tc.date, got, tc.want)
		}
	}
}

func TestMonthOf(t *testing.T) {
	got := MonthOf(MustParse("2025-02-14"))
	want := Range{From: MustParse("2025-02-01"), To: MustParse("2025-02-28")}
	if got != want {
		t.Errorf("MonthOf() = %v, want %v", got, want)
	}
}

func TestNewRange_SwapsReversedBounds(t *testing.T) {
	got := NewRange(MustParse("2025-03-31"), MustParse("2025-03-01"))
	if got.From != MustParse("2025-03-01") || got.To != MustParse("2025-03-31") {
		t.Errorf("NewRange() = %v, want bounds swapped", got)
	}
}
