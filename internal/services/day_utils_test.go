package services

import (
	"testing"
	"time"
)

func TestParseDay(t *testing.T) {
	location, err := time.LoadLocation("Asia/Shanghai")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	tests := []struct {
		name   string
		raw    string
		want   string
		wantOK bool
	}{
		{name: "plain date", raw: "2026-05-01", want: "2026-05-01", wantOK: true},
		{name: "date with surrounding spaces", raw: "  2026-05-01  ", want: "2026-05-01", wantOK: true},
		{name: "rfc3339 before local midnight", raw: "2026-04-30T20:30:00Z", want: "2026-05-01", wantOK: true},
		{name: "empty", raw: "", wantOK: false},
		{name: "garbage", raw: "not-a-date", wantOK: false},
		{name: "wrong layout", raw: "01/05/2026", wantOK: false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			day, ok := ParseDay(testCase.raw, location)
			if ok != testCase.wantOK {
				t.Fatalf("ParseDay(%q) ok = %v, want %v", testCase.raw, ok, testCase.wantOK)
			}
			if !ok {
				return
			}
			if got := FormatDay(day); got != testCase.want {
				t.Fatalf("ParseDay(%q) = %s, want %s", testCase.raw, got, testCase.want)
			}
			if hour, minute, sec := day.Clock(); hour != 0 || minute != 0 || sec != 0 {
				t.Fatalf("expected midnight, got %02d:%02d:%02d", hour, minute, sec)
			}
		})
	}
}

func TestDayRange(t *testing.T) {
	location := time.UTC
	moment := time.Date(2026, 5, 1, 13, 45, 0, 0, location)

	start, end := DayRange(moment, location)
	if FormatDay(start) != "2026-05-01" {
		t.Fatalf("expected range start 2026-05-01, got %s", FormatDay(start))
	}
	if FormatDay(end) != "2026-05-02" {
		t.Fatalf("expected range end 2026-05-02, got %s", FormatDay(end))
	}
	if !end.Equal(start.AddDate(0, 0, 1)) {
		t.Fatalf("expected end to be exactly one day after start")
	}
}

func TestDateAtLocationNilLocationFallsBackToUTC(t *testing.T) {
	moment := time.Date(2026, 5, 1, 23, 0, 0, 0, time.UTC)
	day := DateAtLocation(moment, nil)
	if FormatDay(day) != "2026-05-01" {
		t.Fatalf("expected 2026-05-01, got %s", FormatDay(day))
	}
}
