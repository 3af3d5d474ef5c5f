package services

import (
	"testing"
	"time"
)

func mustParseStreakDay(t *testing.T, raw string) time.Time {
	t.Helper()
	day, ok := ParseDay(raw, time.UTC)
	if !ok {
		t.Fatalf("failed to parse day %q", raw)
	}
	return day
}

func TestCurrentStreak(t *testing.T) {
	tests := []struct {
		name  string
		days  []string
		today string
		want  int
	}{
		{name: "empty days", days: nil, today: "2026-01-03", want: 0},
		{name: "three consecutive days ending today", days: []string{"2026-01-01", "2026-01-02", "2026-01-03"}, today: "2026-01-03", want: 3},
		{name: "gap breaks the streak", days: []string{"2026-01-01", "2026-01-03"}, today: "2026-01-03", want: 1},
		{name: "no check-in today", days: []string{"2026-01-01", "2026-01-02"}, today: "2026-01-03", want: 0},
		{name: "single day today", days: []string{"2026-01-03"}, today: "2026-01-03", want: 1},
		{name: "unordered input", days: []string{"2026-01-03", "2026-01-01", "2026-01-02"}, today: "2026-01-03", want: 3},
		{name: "duplicates count once", days: []string{"2026-01-03", "2026-01-03", "2026-01-02"}, today: "2026-01-03", want: 2},
		{name: "future day yields zero", days: []string{"2026-01-04"}, today: "2026-01-03", want: 0},
		{name: "future day does not extend run", days: []string{"2026-01-04", "2026-01-03", "2026-01-02"}, today: "2026-01-03", want: 0},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			today := mustParseStreakDay(t, testCase.today)
			days := make([]time.Time, 0, len(testCase.days))
			for _, raw := range testCase.days {
				days = append(days, mustParseStreakDay(t, raw))
			}
			if got := CurrentStreak(days, today); got != testCase.want {
				t.Fatalf("expected streak %d, got %d", testCase.want, got)
			}
		})
	}
}

func TestCurrentStreakMonthBoundary(t *testing.T) {
	today := mustParseStreakDay(t, "2026-03-01")
	days := []time.Time{
		mustParseStreakDay(t, "2026-02-27"),
		mustParseStreakDay(t, "2026-02-28"),
		mustParseStreakDay(t, "2026-03-01"),
	}
	if got := CurrentStreak(days, today); got != 3 {
		t.Fatalf("expected streak 3 across month boundary, got %d", got)
	}
}
