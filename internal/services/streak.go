package services

import (
	"sort"
	"time"
)

// CurrentStreak counts consecutive completed days ending today. Input
// days must already be normalized calendar days; they need not be
// sorted or unique. The walk compares the i-th most recent distinct day
// against today minus i days and stops at the first gap, so a day in
// the future never matches and leaves the streak at zero.
func CurrentStreak(days []time.Time, today time.Time) int {
	if len(days) == 0 {
		return 0
	}

	distinct := make([]time.Time, 0, len(days))
	seen := make(map[int64]struct{}, len(days))
	for _, day := range days {
		key := day.Unix()
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		distinct = append(distinct, day)
	}

	sort.Slice(distinct, func(i, j int) bool {
		return distinct[i].After(distinct[j])
	})

	streak := 0
	for index, day := range distinct {
		expected := today.AddDate(0, 0, -index)
		if !day.Equal(expected) {
			break
		}
		streak++
	}
	return streak
}
