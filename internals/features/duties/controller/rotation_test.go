// file: internals/features/duties/controller/rotation_test.go
package controller

import (
	"testing"
	"time"
)

func TestCyclePattern(t *testing.T) {
	pattern := []string{"morning", "day", "night"}
	want := []string{"morning", "day", "night", "morning", "day", "night", "morning"}
	for i, w := range want {
		if got := CyclePattern(pattern, i); got != w {
			t.Errorf("CyclePattern(%d) = %q, want %q", i, got, w)
		}
	}
}

func TestRotationDays(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 1, d, 0, 0, 0, 0, time.UTC)
	}
	cases := []struct {
		start, end time.Time
		want       int
	}{
		{day(5), day(5), 1},  // same day still gets one duty
		{day(5), day(9), 5},  // inclusive on both ends
		{day(1), day(31), 31},
	}
	for _, tc := range cases {
		if got := RotationDays(tc.start, tc.end); got != tc.want {
			t.Errorf("RotationDays(%s, %s) = %d, want %d",
				tc.start.Format("2006-01-02"), tc.end.Format("2006-01-02"), got, tc.want)
		}
	}
}
