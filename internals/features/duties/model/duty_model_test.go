// file: internals/features/duties/model/duty_model_test.go
package model

import (
	"testing"
	"time"
)

func TestDutyShiftValid(t *testing.T) {
	for _, s := range []DutyShift{ShiftMorning, ShiftDay, ShiftNight} {
		if !s.Valid() {
			t.Errorf("%q should be a valid shift", s)
		}
	}
	for _, s := range []DutyShift{"", "evening", "Morning"} {
		if s.Valid() {
			t.Errorf("%q should be rejected", s)
		}
	}
}

func TestDutyChartCoversDate(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 1, d, 0, 0, 0, 0, time.UTC)
	}
	end := day(31)
	chart := DutyChartModel{
		DutyChartEffectiveDate: day(10),
		DutyChartEndDate:       &end,
	}

	cases := []struct {
		d    time.Time
		want bool
	}{
		{day(9), false},
		{day(10), true}, // boundaries are inclusive
		{day(20), true},
		{day(31), true},
		{time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), false},
	}
	for _, tc := range cases {
		if got := chart.CoversDate(tc.d); got != tc.want {
			t.Errorf("CoversDate(%s) = %v, want %v", tc.d.Format("2006-01-02"), got, tc.want)
		}
	}

	// open-ended chart covers everything after the effective date
	chart.DutyChartEndDate = nil
	if !chart.CoversDate(time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("open-ended chart should cover far-future dates")
	}
}
