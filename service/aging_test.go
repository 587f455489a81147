package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/trakline/crm_backend/models"
)

func TestClassifyAgingBoundaries(t *testing.T) {
	cases := []struct {
		status  models.Status
		elapsed int
		want    AgingBucket
	}{
		{models.StatusLead, 0, AgingOnTrack},
		{models.StatusLead, 4, AgingOnTrack},
		{models.StatusLead, 5, AgingWarning},
		{models.StatusLead, 7, AgingWarning},
		{models.StatusLead, 8, AgingOverdue},

		{models.StatusEnquiry, 4, AgingOnTrack},
		{models.StatusEnquiry, 5, AgingWarning},
		{models.StatusEnquiry, 8, AgingOverdue},

		{models.StatusFormalMeeting, 4, AgingOnTrack},
		{models.StatusFormalMeeting, 7, AgingWarning},
		{models.StatusFormalMeeting, 8, AgingOverdue},

		{models.StatusQuote, 11, AgingOnTrack},
		{models.StatusQuote, 12, AgingWarning},
		{models.StatusQuote, 15, AgingWarning},
		{models.StatusQuote, 16, AgingOverdue},
	}

	for _, tc := range cases {
		got := ClassifyAging(tc.status, tc.elapsed)
		assert.Equal(t, tc.want, got, "status %s at %d days", tc.status, tc.elapsed)
	}
}

func TestClassifyAgingClosedAlwaysOnTrack(t *testing.T) {
	for _, elapsed := range []int{0, 7, 16, 365} {
		assert.Equal(t, AgingOnTrack, ClassifyAging(models.StatusWon, elapsed))
		assert.Equal(t, AgingOnTrack, ClassifyAging(models.StatusLoss, elapsed))
	}
}

func TestClassifyAgingUnknownStatusPanics(t *testing.T) {
	assert.Panics(t, func() {
		ClassifyAging(models.Status("Bogus"), 3)
	})
}

func TestDaysSinceRoundsUp(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysSince(now, now))
	// any partial day counts as a full day
	assert.Equal(t, 1, DaysSince(now.Add(-1*time.Hour), now))
	assert.Equal(t, 1, DaysSince(now.Add(-24*time.Hour), now))
	assert.Equal(t, 2, DaysSince(now.Add(-24*time.Hour-time.Second), now))
	assert.Equal(t, 9, DaysSince(now.AddDate(0, 0, -9), now))
}

func TestDaysSinceAbsolute(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	// a future-dated enquiry still ages on the absolute difference
	assert.Equal(t, 3, DaysSince(now.AddDate(0, 0, 3), now))
}
