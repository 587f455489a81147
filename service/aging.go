package service

import (
	"fmt"
	"math"
	"time"

	"github.com/trakline/crm_backend/models"
)

// AgingBucket urgency classification of an open enquiry
type AgingBucket string

const (
	AgingOnTrack AgingBucket = "OnTrack"
	AgingWarning AgingBucket = "Warning"
	AgingOverdue AgingBucket = "Overdue"
)

// Aging thresholds in days elapsed since the enquiry date. Leads,
// enquiries and formal meetings should move on within 7 days, quotes
// should close within 15.
const (
	conversionWarnStart = 5
	conversionDeadline  = 7
	quoteWarnStart      = 12
	quoteDeadline       = 15
)

// DaysSince returns the elapsed days between date and now, as the ceiling
// of the absolute wall-clock difference. Any elapsed time past a day
// boundary rounds up, never down.
func DaysSince(date, now time.Time) int {
	diff := now.Sub(date)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}

// ClassifyAging buckets an enquiry by status and elapsed days. Won and Loss
// are always on track, they are outside the aging model entirely. An
// unknown status is a caller bug, not a runtime outcome.
func ClassifyAging(status models.Status, elapsedDays int) AgingBucket {
	switch status {
	case models.StatusLead, models.StatusEnquiry, models.StatusFormalMeeting:
		return bucketFor(elapsedDays, conversionWarnStart, conversionDeadline)
	case models.StatusQuote:
		return bucketFor(elapsedDays, quoteWarnStart, quoteDeadline)
	case models.StatusWon, models.StatusLoss:
		return AgingOnTrack
	}
	panic(fmt.Sprintf("ClassifyAging: unknown status %q", status))
}

func bucketFor(elapsedDays, warnStart, deadline int) AgingBucket {
	switch {
	case elapsedDays > deadline:
		return AgingOverdue
	case elapsedDays >= warnStart:
		return AgingWarning
	default:
		return AgingOnTrack
	}
}
