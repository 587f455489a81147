package service

import (
	"time"

	"github.com/trakline/crm_backend/models"
	"github.com/trakline/crm_backend/utils"
)

// FlagSource answers whether an enquiry is flagged in the device-local
// fallback channel. Consulted only when the persisted field is absent.
type FlagSource interface {
	IsFlagged(enquiryID string) bool
}

// BuildNotificationFeed assembles the categorized dashboard feed from an
// already decoded collection, as of now. The four categories are computed
// independently and an enquiry may appear in several of them; Total is the
// sum of the category sizes. Input order is preserved, so callers that
// supply date-descending collections get date-descending categories.
//
// A row with an unparseable date field simply drops out of the
// date-dependent categories; one bad record must not blank a dashboard.
func BuildNotificationFeed(enquiries []models.Enquiry, flags FlagSource, now time.Time) models.NotificationFeed {
	// normalize "today" through the same wire format the reminder dates
	// use, so both sides compare in the same zone at day granularity
	today, _ := utils.ParseDate(now.Format(utils.DateLayout))
	weekAhead := today.AddDate(0, 0, 7)

	feed := models.NotificationFeed{
		TodayReminders:    []models.Enquiry{},
		UpcomingReminders: []models.Enquiry{},
		PendingActions:    []models.Enquiry{},
		Flagged:           []models.Enquiry{},
	}

	for _, e := range enquiries {
		if e.ReminderDate != "" && !e.Status.IsClosed() {
			if reminder, err := utils.ParseDate(e.ReminderDate); err == nil {
				if reminder.Equal(today) {
					feed.TodayReminders = append(feed.TodayReminders, e)
				}
				if reminder.After(today) && !reminder.After(weekAhead) {
					feed.UpcomingReminders = append(feed.UpcomingReminders, e)
				}
			}
		}

		// no reminder scheduled at all for an open pipeline item
		if e.ReminderDate == "" && !e.Status.IsClosed() && e.Status.IsValid() {
			feed.PendingActions = append(feed.PendingActions, e)
		}

		if isFlagged(e, flags) {
			feed.Flagged = append(feed.Flagged, e)
		}
	}

	feed.Total = len(feed.TodayReminders) + len(feed.UpcomingReminders) +
		len(feed.PendingActions) + len(feed.Flagged)
	return feed
}

// isFlagged resolves the dual-source flag. The persisted field is the
// source of truth: an explicit false suppresses the local fallback.
func isFlagged(e models.Enquiry, flags FlagSource) bool {
	if e.ShowInNotification != nil {
		return *e.ShowInNotification
	}
	if flags == nil {
		return false
	}
	return flags.IsFlagged(e.ID.Hex())
}

// SummarizeAging reduces the aging classification over a collection into
// the overdue/warning/on-track counts behind the alert badge. Closed rows
// count as on track; rows whose date does not parse are skipped.
func SummarizeAging(enquiries []models.Enquiry, now time.Time) models.StatusSummary {
	var summary models.StatusSummary
	for _, e := range enquiries {
		if !e.Status.IsValid() {
			continue
		}
		if e.Status.IsClosed() {
			summary.OnTrack++
			continue
		}
		date, err := utils.ParseDate(e.Date)
		if err != nil {
			continue
		}
		switch ClassifyAging(e.Status, DaysSince(date, now)) {
		case AgingOverdue:
			summary.Overdue++
		case AgingWarning:
			summary.Warning++
		default:
			summary.OnTrack++
		}
	}
	return summary
}
