package controllers

import (
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/trakline/crm_backend/models"
	"github.com/trakline/crm_backend/service"
	"github.com/trakline/crm_backend/utils"
)

// GetNotifications builds the categorized notification feed for the
// dashboard, per assignee or for everyone.
func GetNotifications(c *gin.Context) {
	enquiries, ok := fetchDecodedEnquiries(c)
	if !ok {
		return
	}

	feed := service.BuildNotificationFeed(enquiries, flagStore, time.Now())

	utils.LogInfo(map[string]interface{}{
		"today":    len(feed.TodayReminders),
		"upcoming": len(feed.UpcomingReminders),
		"pending":  len(feed.PendingActions),
		"flagged":  len(feed.Flagged),
	}, "notification feed built")

	utils.SuccessResponse(c, feed, "")
}

// GetStatusSummary returns the overdue/warning/on-track counts behind the
// alert badge.
func GetStatusSummary(c *gin.Context) {
	enquiries, ok := fetchDecodedEnquiries(c)
	if !ok {
		return
	}

	summary := service.SummarizeAging(enquiries, time.Now())
	utils.SuccessResponse(c, summary, "")
}

// GetDashboardStats assembles counts, distributions and recent rows for
// the dashboard and analytics pages.
func GetDashboardStats(c *gin.Context) {
	enquiries, ok := fetchDecodedEnquiries(c)
	if !ok {
		return
	}

	assignedTo := models.Assignee(c.Query("assignedTo"))

	customers, err := customerStore.List(c.Request.Context())
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	tasks, err := taskService.List(c.Request.Context(), assignedTo)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	stats := models.DashboardStatsResponse{
		EnquiryCount:  len(enquiries),
		CustomerCount: len(customers),
		TaskCount:     len(tasks),
		StatusSummary: service.SummarizeAging(enquiries, time.Now()),
	}

	statusCounts := map[models.Status]int{}
	segmentCounts := map[models.Segment]int{}
	for _, e := range enquiries {
		statusCounts[e.Status]++
		segmentCounts[e.Segment]++
	}

	for _, status := range []models.Status{
		models.StatusLead, models.StatusEnquiry, models.StatusFormalMeeting,
		models.StatusQuote, models.StatusWon, models.StatusLoss,
	} {
		stats.StatusDistribution = append(stats.StatusDistribution, models.ChartDataItem{
			Name:  string(status),
			Value: statusCounts[status],
		})
	}

	for _, segment := range []models.Segment{
		models.SegmentAgri, models.SegmentCorporate, models.SegmentOthers,
	} {
		stats.SegmentDistribution = append(stats.SegmentDistribution, models.ChartDataItem{
			Name:  string(segment),
			Value: segmentCounts[segment],
		})
	}

	stats.WonCount = statusCounts[models.StatusWon]
	stats.LossCount = statusCounts[models.StatusLoss]
	stats.OpenCount = stats.EnquiryCount - stats.WonCount - stats.LossCount

	if closed := stats.WonCount + stats.LossCount; closed > 0 {
		rate := float64(stats.WonCount) / float64(closed) * 100
		stats.ConversionRate = math.Round(rate*100) / 100
	}

	recent := len(enquiries)
	if recent > 5 {
		recent = 5
	}
	stats.RecentEnquiries = enquiries[:recent]

	utils.SuccessResponse(c, stats, "")
}

// fetchDecodedEnquiries loads the decoded, date-descending collection the
// dashboard endpoints share, honoring an optional assignedTo query. On
// failure the response has already been written and ok is false.
func fetchDecodedEnquiries(c *gin.Context) ([]models.Enquiry, bool) {
	assignedTo := models.Assignee(c.Query("assignedTo"))
	if assignedTo != "" && !assignedTo.IsValid() {
		utils.ErrorResponse(c, fmt.Sprintf("unknown assignee %q", assignedTo), http.StatusBadRequest)
		return nil, false
	}

	enquiries, err := enquiryService.List(c.Request.Context(), models.EnquiryFilter{AssignedTo: assignedTo})
	if err != nil {
		utils.HandleError(c, err)
		return nil, false
	}
	return enquiries, true
}
