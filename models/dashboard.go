package models

// ChartDataItem name/value pair for distribution charts
type ChartDataItem struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// NotificationFeed the categorized dashboard feed. Categories are
// independent: the same enquiry may appear in several of them, and Total is
// the plain sum of the category sizes, not a union.
type NotificationFeed struct {
	TodayReminders    []Enquiry `json:"todayReminders"`
	UpcomingReminders []Enquiry `json:"upcomingReminders"`
	PendingActions    []Enquiry `json:"pendingActions"`
	Flagged           []Enquiry `json:"flagged"`
	Total             int       `json:"total"`
}

// StatusSummary aging counts for the top-level alert badge
type StatusSummary struct {
	Overdue int `json:"overdue"`
	Warning int `json:"warning"`
	OnTrack int `json:"onTrack"`
}

// DashboardStatsResponse statistics for the dashboard and analytics pages
type DashboardStatsResponse struct {
	EnquiryCount  int `json:"enquiryCount"`
	CustomerCount int `json:"customerCount"`
	TaskCount     int `json:"taskCount"`
	WonCount      int `json:"wonCount"`
	LossCount     int `json:"lossCount"`
	OpenCount     int `json:"openCount"`

	// ConversionRate = won / (won + loss), in percent, 0 when no closed rows
	ConversionRate float64 `json:"conversionRate"`

	StatusDistribution  []ChartDataItem `json:"statusDistribution"`
	SegmentDistribution []ChartDataItem `json:"segmentDistribution"`

	StatusSummary   StatusSummary `json:"statusSummary"`
	RecentEnquiries []Enquiry     `json:"recentEnquiries"`
}
