package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Status sales pipeline value. "Formal Meeting" is spelled with the space
// because that is what the clients display and filter on.
type Status string

const (
	StatusLead          Status = "Lead"
	StatusEnquiry       Status = "Enquiry"
	StatusFormalMeeting Status = "Formal Meeting"
	StatusQuote         Status = "Quote"
	StatusWon           Status = "Won"
	StatusLoss          Status = "Loss"
)

// IsClosed reports whether the status is terminal. Closed enquiries are
// excluded from all aging and reminder classification.
func (s Status) IsClosed() bool {
	return s == StatusWon || s == StatusLoss
}

// IsValid reports whether s is one of the six pipeline values.
func (s Status) IsValid() bool {
	switch s {
	case StatusLead, StatusEnquiry, StatusFormalMeeting, StatusQuote, StatusWon, StatusLoss:
		return true
	}
	return false
}

// Segment business segment enum
type Segment string

const (
	SegmentAgri      Segment = "Agri"
	SegmentCorporate Segment = "Corporate"
	SegmentOthers    Segment = "Others"
)

// IsValid reports whether s is a known segment.
func (s Segment) IsValid() bool {
	return s == SegmentAgri || s == SegmentCorporate || s == SegmentOthers
}

// Assignee one of the two salespeople. There are no user accounts behind
// these, they are plain data values on enquiries and tasks.
type Assignee string

const (
	AssigneeAmit    Assignee = "Amit"
	AssigneePrateek Assignee = "Prateek"
)

// IsValid reports whether a is one of the two salespeople.
func (a Assignee) IsValid() bool {
	return a == AssigneeAmit || a == AssigneePrateek
}

// TaskStatus task state enum
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "Pending"
	TaskStatusCompleted TaskStatus = "Completed"
)

// Enquiry the central entity. Date and ReminderDate travel as YYYY-MM-DD
// strings; a malformed value in either must degrade that one row only,
// never a whole dashboard.
type Enquiry struct {
	ID                 primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Date               string             `json:"date" bson:"date"`
	Segment            Segment            `json:"segment" bson:"segment"`
	CustomerID         string             `json:"customerId,omitempty" bson:"customerId,omitempty"`
	CustomerName       string             `json:"customerName" bson:"customerName"`
	ContactNumber      string             `json:"contactNumber" bson:"contactNumber"`
	Location           string             `json:"location" bson:"location"`
	MeetingPerson      string             `json:"meetingPerson,omitempty" bson:"meetingPerson,omitempty"`
	RequirementDetails string             `json:"requirementDetails" bson:"requirementDetails"`
	Status             Status             `json:"status" bson:"status"`
	Remarks            string             `json:"remarks" bson:"remarks"`
	ReminderDate       string             `json:"reminderDate,omitempty" bson:"reminderDate,omitempty"`
	AssignedTo         Assignee           `json:"assignedTo" bson:"assignedTo"`
	ShowInNotification *bool              `json:"showInNotification,omitempty" bson:"showInNotification,omitempty"`
	CreatedAt          time.Time          `json:"createdAt" bson:"createdAt"`
}

// Customer record. ContactNumber is the unique lookup key; MeetingPerson is
// filled lazily by the first enquiry that supplies one.
type Customer struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name"`
	ContactNumber string             `json:"contactNumber" bson:"contactNumber"`
	Location      string             `json:"location" bson:"location"`
	MeetingPerson string             `json:"meetingPerson,omitempty" bson:"meetingPerson,omitempty"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
}

// Task independent work item. EnquiryID is a weak back-reference, lookup
// only, so deleting either side never cascades.
type Task struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	EnquiryID   string             `json:"enquiryId,omitempty" bson:"enquiryId,omitempty"`
	Status      TaskStatus         `json:"status" bson:"status"`
	AssignedTo  Assignee           `json:"assignedTo" bson:"assignedTo"`
	DueDate     string             `json:"dueDate,omitempty" bson:"dueDate,omitempty"`
	CompletedAt *time.Time         `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

// Request shapes
type (
	// EnquiryCreateRequest enquiry draft. Customer resolution happens
	// server side, the caller only supplies name + contact number.
	EnquiryCreateRequest struct {
		Date               string   `json:"date" binding:"required"`
		Segment            Segment  `json:"segment" binding:"required"`
		CustomerName       string   `json:"customerName" binding:"required"`
		ContactNumber      string   `json:"contactNumber" binding:"required"`
		Location           string   `json:"location"`
		MeetingPerson      string   `json:"meetingPerson"`
		RequirementDetails string   `json:"requirementDetails"`
		Status             Status   `json:"status"`
		Remarks            string   `json:"remarks"`
		ReminderDate       string   `json:"reminderDate"`
		AssignedTo         Assignee `json:"assignedTo" binding:"required"`
		ShowInNotification *bool    `json:"showInNotification"`
	}

	// EnquiryUpdateRequest partial update. Pointer fields distinguish
	// "not part of the patch" from "set to empty".
	EnquiryUpdateRequest struct {
		Date               *string   `json:"date"`
		Segment            *Segment  `json:"segment"`
		CustomerName       *string   `json:"customerName"`
		ContactNumber      *string   `json:"contactNumber"`
		Location           *string   `json:"location"`
		MeetingPerson      *string   `json:"meetingPerson"`
		RequirementDetails *string   `json:"requirementDetails"`
		Status             *Status   `json:"status"`
		Remarks            *string   `json:"remarks"`
		ReminderDate       *string   `json:"reminderDate"`
		AssignedTo         *Assignee `json:"assignedTo"`
		ShowInNotification *bool     `json:"showInNotification"`
	}

	// EnquiryFilter list query filters. AssignedTo is pushed down to the
	// store; the rest are applied after status decoding so that
	// "Formal Meeting" is filterable like any other status.
	EnquiryFilter struct {
		AssignedTo Assignee
		Status     Status
		CustomerID string
		FromDate   string
		ToDate     string
	}

	// CustomerUpdateRequest partial customer update
	CustomerUpdateRequest struct {
		Name          *string `json:"name"`
		Location      *string `json:"location"`
		MeetingPerson *string `json:"meetingPerson"`
	}

	// TaskCreateRequest new task
	TaskCreateRequest struct {
		Title       string   `json:"title" binding:"required"`
		Description string   `json:"description"`
		EnquiryID   string   `json:"enquiryId"`
		AssignedTo  Assignee `json:"assignedTo" binding:"required"`
		DueDate     string   `json:"dueDate"`
	}

	// TaskUpdateRequest partial task update
	TaskUpdateRequest struct {
		Title       *string     `json:"title"`
		Description *string     `json:"description"`
		EnquiryID   *string     `json:"enquiryId"`
		AssignedTo  *Assignee   `json:"assignedTo"`
		DueDate     *string     `json:"dueDate"`
		Status      *TaskStatus `json:"status"`
	}
)
