package service

import (
	"context"
	"time"

	"github.com/trakline/crm_backend/models"
	"github.com/trakline/crm_backend/utils"
)

// CustomerStore persistence operations for customers. FindByNumber returns
// (nil, nil) on a miss: not finding a customer is a valid outcome that
// means "create one", not an error.
type CustomerStore interface {
	FindByNumber(ctx context.Context, number string) (*models.Customer, error)
	FindByID(ctx context.Context, id string) (*models.Customer, error)
	Insert(ctx context.Context, customer *models.Customer) (*models.Customer, error)
	SetMeetingPerson(ctx context.Context, id string, person string) error
}

// EnquiryStore persistence operations for enquiries. Rows cross this
// boundary in their persisted (encoded) form.
type EnquiryStore interface {
	FindByID(ctx context.Context, id string) (*models.Enquiry, error)
	Insert(ctx context.Context, enquiry *models.Enquiry) (*models.Enquiry, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Enquiry, error)
	List(ctx context.Context, assignedTo models.Assignee) ([]models.Enquiry, error)
}

// EnquiryService the sole read/write gateway for enquiries. It resolves
// customers, applies the status codec on both directions of the store round
// trip and back-fills the customer meeting contact.
type EnquiryService struct {
	enquiries EnquiryStore
	customers CustomerStore
}

// NewEnquiryService creates an EnquiryService.
func NewEnquiryService(enquiries EnquiryStore, customers CustomerStore) *EnquiryService {
	return &EnquiryService{enquiries: enquiries, customers: customers}
}

// Create validates the draft, resolves or creates the customer, then
// inserts the enquiry. The two writes are not transactional: if the
// enquiry insert fails after the customer insert succeeded the customer
// row stays behind.
func (s *EnquiryService) Create(ctx context.Context, req models.EnquiryCreateRequest) (*models.Enquiry, error) {
	if req.Status == "" {
		req.Status = models.StatusLead
	}
	if err := validateDraft(req); err != nil {
		return nil, err
	}

	customer, err := s.customers.FindByNumber(ctx, req.ContactNumber)
	if err != nil {
		return nil, err
	}

	var customerID string
	if customer != nil {
		customerID = customer.ID.Hex()
		// stored customer data wins over the draft for these fields
		if customer.Location != "" {
			req.Location = customer.Location
		}
		if customer.MeetingPerson != "" {
			req.MeetingPerson = customer.MeetingPerson
		} else if req.MeetingPerson != "" {
			s.backfillMeetingPerson(ctx, customerID, req.MeetingPerson)
		}
	} else {
		created, err := s.customers.Insert(ctx, &models.Customer{
			Name:          req.CustomerName,
			ContactNumber: req.ContactNumber,
			Location:      req.Location,
			MeetingPerson: req.MeetingPerson,
			CreatedAt:     time.Now(),
		})
		if err != nil {
			return nil, err
		}
		customerID = created.ID.Hex()
	}

	persistedStatus, persistedRemarks := EncodeStatus(req.Status, req.Remarks)

	inserted, err := s.enquiries.Insert(ctx, &models.Enquiry{
		Date:               req.Date,
		Segment:            req.Segment,
		CustomerID:         customerID,
		CustomerName:       req.CustomerName,
		ContactNumber:      req.ContactNumber,
		Location:           req.Location,
		MeetingPerson:      req.MeetingPerson,
		RequirementDetails: req.RequirementDetails,
		Status:             persistedStatus,
		Remarks:            persistedRemarks,
		ReminderDate:       req.ReminderDate,
		AssignedTo:         req.AssignedTo,
		ShowInNotification: req.ShowInNotification,
		CreatedAt:          time.Now(),
	})
	if err != nil {
		return nil, err
	}

	return DecodeEnquiry(inserted), nil
}

// Update applies a partial patch. When the patch touches status or remarks
// but not both, the current row is read first so the codec works on the
// complete logical pair instead of overwriting half of it. No transition
// graph is enforced: any status may follow any other.
func (s *EnquiryService) Update(ctx context.Context, id string, req models.EnquiryUpdateRequest) (*models.Enquiry, error) {
	if id == "" {
		return nil, utils.CreateBadRequestError("enquiry id is required")
	}
	if err := validatePatch(req); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	setIf(fields, "date", req.Date)
	setIf(fields, "segment", (*string)(req.Segment))
	setIf(fields, "customerName", req.CustomerName)
	setIf(fields, "contactNumber", req.ContactNumber)
	setIf(fields, "location", req.Location)
	setIf(fields, "meetingPerson", req.MeetingPerson)
	setIf(fields, "requirementDetails", req.RequirementDetails)
	setIf(fields, "reminderDate", req.ReminderDate)
	setIf(fields, "assignedTo", (*string)(req.AssignedTo))
	if req.ShowInNotification != nil {
		fields["showInNotification"] = *req.ShowInNotification
	}

	if req.Status != nil || req.Remarks != nil {
		status, remarks, err := s.resolveLogicalPair(ctx, id, req)
		if err != nil {
			return nil, err
		}
		persistedStatus, persistedRemarks := EncodeStatus(status, remarks)
		fields["status"] = string(persistedStatus)
		fields["remarks"] = persistedRemarks
	}

	// an empty $set is a driver error, reject the patch up front
	if len(fields) == 0 {
		return nil, utils.CreateBadRequestError("empty patch")
	}

	updated, err := s.enquiries.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, utils.CreateNotFoundError("enquiry")
	}

	if req.MeetingPerson != nil && *req.MeetingPerson != "" && updated.CustomerID != "" {
		customer, err := s.customers.FindByID(ctx, updated.CustomerID)
		if err != nil {
			utils.LogError(err, map[string]interface{}{
				"customerId": updated.CustomerID,
			}, "customer lookup for meeting person back-fill failed")
		} else if customer != nil && customer.MeetingPerson == "" {
			s.backfillMeetingPerson(ctx, updated.CustomerID, *req.MeetingPerson)
		}
	}

	return DecodeEnquiry(updated), nil
}

// resolveLogicalPair produces the logical (status, remarks) the patch asks
// for, reading and decoding the current row when one half is missing.
func (s *EnquiryService) resolveLogicalPair(ctx context.Context, id string, req models.EnquiryUpdateRequest) (models.Status, string, error) {
	if req.Status != nil && req.Remarks != nil {
		return *req.Status, *req.Remarks, nil
	}

	current, err := s.enquiries.FindByID(ctx, id)
	if err != nil {
		return "", "", err
	}
	if current == nil {
		return "", "", utils.CreateNotFoundError("enquiry")
	}

	status, remarks := DecodeStatus(current.Status, current.Remarks)
	if req.Status != nil {
		status = *req.Status
	}
	if req.Remarks != nil {
		remarks = *req.Remarks
	}
	return status, remarks, nil
}

// List fetches enquiries, newest date first, decoded. AssignedTo filters at
// the store; status, customer and date range filter after decoding.
func (s *EnquiryService) List(ctx context.Context, filter models.EnquiryFilter) ([]models.Enquiry, error) {
	rows, err := s.enquiries.List(ctx, filter.AssignedTo)
	if err != nil {
		return nil, err
	}

	result := make([]models.Enquiry, 0, len(rows))
	for _, row := range rows {
		row.Status, row.Remarks = DecodeStatus(row.Status, row.Remarks)

		if filter.Status != "" && row.Status != filter.Status {
			continue
		}
		if filter.CustomerID != "" && row.CustomerID != filter.CustomerID {
			continue
		}
		if filter.FromDate != "" && row.Date < filter.FromDate {
			continue
		}
		if filter.ToDate != "" && row.Date > filter.ToDate {
			continue
		}
		result = append(result, row)
	}
	return result, nil
}

// FindCustomerByNumber looks up a customer by contact number. A miss is
// (nil, nil), not an error.
func (s *EnquiryService) FindCustomerByNumber(ctx context.Context, number string) (*models.Customer, error) {
	if number == "" {
		return nil, utils.CreateBadRequestError("contact number is required")
	}
	return s.customers.FindByNumber(ctx, number)
}

// backfillMeetingPerson lazily fills the customer's empty meeting contact.
// Failures here are isolated: they never fail the enquiry operation.
func (s *EnquiryService) backfillMeetingPerson(ctx context.Context, customerID, person string) {
	if err := s.customers.SetMeetingPerson(ctx, customerID, person); err != nil {
		utils.LogError(err, map[string]interface{}{
			"customerId":    customerID,
			"meetingPerson": person,
		}, "customer meeting person back-fill failed")
	}
}

// validateDraft contract checks performed before any store call.
func validateDraft(req models.EnquiryCreateRequest) error {
	if req.ContactNumber == "" {
		return utils.CreateBadRequestError("contact number is required")
	}
	if !utils.IsValidPhone(req.ContactNumber) {
		return utils.CreateBadRequestError("contact number must be a valid phone number")
	}
	if req.CustomerName == "" {
		return utils.CreateBadRequestError("customer name is required")
	}
	if req.Date == "" || !utils.IsValidDate(req.Date) {
		return utils.CreateBadRequestError("date must be a valid YYYY-MM-DD value")
	}
	if !req.Status.IsValid() {
		return utils.CreateBadRequestError("invalid status")
	}
	if !req.Segment.IsValid() {
		return utils.CreateBadRequestError("invalid segment")
	}
	if !req.AssignedTo.IsValid() {
		return utils.CreateBadRequestError("assignee must be Amit or Prateek")
	}
	if req.ReminderDate != "" && !utils.IsValidDate(req.ReminderDate) {
		return utils.CreateBadRequestError("reminder date must be a valid YYYY-MM-DD value")
	}
	return nil
}

// validatePatch contract checks on the provided patch fields only.
func validatePatch(req models.EnquiryUpdateRequest) error {
	if req.Status != nil && !req.Status.IsValid() {
		return utils.CreateBadRequestError("invalid status")
	}
	if req.Segment != nil && !req.Segment.IsValid() {
		return utils.CreateBadRequestError("invalid segment")
	}
	if req.AssignedTo != nil && !req.AssignedTo.IsValid() {
		return utils.CreateBadRequestError("assignee must be Amit or Prateek")
	}
	if req.ContactNumber != nil && !utils.IsValidPhone(*req.ContactNumber) {
		return utils.CreateBadRequestError("contact number must be a valid phone number")
	}
	if req.Date != nil && !utils.IsValidDate(*req.Date) {
		return utils.CreateBadRequestError("date must be a valid YYYY-MM-DD value")
	}
	if req.ReminderDate != nil && *req.ReminderDate != "" && !utils.IsValidDate(*req.ReminderDate) {
		return utils.CreateBadRequestError("reminder date must be a valid YYYY-MM-DD value")
	}
	return nil
}

// setIf copies a patch field into the update map when present.
func setIf(fields map[string]interface{}, key string, value *string) {
	if value != nil {
		fields[key] = *value
	}
}
