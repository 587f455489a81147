package service

import (
	"strings"

	"github.com/trakline/crm_backend/models"
)

// FormalMeetingMarker reserved literal used to persist the "Formal Meeting"
// status, which the enquiries schema does not have a column value for. The
// row is stored as status "Enquiry" with the marker prepended to remarks.
//
// Known limitation, kept on purpose: a user typing the literal marker at
// the start of the remarks of a persisted Enquiry row will decode as
// Formal Meeting.
const FormalMeetingMarker = "[Formal Meeting]"

// EncodeStatus maps a logical (status, remarks) pair to its persisted form.
// Identity for every status except Formal Meeting.
func EncodeStatus(status models.Status, remarks string) (models.Status, string) {
	if status != models.StatusFormalMeeting {
		return status, remarks
	}
	return models.StatusEnquiry, FormalMeetingMarker + " " + remarks
}

// DecodeStatus maps a persisted (status, remarks) pair back to its logical
// form. Only a persisted Enquiry whose remarks start with the marker decodes
// to Formal Meeting.
func DecodeStatus(status models.Status, remarks string) (models.Status, string) {
	if status != models.StatusEnquiry || !strings.HasPrefix(remarks, FormalMeetingMarker) {
		return status, remarks
	}
	stripped := strings.TrimPrefix(remarks, FormalMeetingMarker)
	stripped = strings.TrimPrefix(stripped, " ")
	return models.StatusFormalMeeting, stripped
}

// DecodeEnquiry decodes the status shim on a row read back from the store.
func DecodeEnquiry(enquiry *models.Enquiry) *models.Enquiry {
	if enquiry == nil {
		return nil
	}
	enquiry.Status, enquiry.Remarks = DecodeStatus(enquiry.Status, enquiry.Remarks)
	return enquiry
}
