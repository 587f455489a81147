package utils

import (
	"regexp"
	"time"
)

// DateLayout wire format for calendar fields (date, reminderDate, dueDate)
const DateLayout = "2006-01-02"

var phonePattern = regexp.MustCompile(`^[0-9+\-() ]{10,15}$`)

// IsValidPhone checks whether a contact number looks plausible.
func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// ParseDate parses a YYYY-MM-DD calendar field.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// IsValidDate reports whether value is a well-formed YYYY-MM-DD date.
func IsValidDate(value string) bool {
	_, err := ParseDate(value)
	return err == nil
}
