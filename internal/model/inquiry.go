package model

import "time"

// InquiryForm is a user-filled service inquiry. It is the only model that
// mutates over time, field by field as the user types, before being
// submitted once and discarded.
type InquiryForm struct {
	VehicleRegistration string
	Name                string
	Email               string
	PhoneNumber         string
	Message             string
	Date                *time.Time
}

// IsValid reports whether the form is complete enough to submit: all five
// text fields set and a date chosen.
func (f InquiryForm) IsValid() bool {
	return f.VehicleRegistration != "" &&
		f.Name != "" &&
		f.Email != "" &&
		f.PhoneNumber != "" &&
		f.Message != "" &&
		f.Date != nil
}
