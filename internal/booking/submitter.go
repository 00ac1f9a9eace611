// Package booking converts a completed inquiry form into a booking
// creation request and reduces the HTTP outcome to a short user-facing
// status.
package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rgayashan/FindAMechanic/internal/model"
	"github.com/rgayashan/FindAMechanic/internal/upstream"
)

// Constant payload fields the server expects on every booking. The values
// are opaque server conventions; ObjectId in particular is matched verbatim
// against a server-side enum, misspelling included.
const (
	bookingStatus  = "50"
	bookingObject  = "BOKING"
	bookingChannel = "02"
)

// payload is the booking POST body. The mixed key casing is the server's;
// every key is case-sensitive.
type payload struct {
	TenantID                  int    `json:"tenantId"`
	VehicleRegistrationNumber string `json:"vehicleRegistrationNumber"`
	RequestedDate             string `json:"RequestedDate"`
	PlanStartDate             string `json:"PlanStartDate"`
	PlanEndDate               string `json:"PlanEndDate"`
	DropOffDate               string `json:"DropOffDate"`
	PickUpDate                string `json:"PickUpDate"`
	CustomerName              string `json:"CustomerName"`
	CustomerContactName       string `json:"CustomerContactName"`
	CustomerEmail             string `json:"CustomerEmail"`
	CustomerPhone             string `json:"CustomerPhone"`
	Notes                     string `json:"Notes"`
	Status                    string `json:"Status"`
	ObjectID                  string `json:"ObjectId"`
	Channel                   string `json:"Channel"`
}

// Poster is the slice of the upstream client the submitter needs.
type Poster interface {
	CreateBooking(ctx context.Context, payload any) error
}

// Confirmation is returned on a successful submission.
type Confirmation struct {
	TenantID    int       `json:"tenantId"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// Submitter posts inquiry forms as bookings. There is no retry and no
// idempotency key; a duplicate submit creates a duplicate booking.
type Submitter struct {
	client Poster
}

// NewSubmitter creates a submitter over the given upstream client.
func NewSubmitter(client Poster) *Submitter {
	return &Submitter{client: client}
}

// Submit posts the form as a booking for the tenant. The form must already
// be valid; an incomplete form here is a programming error, not a user
// validation case.
func (s *Submitter) Submit(ctx context.Context, tenantID int, form model.InquiryForm) (*Confirmation, error) {
	if !form.IsValid() {
		return nil, fmt.Errorf("inquiry form is incomplete")
	}

	// The server wants the same form date on all five date fields.
	date := form.Date.UTC().Format(time.RFC3339)

	body := payload{
		TenantID:                  tenantID,
		VehicleRegistrationNumber: form.VehicleRegistration,
		RequestedDate:             date,
		PlanStartDate:             date,
		PlanEndDate:               date,
		DropOffDate:               date,
		PickUpDate:                date,
		CustomerName:              form.Name,
		CustomerContactName:       form.Name,
		CustomerEmail:             form.Email,
		CustomerPhone:             form.PhoneNumber,
		Notes:                     form.Message,
		Status:                    bookingStatus,
		ObjectID:                  bookingObject,
		Channel:                   bookingChannel,
	}

	if err := s.client.CreateBooking(ctx, body); err != nil {
		return nil, fmt.Errorf("submit inquiry: %w", err)
	}

	return &Confirmation{TenantID: tenantID, SubmittedAt: time.Now().UTC()}, nil
}

// StatusMessage maps a submission outcome to the short message shown to
// the user.
func StatusMessage(err error) string {
	if err == nil {
		return "Your inquiry has been submitted successfully!"
	}

	var upErr *upstream.Error
	if errors.As(err, &upErr) {
		switch upErr.Kind {
		case upstream.KindUnauthorized:
			return "authentication failed"
		case upstream.KindServer:
			return "server error, please try again later"
		case upstream.KindNetwork:
			return "please check your connection"
		case upstream.KindNotFound:
			return "resource not found"
		}
	}
	return "submission failed"
}
