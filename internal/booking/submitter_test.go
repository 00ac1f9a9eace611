package booking

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgayashan/FindAMechanic/internal/model"
	"github.com/rgayashan/FindAMechanic/internal/upstream"
)

// mockPoster captures the payload it is asked to post.
type mockPoster struct {
	err     error
	payload any
}

func (m *mockPoster) CreateBooking(ctx context.Context, payload any) error {
	m.payload = payload
	return m.err
}

func validForm() model.InquiryForm {
	date := time.Date(2025, 5, 12, 9, 30, 0, 0, time.UTC)
	return model.InquiryForm{
		VehicleRegistration: "ABC123",
		Name:                "Jordan Smith",
		Email:               "jordan@example.com",
		PhoneNumber:         "0412 345 678",
		Message:             "Brakes squeal when stopping.",
		Date:                &date,
	}
}

func TestSubmit_PayloadFieldNames(t *testing.T) {
	poster := &mockPoster{}
	submitter := NewSubmitter(poster)

	confirmation, err := submitter.Submit(context.Background(), 7, validForm())
	require.NoError(t, err)
	require.NotNil(t, confirmation)
	assert.Equal(t, 7, confirmation.TenantID)

	raw, err := json.Marshal(poster.payload)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))

	// The server is case-sensitive about every one of these keys.
	for _, key := range []string{
		"tenantId", "vehicleRegistrationNumber",
		"RequestedDate", "PlanStartDate", "PlanEndDate", "DropOffDate", "PickUpDate",
		"CustomerName", "CustomerContactName", "CustomerEmail", "CustomerPhone",
		"Notes", "Status", "ObjectId", "Channel",
	} {
		assert.Contains(t, fields, key)
	}
	assert.Len(t, fields, 15)

	assert.Equal(t, float64(7), fields["tenantId"])
	assert.Equal(t, "ABC123", fields["vehicleRegistrationNumber"])
	assert.Equal(t, "Jordan Smith", fields["CustomerName"])
	assert.Equal(t, "Jordan Smith", fields["CustomerContactName"])
	assert.Equal(t, "Brakes squeal when stopping.", fields["Notes"])
	assert.Equal(t, "50", fields["Status"])
	assert.Equal(t, "BOKING", fields["ObjectId"], "the server matches this literal verbatim")
	assert.Equal(t, "02", fields["Channel"])

	// All five date fields carry the same form date.
	want := "2025-05-12T09:30:00Z"
	for _, key := range []string{"RequestedDate", "PlanStartDate", "PlanEndDate", "DropOffDate", "PickUpDate"} {
		assert.Equal(t, want, fields[key])
	}
}

func TestSubmit_RejectsIncompleteForm(t *testing.T) {
	poster := &mockPoster{}
	submitter := NewSubmitter(poster)

	form := validForm()
	form.VehicleRegistration = ""

	_, err := submitter.Submit(context.Background(), 7, form)
	require.Error(t, err)
	assert.Nil(t, poster.payload, "an incomplete form must never reach the wire")
}

func TestSubmit_PreservesErrorKind(t *testing.T) {
	poster := &mockPoster{err: &upstream.Error{Kind: upstream.KindUnauthorized, StatusCode: 401}}
	submitter := NewSubmitter(poster)

	_, err := submitter.Submit(context.Background(), 7, validForm())
	require.Error(t, err)
	assert.Equal(t, "authentication failed", StatusMessage(err))
}

func TestStatusMessage(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want string
	}{
		{"Success", nil, "Your inquiry has been submitted successfully!"},
		{"Unauthorized", &upstream.Error{Kind: upstream.KindUnauthorized}, "authentication failed"},
		{"ServerError", &upstream.Error{Kind: upstream.KindServer, StatusCode: 500}, "server error, please try again later"},
		{"Network", &upstream.Error{Kind: upstream.KindNetwork}, "please check your connection"},
		{"NotFound", &upstream.Error{Kind: upstream.KindNotFound}, "resource not found"},
		{"Decoding", &upstream.Error{Kind: upstream.KindDecoding}, "submission failed"},
		{"Plain", assert.AnError, "submission failed"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusMessage(tc.err))
		})
	}
}

func TestInquiryForm_Validity(t *testing.T) {
	var form model.InquiryForm
	assert.False(t, form.IsValid())

	form.VehicleRegistration = "ABC123"
	form.Name = "Jordan Smith"
	form.Email = "jordan@example.com"
	form.PhoneNumber = "0412 345 678"
	form.Message = "Brakes squeal."
	assert.False(t, form.IsValid(), "a form without a date is incomplete")

	date := time.Now()
	form.Date = &date
	assert.True(t, form.IsValid())
}
