package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgayashan/FindAMechanic/internal/booking"
	"github.com/rgayashan/FindAMechanic/internal/model"
	"github.com/rgayashan/FindAMechanic/internal/upstream"
)

const inquiryBody = `{
	"vehicleRegistration": "ABC123",
	"name": "Jordan Smith",
	"email": "jordan@example.com",
	"phoneNumber": "0412 345 678",
	"message": "Brakes squeal when stopping.",
	"date": "2025-05-12T09:30:00Z"
}`

func TestPostInquiry_Success(t *testing.T) {
	var gotTenantID int
	var gotForm model.InquiryForm
	submitter := &mockSubmitter{
		SubmitFunc: func(ctx context.Context, tenantID int, form model.InquiryForm) (*booking.Confirmation, error) {
			gotTenantID = tenantID
			gotForm = form
			return &booking.Confirmation{TenantID: tenantID, SubmittedAt: time.Now()}, nil
		},
	}
	router := setupRouter(nil, submitter)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/mechanics/7/inquiries", strings.NewReader(inquiryBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 7, gotTenantID)
	assert.Equal(t, "ABC123", gotForm.VehicleRegistration)
	assert.True(t, gotForm.IsValid())
	assert.Contains(t, w.Body.String(), "submitted successfully")
}

func TestPostInquiry_MissingFields(t *testing.T) {
	router := setupRouter(nil, &mockSubmitter{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/mechanics/7/inquiries", strings.NewReader(`{"name":"Jordan"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"invalid request"}`, w.Body.String())
}

func TestPostInquiry_UpstreamUnauthorized(t *testing.T) {
	submitter := &mockSubmitter{
		SubmitFunc: func(ctx context.Context, tenantID int, form model.InquiryForm) (*booking.Confirmation, error) {
			return nil, &upstream.Error{Kind: upstream.KindUnauthorized, StatusCode: 401}
		},
	}
	router := setupRouter(nil, submitter)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/mechanics/7/inquiries", strings.NewReader(inquiryBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	// The specific auth message, not a generic network error.
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.JSONEq(t, `{"error":"authentication failed"}`, w.Body.String())
}
