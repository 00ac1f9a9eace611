package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/rgayashan/FindAMechanic/internal/booking"
	"github.com/rgayashan/FindAMechanic/internal/model"
	"github.com/rgayashan/FindAMechanic/internal/upstream"
)

// directoryService is the directory surface the handlers call.
type directoryService interface {
	ListMechanics(ctx context.Context, page, pageSize int, search string) ([]model.Mechanic, error)
	MechanicDetails(ctx context.Context, tenantID int) (*model.MechanicDetails, error)
}

// inquirySubmitter is the booking surface the handlers call.
type inquirySubmitter interface {
	Submit(ctx context.Context, tenantID int, form model.InquiryForm) (*booking.Confirmation, error)
}

// Handler holds shared dependencies for API handlers.
type Handler struct {
	directory       directoryService
	submitter       inquirySubmitter
	defaultPageSize int
}

// NewHandler creates a new API handler.
func NewHandler(directory directoryService, submitter inquirySubmitter, defaultPageSize int) *Handler {
	if defaultPageSize <= 0 {
		defaultPageSize = 20
	}
	return &Handler{
		directory:       directory,
		submitter:       submitter,
		defaultPageSize: defaultPageSize,
	}
}

// statusForError picks the facade status for a failed upstream call. A
// missing resource passes through as 404; everything else is the
// upstream's fault, not the caller's.
func statusForError(err error) int {
	var upErr *upstream.Error
	if errors.As(err, &upErr) {
		switch upErr.Kind {
		case upstream.KindNotFound:
			return http.StatusNotFound
		case upstream.KindNetwork:
			return http.StatusGatewayTimeout
		}
	}
	return http.StatusBadGateway
}
