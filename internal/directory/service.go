// Package directory turns the upstream tenant endpoints into the mechanic
// list and detail views. The list side is a thin page-at-a-time mapper;
// the detail side fans out to four sub-resources and joins them into one
// MechanicDetails.
package directory

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/rgayashan/FindAMechanic/internal/model"
	"github.com/rgayashan/FindAMechanic/internal/upstream"
)

// Fetcher is the slice of the upstream client the directory needs. It is
// an interface so tests can substitute a double.
type Fetcher interface {
	ListTenants(ctx context.Context, page, pageSize int, search string) (*upstream.TenantPage, error)
	GetTenant(ctx context.Context, tenantID int) (*upstream.TenantRecord, error)
	GetServiceAreas(ctx context.Context, tenantID int) ([]upstream.ServiceArea, error)
	GetServices(ctx context.Context, tenantID int) ([]upstream.TenantService, error)
	GetOpeningHours(ctx context.Context, tenantID int) (*upstream.OpeningHoursRecord, error)
}

// Service aggregates upstream calls into view models. It is stateless;
// pagination state lives in the caller (see Pager).
type Service struct {
	client Fetcher
}

// NewService creates a directory service over the given upstream client.
func NewService(client Fetcher) *Service {
	return &Service{client: client}
}

// ListMechanics fetches one page of mechanics, optionally filtered by a
// server-side search. Errors surface as an empty slice plus the error;
// there are no retries at this layer.
func (s *Service) ListMechanics(ctx context.Context, page, pageSize int, search string) ([]model.Mechanic, error) {
	if page < 1 {
		return nil, fmt.Errorf("page must be >= 1, got %d", page)
	}
	if pageSize < 1 {
		return nil, fmt.Errorf("pageSize must be >= 1, got %d", pageSize)
	}

	result, err := s.client.ListTenants(ctx, page, pageSize, search)
	if err != nil {
		return nil, fmt.Errorf("fetch mechanics page %d: %w", page, err)
	}

	mechanics := make([]model.Mechanic, 0, len(result.Tenants))
	for _, tenant := range result.Tenants {
		mechanics = append(mechanics, mapMechanic(tenant))
	}
	return mechanics, nil
}

// MechanicDetails fetches the four sub-resources for one tenant
// concurrently and merges them. Any single failure fails the whole call;
// a partially filled details view is never returned.
func (s *Service) MechanicDetails(ctx context.Context, tenantID int) (*model.MechanicDetails, error) {
	var (
		tenant   *upstream.TenantRecord
		areas    []upstream.ServiceArea
		services []upstream.TenantService
		hours    *upstream.OpeningHoursRecord
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if tenant, err = s.client.GetTenant(ctx, tenantID); err != nil {
			return fmt.Errorf("fetch tenant details: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if areas, err = s.client.GetServiceAreas(ctx, tenantID); err != nil {
			return fmt.Errorf("fetch service areas: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if services, err = s.client.GetServices(ctx, tenantID); err != nil {
			return fmt.Errorf("fetch services: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if hours, err = s.client.GetOpeningHours(ctx, tenantID); err != nil {
			return fmt.Errorf("fetch opening hours: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	details := mapDetails(tenant, areas, services, hours)
	return &details, nil
}
