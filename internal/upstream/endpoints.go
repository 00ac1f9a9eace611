package upstream

import "fmt"

// Endpoint paths for the tenants API. The odd casing follows the server's
// routes exactly.
const (
	endpointTenants        = "api/Tenants"
	endpointCreateBooking  = "api/bookings"
	endpointTenantDetailFn = "api/tenants/%d"
	endpointServiceAreasFn = "api/tenants/serviceAreas/%d"
	endpointServicesFn     = "api/tenants/services/%d"
	endpointOpeningHoursFn = "api/tenants/openingHours/%d"
)

// Query parameter names recognized by the list endpoint. Note the mixed
// capitalization; the server is case-sensitive about these.
const (
	paramSearch     = "Search"
	paramPageSize   = "pageSize"
	paramPageNumber = "PageNumber"
)

func endpointTenantDetail(tenantID int) string {
	return fmt.Sprintf(endpointTenantDetailFn, tenantID)
}

func endpointServiceAreas(tenantID int) string {
	return fmt.Sprintf(endpointServiceAreasFn, tenantID)
}

func endpointServices(tenantID int) string {
	return fmt.Sprintf(endpointServicesFn, tenantID)
}

func endpointOpeningHours(tenantID int) string {
	return fmt.Sprintf(endpointOpeningHoursFn, tenantID)
}
