package directory

import (
	"strconv"
	"strings"

	"github.com/rgayashan/FindAMechanic/internal/model"
	"github.com/rgayashan/FindAMechanic/internal/upstream"
)

// noAddress is shown when a tenant has no usable street line.
const noAddress = "Address not available"

// mapMechanic converts a raw tenant record into the list view model.
func mapMechanic(t upstream.TenantRecord) model.Mechanic {
	line1 := joinNonEmpty(", ", t.BillStreetNumber, t.BillStreetName)
	if line1 == "" {
		line1 = noAddress
	}
	line2 := joinNonEmpty(", ", t.BillCity, t.BillPostalCode, t.BillRegion)

	return model.Mechanic{
		ID:           strconv.Itoa(t.ID),
		Name:         t.BusinessName,
		AddressLine1: line1,
		AddressLine2: line2,
		Phone:        t.PhoneNumber,
		LogoURL:      t.Logo,
		Latitude:     t.BillLatitude,
		Longitude:    t.BillLongitude,
		Specialties:  []string{},
		Rating:       0,
	}
}

// mapDetails merges the four fetched sub-resources into one details view.
// Missing optional fields fall back to zero values, never to an error.
func mapDetails(t *upstream.TenantRecord, areas []upstream.ServiceArea, services []upstream.TenantService, hours *upstream.OpeningHoursRecord) model.MechanicDetails {
	address := formatAddress(t)

	mapped := make([]model.Service, 0, len(services))
	for _, svc := range services {
		mapped = append(mapped, model.Service{Title: svc.Title, Description: svc.Description})
	}

	mappedAreas := make([]model.ServiceArea, 0, len(areas))
	for _, area := range areas {
		mappedAreas = append(mappedAreas, model.ServiceArea{
			PostalCode: area.PostalCode,
			CityName:   area.CityName,
			ID:         area.ID,
		})
	}

	var locations []model.MechanicLocation
	// (0,0) is the server's "no location set" sentinel.
	if t.BillLatitude != nil && t.BillLongitude != nil &&
		(*t.BillLatitude != 0 || *t.BillLongitude != 0) {
		locations = append(locations, model.MechanicLocation{
			Coordinate: model.Coordinate{Latitude: *t.BillLatitude, Longitude: *t.BillLongitude},
			Name:       t.BusinessName,
			Address:    address,
		})
	}

	return model.MechanicDetails{
		ID:                         strconv.Itoa(t.ID),
		Name:                       t.BusinessName,
		Address:                    address,
		Phone:                      t.PhoneNumber,
		Fax:                        t.Fax,
		Email:                      t.Email,
		LicenseNumber:              t.LicenseNumber,
		BusinessRegistrationNumber: t.BusinessRegistrationNumber,
		Logo:                       t.Logo,
		BannerImage:                t.BannerImage,
		Services:                   mapped,
		ServicingAreas:             mappedAreas,
		OpeningHours:               mapOpeningHours(hours),
		Locations:                  locations,
		Price:                      t.Price,
		TenantID:                   t.ID,
	}
}

// mapOpeningHours flattens the record's seven explicit weekday fields into
// a Monday through Sunday list. The record's weekStartDay is ignored; the
// display order is fixed.
func mapOpeningHours(h *upstream.OpeningHoursRecord) []model.OpeningHour {
	return []model.OpeningHour{
		{Day: "Monday", Status: h.MonStatus, StartTime: displayTime(h.MonStart), EndTime: displayTime(h.MonEnd)},
		{Day: "Tuesday", Status: h.TueStatus, StartTime: displayTime(h.TueStart), EndTime: displayTime(h.TueEnd)},
		{Day: "Wednesday", Status: h.WedStatus, StartTime: displayTime(h.WedStart), EndTime: displayTime(h.WedEnd)},
		{Day: "Thursday", Status: h.ThuStatus, StartTime: displayTime(h.ThuStart), EndTime: displayTime(h.ThuEnd)},
		{Day: "Friday", Status: h.FriStatus, StartTime: displayTime(h.FriStart), EndTime: displayTime(h.FriEnd)},
		{Day: "Saturday", Status: h.SatStatus, StartTime: displayTime(h.SatStart), EndTime: displayTime(h.SatEnd)},
		{Day: "Sunday", Status: h.SunStatus, StartTime: displayTime(h.SunStart), EndTime: displayTime(h.SunEnd)},
	}
}

// displayTime truncates the server's seconds precision for display:
// "08:00:00" becomes "08:00". Applying it twice is a no-op.
func displayTime(t string) string {
	return strings.ReplaceAll(t, ":00:00", ":00")
}

// formatAddress joins the billing address components, dropping parts that
// are empty or reduce to a lone separator.
func formatAddress(t *upstream.TenantRecord) string {
	countryCode := ""
	if t.BillCountry != nil {
		countryCode = t.BillCountry.Code
	}

	parts := []string{
		t.BillStreetNumber + ", " + t.BillStreetName,
		t.BillCity + ", " + t.BillPostalCode,
		t.BillRegion,
		countryCode,
	}

	kept := parts[:0]
	for _, p := range parts {
		if p == "" || p == ", " {
			continue
		}
		kept = append(kept, p)
	}
	return strings.Join(kept, "\n")
}

// joinNonEmpty joins the non-empty parts with sep.
func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
