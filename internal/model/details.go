package model

// MechanicDetails is the denormalized detail view of a tenant. It is built
// in one step after all four sub-resource fetches succeed and is never
// exposed partially populated.
type MechanicDetails struct {
	ID                         string             `json:"id"`
	Name                       string             `json:"name"`
	Address                    string             `json:"address"`
	Phone                      string             `json:"phone"`
	Fax                        string             `json:"fax"`
	Email                      string             `json:"email"`
	LicenseNumber              string             `json:"licenseNumber"`
	BusinessRegistrationNumber string             `json:"businessRegistrationNumber"`
	Logo                       *string            `json:"logo"`
	BannerImage                *string            `json:"bannerImage"`
	Services                   []Service          `json:"services"`
	ServicingAreas             []ServiceArea      `json:"servicingAreas"`
	OpeningHours               []OpeningHour      `json:"openingHours"`
	Locations                  []MechanicLocation `json:"locations"`
	Price                      float64            `json:"price"`
	TenantID                   int                `json:"tenantId"`
}

// Service is one offered service on the detail view.
type Service struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ServiceArea is one postal area on the detail view.
type ServiceArea struct {
	PostalCode int    `json:"postalCode"`
	CityName   string `json:"cityName"`
	ID         int    `json:"id"`
}

// OpeningHour is one weekday's hours. The detail view always carries all
// seven days in Monday through Sunday order.
type OpeningHour struct {
	Day       string `json:"day"`
	Status    bool   `json:"status"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Coordinate is a WGS84 latitude/longitude pair.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// MechanicLocation is a map pin for a tenant. A details view has zero or
// one of these.
type MechanicLocation struct {
	Coordinate Coordinate `json:"coordinate"`
	Name       string     `json:"name"`
	Address    string     `json:"address"`
}
