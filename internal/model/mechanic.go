package model

// Mechanic is the list-screen view of a tenant. Instances are built fresh
// on every page fetch and never mutated in place.
type Mechanic struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	AddressLine1 string   `json:"addressLine1"`
	AddressLine2 string   `json:"addressLine2"`
	Phone        string   `json:"phone"`
	LogoURL      *string  `json:"logoUrl"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	Specialties  []string `json:"specialties"` // Not provided by the API
	Rating       float64  `json:"rating"`      // Not provided by the API
}
