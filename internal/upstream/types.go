package upstream

import "encoding/json"

// TenantRecord mirrors the server's tenant JSON. The list and detail
// endpoints return slightly different subsets of these fields; optional
// fields are pointers so "missing" is distinguishable from the zero value.
type TenantRecord struct {
	BusinessName               string   `json:"businessName"`
	PhoneNumber                string   `json:"phoneNumber"`
	Fax                        string   `json:"fax"`
	LicenseNumber              string   `json:"licenseNumber"`
	Email                      string   `json:"email"`
	BusinessRegistrationNumber string   `json:"businessRegistrationNumber"`
	Logo                       *string  `json:"logo"`
	BannerImage                *string  `json:"bannerImage"`
	BillStreetNumber           string   `json:"billStreetNumber"`
	BillStreetName             string   `json:"billStreetName"`
	BillCity                   string   `json:"billCity"`
	BillPostalCode             string   `json:"billPostalCode"`
	BillRegion                 string   `json:"billRegion"`
	BillCountry                *Country `json:"billCountry"`
	BillLatitude               *float64 `json:"billLatitude"`
	BillLongitude              *float64 `json:"billLongitude"`
	Price                      float64  `json:"price"`
	ID                         int      `json:"id"`
}

// Country is the nested country object on a tenant's billing address.
type Country struct {
	Code string `json:"code"`
}

// ServiceArea is one postal area a tenant services.
type ServiceArea struct {
	PostalCode int    `json:"postalCode"`
	CityName   string `json:"cityName"`
	ID         int    `json:"id"`
}

// TenantService is one service a tenant offers.
type TenantService struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ID          int    `json:"id"`
}

// OpeningHoursRecord is the single flat opening-hours object returned per
// tenant. Times are strings like "08:00:00"; Status is true when open.
type OpeningHoursRecord struct {
	TenantID     int    `json:"tenantId"`
	MonStart     string `json:"monStart"`
	MonEnd       string `json:"monEnd"`
	MonStatus    bool   `json:"monStatus"`
	TueStart     string `json:"tueStart"`
	TueEnd       string `json:"tueEnd"`
	TueStatus    bool   `json:"tueStatus"`
	WedStart     string `json:"wedStart"`
	WedEnd       string `json:"wedEnd"`
	WedStatus    bool   `json:"wedStatus"`
	ThuStart     string `json:"thuStart"`
	ThuEnd       string `json:"thuEnd"`
	ThuStatus    bool   `json:"thuStatus"`
	FriStart     string `json:"friStart"`
	FriEnd       string `json:"friEnd"`
	FriStatus    bool   `json:"friStatus"`
	SatStart     string `json:"satStart"`
	SatEnd       string `json:"satEnd"`
	SatStatus    bool   `json:"satStatus"`
	SunStart     string `json:"sunStart"`
	SunEnd       string `json:"sunEnd"`
	SunStatus    bool   `json:"sunStatus"`
	WeekStartDay int    `json:"weekStartDay"`
	ID           int    `json:"id"`
}

// pagedEnvelope models the doubly nested paging wrapper the list endpoints
// use: {statusCode, result: {page, pageSize, totalPages, result: [...]}}.
type pagedEnvelope[T any] struct {
	StatusCode int             `json:"statusCode"`
	Result     pagedPayload[T] `json:"result"`
}

type pagedPayload[T any] struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
	Result     T   `json:"result"`
}

// valuesList accepts either a bare JSON array or an object wrapping the
// array under a "$values" key. The server is inconsistent about which shape
// it returns for sub-resource lists, so both must decode.
type valuesList[T any] struct {
	Values []T
}

func (v *valuesList[T]) UnmarshalJSON(data []byte) error {
	var direct []T
	if err := json.Unmarshal(data, &direct); err == nil {
		v.Values = direct
		return nil
	}

	var wrapped struct {
		Values []T `json:"$values"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	v.Values = wrapped.Values
	return nil
}

// TenantPage is one decoded page of the tenants list.
type TenantPage struct {
	Page       int
	PageSize   int
	TotalPages int
	Tenants    []TenantRecord
}
