// Package upstream is the client for the tenants REST API. It builds
// authenticated requests, classifies HTTP failures into an Error taxonomy
// and decodes JSON bodies into the raw record types.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client issues calls against the tenants API. It is safe for concurrent
// use; the base URL and token are never mutated after construction.
type Client struct {
	baseURL   string
	authToken string
	http      *http.Client
}

// NewClient creates a client for the given base URL and bearer token.
func NewClient(baseURL, authToken string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:   baseURL,
		authToken: authToken,
		http:      &http.Client{Timeout: timeout},
	}
}

// ListTenants fetches one page of the tenants list. The search string is
// always forwarded, empty or not; filtering happens server-side.
func (c *Client) ListTenants(ctx context.Context, page, pageSize int, search string) (*TenantPage, error) {
	q := url.Values{}
	q.Set(paramSearch, search)
	q.Set(paramPageSize, strconv.Itoa(pageSize))
	q.Set(paramPageNumber, strconv.Itoa(page))

	var envelope pagedEnvelope[[]TenantRecord]
	if err := c.get(ctx, endpointTenants, q, &envelope); err != nil {
		return nil, err
	}
	return &TenantPage{
		Page:       envelope.Result.Page,
		PageSize:   envelope.Result.PageSize,
		TotalPages: envelope.Result.TotalPages,
		Tenants:    envelope.Result.Result,
	}, nil
}

// GetTenant fetches the detail record for one tenant.
func (c *Client) GetTenant(ctx context.Context, tenantID int) (*TenantRecord, error) {
	var record TenantRecord
	if err := c.get(ctx, endpointTenantDetail(tenantID), nil, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// GetServiceAreas fetches the postal areas a tenant services.
func (c *Client) GetServiceAreas(ctx context.Context, tenantID int) ([]ServiceArea, error) {
	var envelope pagedEnvelope[valuesList[ServiceArea]]
	if err := c.get(ctx, endpointServiceAreas(tenantID), nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Result.Result.Values, nil
}

// GetServices fetches the services a tenant offers.
func (c *Client) GetServices(ctx context.Context, tenantID int) ([]TenantService, error) {
	var envelope pagedEnvelope[valuesList[TenantService]]
	if err := c.get(ctx, endpointServices(tenantID), nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Result.Result.Values, nil
}

// GetOpeningHours fetches a tenant's weekly opening hours. The endpoint
// returns one flat object, never a list.
func (c *Client) GetOpeningHours(ctx context.Context, tenantID int) (*OpeningHoursRecord, error) {
	var record OpeningHoursRecord
	if err := c.get(ctx, endpointOpeningHours(tenantID), nil, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// CreateBooking posts a booking payload. The server's response body is not
// meaningful beyond its status code.
func (c *Client) CreateBooking(ctx context.Context, payload any) error {
	return c.post(ctx, endpointCreateBooking, payload, nil)
}

func (c *Client) get(ctx context.Context, endpoint string, query url.Values, dest any) error {
	req, err := c.newRequest(ctx, http.MethodGet, endpoint, query, nil)
	if err != nil {
		return err
	}
	return c.do(req, dest)
}

func (c *Client) post(ctx context.Context, endpoint string, payload any, dest any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return &Error{Kind: KindUnknown, Err: err}
	}
	req, err := c.newRequest(ctx, http.MethodPost, endpoint, nil, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, dest)
}

func (c *Client) newRequest(ctx context.Context, method, endpoint string, query url.Values, body io.Reader) (*http.Request, error) {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, &Error{Kind: KindInvalidURL, Err: err}
	}
	base.Path = strings.TrimSuffix(base.Path, "/") + "/" + endpoint
	if query != nil {
		base.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, base.String(), body)
	if err != nil {
		return nil, &Error{Kind: KindInvalidURL, Err: err}
	}
	req.Header.Set("Authorization", c.authToken)
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// do sends the request, classifies the status code and decodes the body
// into dest. A decode failure is reported as KindDecoding, never confused
// with a transport error.
func (c *Client) do(req *http.Request, dest any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Kind: KindNetwork, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return classifyStatus(resp.StatusCode)
	}

	if dest == nil {
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindNetwork, Err: err}
	}
	if len(body) == 0 {
		return &Error{Kind: KindInvalidResponse}
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return &Error{Kind: KindDecoding, Err: err}
	}
	return nil
}
