package polar

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"nathanbeddoewebdev/polar/internal/retry"

	"github.com/google/go-cmp/cmp"
)

const (
	testOrgID      = "0b4f8a2e-6a61-4d3c-9a9f-1c7f3c2d5e10"
	testProductID  = "5a0c7e61-0d8f-4b52-8d7e-2f4b9c1a3e77"
	testCustomerID = "9e2d4c1b-7a35-4f60-b1c8-3d5e6f7a8b90"
	testWebhookID  = "c3b2a190-8f7e-4d6c-a5b4-1234567890ab"
)

// newTestClient returns a client pointed at srv that does not back off
// between retries.
func newTestClient(t *testing.T, srv *httptest.Server, opts ...Option) *Client {
	t.Helper()
	base := []Option{
		WithBaseURL(srv.URL),
		WithToken("polar_oat_test"),
		WithRetryPolicy(retry.Policy{Attempts: 3}),
	}
	return NewClient(append(base, opts...)...)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("encode response: %v", err)
	}
}

func TestEnvironment(t *testing.T) {
	if got := EnvironmentFor(false); got != Production {
		t.Errorf("EnvironmentFor(false) = %q, want %q", got, Production)
	}
	if got := EnvironmentFor(true); got != Sandbox {
		t.Errorf("EnvironmentFor(true) = %q, want %q", got, Sandbox)
	}
	if got := Production.ServerURL(); got != "https://api.polar.sh" {
		t.Errorf("Production.ServerURL() = %q", got)
	}
	if got := Sandbox.ServerURL(); got != "https://sandbox-api.polar.sh" {
		t.Errorf("Sandbox.ServerURL() = %q", got)
	}
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient()
	if c.BaseURL() != ProductionURL {
		t.Errorf("BaseURL() = %q, want %q", c.BaseURL(), ProductionURL)
	}
	if c.http.Timeout != defaultTimeout {
		t.Errorf("timeout = %v, want %v", c.http.Timeout, defaultTimeout)
	}
}

func TestListProducts_SendsParamsAndDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/v1/products/" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer polar_oat_test" {
			t.Errorf("Authorization = %q", got)
		}
		if got := r.Header.Get("User-Agent"); got != "polar-cli/test" {
			t.Errorf("User-Agent = %q", got)
		}
		q := r.URL.Query()
		if q.Get("organization_id") != testOrgID || q.Get("page") != "2" || q.Get("limit") != "5" {
			t.Errorf("unexpected query %q", r.URL.RawQuery)
		}
		writeJSON(t, w, http.StatusOK, map[string]any{
			"items": []any{
				map[string]any{
					"id":              testProductID,
					"name":            "Pro plan",
					"is_recurring":    true,
					"organization_id": testOrgID,
					"prices": []any{
						map[string]any{"id": "p1", "amount_type": "fixed", "price_amount": 1500, "price_currency": "usd"},
					},
					"created_at": "2024-01-01T00:00:00Z",
				},
			},
			"pagination": map[string]any{"total_count": 6, "max_page": 2},
		})
	}))
	defer srv.Close()

	c := newTestClient(t, srv, WithUserAgent("polar-cli/test"))
	got, err := c.ListProducts(context.Background(), ListParams{OrganizationID: testOrgID, Page: 2, Limit: 5})
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}

	amount := 1500
	want := &ListResource[Product]{
		Items: []Product{{
			ID:             testProductID,
			Name:           "Pro plan",
			IsRecurring:    true,
			OrganizationID: testOrgID,
			Prices:         []Price{{ID: "p1", AmountType: "fixed", PriceAmount: &amount, PriceCurrency: "usd"}},
			CreatedAt:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		}},
		Pagination: Pagination{TotalCount: 6, MaxPage: 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ListProducts mismatch (-want +got):\n%s", diff)
	}
}

func TestListOrganizations_OmitsOrganizationFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Has("organization_id") {
			t.Errorf("unexpected organization_id in %q", r.URL.RawQuery)
		}
		writeJSON(t, w, http.StatusOK, map[string]any{"items": []any{}, "pagination": map[string]any{"total_count": 0, "max_page": 1}})
	}))
	defer srv.Close()

	params := DefaultListParams()
	params.OrganizationID = testOrgID
	if _, err := newTestClient(t, srv).ListOrganizations(context.Background(), params); err != nil {
		t.Fatalf("ListOrganizations: %v", err)
	}
}

func TestFilteredListParams(t *testing.T) {
	active := false
	tests := []struct {
		name string
		call func(c *Client) error
		path string
		want map[string]string
	}{
		{
			name: "customers by email",
			call: func(c *Client) error {
				_, err := c.ListCustomers(context.Background(), CustomerListParams{ListParams: DefaultListParams(), Email: "a@example.com"})
				return err
			},
			path: "/v1/customers/",
			want: map[string]string{"email": "a@example.com", "page": "1", "limit": "10"},
		},
		{
			name: "orders by customer",
			call: func(c *Client) error {
				_, err := c.ListOrders(context.Background(), OrderListParams{ListParams: DefaultListParams(), CustomerID: testCustomerID})
				return err
			},
			path: "/v1/orders/",
			want: map[string]string{"customer_id": testCustomerID, "page": "1", "limit": "10"},
		},
		{
			name: "inactive subscriptions",
			call: func(c *Client) error {
				_, err := c.ListSubscriptions(context.Background(), SubscriptionListParams{ListParams: DefaultListParams(), Active: &active})
				return err
			},
			path: "/v1/subscriptions/",
			want: map[string]string{"active": "false", "page": "1", "limit": "10"},
		},
		{
			name: "webhook endpoints",
			call: func(c *Client) error {
				_, err := c.ListWebhookEndpoints(context.Background(), DefaultListParams())
				return err
			},
			path: "/v1/webhooks/endpoints",
			want: map[string]string{"page": "1", "limit": "10"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != tt.path {
					t.Errorf("path = %q, want %q", r.URL.Path, tt.path)
				}
				got := map[string]string{}
				for k := range r.URL.Query() {
					got[k] = r.URL.Query().Get(k)
				}
				if diff := cmp.Diff(tt.want, got); diff != "" {
					t.Errorf("query mismatch (-want +got):\n%s", diff)
				}
				writeJSON(t, w, http.StatusOK, map[string]any{"items": []any{}, "pagination": map[string]any{"total_count": 0, "max_page": 1}})
			}))
			defer srv.Close()

			if err := tt.call(newTestClient(t, srv)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestList_ValidationSendsNoRequest(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv).ListProducts(context.Background(), ListParams{Page: 0, Limit: 500, OrganizationID: "org-1"})

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	want := []FieldError{
		{Loc: []string{"query", "page"}, Msg: "must be at least 1"},
		{Loc: []string{"query", "limit"}, Msg: "must be between 1 and 100"},
		{Loc: []string{"query", "organization_id"}, Msg: "must be a valid UUID"},
	}
	if diff := cmp.Diff(want, validationErr.Errors); diff != "" {
		t.Errorf("field errors mismatch (-want +got):\n%s", diff)
	}
	if calls.Load() != 0 {
		t.Errorf("expected no requests, got %d", calls.Load())
	}
}

func TestGet_InvalidIDSendsNoRequest(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv).GetOrder(context.Background(), "../organizations")

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	if diff := cmp.Diff([]string{"path", "id"}, validationErr.Errors[0].Loc); diff != "" {
		t.Errorf("loc mismatch (-want +got):\n%s", diff)
	}
	if calls.Load() != 0 {
		t.Errorf("expected no requests, got %d", calls.Load())
	}
}

func TestGet_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/customers/"+testCustomerID {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		writeJSON(t, w, http.StatusNotFound, map[string]any{"error": "ResourceNotFound", "detail": "Not found"})
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv).GetCustomer(context.Background(), testCustomerID)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", apiErr.StatusCode)
	}
	if apiErr.Body != "{\"detail\":\"Not found\",\"error\":\"ResourceNotFound\"}\n" {
		t.Errorf("Body = %q", apiErr.Body)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected errors.Is(err, ErrNotFound)")
	}
}

func TestAPIError_Sentinels(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrUnauthorized},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusTooManyRequests, ErrRateLimited},
		{http.StatusConflict, ErrConflict},
	}
	for _, tt := range tests {
		err := &APIError{StatusCode: tt.status}
		if !errors.Is(err, tt.want) {
			t.Errorf("status %d: expected %v", tt.status, tt.want)
		}
	}
	if (&APIError{StatusCode: 500}).Unwrap() != nil {
		t.Error("expected no sentinel for status 500")
	}
}

func TestGet_UndecodableResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("<html>maintenance</html>"))
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv).GetProduct(context.Background(), testProductID)

	var sdkErr *SDKError
	if !errors.As(err, &sdkErr) {
		t.Fatalf("expected *SDKError, got %T: %v", err, err)
	}
	if sdkErr.Body != "<html>maintenance</html>" {
		t.Errorf("Body = %q", sdkErr.Body)
	}
}

func TestDo_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	c := newTestClient(t, srv)
	srv.Close()

	_, err := c.GetOrganization(context.Background(), testOrgID)

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected *TransportError, got %T: %v", err, err)
	}
	if transportErr.Timeout {
		t.Error("expected a connection failure, got a timeout")
	}
}

func TestDo_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := newTestClient(t, srv, WithHTTPClient(&http.Client{Timeout: 20 * time.Millisecond}))
	_, err := c.GetOrganization(context.Background(), testOrgID)

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected *TransportError, got %T: %v", err, err)
	}
	if !transportErr.Timeout {
		t.Error("expected a timeout")
	}
}

func TestDo_CanceledIsNotTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := newTestClient(t, srv).DeleteWebhookEndpoint(ctx, testWebhookID)

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		t.Errorf("canceled request should not be a transport error")
	}
}

func TestDo_RetriesThrottledGet(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Retry-After", "0")
			writeJSON(t, w, http.StatusTooManyRequests, map[string]any{"error": "rate_limited"})
			return
		}
		writeJSON(t, w, http.StatusOK, map[string]any{"id": testOrgID, "name": "Acme"})
	}))
	defer srv.Close()

	org, err := newTestClient(t, srv).GetOrganization(context.Background(), testOrgID)
	if err != nil {
		t.Fatalf("GetOrganization: %v", err)
	}
	if org.Name != "Acme" {
		t.Errorf("Name = %q, want Acme", org.Name)
	}
	if calls.Load() != 2 {
		t.Errorf("expected 2 calls, got %d", calls.Load())
	}
}

func TestDo_GivesUpAfterPolicyAttempts(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv).GetOrganization(context.Background(), testOrgID)

	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 *APIError, got %v", err)
	}
	if calls.Load() != 3 {
		t.Errorf("expected 3 calls, got %d", calls.Load())
	}
}

func TestDo_DoesNotRetryWrites(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	err := newTestClient(t, srv).DeleteWebhookEndpoint(context.Background(), testWebhookID)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if calls.Load() != 1 {
		t.Errorf("expected 1 call, got %d", calls.Load())
	}
}

func TestDo_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	newTestClient(t, srv).GetOrganization(context.Background(), testOrgID)
	if calls.Load() != 1 {
		t.Errorf("expected 1 call, got %d", calls.Load())
	}
}

func TestCreateWebhookEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/webhooks/endpoints" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q", got)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
			return
		}
		want := map[string]any{
			"url":             "https://example.com/hook",
			"format":          "raw",
			"events":          []any{"order.created"},
			"organization_id": testOrgID,
		}
		if diff := cmp.Diff(want, body); diff != "" {
			t.Errorf("body mismatch (-want +got):\n%s", diff)
		}
		writeJSON(t, w, http.StatusCreated, map[string]any{
			"id":     testWebhookID,
			"url":    "https://example.com/hook",
			"format": "raw",
			"events": []string{"order.created"},
			"secret": "whsec_abc",
		})
	}))
	defer srv.Close()

	got, err := newTestClient(t, srv).CreateWebhookEndpoint(context.Background(), WebhookEndpointCreate{
		URL:            "https://example.com/hook",
		Events:         []string{"order.created"},
		OrganizationID: testOrgID,
	})
	if err != nil {
		t.Fatalf("CreateWebhookEndpoint: %v", err)
	}
	if got.ID != testWebhookID || got.Secret != "whsec_abc" {
		t.Errorf("unexpected endpoint %+v", got)
	}
}

func TestCreateWebhookEndpoint_Validation(t *testing.T) {
	tests := []struct {
		name string
		in   WebhookEndpointCreate
		want []FieldError
	}{
		{
			name: "http url and no events",
			in:   WebhookEndpointCreate{URL: "http://example.com/hook"},
			want: []FieldError{
				{Loc: []string{"body", "url"}, Msg: "must use the https scheme"},
				{Loc: []string{"body", "events"}, Msg: "must contain at least one event"},
			},
		},
		{
			name: "relative url",
			in:   WebhookEndpointCreate{URL: "/hook", Events: []string{"order.created"}},
			want: []FieldError{
				{Loc: []string{"body", "url"}, Msg: "must be an absolute URL"},
			},
		},
		{
			name: "blank event and bad format",
			in:   WebhookEndpointCreate{URL: "https://example.com", Format: "xml", Events: []string{"order.created", " "}},
			want: []FieldError{
				{Loc: []string{"body", "format"}, Msg: "must be one of raw, discord, slack"},
				{Loc: []string{"body", "events", "1"}, Msg: "must not be empty"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClient(WithBaseURL("http://127.0.0.1:0")).CreateWebhookEndpoint(context.Background(), tt.in)

			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected *ValidationError, got %T: %v", err, err)
			}
			if diff := cmp.Diff(tt.want, validationErr.Errors); diff != "" {
				t.Errorf("field errors mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDeleteWebhookEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/v1/webhooks/endpoints/"+testWebhookID {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	if err := newTestClient(t, srv).DeleteWebhookEndpoint(context.Background(), testWebhookID); err != nil {
		t.Fatalf("DeleteWebhookEndpoint: %v", err)
	}
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Errors: []FieldError{
		{Loc: []string{"query", "limit"}, Msg: "too large"},
		{Loc: []string{"query", "page"}, Msg: "too small"},
	}}
	want := "polar: invalid request: query.limit: too large; query.page: too small"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
