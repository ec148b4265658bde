package polar

import (
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"nathanbeddoewebdev/polar/internal/util"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ListParams are the paging and scoping parameters shared by every list
// endpoint. OrganizationID is optional.
type ListParams struct {
	OrganizationID string
	Page           int
	Limit          int
}

// DefaultListParams returns the first page with the default page size.
func DefaultListParams() ListParams {
	return ListParams{Page: 1, Limit: DefaultPageSize}
}

func (p ListParams) validate(v *ValidationError) {
	if p.Page < 1 {
		v.add("must be at least 1", "query", "page")
	}
	if p.Limit < 1 || p.Limit > MaxPageSize {
		v.add("must be between 1 and "+strconv.Itoa(MaxPageSize), "query", "limit")
	}
	if p.OrganizationID != "" && !util.IsUUID(p.OrganizationID) {
		v.add("must be a valid UUID", "query", "organization_id")
	}
}

func (p ListParams) values() url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(p.Page))
	q.Set("limit", strconv.Itoa(p.Limit))
	if p.OrganizationID != "" {
		q.Set("organization_id", p.OrganizationID)
	}
	return q
}

type CustomerListParams struct {
	ListParams
	Email string
}

func (p CustomerListParams) validate(v *ValidationError) {
	p.ListParams.validate(v)
	if p.Email != "" && !strings.Contains(p.Email, "@") {
		v.add("must be an email address", "query", "email")
	}
}

func (p CustomerListParams) values() url.Values {
	q := p.ListParams.values()
	if p.Email != "" {
		q.Set("email", p.Email)
	}
	return q
}

type OrderListParams struct {
	ListParams
	CustomerID string
}

func (p OrderListParams) validate(v *ValidationError) {
	p.ListParams.validate(v)
	if p.CustomerID != "" && !util.IsUUID(p.CustomerID) {
		v.add("must be a valid UUID", "query", "customer_id")
	}
}

func (p OrderListParams) values() url.Values {
	q := p.ListParams.values()
	if p.CustomerID != "" {
		q.Set("customer_id", p.CustomerID)
	}
	return q
}

// SubscriptionListParams filters subscriptions. A nil Active returns both
// active and inactive subscriptions.
type SubscriptionListParams struct {
	ListParams
	Active *bool
}

func (p SubscriptionListParams) validate(v *ValidationError) {
	p.ListParams.validate(v)
}

func (p SubscriptionListParams) values() url.Values {
	q := p.ListParams.values()
	if p.Active != nil {
		q.Set("active", strconv.FormatBool(*p.Active))
	}
	return q
}

// WebhookEndpointCreate is the request body for a new webhook endpoint.
type WebhookEndpointCreate struct {
	URL            string   `json:"url"`
	Format         string   `json:"format"`
	Events         []string `json:"events"`
	Secret         string   `json:"secret,omitempty"`
	OrganizationID string   `json:"organization_id,omitempty"`
}

func (w WebhookEndpointCreate) validate(v *ValidationError) {
	u, err := url.Parse(w.URL)
	switch {
	case w.URL == "":
		v.add("must not be empty", "body", "url")
	case err != nil || u.Host == "":
		v.add("must be an absolute URL", "body", "url")
	case u.Scheme != "https":
		v.add("must use the https scheme", "body", "url")
	}

	switch w.Format {
	case "raw", "discord", "slack":
	default:
		v.add("must be one of raw, discord, slack", "body", "format")
	}

	if len(w.Events) == 0 {
		v.add("must contain at least one event", "body", "events")
	}
	for i, ev := range w.Events {
		if strings.TrimSpace(ev) == "" {
			v.add("must not be empty", "body", "events", strconv.Itoa(i))
		}
	}

	if w.OrganizationID != "" && !util.IsUUID(w.OrganizationID) {
		v.add("must be a valid UUID", "body", "organization_id")
	}
}

// validateID checks a path identifier before it is sent.
func validateID(id string) error {
	v := &ValidationError{}
	if !util.IsUUID(id) {
		v.add("must be a valid UUID", "path", "id")
	}
	return v.errOrNil()
}

// checkUUID flags a non-empty value that is not a UUID.
func checkUUID(v *ValidationError, value, field string) {
	if value != "" && !util.IsUUID(value) {
		v.add("must be a valid UUID", "query", field)
	}
}

// checkOneOf flags a non-empty value outside allowed.
func checkOneOf(v *ValidationError, value, field string, allowed ...string) {
	if value != "" && !slices.Contains(allowed, value) {
		v.add("must be one of "+strings.Join(allowed, ", "), "query", field)
	}
}

func setIf(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

func setBool(q url.Values, key string, value *bool) {
	if value != nil {
		q.Set(key, strconv.FormatBool(*value))
	}
}

var (
	CheckoutStatuses = []string{"open", "expired", "confirmed", "succeeded", "failed"}
	BenefitTypes     = []string{"custom", "discord", "github_repository", "downloadables", "license_keys", "meter_credit"}
	EventSources     = []string{"system", "user"}
	CustomFieldTypes = []string{"text", "number", "date", "checkbox", "select"}
	PaymentStatuses  = []string{"pending", "succeeded", "failed"}
	DisputeStatuses  = []string{"prevented", "early_warning", "needs_response", "under_review", "lost", "won", "accepted"}
	MetricIntervals  = []string{"hour", "day", "week", "month", "year"}
)

type CheckoutLinkListParams struct {
	ListParams
	ProductID string
}

func (p CheckoutLinkListParams) validate(v *ValidationError) {
	p.ListParams.validate(v)
	checkUUID(v, p.ProductID, "product_id")
}

func (p CheckoutLinkListParams) values() url.Values {
	q := p.ListParams.values()
	setIf(q, "product_id", p.ProductID)
	return q
}

type CheckoutListParams struct {
	ListParams
	ProductID  string
	CustomerID string
	Status     string
}

func (p CheckoutListParams) validate(v *ValidationError) {
	p.ListParams.validate(v)
	checkUUID(v, p.ProductID, "product_id")
	checkUUID(v, p.CustomerID, "customer_id")
	checkOneOf(v, p.Status, "status", CheckoutStatuses...)
}

func (p CheckoutListParams) values() url.Values {
	q := p.ListParams.values()
	setIf(q, "product_id", p.ProductID)
	setIf(q, "customer_id", p.CustomerID)
	setIf(q, "status", p.Status)
	return q
}

// SearchListParams narrows a list by a free-text query on the name.
type SearchListParams struct {
	ListParams
	Query string
}

func (p SearchListParams) validate(v *ValidationError) {
	p.ListParams.validate(v)
}

func (p SearchListParams) values() url.Values {
	q := p.ListParams.values()
	setIf(q, "query", p.Query)
	return q
}

type BenefitListParams struct {
	ListParams
	Type string
}

func (p BenefitListParams) validate(v *ValidationError) {
	p.ListParams.validate(v)
	checkOneOf(v, p.Type, "type", BenefitTypes...)
}

func (p BenefitListParams) values() url.Values {
	q := p.ListParams.values()
	setIf(q, "type", p.Type)
	return q
}

// BenefitGrantListParams lists the grants of one benefit. The endpoint is
// scoped by BenefitID, so OrganizationID is not sent.
type BenefitGrantListParams struct {
	ListParams
	BenefitID  string
	CustomerID string
	Granted    *bool
}

func (p BenefitGrantListParams) validate(v *ValidationError) {
	p.ListParams.validate(v)
	if !util.IsUUID(p.BenefitID) {
		v.add("must be a valid UUID", "path", "id")
	}
	checkUUID(v, p.CustomerID, "customer_id")
}

func (p BenefitGrantListParams) values() url.Values {
	q := p.ListParams.values()
	q.Del("organization_id")
	setIf(q, "customer_id", p.CustomerID)
	setBool(q, "is_granted", p.Granted)
	return q
}

type LicenseKeyListParams struct {
	ListParams
	BenefitID string
}

func (p LicenseKeyListParams) validate(v *ValidationError) {
	p.ListParams.validate(v)
	checkUUID(v, p.BenefitID, "benefit_id")
}

func (p LicenseKeyListParams) values() url.Values {
	q := p.ListParams.values()
	setIf(q, "benefit_id", p.BenefitID)
	return q
}

type EventListParams struct {
	ListParams
	CustomerID string
	Name       string
	Source     string
}

func (p EventListParams) validate(v *ValidationError) {
	p.ListParams.validate(v)
	checkUUID(v, p.CustomerID, "customer_id")
	checkOneOf(v, p.Source, "source", EventSources...)
}

func (p EventListParams) values() url.Values {
	q := p.ListParams.values()
	setIf(q, "customer_id", p.CustomerID)
	setIf(q, "name", p.Name)
	setIf(q, "source", p.Source)
	return q
}

type RefundListParams struct {
	ListParams
	OrderID        string
	SubscriptionID string
	CustomerID     string
	Succeeded      *bool
}

func (p RefundListParams) validate(v *ValidationError) {
	p.ListParams.validate(v)
	checkUUID(v, p.OrderID, "order_id")
	checkUUID(v, p.SubscriptionID, "subscription_id")
	checkUUID(v, p.CustomerID, "customer_id")
}

func (p RefundListParams) values() url.Values {
	q := p.ListParams.values()
	setIf(q, "order_id", p.OrderID)
	setIf(q, "subscription_id", p.SubscriptionID)
	setIf(q, "customer_id", p.CustomerID)
	setBool(q, "succeeded", p.Succeeded)
	return q
}

type CustomFieldListParams struct {
	ListParams
	Type string
}

func (p CustomFieldListParams) validate(v *ValidationError) {
	p.ListParams.validate(v)
	checkOneOf(v, p.Type, "type", CustomFieldTypes...)
}

func (p CustomFieldListParams) values() url.Values {
	q := p.ListParams.values()
	setIf(q, "type", p.Type)
	return q
}

type PaymentListParams struct {
	ListParams
	OrderID    string
	CheckoutID string
	Status     string
}

func (p PaymentListParams) validate(v *ValidationError) {
	p.ListParams.validate(v)
	checkUUID(v, p.OrderID, "order_id")
	checkUUID(v, p.CheckoutID, "checkout_id")
	checkOneOf(v, p.Status, "status", PaymentStatuses...)
}

func (p PaymentListParams) values() url.Values {
	q := p.ListParams.values()
	setIf(q, "order_id", p.OrderID)
	setIf(q, "checkout_id", p.CheckoutID)
	setIf(q, "status", p.Status)
	return q
}

type DisputeListParams struct {
	ListParams
	OrderID string
	Status  string
}

func (p DisputeListParams) validate(v *ValidationError) {
	p.ListParams.validate(v)
	checkUUID(v, p.OrderID, "order_id")
	checkOneOf(v, p.Status, "status", DisputeStatuses...)
}

func (p DisputeListParams) values() url.Values {
	q := p.ListParams.values()
	setIf(q, "order_id", p.OrderID)
	setIf(q, "status", p.Status)
	return q
}

type MemberListParams struct {
	ListParams
	CustomerID string
}

func (p MemberListParams) validate(v *ValidationError) {
	p.ListParams.validate(v)
	checkUUID(v, p.CustomerID, "customer_id")
}

func (p MemberListParams) values() url.Values {
	q := p.ListParams.values()
	setIf(q, "customer_id", p.CustomerID)
	return q
}

// MetricsParams selects a metrics time series. Dates are YYYY-MM-DD and
// both ends are inclusive.
type MetricsParams struct {
	OrganizationID string
	StartDate      string
	EndDate        string
	Interval       string
}

const dateLayout = "2006-01-02"

func (p MetricsParams) validate(v *ValidationError) {
	checkUUID(v, p.OrganizationID, "organization_id")
	start, startErr := time.Parse(dateLayout, p.StartDate)
	if startErr != nil {
		v.add("must be a date in YYYY-MM-DD format", "query", "start_date")
	}
	end, endErr := time.Parse(dateLayout, p.EndDate)
	if endErr != nil {
		v.add("must be a date in YYYY-MM-DD format", "query", "end_date")
	}
	if startErr == nil && endErr == nil && end.Before(start) {
		v.add("must not be before start_date", "query", "end_date")
	}
	if !slices.Contains(MetricIntervals, p.Interval) {
		v.add("must be one of "+strings.Join(MetricIntervals, ", "), "query", "interval")
	}
}

func (p MetricsParams) values() url.Values {
	q := url.Values{}
	q.Set("start_date", p.StartDate)
	q.Set("end_date", p.EndDate)
	q.Set("interval", p.Interval)
	setIf(q, "organization_id", p.OrganizationID)
	return q
}
