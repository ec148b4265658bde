package polar

import (
	"encoding/json"
	"time"
)

// Pagination describes the position of a list page.
type Pagination struct {
	TotalCount int `json:"total_count"`
	MaxPage    int `json:"max_page"`
}

// ListResource is one page of a paginated list endpoint.
type ListResource[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

type Organization struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Email     string    `json:"email,omitempty"`
	Website   string    `json:"website,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Price is a single price attached to a product. PriceAmount is in the
// smallest currency unit and is nil for free and custom prices.
type Price struct {
	ID                string `json:"id"`
	AmountType        string `json:"amount_type"`
	PriceAmount       *int   `json:"price_amount,omitempty"`
	PriceCurrency     string `json:"price_currency,omitempty"`
	RecurringInterval string `json:"recurring_interval,omitempty"`
	IsArchived        bool   `json:"is_archived"`
}

type Product struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description,omitempty"`
	IsRecurring       bool      `json:"is_recurring"`
	IsArchived        bool      `json:"is_archived"`
	RecurringInterval string    `json:"recurring_interval,omitempty"`
	OrganizationID    string    `json:"organization_id"`
	Prices            []Price   `json:"prices"`
	CreatedAt         time.Time `json:"created_at"`
}

type Customer struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name,omitempty"`
	ExternalID     string    `json:"external_id,omitempty"`
	OrganizationID string    `json:"organization_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// Order amounts are in the smallest currency unit.
type Order struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"`
	TotalAmount    int       `json:"total_amount"`
	Currency       string    `json:"currency"`
	BillingReason  string    `json:"billing_reason,omitempty"`
	CustomerID     string    `json:"customer_id"`
	ProductID      string    `json:"product_id"`
	SubscriptionID string    `json:"subscription_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type Subscription struct {
	ID                string     `json:"id"`
	Status            string     `json:"status"`
	Amount            int        `json:"amount"`
	Currency          string     `json:"currency"`
	RecurringInterval string     `json:"recurring_interval"`
	CancelAtPeriodEnd bool       `json:"cancel_at_period_end"`
	CurrentPeriodEnd  *time.Time `json:"current_period_end,omitempty"`
	CustomerID        string     `json:"customer_id"`
	ProductID         string     `json:"product_id"`
	CreatedAt         time.Time  `json:"created_at"`
}

// WebhookEndpoint is a URL that receives event deliveries. Secret is only
// populated by the API on creation.
type WebhookEndpoint struct {
	ID             string    `json:"id"`
	URL            string    `json:"url"`
	Format         string    `json:"format"`
	Events         []string  `json:"events"`
	Secret         string    `json:"secret,omitempty"`
	OrganizationID string    `json:"organization_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// ProductRef is the short form of a product embedded in other resources.
type ProductRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CheckoutLink struct {
	ID                 string       `json:"id"`
	Label              string       `json:"label,omitempty"`
	URL                string       `json:"url"`
	SuccessURL         string       `json:"success_url,omitempty"`
	AllowDiscountCodes bool         `json:"allow_discount_codes"`
	Products           []ProductRef `json:"products"`
	OrganizationID     string       `json:"organization_id"`
	CreatedAt          time.Time    `json:"created_at"`
}

// Checkout is a checkout session. Amount is in the smallest currency unit.
type Checkout struct {
	ID             string     `json:"id"`
	Status         string     `json:"status"`
	URL            string     `json:"url,omitempty"`
	Amount         int        `json:"amount"`
	Currency       string     `json:"currency"`
	ProductID      string     `json:"product_id"`
	CustomerID     string     `json:"customer_id,omitempty"`
	CustomerEmail  string     `json:"customer_email,omitempty"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
	OrganizationID string     `json:"organization_id"`
	CreatedAt      time.Time  `json:"created_at"`
}

// Discount is either a fixed amount (Amount, Currency) or a percentage
// (BasisPoints, 100 per percent) off.
type Discount struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Code             string     `json:"code,omitempty"`
	Type             string     `json:"type"`
	Amount           *int       `json:"amount,omitempty"`
	Currency         string     `json:"currency,omitempty"`
	BasisPoints      *int       `json:"basis_points,omitempty"`
	Duration         string     `json:"duration"`
	DurationInMonths *int       `json:"duration_in_months,omitempty"`
	RedemptionsCount int        `json:"redemptions_count"`
	MaxRedemptions   *int       `json:"max_redemptions,omitempty"`
	StartsAt         *time.Time `json:"starts_at,omitempty"`
	EndsAt           *time.Time `json:"ends_at,omitempty"`
	OrganizationID   string     `json:"organization_id"`
	CreatedAt        time.Time  `json:"created_at"`
}

type Benefit struct {
	ID             string    `json:"id"`
	Type           string    `json:"type"`
	Description    string    `json:"description"`
	Selectable     bool      `json:"selectable"`
	Deletable      bool      `json:"deletable"`
	OrganizationID string    `json:"organization_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// BenefitGrant records a benefit given to a customer.
type BenefitGrant struct {
	ID         string     `json:"id"`
	BenefitID  string     `json:"benefit_id"`
	CustomerID string     `json:"customer_id"`
	IsGranted  bool       `json:"is_granted"`
	IsRevoked  bool       `json:"is_revoked"`
	GrantedAt  *time.Time `json:"granted_at,omitempty"`
	RevokedAt  *time.Time `json:"revoked_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// LicenseKey carries only the masked display key; the full key is never
// decoded.
type LicenseKey struct {
	ID             string     `json:"id"`
	DisplayKey     string     `json:"display_key"`
	Status         string     `json:"status"`
	CustomerID     string     `json:"customer_id"`
	BenefitID      string     `json:"benefit_id"`
	Usage          int        `json:"usage"`
	LimitUsage     *int       `json:"limit_usage,omitempty"`
	Validations    int        `json:"validations"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
	OrganizationID string     `json:"organization_id"`
	CreatedAt      time.Time  `json:"created_at"`
}

type MeterAggregation struct {
	Func     string `json:"func"`
	Property string `json:"property,omitempty"`
}

type Meter struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Aggregation    MeterAggregation `json:"aggregation"`
	OrganizationID string           `json:"organization_id"`
	CreatedAt      time.Time        `json:"created_at"`
}

type Event struct {
	ID                 string         `json:"id"`
	Name               string         `json:"name"`
	Source             string         `json:"source"`
	CustomerID         string         `json:"customer_id,omitempty"`
	ExternalCustomerID string         `json:"external_customer_id,omitempty"`
	Metadata           map[string]any `json:"metadata,omitempty"`
	OrganizationID     string         `json:"organization_id"`
	Timestamp          time.Time      `json:"timestamp"`
}

// EventType is an event name seen for an organization, with usage stats.
type EventType struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Label          string    `json:"label"`
	Occurrences    int       `json:"occurrences"`
	FirstSeen      time.Time `json:"first_seen"`
	LastSeen       time.Time `json:"last_seen"`
	OrganizationID string    `json:"organization_id"`
}

// Refund amounts are in the smallest currency unit.
type Refund struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"`
	Reason         string    `json:"reason"`
	Amount         int       `json:"amount"`
	TaxAmount      int       `json:"tax_amount"`
	Currency       string    `json:"currency"`
	OrderID        string    `json:"order_id"`
	SubscriptionID string    `json:"subscription_id,omitempty"`
	CustomerID     string    `json:"customer_id"`
	OrganizationID string    `json:"organization_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type CustomField struct {
	ID             string    `json:"id"`
	Slug           string    `json:"slug"`
	Name           string    `json:"name"`
	Type           string    `json:"type"`
	OrganizationID string    `json:"organization_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// Payment amounts are in the smallest currency unit.
type Payment struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"`
	Amount         int       `json:"amount"`
	Currency       string    `json:"currency"`
	Method         string    `json:"method"`
	Processor      string    `json:"processor"`
	DeclineReason  string    `json:"decline_reason,omitempty"`
	OrderID        string    `json:"order_id,omitempty"`
	CheckoutID     string    `json:"checkout_id,omitempty"`
	OrganizationID string    `json:"organization_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// Dispute amounts are in the smallest currency unit.
type Dispute struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Resolved  bool      `json:"resolved"`
	Closed    bool      `json:"closed"`
	Amount    int       `json:"amount"`
	TaxAmount int       `json:"tax_amount"`
	Currency  string    `json:"currency"`
	OrderID   string    `json:"order_id"`
	PaymentID string    `json:"payment_id"`
	CreatedAt time.Time `json:"created_at"`
}

type File struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Path           string    `json:"path"`
	MimeType       string    `json:"mime_type"`
	Size           int64     `json:"size"`
	Service        string    `json:"service"`
	IsUploaded     bool      `json:"is_uploaded"`
	OrganizationID string    `json:"organization_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// Member is a person acting on behalf of a business customer.
type Member struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	Email      string    `json:"email"`
	Name       string    `json:"name,omitempty"`
	Role       string    `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
}

// MetricPeriod holds every metric value for one interval. Timestamp marks
// the start of the interval; Values is keyed by metric slug.
type MetricPeriod struct {
	Timestamp time.Time
	Values    map[string]float64
}

func (p MetricPeriod) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(p.Values)+1)
	for k, v := range p.Values {
		out[k] = v
	}
	out["timestamp"] = p.Timestamp
	return json.Marshal(out)
}

func (p *MetricPeriod) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.Values = make(map[string]float64, len(raw))
	for k, v := range raw {
		if k == "timestamp" {
			if err := json.Unmarshal(v, &p.Timestamp); err != nil {
				return err
			}
			continue
		}
		var n float64
		if err := json.Unmarshal(v, &n); err != nil {
			continue
		}
		p.Values[k] = n
	}
	return nil
}

// MetricDefinition describes one metric. Type is "scalar", "currency" or
// "percentage"; currency values are in cents.
type MetricDefinition struct {
	Slug        string `json:"slug"`
	DisplayName string `json:"display_name"`
	Type        string `json:"type"`
}

// Metrics is a time series of organization metrics.
type Metrics struct {
	Periods []MetricPeriod              `json:"periods"`
	Totals  map[string]float64          `json:"totals"`
	Metrics map[string]MetricDefinition `json:"metrics"`
}
