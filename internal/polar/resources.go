package polar

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

const (
	organizationsPath    = "/v1/organizations/"
	productsPath         = "/v1/products/"
	customersPath        = "/v1/customers/"
	ordersPath           = "/v1/orders/"
	subscriptionsPath    = "/v1/subscriptions/"
	webhookEndpointsPath = "/v1/webhooks/endpoints"
	checkoutLinksPath    = "/v1/checkout-links/"
	checkoutsPath        = "/v1/checkouts/"
	discountsPath        = "/v1/discounts/"
	benefitsPath         = "/v1/benefits/"
	licenseKeysPath      = "/v1/license-keys/"
	metersPath           = "/v1/meters/"
	metricsPath          = "/v1/metrics/"
	eventsPath           = "/v1/events/"
	eventTypesPath       = "/v1/event-types/"
	refundsPath          = "/v1/refunds/"
	customFieldsPath     = "/v1/custom-fields/"
	paymentsPath         = "/v1/payments/"
	disputesPath         = "/v1/disputes/"
	filesPath            = "/v1/files/"
	membersPath          = "/v1/members/"
)

type validator interface {
	validate(v *ValidationError)
}

func list[T any](ctx context.Context, c *Client, path string, params validator, query url.Values) (*ListResource[T], error) {
	v := &ValidationError{}
	params.validate(v)
	if err := v.errOrNil(); err != nil {
		return nil, err
	}

	var out ListResource[T]
	if err := c.do(ctx, http.MethodGet, path, query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func get[T any](ctx context.Context, c *Client, base, id string) (*T, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	var out T
	if err := c.do(ctx, http.MethodGet, joinID(base, id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// joinID appends an escaped identifier to a collection path.
func joinID(base, id string) string {
	if base[len(base)-1] != '/' {
		base += "/"
	}
	return base + url.PathEscape(id)
}

// ListOrganizations returns one page of organizations the token can access.
func (c *Client) ListOrganizations(ctx context.Context, params ListParams) (*ListResource[Organization], error) {
	query := params.values()
	query.Del("organization_id")
	return list[Organization](ctx, c, organizationsPath, params, query)
}

// GetOrganization returns a single organization.
func (c *Client) GetOrganization(ctx context.Context, id string) (*Organization, error) {
	return get[Organization](ctx, c, organizationsPath, id)
}

// ListProducts returns one page of products.
func (c *Client) ListProducts(ctx context.Context, params ListParams) (*ListResource[Product], error) {
	return list[Product](ctx, c, productsPath, params, params.values())
}

// GetProduct returns a single product.
func (c *Client) GetProduct(ctx context.Context, id string) (*Product, error) {
	return get[Product](ctx, c, productsPath, id)
}

// ListCustomers returns one page of customers.
func (c *Client) ListCustomers(ctx context.Context, params CustomerListParams) (*ListResource[Customer], error) {
	return list[Customer](ctx, c, customersPath, params, params.values())
}

// GetCustomer returns a single customer.
func (c *Client) GetCustomer(ctx context.Context, id string) (*Customer, error) {
	return get[Customer](ctx, c, customersPath, id)
}

// ListOrders returns one page of orders.
func (c *Client) ListOrders(ctx context.Context, params OrderListParams) (*ListResource[Order], error) {
	return list[Order](ctx, c, ordersPath, params, params.values())
}

// GetOrder returns a single order.
func (c *Client) GetOrder(ctx context.Context, id string) (*Order, error) {
	return get[Order](ctx, c, ordersPath, id)
}

// ListSubscriptions returns one page of subscriptions.
func (c *Client) ListSubscriptions(ctx context.Context, params SubscriptionListParams) (*ListResource[Subscription], error) {
	return list[Subscription](ctx, c, subscriptionsPath, params, params.values())
}

// GetSubscription returns a single subscription.
func (c *Client) GetSubscription(ctx context.Context, id string) (*Subscription, error) {
	return get[Subscription](ctx, c, subscriptionsPath, id)
}

// ListWebhookEndpoints returns one page of webhook endpoints.
func (c *Client) ListWebhookEndpoints(ctx context.Context, params ListParams) (*ListResource[WebhookEndpoint], error) {
	return list[WebhookEndpoint](ctx, c, webhookEndpointsPath, params, params.values())
}

// GetWebhookEndpoint returns a single webhook endpoint.
func (c *Client) GetWebhookEndpoint(ctx context.Context, id string) (*WebhookEndpoint, error) {
	return get[WebhookEndpoint](ctx, c, webhookEndpointsPath, id)
}

// CreateWebhookEndpoint registers a new webhook endpoint. An empty Format
// defaults to "raw".
func (c *Client) CreateWebhookEndpoint(ctx context.Context, in WebhookEndpointCreate) (*WebhookEndpoint, error) {
	if in.Format == "" {
		in.Format = "raw"
	}
	v := &ValidationError{}
	in.validate(v)
	if err := v.errOrNil(); err != nil {
		return nil, err
	}

	var out WebhookEndpoint
	if err := c.do(ctx, http.MethodPost, webhookEndpointsPath, nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteWebhookEndpoint removes a webhook endpoint.
func (c *Client) DeleteWebhookEndpoint(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	if err := c.do(ctx, http.MethodDelete, joinID(webhookEndpointsPath, id), nil, nil, nil); err != nil {
		return fmt.Errorf("delete webhook endpoint %s: %w", id, err)
	}
	return nil
}

// ListCheckoutLinks returns one page of checkout links.
func (c *Client) ListCheckoutLinks(ctx context.Context, params CheckoutLinkListParams) (*ListResource[CheckoutLink], error) {
	return list[CheckoutLink](ctx, c, checkoutLinksPath, params, params.values())
}

// GetCheckoutLink returns a single checkout link.
func (c *Client) GetCheckoutLink(ctx context.Context, id string) (*CheckoutLink, error) {
	return get[CheckoutLink](ctx, c, checkoutLinksPath, id)
}

// ListCheckouts returns one page of checkout sessions.
func (c *Client) ListCheckouts(ctx context.Context, params CheckoutListParams) (*ListResource[Checkout], error) {
	return list[Checkout](ctx, c, checkoutsPath, params, params.values())
}

// GetCheckout returns a single checkout session.
func (c *Client) GetCheckout(ctx context.Context, id string) (*Checkout, error) {
	return get[Checkout](ctx, c, checkoutsPath, id)
}

// ListDiscounts returns one page of discounts.
func (c *Client) ListDiscounts(ctx context.Context, params SearchListParams) (*ListResource[Discount], error) {
	return list[Discount](ctx, c, discountsPath, params, params.values())
}

// GetDiscount returns a single discount.
func (c *Client) GetDiscount(ctx context.Context, id string) (*Discount, error) {
	return get[Discount](ctx, c, discountsPath, id)
}

// ListBenefits returns one page of benefits.
func (c *Client) ListBenefits(ctx context.Context, params BenefitListParams) (*ListResource[Benefit], error) {
	return list[Benefit](ctx, c, benefitsPath, params, params.values())
}

// GetBenefit returns a single benefit.
func (c *Client) GetBenefit(ctx context.Context, id string) (*Benefit, error) {
	return get[Benefit](ctx, c, benefitsPath, id)
}

// ListBenefitGrants returns one page of the grants of a benefit.
func (c *Client) ListBenefitGrants(ctx context.Context, params BenefitGrantListParams) (*ListResource[BenefitGrant], error) {
	path := joinID(benefitsPath, params.BenefitID) + "/grants"
	return list[BenefitGrant](ctx, c, path, params, params.values())
}

// ListLicenseKeys returns one page of license keys.
func (c *Client) ListLicenseKeys(ctx context.Context, params LicenseKeyListParams) (*ListResource[LicenseKey], error) {
	return list[LicenseKey](ctx, c, licenseKeysPath, params, params.values())
}

// GetLicenseKey returns a single license key.
func (c *Client) GetLicenseKey(ctx context.Context, id string) (*LicenseKey, error) {
	return get[LicenseKey](ctx, c, licenseKeysPath, id)
}

// ListMeters returns one page of meters.
func (c *Client) ListMeters(ctx context.Context, params SearchListParams) (*ListResource[Meter], error) {
	return list[Meter](ctx, c, metersPath, params, params.values())
}

// GetMeter returns a single meter.
func (c *Client) GetMeter(ctx context.Context, id string) (*Meter, error) {
	return get[Meter](ctx, c, metersPath, id)
}

// GetMetrics returns the metrics time series selected by params.
func (c *Client) GetMetrics(ctx context.Context, params MetricsParams) (*Metrics, error) {
	v := &ValidationError{}
	params.validate(v)
	if err := v.errOrNil(); err != nil {
		return nil, err
	}

	var out Metrics
	if err := c.do(ctx, http.MethodGet, metricsPath, params.values(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListEvents returns one page of events.
func (c *Client) ListEvents(ctx context.Context, params EventListParams) (*ListResource[Event], error) {
	return list[Event](ctx, c, eventsPath, params, params.values())
}

// GetEvent returns a single event.
func (c *Client) GetEvent(ctx context.Context, id string) (*Event, error) {
	return get[Event](ctx, c, eventsPath, id)
}

// ListEventTypes returns one page of event types.
func (c *Client) ListEventTypes(ctx context.Context, params SearchListParams) (*ListResource[EventType], error) {
	return list[EventType](ctx, c, eventTypesPath, params, params.values())
}

// ListRefunds returns one page of refunds. The API has no single-refund
// endpoint.
func (c *Client) ListRefunds(ctx context.Context, params RefundListParams) (*ListResource[Refund], error) {
	return list[Refund](ctx, c, refundsPath, params, params.values())
}

// ListCustomFields returns one page of custom fields.
func (c *Client) ListCustomFields(ctx context.Context, params CustomFieldListParams) (*ListResource[CustomField], error) {
	return list[CustomField](ctx, c, customFieldsPath, params, params.values())
}

// GetCustomField returns a single custom field.
func (c *Client) GetCustomField(ctx context.Context, id string) (*CustomField, error) {
	return get[CustomField](ctx, c, customFieldsPath, id)
}

// ListPayments returns one page of payments.
func (c *Client) ListPayments(ctx context.Context, params PaymentListParams) (*ListResource[Payment], error) {
	return list[Payment](ctx, c, paymentsPath, params, params.values())
}

// GetPayment returns a single payment.
func (c *Client) GetPayment(ctx context.Context, id string) (*Payment, error) {
	return get[Payment](ctx, c, paymentsPath, id)
}

// ListDisputes returns one page of disputes.
func (c *Client) ListDisputes(ctx context.Context, params DisputeListParams) (*ListResource[Dispute], error) {
	return list[Dispute](ctx, c, disputesPath, params, params.values())
}

// GetDispute returns a single dispute.
func (c *Client) GetDispute(ctx context.Context, id string) (*Dispute, error) {
	return get[Dispute](ctx, c, disputesPath, id)
}

// ListFiles returns one page of uploaded files.
func (c *Client) ListFiles(ctx context.Context, params ListParams) (*ListResource[File], error) {
	return list[File](ctx, c, filesPath, params, params.values())
}

// ListMembers returns one page of customer members.
func (c *Client) ListMembers(ctx context.Context, params MemberListParams) (*ListResource[Member], error) {
	return list[Member](ctx, c, membersPath, params, params.values())
}

// GetMember returns a single member.
func (c *Client) GetMember(ctx context.Context, id string) (*Member, error) {
	return get[Member](ctx, c, membersPath, id)
}
