package products

import (
	"strings"

	"nathanbeddoewebdev/polar/internal/output"
	"nathanbeddoewebdev/polar/internal/polar"
)

func productTable(products []polar.Product) *output.TableView {
	view := &output.TableView{
		Headers: []string{"ID", "Name", "Type", "Price", "Archived"},
		Empty:   "No products found.",
	}
	for _, p := range products {
		view.AddRow(p.ID, p.Name, productType(p), priceSummary(p.Prices), output.Bool(p.IsArchived))
	}
	return view
}

func productDetail(p *polar.Product) *output.DetailView {
	var view output.DetailView
	view.Add("ID", p.ID)
	view.Add("Name", p.Name)
	view.Add("Description", p.Description)
	view.Add("Type", productType(*p))
	view.Add("Archived", output.Bool(p.IsArchived))
	for i, price := range p.Prices {
		label := "Price"
		if len(p.Prices) > 1 {
			label = "Price " + output.Count(i+1)
		}
		view.Add(label, formatPrice(price))
	}
	view.Add("Organization", p.OrganizationID)
	view.Add("Created", output.Time(p.CreatedAt))
	return &view
}

func productType(p polar.Product) string {
	if !p.IsRecurring {
		return "one-time"
	}
	if p.RecurringInterval != "" {
		return "recurring (" + p.RecurringInterval + ")"
	}
	return "recurring"
}

// priceSummary shows the first active price and how many others exist.
func priceSummary(prices []polar.Price) string {
	var active []polar.Price
	for _, p := range prices {
		if !p.IsArchived {
			active = append(active, p)
		}
	}
	switch len(active) {
	case 0:
		return "-"
	case 1:
		return formatPrice(active[0])
	default:
		return formatPrice(active[0]) + " (+" + output.Count(len(active)-1) + ")"
	}
}

func formatPrice(p polar.Price) string {
	var s string
	switch p.AmountType {
	case "free":
		s = "free"
	case "custom":
		s = "pay what you want"
	default:
		if p.PriceAmount == nil {
			s = strings.ReplaceAll(p.AmountType, "_", " ")
		} else {
			s = output.Amount(*p.PriceAmount, p.PriceCurrency)
		}
	}
	if p.RecurringInterval != "" {
		s += " / " + p.RecurringInterval
	}
	return s
}
