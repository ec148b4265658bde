package checkoutlinks

import (
	"strings"

	"nathanbeddoewebdev/polar/internal/output"
	"nathanbeddoewebdev/polar/internal/polar"
)

func linkTable(links []polar.CheckoutLink) *output.TableView {
	view := &output.TableView{
		Headers: []string{"ID", "Label", "Products", "URL", "Created"},
		Empty:   "No checkout links found.",
	}
	for _, l := range links {
		label := l.Label
		if label == "" {
			label = "-"
		}
		view.AddRow(l.ID, label, productNames(l.Products), l.URL, output.Date(l.CreatedAt))
	}
	return view
}

func linkDetail(l *polar.CheckoutLink) *output.DetailView {
	var view output.DetailView
	view.Add("ID", l.ID)
	view.Add("Label", l.Label)
	view.Add("URL", l.URL)
	view.Add("Success URL", l.SuccessURL)
	view.Add("Products", productNames(l.Products))
	view.Add("Discount codes", output.Bool(l.AllowDiscountCodes))
	view.Add("Organization", l.OrganizationID)
	view.Add("Created", output.Time(l.CreatedAt))
	return &view
}

// productNames lists product names, falling back to the ID of unnamed ones.
func productNames(products []polar.ProductRef) string {
	names := make([]string, 0, len(products))
	for _, p := range products {
		if p.Name != "" {
			names = append(names, p.Name)
		} else {
			names = append(names, p.ID)
		}
	}
	return strings.Join(names, ", ")
}
