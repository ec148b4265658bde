package subscriptions

import (
	"nathanbeddoewebdev/polar/internal/output"
	"nathanbeddoewebdev/polar/internal/polar"
)

func subscriptionTable(subs []polar.Subscription) *output.TableView {
	view := &output.TableView{
		Headers: []string{"ID", "Status", "Amount", "Customer", "Renews"},
		Empty:   "No subscriptions found.",
	}
	for _, s := range subs {
		view.AddRow(s.ID, status(s), amount(s), s.CustomerID, renews(s))
	}
	return view
}

func subscriptionDetail(s *polar.Subscription) *output.DetailView {
	var view output.DetailView
	view.Add("ID", s.ID)
	view.Add("Status", status(*s))
	view.Add("Amount", amount(*s))
	view.Add("Customer", s.CustomerID)
	view.Add("Product", s.ProductID)
	if s.CurrentPeriodEnd != nil {
		label := "Renews"
		if s.CancelAtPeriodEnd {
			label = "Ends"
		}
		view.Add(label, output.Time(*s.CurrentPeriodEnd))
	}
	view.Add("Created", output.Time(s.CreatedAt))
	return &view
}

func status(s polar.Subscription) string {
	if s.CancelAtPeriodEnd && s.Status == "active" {
		return "active (canceling)"
	}
	return s.Status
}

func amount(s polar.Subscription) string {
	a := output.Amount(s.Amount, s.Currency)
	if s.RecurringInterval != "" {
		a += " / " + s.RecurringInterval
	}
	return a
}

func renews(s polar.Subscription) string {
	if s.CurrentPeriodEnd == nil || s.CancelAtPeriodEnd {
		return "-"
	}
	return output.Date(*s.CurrentPeriodEnd)
}
