package webhooks

import (
	"strings"

	"nathanbeddoewebdev/polar/internal/output"
	"nathanbeddoewebdev/polar/internal/polar"
)

func webhookTable(endpoints []polar.WebhookEndpoint) *output.TableView {
	view := &output.TableView{
		Headers: []string{"ID", "URL", "Format", "Events", "Created"},
		Empty:   "No webhook endpoints found.",
	}
	for _, e := range endpoints {
		view.AddRow(e.ID, e.URL, e.Format, output.Plural(len(e.Events), "event"), output.Date(e.CreatedAt))
	}
	return view
}

func webhookDetail(e *polar.WebhookEndpoint) *output.DetailView {
	var view output.DetailView
	view.Add("ID", e.ID)
	view.Add("URL", e.URL)
	view.Add("Format", e.Format)
	view.Add("Events", strings.Join(e.Events, ", "))
	view.Add("Secret", e.Secret)
	view.Add("Organization", e.OrganizationID)
	view.Add("Created", output.Time(e.CreatedAt))
	return &view
}
