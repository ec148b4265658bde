package licensekeys

import (
	"nathanbeddoewebdev/polar/internal/output"
	"nathanbeddoewebdev/polar/internal/polar"
)

func keyTable(keys []polar.LicenseKey) *output.TableView {
	view := &output.TableView{
		Headers: []string{"ID", "Key", "Status", "Customer", "Usage", "Expires"},
		Empty:   "No license keys found.",
	}
	for _, k := range keys {
		expires := "-"
		if k.ExpiresAt != nil {
			expires = output.Date(*k.ExpiresAt)
		}
		view.AddRow(k.ID, k.DisplayKey, k.Status, k.CustomerID, usage(k), expires)
	}
	return view
}

func keyDetail(k *polar.LicenseKey) *output.DetailView {
	var view output.DetailView
	view.Add("ID", k.ID)
	view.Add("Key", k.DisplayKey)
	view.Add("Status", k.Status)
	view.Add("Customer", k.CustomerID)
	view.Add("Benefit", k.BenefitID)
	view.Add("Usage", usage(*k))
	view.Add("Validations", output.Count(k.Validations))
	if k.ExpiresAt != nil {
		view.Add("Expires", output.Time(*k.ExpiresAt))
	}
	view.Add("Created", output.Time(k.CreatedAt))
	return &view
}

// usage renders "3/10" for a capped key and "3" otherwise.
func usage(k polar.LicenseKey) string {
	if k.LimitUsage == nil {
		return output.Count(k.Usage)
	}
	return output.Count(k.Usage) + "/" + output.Count(*k.LimitUsage)
}
