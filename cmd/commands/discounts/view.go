package discounts

import (
	"strconv"

	"nathanbeddoewebdev/polar/internal/output"
	"nathanbeddoewebdev/polar/internal/polar"
)

func discountTable(discounts []polar.Discount) *output.TableView {
	view := &output.TableView{
		Headers: []string{"ID", "Name", "Code", "Off", "Duration", "Redeemed", "Created"},
		Empty:   "No discounts found.",
	}
	for _, d := range discounts {
		code := d.Code
		if code == "" {
			code = "-"
		}
		view.AddRow(d.ID, d.Name, code, formatOff(d), formatDuration(d), formatRedemptions(d), output.Date(d.CreatedAt))
	}
	return view
}

func discountDetail(d *polar.Discount) *output.DetailView {
	var view output.DetailView
	view.Add("ID", d.ID)
	view.Add("Name", d.Name)
	view.Add("Code", d.Code)
	view.Add("Off", formatOff(*d))
	view.Add("Duration", formatDuration(*d))
	view.Add("Redeemed", formatRedemptions(*d))
	if d.StartsAt != nil {
		view.Add("Starts", output.Time(*d.StartsAt))
	}
	if d.EndsAt != nil {
		view.Add("Ends", output.Time(*d.EndsAt))
	}
	view.Add("Created", output.Time(d.CreatedAt))
	return &view
}

// formatOff renders a percentage discount as "15%" and a fixed one as
// "5.00 USD".
func formatOff(d polar.Discount) string {
	switch {
	case d.BasisPoints != nil:
		return strconv.FormatFloat(float64(*d.BasisPoints)/100, 'f', -1, 64) + "%"
	case d.Amount != nil:
		return output.Amount(*d.Amount, d.Currency)
	default:
		return "-"
	}
}

// formatDuration renders "once", "forever" or "3 months".
func formatDuration(d polar.Discount) string {
	if d.Duration == "repeating" && d.DurationInMonths != nil {
		return output.Plural(*d.DurationInMonths, "month")
	}
	return d.Duration
}

func formatRedemptions(d polar.Discount) string {
	if d.MaxRedemptions == nil {
		return output.Count(d.RedemptionsCount)
	}
	return output.Count(d.RedemptionsCount) + "/" + output.Count(*d.MaxRedemptions)
}
