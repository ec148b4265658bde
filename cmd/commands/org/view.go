package org

import (
	"nathanbeddoewebdev/polar/internal/output"
	"nathanbeddoewebdev/polar/internal/polar"
)

func orgTable(orgs []polar.Organization) *output.TableView {
	view := &output.TableView{
		Headers: []string{"ID", "Name", "Slug", "Created"},
		Empty:   "No organizations found.",
	}
	for _, o := range orgs {
		view.AddRow(o.ID, o.Name, o.Slug, output.Date(o.CreatedAt))
	}
	return view
}

func orgDetail(o *polar.Organization) *output.DetailView {
	var view output.DetailView
	view.Add("ID", o.ID)
	view.Add("Name", o.Name)
	view.Add("Slug", o.Slug)
	view.Add("Email", o.Email)
	view.Add("Website", o.Website)
	view.Add("Created", output.Time(o.CreatedAt))
	return &view
}
