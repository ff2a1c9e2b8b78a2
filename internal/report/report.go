// Package report itemizes a household's income and renders it as text or
// JSON.
package report

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	json "github.com/goccy/go-json"

	"household/internal/core"
	"household/internal/household"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Line is one family member's contribution.
type Line struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Job     string `json:"job,omitempty"`
	Income  int    `json:"income"`
	Counted bool   `json:"counted"`
}

// Report lists members in family order. Total is in USD; Converted is the
// same total in Currency.
type Report struct {
	Members     []Line        `json:"members"`
	AnnualHours int           `json:"annual_hours"`
	Total       int           `json:"total"`
	Currency    core.Currency `json:"currency"`
	Converted   int64         `json:"converted"`
}

// Build itemizes h's family and converts the total into currency.
func Build(h *household.Household, currency core.Currency) Report {
	members := h.Family.Members()
	r := Report{
		Members:     make([]Line, 0, len(members)),
		AnnualHours: core.AnnualHours,
		Total:       h.Family.HouseholdIncome(),
	}

	for _, p := range members {
		if p == nil {
			continue
		}
		line := Line{
			ID:      h.ID(p),
			Name:    p.FullName(),
			Age:     p.Age,
			Income:  core.MemberIncome(p),
			Counted: p.IsAdult() && p.Job() != nil,
		}
		if p.Job() != nil {
			line.Job = p.Job().Description()
		}
		r.Members = append(r.Members, line)
	}

	converted := core.NewMoney(int64(r.Total), core.USD).Convert(currency)
	r.Currency = converted.Currency()
	r.Converted = converted.Amount()
	return r
}

// Render writes r to w in the given format.
func Render(w io.Writer, r Report, format string) error {
	switch format {
	case FormatText:
		return renderText(w, r)
	case FormatJSON:
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}
		_, err = w.Write(append(data, '\n'))
		return err
	}
	return fmt.Errorf("unsupported output format %q", format)
}

func renderText(w io.Writer, r Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tAGE\tJOB\tINCOME")
	for _, l := range r.Members {
		job := l.Job
		if job == "" {
			job = "-"
		}
		income := strconv.Itoa(l.Income)
		if !l.Counted {
			income += " (not counted)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", l.ID, l.Name, l.Age, job, income)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	total := core.NewMoney(int64(r.Total), core.USD)
	if _, err := fmt.Fprintf(w, "\nHousehold income (%d h/yr): %s\n", r.AnnualHours, total); err != nil {
		return err
	}
	if r.Currency != core.USD {
		_, err := fmt.Fprintf(w, "In %s: %s\n", r.Currency, core.NewMoney(r.Converted, r.Currency))
		return err
	}
	return nil
}
