package cli

import (
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/employee-validation/internal/dto"
)

const unavailable = "n/a"

var (
	good = lipgloss.Color("#22C55E")
	bad  = lipgloss.Color("#EF4444")
)

type renderer struct {
	goodStyle lipgloss.Style
	badStyle  lipgloss.Style
	color     bool
}

func newRenderer(w io.Writer, color bool) *renderer {
	r := lipgloss.NewRenderer(w)
	return &renderer{
		goodStyle: r.NewStyle().Foreground(good).Bold(true),
		badStyle:  r.NewStyle().Foreground(bad).Bold(true),
		color:     color,
	}
}

func (r *renderer) paint(style lipgloss.Style, s string) string {
	if !r.color {
		return s
	}
	return style.Render(s)
}

// Field renders "Good: <value>" or "Bad".
func (r *renderer) Field(f dto.FieldResult) string {
	if !f.Accepted {
		return r.paint(r.badStyle, "Bad")
	}
	return r.paint(r.goodStyle, "Good:") + " " + f.Value
}

// Report renders every field line, a blank line, then the derived values.
func (r *renderer) Report(report *dto.Report) string {
	var b strings.Builder
	for _, f := range report.Fields {
		b.WriteString(r.Field(f))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	b.WriteString("Salary: " + amountOrNA(report.Derived.Salary) + "\n")
	b.WriteString("Discount: " + amountOrNA(report.Derived.Discount) + "\n")
	b.WriteString("Shipping costs: " + strconv.Itoa(report.Derived.ShippingCosts) + "\n")
	return b.String()
}

func amountOrNA(v *float64) string {
	if v == nil {
		return unavailable
	}
	return dto.FormatAmount(*v)
}
