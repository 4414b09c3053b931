// Package report renders calculator evaluations and gradation analyses as PDF.
package report

import (
	"fmt"
	"io"
	"strings"

	"Civilcalc/internal/calc/registry"
	"Civilcalc/internal/calc/sieve"
	"Civilcalc/internal/numeric"

	"github.com/phpdave11/gofpdf"
)

// Meta is the header block printed on every report.
type Meta struct {
	Project string `json:"project"`
	Author  string `json:"author"`
	Title   string `json:"title"`
	Notes   string `json:"notes"`
	Date    string `json:"-"`
}

type document struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

func newDocument(meta Meta, fallbackTitle string) *document {
	pdf := gofpdf.New("P", "mm", "A4", "")
	d := &document{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	if meta.Title == "" {
		meta.Title = fallbackTitle
	}
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, d.tr(meta.Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, d.tr(fmt.Sprintf("Project: %s", meta.Project)))
	pdf.Ln(6)
	pdf.Cell(0, 6, d.tr(fmt.Sprintf("Author: %s", meta.Author)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", meta.Date))
	pdf.Ln(10)
	return d
}

func (d *document) heading(text string) {
	d.pdf.SetFont("Helvetica", "B", 12)
	d.pdf.Cell(0, 8, d.tr(text))
	d.pdf.Ln(9)
}

func (d *document) table(widths []float64, header []string, rows [][]string) {
	d.pdf.SetFont("Helvetica", "B", 10)
	for i, h := range header {
		d.pdf.CellFormat(widths[i], 7, d.tr(h), "1", 0, "C", false, 0, "")
	}
	d.pdf.Ln(-1)
	d.pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		for i, c := range row {
			align := "R"
			if i == 0 {
				align = "L"
			}
			d.pdf.CellFormat(widths[i], 7, d.tr(c), "1", 0, align, false, 0, "")
		}
		d.pdf.Ln(-1)
	}
	d.pdf.Ln(4)
}

func (d *document) notes(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	d.pdf.SetFont("Helvetica", "", 11)
	d.pdf.MultiCell(0, 6, d.tr(text), "", "L", false)
	d.pdf.Ln(2)
}

func (d *document) write(w io.Writer) error {
	return d.pdf.Output(w)
}

func withUnit(label, unit string) string {
	if unit == "" {
		return label
	}
	return fmt.Sprintf("%s (%s)", label, unit)
}

// Calculator writes the inputs and outputs of one evaluation.
func Calculator(w io.Writer, c registry.Calculator, fields numeric.Fields, out registry.Output, meta Meta) error {
	d := newDocument(meta, c.Name)

	d.heading("Inputs")
	inputs := make([][]string, 0, len(c.Fields))
	for _, f := range c.Fields {
		v := strings.TrimSpace(fields[f.Key])
		if v == "" {
			v = numeric.Placeholder
		}
		inputs = append(inputs, []string{withUnit(f.Label, f.Unit), v})
	}
	d.table([]float64{110, 70}, []string{"Field", "Value"}, inputs)

	d.heading("Results")
	results := make([][]string, 0, len(out.Results))
	for _, q := range out.Results {
		v := q.Value.String()
		if q.Text != "" {
			v = q.Text
		}
		results = append(results, []string{withUnit(q.Label, q.Unit), v})
	}
	d.table([]float64{110, 70}, []string{"Quantity", "Value"}, results)

	d.notes(out.Notes)
	d.notes(meta.Notes)
	return d.write(w)
}

// Gradation writes one sieve analysis with its band and status per sieve.
func Gradation(w io.Writer, a sieve.Analysis, meta Meta) error {
	d := newDocument(meta, a.Table.Name)

	d.heading(fmt.Sprintf("%s, total weight %s g", a.Table.Standard, a.TotalWeight))
	rows := make([][]string, 0, len(a.Rows))
	for _, r := range a.Rows {
		status := strings.ToUpper(string(r.Status))
		if status == "" {
			status = numeric.Placeholder
		}
		rows = append(rows, []string{
			r.Size,
			r.Retained.String(),
			r.PercentRetained.String(),
			r.CumulativePercentRetained.String(),
			r.PercentPassing.String(),
			fmt.Sprintf("%g-%g", r.PassMin, r.PassMax),
			status,
		})
	}
	d.table(
		[]float64{24, 24, 24, 30, 26, 30, 22},
		[]string{"Sieve", "Ret. (g)", "Ret. %", "Cum. Ret. %", "Passing %", "Limits %", "Status"},
		rows,
	)

	s := a.Summary
	if s.Computed {
		verdict := "does not comply"
		if s.Compliant {
			verdict = "complies"
		}
		d.notes(fmt.Sprintf("%d of %d sieves within limits; the sample %s with %s.", s.Passed, s.Sieves, verdict, a.Table.Name))
	}
	d.notes(meta.Notes)
	return d.write(w)
}
