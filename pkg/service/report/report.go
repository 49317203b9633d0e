// Package report renders the offboarding case list as a PDF document: a
// status summary followed by one table row per case.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/offboarding/pkg/domain/model"
	"github.com/secmon-lab/offboarding/pkg/domain/types"
)

const (
	// ContentType of rendered reports
	ContentType = "application/pdf"

	DefaultTitle = "Offboarding Cases"
)

type column struct {
	title string
	width float64
	align string
}

var columns = []column{
	{"Name", 40, "L"},
	{"Role", 44, "L"},
	{"Exit Date", 24, "C"},
	{"Status", 24, "C"},
	{"Progress", 18, "R"},
	{"Tasks", 30, "L"},
}

// statusFill is the background of the status cell
var statusFill = map[types.CaseStatus][3]int{
	types.CaseStatusCompleted:  {209, 250, 229},
	types.CaseStatusInProgress: {219, 234, 254},
	types.CaseStatusOverdue:    {254, 226, 226},
	types.CaseStatusUpcoming:   {254, 243, 199},
}

type Renderer struct {
	title string
	now   func() time.Time
}

type Option func(*Renderer)

func WithTitle(title string) Option {
	return func(r *Renderer) {
		r.title = title
	}
}

// WithClock replaces time.Now for the generated-at stamp
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) {
		r.now = now
	}
}

func New(opts ...Option) *Renderer {
	r := &Renderer{
		title: DefaultTitle,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render writes the case report for cases to w
func (r *Renderer) Render(w io.Writer, cases []*model.EmployeeCase) error {
	generatedAt := r.now().UTC()

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetTitle(r.title, false)
	pdf.SetCreationDate(generatedAt)
	pdf.AliasNbPages("{nb}")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 5, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "R", false, 0, "")
	})
	pdf.AddPage()

	drawHeader(pdf, r.title, generatedAt)
	drawSummary(pdf, cases)
	drawTable(pdf, cases)

	if err := pdf.Output(w); err != nil {
		return goerr.Wrap(err, "failed to render case report", goerr.V("cases", len(cases)))
	}
	return nil
}

func drawHeader(pdf *fpdf.Fpdf, title string, generatedAt time.Time) {
	pdf.SetFillColor(30, 41, 59)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, strings.ToUpper(title), "", 1, "L", true, 0, "")
	pdf.SetTextColor(0, 0, 0)

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, "Generated "+generatedAt.Format(time.RFC3339), "", 1, "L", false, 0, "")
	pdf.Ln(2)
}

func drawSummary(pdf *fpdf.Fpdf, cases []*model.EmployeeCase) {
	counts := model.CountsFor(cases)
	pct := model.PercentagesFor(cases)

	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(0, 6, "STATUS OVERVIEW", "1", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, status := range types.AllCaseStatuses() {
		line := fmt.Sprintf("%s: %d", status.Label(), counts[status])
		if p, ok := pct[status]; ok {
			line += fmt.Sprintf(" (%d%%)", p)
		}
		pdf.CellFormat(0, 5.5, line, "LR", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 5.5, fmt.Sprintf("Total: %d", len(cases)), "LRB", 1, "L", false, 0, "")
	pdf.Ln(4)
}

func drawTable(pdf *fpdf.Fpdf, cases []*model.EmployeeCase) {
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Helvetica", "B", 9)
	for _, col := range columns {
		pdf.CellFormat(col.width, 7, col.title, "1", 0, col.align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8.5)
	if len(cases) == 0 {
		pdf.CellFormat(tableWidth(), 7, "No cases", "1", 1, "C", false, 0, "")
		return
	}

	for _, c := range cases {
		cells := []string{
			c.Name,
			c.Role,
			c.ExitDate,
			c.Status.Label(),
			fmt.Sprintf("%d%%", c.Progress),
			strings.Join(c.Tasks, ", "),
		}
		for i, col := range columns {
			fill := false
			if i == 3 {
				if rgb, ok := statusFill[c.Status]; ok {
					pdf.SetFillColor(rgb[0], rgb[1], rgb[2])
					fill = true
				}
			}
			pdf.CellFormat(col.width, 6.5, fitText(pdf, cells[i], col.width-2), "1", 0, col.align, fill, 0, "")
		}
		pdf.Ln(-1)
	}
}

func tableWidth() float64 {
	var w float64
	for _, col := range columns {
		w += col.width
	}
	return w
}

// fitText truncates s with an ellipsis so it fits width
func fitText(pdf *fpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := string(runes) + "..."
		if pdf.GetStringWidth(candidate) <= width {
			return candidate
		}
	}
	return ""
}
