package export

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/flood-atlas/pkg/models/domain"
	"github.com/de-tools/flood-atlas/pkg/services/report"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type column struct {
	Title string
	Width int
	Left  bool
}

type TableConfig struct {
	Regional    []column
	Contractors []column
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		Regional: []column{
			{Title: "Region", Width: 38, Left: true},
			{Title: "MainIsland", Width: 13, Left: true},
			{Title: "TotalBudget", Width: 18},
			{Title: "MedianSavings", Width: 15},
			{Title: "AvgDelayDays", Width: 12},
			{Title: "Delay>30Pct", Width: 11},
			{Title: "EfficiencyScore", Width: 15},
		},
		Contractors: []column{
			{Title: "Rank", Width: 4},
			{Title: "Contractor", Width: 40, Left: true},
			{Title: "TotalCost", Width: 18},
			{Title: "NumProjects", Width: 11},
			{Title: "AvgDelay", Width: 8},
			{Title: "TotalSavings", Width: 18},
			{Title: "ReliabilityIndex", Width: 16},
			{Title: "RiskFlag", Width: 9, Left: true},
		},
	}
}

// Reporter prints report tables to the console
type Reporter struct {
	writer  io.Writer
	config  TableConfig
	printer *message.Printer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer:  writer,
		config:  DefaultTableConfig(),
		printer: message.NewPrinter(language.English),
	}
}

const reportTemplate = `
Report 1: Regional Flood Mitigation Efficiency Summary
(Aggregated by Region & MainIsland; {{.MinYear}}-{{.MaxYear}} Projects)

{{header "regional"}}
{{separator "regional"}}
{{range .Reports.Regional}}{{regionalRow .}}
{{end}}
Full table exported to {{.RegionalFile}}

Report 2: Top Contractors Performance Ranking
({{limitLabel .Reports.ContractorLimit}}; at least {{.MinProjects}} projects; {{.MinYear}}-{{.MaxYear}} Projects)

{{header "contractors"}}
{{separator "contractors"}}
{{range $i, $row := .Reports.Contractors}}{{contractorRow $i $row}}
{{else}}No contractor has enough projects to be ranked.
{{end}}
Full table exported to {{.ContractorFile}}
`

type reportView struct {
	Reports        *domain.Reports
	MinYear        int
	MaxYear        int
	MinProjects    int
	RegionalFile   string
	ContractorFile string
}

func (c *Reporter) Handle(reports *domain.Reports) error {
	funcMap := template.FuncMap{
		"header": func(table string) string {
			cols := c.columns(table)
			cells := make([]string, len(cols))
			for i, col := range cols {
				cells[i] = col.Title
			}
			return formatRow(cols, cells)
		},
		"separator": func(table string) string {
			cols := c.columns(table)
			parts := make([]string, len(cols))
			for i, col := range cols {
				parts[i] = strings.Repeat("-", col.Width+2)
			}
			return "+" + strings.Join(parts, "+") + "+"
		},
		"regionalRow": func(r domain.RegionalSummaryRow) string {
			return formatRow(c.config.Regional, []string{
				r.Region,
				r.MainIsland,
				c.money(r.TotalBudget),
				c.money(r.MedianSavings),
				fmt.Sprintf("%.2f", r.AvgDelayDays),
				fmt.Sprintf("%.1f", r.DelayOver30Pct),
				fmt.Sprintf("%.2f", r.EfficiencyScore),
			})
		},
		"contractorRow": func(i int, r domain.ContractorRankingRow) string {
			return formatRow(c.config.Contractors, []string{
				fmt.Sprintf("%d", i+1),
				r.Contractor,
				c.money(r.TotalCost),
				fmt.Sprintf("%d", r.NumProjects),
				fmt.Sprintf("%.2f", r.AvgDelayDays),
				c.money(r.TotalSavings),
				fmt.Sprintf("%.2f", r.ReliabilityIndex),
				string(r.RiskFlag),
			})
		},
		"limitLabel": func(limit int) string {
			if limit > 0 {
				return fmt.Sprintf("Top %d by TotalCost", limit)
			}
			return "All contractors by TotalCost"
		},
	}

	t, err := template.New("report").Funcs(funcMap).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, reportView{
		Reports:        reports,
		MinYear:        domain.MinFundingYear,
		MaxYear:        domain.MaxFundingYear,
		MinProjects:    report.MinContractorProjects,
		RegionalFile:   RegionalFileName,
		ContractorFile: ContractorFileName,
	})
}

func (c *Reporter) columns(table string) []column {
	if table == "contractors" {
		return c.config.Contractors
	}
	return c.config.Regional
}

var maxGroupedAmount = decimal.NewFromInt(math.MaxInt64)

// money formats an amount with thousands separators and two decimals.
// The whole part is grouped as an integer so no cents are lost; amounts
// beyond int64 are printed ungrouped.
func (c *Reporter) money(d decimal.Decimal) string {
	fixed := d.StringFixed(2)
	abs := d.Round(2).Abs()
	if abs.GreaterThan(maxGroupedAmount) {
		return fixed
	}

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
	}
	whole := abs.Truncate(0)
	cents := fixed[len(fixed)-3:]
	return sign + c.printer.Sprintf("%d", whole.IntPart()) + cents
}

func formatRow(cols []column, cells []string) string {
	var b strings.Builder
	b.WriteString("|")
	for i, col := range cols {
		if col.Left {
			fmt.Fprintf(&b, " %-*s |", col.Width, cells[i])
		} else {
			fmt.Fprintf(&b, " %*s |", col.Width, cells[i])
		}
	}
	return b.String()
}
