package report

import (
	"cmp"
	"slices"

	"github.com/de-tools/flood-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
)

// BuildContractorRanking ranks contractors with at least MinContractorProjects
// projects by total contract cost. A non-positive limit keeps every row.
func BuildContractorRanking(records []domain.ProjectRecord, limit int) []domain.ContractorRankingRow {
	groups := make(map[string][]domain.ProjectRecord)
	for _, r := range records {
		if r.Contractor == "" {
			continue
		}
		groups[r.Contractor] = append(groups[r.Contractor], r)
	}

	rows := make([]domain.ContractorRankingRow, 0, len(groups))
	for name, items := range groups {
		if len(items) < MinContractorProjects {
			continue
		}
		rows = append(rows, summarizeContractor(name, items))
	}

	slices.SortFunc(rows, func(a, b domain.ContractorRankingRow) int {
		if c := b.TotalCost.Cmp(a.TotalCost); c != 0 {
			return c
		}
		return cmp.Compare(a.Contractor, b.Contractor)
	})

	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

func summarizeContractor(name string, items []domain.ProjectRecord) domain.ContractorRankingRow {
	costs := make([]decimal.Decimal, len(items))
	savings := make([]decimal.Decimal, len(items))
	for i, p := range items {
		costs[i] = p.ContractCost
		savings[i] = p.Savings()
	}

	row := domain.ContractorRankingRow{
		Contractor:   name,
		TotalCost:    sum(costs),
		NumProjects:  len(items),
		AvgDelayDays: mean(delays(items)),
		TotalSavings: sum(savings),
	}
	row.ReliabilityIndex = reliabilityIndex(row.AvgDelayDays, row.TotalSavings, row.TotalCost)
	row.RiskFlag = domain.RiskFlagLow
	if row.ReliabilityIndex < HighRiskThreshold {
		row.RiskFlag = domain.RiskFlagHigh
	}
	return row
}

func reliabilityIndex(avgDelay float64, totalSavings, totalCost decimal.Decimal) float64 {
	if totalCost.IsZero() {
		return 0
	}
	ratio := totalSavings.Div(totalCost).InexactFloat64()
	return clamp((1-avgDelay/ReliabilityHorizonDays)*ratio*100, 0, 100)
}
