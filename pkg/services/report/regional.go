package report

import (
	"cmp"
	"slices"

	"github.com/de-tools/flood-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
)

type regionKey struct {
	region     string
	mainIsland string
}

// BuildRegionalSummary groups records by (Region, MainIsland), scores each
// group and rescales the scores across all groups to 0..100.
// Rows are ordered by score, highest first, ties by region and island name.
func BuildRegionalSummary(records []domain.ProjectRecord) []domain.RegionalSummaryRow {
	groups := make(map[regionKey][]domain.ProjectRecord)
	for _, r := range records {
		key := regionKey{region: r.Region, mainIsland: r.MainIsland}
		groups[key] = append(groups[key], r)
	}

	rows := make([]domain.RegionalSummaryRow, 0, len(groups))
	for key, items := range groups {
		rows = append(rows, summarizeRegion(key, items))
	}

	normalizeEfficiency(rows)

	slices.SortFunc(rows, func(a, b domain.RegionalSummaryRow) int {
		if c := cmp.Compare(b.EfficiencyScore, a.EfficiencyScore); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Region, b.Region); c != 0 {
			return c
		}
		return cmp.Compare(a.MainIsland, b.MainIsland)
	})

	return rows
}

// summarizeRegion leaves the raw, unnormalized efficiency in EfficiencyScore.
func summarizeRegion(key regionKey, items []domain.ProjectRecord) domain.RegionalSummaryRow {
	budgets := make([]decimal.Decimal, len(items))
	savings := make([]decimal.Decimal, len(items))
	for i, p := range items {
		budgets[i] = p.ApprovedBudget
		savings[i] = p.Savings()
	}

	d := delays(items)
	row := domain.RegionalSummaryRow{
		Region:         key.region,
		MainIsland:     key.mainIsland,
		TotalBudget:    sum(budgets),
		MedianSavings:  median(savings),
		AvgDelayDays:   mean(d),
		DelayOver30Pct: percentOver(d, DelayThresholdDays),
	}
	if row.AvgDelayDays > 0 {
		row.EfficiencyScore = row.MedianSavings.InexactFloat64() / row.AvgDelayDays * 100
	}
	return row
}

// normalizeEfficiency must run once every row carries its raw score.
func normalizeEfficiency(rows []domain.RegionalSummaryRow) {
	if len(rows) == 0 {
		return
	}

	lo, hi := rows[0].EfficiencyScore, rows[0].EfficiencyScore
	for _, r := range rows[1:] {
		lo = min(lo, r.EfficiencyScore)
		hi = max(hi, r.EfficiencyScore)
	}

	for i := range rows {
		if hi > lo {
			rows[i].EfficiencyScore = clamp((rows[i].EfficiencyScore-lo)/(hi-lo)*100, 0, 100)
		} else {
			rows[i].EfficiencyScore = 100
		}
	}
}
