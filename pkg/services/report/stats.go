package report

import (
	"slices"

	"github.com/de-tools/flood-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
)

const (
	DelayThresholdDays     = 30
	ReliabilityHorizonDays = 90
	MinContractorProjects  = 5
	HighRiskThreshold      = 50.0
)

var two = decimal.NewFromInt(2)

func median(values []decimal.Decimal) decimal.Decimal {
	if len(values) == 0 {
		return decimal.Zero
	}
	sorted := slices.Clone(values)
	slices.SortFunc(sorted, func(a, b decimal.Decimal) int { return a.Cmp(b) })

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return sorted[mid-1].Add(sorted[mid]).Div(two)
}

func sum(values []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

func delays(records []domain.ProjectRecord) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.DelayDays()
	}
	return out
}

func mean(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	total := 0
	for _, v := range values {
		total += v
	}
	return float64(total) / float64(len(values))
}

// percentOver is the share of values strictly above threshold, in percent.
func percentOver(values []int, threshold int) float64 {
	if len(values) == 0 {
		return 0
	}
	n := 0
	for _, v := range values {
		if v > threshold {
			n++
		}
	}
	return float64(n) * 100 / float64(len(values))
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}
