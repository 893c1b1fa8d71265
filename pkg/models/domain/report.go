package domain

import "github.com/shopspring/decimal"

type RiskFlag string

const (
	RiskFlagHigh RiskFlag = "High Risk"
	RiskFlagLow  RiskFlag = "Low Risk"
)

// RegionalSummaryRow aggregates all projects of one (Region, MainIsland) pair
type RegionalSummaryRow struct {
	Region          string
	MainIsland      string
	TotalBudget     decimal.Decimal
	MedianSavings   decimal.Decimal
	AvgDelayDays    float64
	DelayOver30Pct  float64
	EfficiencyScore float64 // 0..100 after normalization
}

// ContractorRankingRow aggregates all projects of one contractor.
// The rank is the row position in the report, it is not stored.
type ContractorRankingRow struct {
	Contractor       string
	TotalCost        decimal.Decimal
	NumProjects      int
	AvgDelayDays     float64
	TotalSavings     decimal.Decimal
	ReliabilityIndex float64 // 0..100
	RiskFlag         RiskFlag
}

// Reports is a complete report set built from a single store snapshot
type Reports struct {
	Regional        []RegionalSummaryRow
	Contractors     []ContractorRankingRow
	RecordCount     int
	ContractorLimit int
}
