package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	MinFundingYear = 2021
	MaxFundingYear = 2023

	secondsPerDay = 24 * 60 * 60
)

// ProjectRecord is a validated flood-mitigation project.
type ProjectRecord struct {
	Region               string
	MainIsland           string
	Contractor           string // empty when the source has no Contractor column
	ApprovedBudget       decimal.Decimal
	ContractCost         decimal.Decimal
	StartDate            time.Time
	ActualCompletionDate time.Time
	FundingYear          int
}

// Savings is the approved budget minus the actual contract cost.
func (p ProjectRecord) Savings() decimal.Decimal {
	return p.ApprovedBudget.Sub(p.ContractCost)
}

// DelayDays is the number of days between start and actual completion,
// never negative.
func (p ProjectRecord) DelayDays() int {
	days := int((p.ActualCompletionDate.Unix() - p.StartDate.Unix()) / secondsPerDay)
	if days < 0 {
		return 0
	}
	return days
}

func InFundingWindow(year int) bool {
	return year >= MinFundingYear && year <= MaxFundingYear
}
