package adapters

import (
	"fmt"
	"time"

	"github.com/de-tools/flood-atlas/pkg/models/domain"
	"github.com/de-tools/flood-atlas/pkg/models/store"
	"github.com/shopspring/decimal"
)

const DateLayout = "2006-01-02"

// MapStoreProjectRowToDomainRecord converts an already tag-validated row.
// The funding year is parsed by the caller, since an out-of-window year
// is a skip and not an error.
func MapStoreProjectRowToDomainRecord(row store.ProjectRow, fundingYear int) (domain.ProjectRecord, error) {
	approved, err := parseAmount(store.ColumnApprovedBudget, row.ApprovedBudget)
	if err != nil {
		return domain.ProjectRecord{}, err
	}
	cost, err := parseAmount(store.ColumnContractCost, row.ContractCost)
	if err != nil {
		return domain.ProjectRecord{}, err
	}

	start, err := time.Parse(DateLayout, row.StartDate)
	if err != nil {
		return domain.ProjectRecord{}, fmt.Errorf("invalid %s %q: %w", store.ColumnStartDate, row.StartDate, err)
	}
	completed, err := time.Parse(DateLayout, row.ActualCompletionDate)
	if err != nil {
		return domain.ProjectRecord{}, fmt.Errorf("invalid %s %q: %w", store.ColumnActualCompletionDate, row.ActualCompletionDate, err)
	}

	return domain.ProjectRecord{
		Region:               row.Region,
		MainIsland:           row.MainIsland,
		Contractor:           row.Contractor,
		ApprovedBudget:       approved,
		ContractCost:         cost,
		StartDate:            start,
		ActualCompletionDate: completed,
		FundingYear:          fundingYear,
	}, nil
}

func parseAmount(column, value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q: %w", column, value, err)
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("negative %s %q", column, value)
	}
	return amount, nil
}
