package store

// Source column names
const (
	ColumnFundingYear          = "FundingYear"
	ColumnRegion               = "Region"
	ColumnMainIsland           = "MainIsland"
	ColumnContractor           = "Contractor"
	ColumnApprovedBudget       = "ApprovedBudgetForContract"
	ColumnContractCost         = "ContractCost"
	ColumnStartDate            = "StartDate"
	ColumnActualCompletionDate = "ActualCompletionDate"
)

var RequiredColumns = []string{
	ColumnFundingYear,
	ColumnRegion,
	ColumnMainIsland,
	ColumnApprovedBudget,
	ColumnContractCost,
	ColumnStartDate,
	ColumnActualCompletionDate,
}

// ProjectRow is one CSV data row as read from the source file.
type ProjectRow struct {
	Line                 int // 1-based data row number
	FundingYear          string
	Region               string `validate:"required"`
	MainIsland           string `validate:"required"`
	Contractor           string
	HasContractor        bool
	ApprovedBudget       string `validate:"required"`
	ContractCost         string `validate:"required"`
	StartDate            string `validate:"required,datetime=2006-01-02"`
	ActualCompletionDate string `validate:"required,datetime=2006-01-02"`
}
