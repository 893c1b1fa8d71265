package csvsource

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/de-tools/flood-atlas/pkg/models/store"
)

var ErrMissingColumns = errors.New("missing required columns")

// Reader iterates over the data rows of a project CSV stream.
// Row-level CSV errors are returned from Next and do not stop iteration.
type Reader struct {
	csv     *csv.Reader
	index   map[string]int
	line    int
	hasCont bool
}

func NewReader(r io.Reader) (*Reader, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read header: empty input")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		index[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, col := range store.RequiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	_, hasCont := index[store.ColumnContractor]
	return &Reader{csv: cr, index: index, hasCont: hasCont}, nil
}

// HasContractor reports whether the source carries the optional Contractor column.
func (r *Reader) HasContractor() bool {
	return r.hasCont
}

// Next returns the next data row. It returns io.EOF after the last row.
// A *csv.ParseError means only the current row is unreadable.
func (r *Reader) Next() (store.ProjectRow, error) {
	record, err := r.csv.Read()
	if errors.Is(err, io.EOF) {
		return store.ProjectRow{}, io.EOF
	}
	r.line++
	if err != nil {
		return store.ProjectRow{Line: r.line}, err
	}

	return store.ProjectRow{
		Line:                 r.line,
		FundingYear:          r.field(record, store.ColumnFundingYear),
		Region:               r.field(record, store.ColumnRegion),
		MainIsland:           r.field(record, store.ColumnMainIsland),
		Contractor:           r.field(record, store.ColumnContractor),
		HasContractor:        r.hasCont,
		ApprovedBudget:       r.field(record, store.ColumnApprovedBudget),
		ContractCost:         r.field(record, store.ColumnContractCost),
		StartDate:            r.field(record, store.ColumnStartDate),
		ActualCompletionDate: r.field(record, store.ColumnActualCompletionDate),
	}, nil
}

func (r *Reader) field(record []string, column string) string {
	i, ok := r.index[column]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
