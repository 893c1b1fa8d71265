package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/de-tools/flood-atlas/pkg/adapters"
	"github.com/de-tools/flood-atlas/pkg/models/domain"
	"github.com/de-tools/flood-atlas/pkg/models/store"
	"github.com/de-tools/flood-atlas/pkg/store/csvsource"
	"github.com/de-tools/flood-atlas/pkg/store/project"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Mode int

const (
	// ModeReplace swaps the store contents for the newly loaded records
	ModeReplace Mode = iota
	// ModeAppend adds the newly loaded records to what is already stored
	ModeAppend
)

type LoadResult struct {
	BatchID      uuid.UUID
	Path         string
	TotalRows    int
	AcceptedRows int
	SkippedRows  int // funding year outside the window
	ErrorCount   int
	StoreSize    int
}

type Loader interface {
	Load(ctx context.Context, path string, mode Mode) (*LoadResult, error)
	LoadReader(ctx context.Context, r io.Reader, mode Mode) (*LoadResult, error)
}

type DefaultLoader struct {
	store    project.Store
	validate *validator.Validate
}

func NewLoader(store project.Store) *DefaultLoader {
	return &DefaultLoader{
		store:    store,
		validate: validator.New(),
	}
}

func (l *DefaultLoader) Load(ctx context.Context, path string, mode Mode) (*LoadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	res, err := l.LoadReader(ctx, f, mode)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	res.Path = path
	return res, nil
}

// LoadReader validates every row of r and commits the accepted records to
// the store only once the whole stream was read.
func (l *DefaultLoader) LoadReader(ctx context.Context, r io.Reader, mode Mode) (*LoadResult, error) {
	res := &LoadResult{BatchID: uuid.New()}
	logger := zerolog.Ctx(ctx).With().Str("batch_id", res.BatchID.String()).Logger()

	src, err := csvsource.NewReader(r)
	if err != nil {
		return nil, err
	}

	var records []domain.ProjectRecord
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		res.TotalRows++
		if err != nil {
			res.ErrorCount++
			logger.Warn().Err(err).Int("row", res.TotalRows).Msg("csv parse error")
			continue
		}

		record, skip, err := l.parseRow(row)
		switch {
		case err != nil:
			res.ErrorCount++
			logger.Warn().Err(err).Int("row", row.Line).Msg("row rejected")
		case skip:
			res.SkippedRows++
			logger.Debug().Int("row", row.Line).Str("funding_year", row.FundingYear).Msg("funding year outside window")
		default:
			records = append(records, record)
		}
	}
	res.AcceptedRows = len(records)

	switch mode {
	case ModeAppend:
		err = l.store.Append(ctx, records)
	default:
		err = l.store.Replace(ctx, records)
	}
	if err != nil {
		return nil, fmt.Errorf("store records: %w", err)
	}

	res.StoreSize, err = l.store.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count records: %w", err)
	}

	logger.Info().
		Int("total_rows", res.TotalRows).
		Int("accepted_rows", res.AcceptedRows).
		Int("skipped_rows", res.SkippedRows).
		Int("errors", res.ErrorCount).
		Int("store_size", res.StoreSize).
		Msg("dataset loaded")

	return res, nil
}

// parseRow returns skip=true for a well-formed year outside the funding window.
func (l *DefaultLoader) parseRow(row store.ProjectRow) (domain.ProjectRecord, bool, error) {
	year, err := strconv.Atoi(row.FundingYear)
	if err != nil {
		return domain.ProjectRecord{}, false, fmt.Errorf("invalid %s %q", store.ColumnFundingYear, row.FundingYear)
	}
	if !domain.InFundingWindow(year) {
		return domain.ProjectRecord{}, true, nil
	}

	if err := l.validate.Struct(row); err != nil {
		return domain.ProjectRecord{}, false, fmt.Errorf("validation: %w", err)
	}
	if row.HasContractor {
		if err := l.validate.Var(row.Contractor, "required"); err != nil {
			return domain.ProjectRecord{}, false, fmt.Errorf("empty %s", store.ColumnContractor)
		}
	}

	record, err := adapters.MapStoreProjectRowToDomainRecord(row, year)
	if err != nil {
		return domain.ProjectRecord{}, false, err
	}
	return record, false, nil
}
