package report

import (
	"context"
	"errors"
	"fmt"

	"github.com/de-tools/flood-atlas/pkg/models/domain"
	"github.com/de-tools/flood-atlas/pkg/store/project"
	"github.com/rs/zerolog"
)

var ErrNoData = errors.New("no project records loaded")

type Controller interface {
	Generate(ctx context.Context) (*domain.Reports, error)
}

type DefaultController struct {
	store           project.Store
	contractorLimit int
}

func NewController(store project.Store, contractorLimit int) *DefaultController {
	return &DefaultController{
		store:           store,
		contractorLimit: contractorLimit,
	}
}

// Generate builds both reports from a single snapshot of the store.
func (ctrl *DefaultController) Generate(ctx context.Context) (*domain.Reports, error) {
	logger := zerolog.Ctx(ctx)

	records, err := ctrl.store.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshot records: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoData
	}

	reports := &domain.Reports{
		Regional:        BuildRegionalSummary(records),
		Contractors:     BuildContractorRanking(records, ctrl.contractorLimit),
		RecordCount:     len(records),
		ContractorLimit: ctrl.contractorLimit,
	}

	logger.Info().
		Int("records", reports.RecordCount).
		Int("regional_rows", len(reports.Regional)).
		Int("contractor_rows", len(reports.Contractors)).
		Msg("reports generated")

	return reports, nil
}
