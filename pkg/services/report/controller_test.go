package report

import (
	"context"
	"errors"
	"testing"

	"github.com/de-tools/flood-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Replace(ctx context.Context, records []domain.ProjectRecord) error {
	return m.Called(ctx, records).Error(0)
}

func (m *mockStore) Append(ctx context.Context, records []domain.ProjectRecord) error {
	return m.Called(ctx, records).Error(0)
}

func (m *mockStore) Snapshot(ctx context.Context) ([]domain.ProjectRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProjectRecord), args.Error(1)
}

func (m *mockStore) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *mockStore) Clear(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func TestController_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		store := new(mockStore)
		var records []domain.ProjectRecord
		records = append(records, contractorProjects("Acme", 5, 100, 80, 10)...)
		records = append(records, newProject("R2", "Visayas", "Solo", 100, 50, 3))
		store.On("Snapshot", ctx).Return(records, nil).Once()

		reports, err := NewController(store, 15).Generate(ctx)
		require.NoError(t, err)
		assert.Equal(t, 6, reports.RecordCount)
		assert.Equal(t, 15, reports.ContractorLimit)
		assert.Len(t, reports.Regional, 2)
		require.Len(t, reports.Contractors, 1)
		assert.Equal(t, "Acme", reports.Contractors[0].Contractor)
		store.AssertExpectations(t)
	})

	t.Run("error - no data", func(t *testing.T) {
		store := new(mockStore)
		store.On("Snapshot", ctx).Return([]domain.ProjectRecord{}, nil).Once()

		_, err := NewController(store, 15).Generate(ctx)
		assert.ErrorIs(t, err, ErrNoData)
		store.AssertExpectations(t)
	})

	t.Run("error - snapshot failure", func(t *testing.T) {
		store := new(mockStore)
		store.On("Snapshot", ctx).Return(nil, errors.New("boom")).Once()

		_, err := NewController(store, 15).Generate(ctx)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNoData)
		assert.Contains(t, err.Error(), "boom")
	})
}
