package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestProjectRecord_DelayDays(t *testing.T) {
	tests := []struct {
		name       string
		start, end time.Time
		want       int
	}{
		{"same day", date(2022, 1, 1), date(2022, 1, 1), 0},
		{"ten days", date(2022, 1, 1), date(2022, 1, 11), 10},
		{"across leap day", date(2024, 2, 28), date(2024, 3, 1), 2},
		{"completion before start", date(2022, 1, 11), date(2022, 1, 1), 0},
		{"span of a thousand years", date(1000, 1, 1), date(2022, 1, 1), 373278},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ProjectRecord{StartDate: tt.start, ActualCompletionDate: tt.end}
			assert.Equal(t, tt.want, p.DelayDays())
		})
	}
}

func TestProjectRecord_Savings(t *testing.T) {
	p := ProjectRecord{
		ApprovedBudget: decimal.RequireFromString("100.25"),
		ContractCost:   decimal.NewFromInt(120),
	}
	assert.True(t, decimal.RequireFromString("-19.75").Equal(p.Savings()))
}

func TestInFundingWindow(t *testing.T) {
	assert.False(t, InFundingWindow(2020))
	assert.True(t, InFundingWindow(2021))
	assert.True(t, InFundingWindow(2023))
	assert.False(t, InFundingWindow(2024))
}
