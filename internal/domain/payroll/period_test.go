package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPeriod_Validate(t *testing.T) {
	assert.NoError(t, Period{Month: 1, Year: 2025}.Validate())
	assert.NoError(t, Period{Month: 12, Year: 2025}.Validate())

	assert.ErrorIs(t, Period{Month: 0, Year: 2025}.Validate(), ErrInvalidPeriod)
	assert.ErrorIs(t, Period{Month: 13, Year: 2025}.Validate(), ErrInvalidPeriod)
	assert.ErrorIs(t, Period{Month: 6, Year: 1999}.Validate(), ErrInvalidPeriod)
	assert.ErrorIs(t, Period{Month: 6, Year: 2101}.Validate(), ErrInvalidPeriod)
}

func TestPeriod_StateAt(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, PeriodCurrent, Period{Month: 6, Year: 2025}.StateAt(now))

	assert.Equal(t, PeriodPast, Period{Month: 5, Year: 2025}.StateAt(now))
	assert.Equal(t, PeriodPast, Period{Month: 12, Year: 2024}.StateAt(now))

	assert.Equal(t, PeriodFuture, Period{Month: 7, Year: 2025}.StateAt(now))
	assert.Equal(t, PeriodFuture, Period{Month: 1, Year: 2026}.StateAt(now))
}

func TestPeriod_PaymentDate(t *testing.T) {
	got := Period{Month: 6, Year: 2025}.PaymentDate()
	assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), got)
}
