package payroll

import "time"

// Period is a calendar month a payslip refers to.
type Period struct {
	Month int
	Year  int
}

func (p Period) Validate() error {
	if p.Month < 1 || p.Month > 12 {
		return ErrInvalidPeriod
	}
	if p.Year < 2000 || p.Year > 2100 {
		return ErrInvalidPeriod
	}
	return nil
}

type PeriodState int

const (
	PeriodPast PeriodState = iota
	PeriodCurrent
	PeriodFuture
)

// StateAt classifies the period against the wall clock. There is no stored
// state; this is recomputed on every call.
func (p Period) StateAt(now time.Time) PeriodState {
	cur := Period{Month: int(now.Month()), Year: now.Year()}
	switch {
	case p.Year > cur.Year || (p.Year == cur.Year && p.Month > cur.Month):
		return PeriodFuture
	case p.Year == cur.Year && p.Month == cur.Month:
		return PeriodCurrent
	default:
		return PeriodPast
	}
}

// PaymentDate is the first day of the period month, the date stored on the
// payslip row.
func (p Period) PaymentDate() time.Time {
	return time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
}
