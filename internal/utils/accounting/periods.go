package accounting

import (
	"time"

	"github.com/SscSPs/finance_ledger/internal/core/domain"
)

// ElapsedPeriods counts the periods of a plan starting on start that are already behind now:
// the whole months completed since start, plus one when now's day-of-month is past start's,
// capped at total. A start that is not in the past yields zero.
func ElapsedPeriods(start, now time.Time, total int) int {
	s, n := domain.DateOf(start), domain.DateOf(now)
	if !s.Before(n) {
		return 0
	}
	months := (n.Year()-s.Year())*12 + int(n.Month()) - int(s.Month())
	switch {
	case n.Day() < s.Day():
		// the current month is not complete yet
		months--
	case n.Day() > s.Day():
		months++
	}
	if months < 0 {
		return 0
	}
	if months > total {
		return total
	}
	return months
}
