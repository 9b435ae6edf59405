package accounting_test

import (
	"testing"
	"time"

	"github.com/SscSPs/finance_ledger/internal/utils/accounting"
	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestElapsedPeriods(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		now   time.Time
		total int
		want  int
	}{
		{"future start", day(2026, 11, 1), day(2026, 10, 16), 12, 0},
		{"same day", day(2026, 10, 16), day(2026, 10, 16).Add(15 * time.Hour), 12, 0},
		{"three months back same day", day(2026, 7, 16), day(2026, 10, 16), 12, 3},
		{"three months back earlier day", day(2026, 7, 10), day(2026, 10, 16), 12, 4},
		{"three months back later day", day(2026, 7, 20), day(2026, 10, 16), 12, 2},
		{"mid month start before day of month", day(2026, 1, 15), day(2026, 4, 10), 12, 2},
		{"month end start", day(2026, 1, 31), day(2026, 3, 1), 12, 1},
		{"less than one whole month", day(2026, 9, 20), day(2026, 10, 16), 12, 0},
		{"earlier day same month", day(2026, 10, 1), day(2026, 10, 16), 12, 1},
		{"across year boundary", day(2025, 11, 5), day(2026, 2, 5), 12, 3},
		{"capped at total", day(2024, 1, 1), day(2026, 10, 16), 6, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, accounting.ElapsedPeriods(tt.start, tt.now, tt.total))
		})
	}
}
