package holidays

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestByMonth(t *testing.T) {
	april := ByMonth(2026, time.April)

	names := make([]string, 0, len(april))
	for _, h := range april {
		names = append(names, h.Name)
	}
	assert.Equal(t, []string{"Good Friday", "Easter Saturday", "Easter Monday", "ANZAC Day", "Easter Sunday"}, names)
	assert.Empty(t, ByMonth(2026, time.July))
	assert.Empty(t, ByMonth(2025, time.January))
}

func TestDates_Distinct(t *testing.T) {
	dates := Dates()

	assert.Len(t, dates, 20)
	seen := make(map[time.Time]bool)
	for _, d := range dates {
		assert.False(t, seen[d], "duplicate %s", d)
		seen[d] = true
	}
	assert.True(t, seen[time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)])
}
