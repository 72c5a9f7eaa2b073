package leadfilter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestNormalizePeriod(t *testing.T) {
	now := time.Date(2024, time.March, 15, 13, 45, 12, 0, time.Local)

	tests := []struct {
		name        string
		period      Period
		wantStart   time.Time
		wantFinish  time.Time
		granularity Granularity
	}{
		{
			name:        "обе границы заданы",
			period:      Period{From: date(2024, time.January, 1), To: date(2024, time.February, 1)},
			wantStart:   date(2024, time.January, 1),
			wantFinish:  date(2024, time.February, 1),
			granularity: GranularityDaily,
		},
		{
			name:        "границы совпадают - почасовая гранулярность",
			period:      Period{From: date(2024, time.January, 1), To: date(2024, time.January, 1)},
			wantStart:   date(2024, time.January, 1),
			wantFinish:  date(2024, time.January, 1),
			granularity: GranularityHourly,
		},
		{
			name:        "задана только начальная граница",
			period:      Period{From: date(2024, time.January, 1)},
			wantStart:   date(2024, time.January, 1),
			wantFinish:  date(2024, time.January, 31),
			granularity: GranularityDaily,
		},
		{
			name:        "задана только конечная граница",
			period:      Period{To: date(2024, time.March, 1)},
			wantStart:   date(2024, time.January, 31),
			wantFinish:  date(2024, time.March, 1),
			granularity: GranularityDaily,
		},
		{
			name:        "период не задан - последние 30 дней",
			period:      Period{},
			wantStart:   date(2024, time.February, 14),
			wantFinish:  date(2024, time.March, 15),
			granularity: GranularityDaily,
		},
		{
			name:        "время внутри границ отбрасывается до начала суток",
			period:      Period{From: time.Date(2024, time.January, 1, 18, 30, 0, 0, time.Local), To: time.Date(2024, time.January, 2, 9, 0, 0, 0, time.Local)},
			wantStart:   date(2024, time.January, 1),
			wantFinish:  date(2024, time.January, 2),
			granularity: GranularityDaily,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePeriod(tt.period, now)
			assert.Equal(t, tt.wantStart, got.Start)
			assert.Equal(t, tt.wantFinish, got.Finish)
			assert.Equal(t, tt.granularity, got.Granularity)
		})
	}
}

func TestNormalizePeriod_DefaultWindow(t *testing.T) {
	now := time.Date(2024, time.July, 10, 23, 59, 59, 0, time.Local)

	got := NormalizePeriod(Period{}, now)

	assert.Equal(t, date(2024, time.July, 10), got.Finish, "конец окна - начало текущих суток")
	assert.Equal(t, got.Finish.AddDate(0, 0, -30), got.Start, "окно ровно 30 дней")
}

func TestNormalizePeriod_Pure(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.Local)
	p := Period{From: date(2024, time.January, 5)}

	first := NormalizePeriod(p, now)
	second := NormalizePeriod(p, now)

	assert.Equal(t, first, second)
}
