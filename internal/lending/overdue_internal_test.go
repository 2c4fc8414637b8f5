package lending

import (
	"library/pkg/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCalendarDaysBetween(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		loc   *time.Location
		want  int
	}{
		{
			name:  "same instant",
			start: time.Date(2026, time.January, 1, 10, 0, 0, 0, time.UTC),
			end:   time.Date(2026, time.January, 1, 10, 0, 0, 0, time.UTC),
			loc:   time.UTC,
			want:  0,
		},
		{
			name:  "same date",
			start: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2026, time.January, 1, 23, 59, 59, 0, time.UTC),
			loc:   time.UTC,
			want:  0,
		},
		{
			name:  "across midnight",
			start: time.Date(2026, time.January, 1, 23, 59, 0, 0, time.UTC),
			end:   time.Date(2026, time.January, 2, 0, 1, 0, 0, time.UTC),
			loc:   time.UTC,
			want:  1,
		},
		{
			name:  "across month and leap day",
			start: time.Date(2028, time.February, 28, 12, 0, 0, 0, time.UTC),
			end:   time.Date(2028, time.March, 1, 8, 0, 0, 0, time.UTC),
			loc:   time.UTC,
			want:  2,
		},
		{
			name:  "across daylight saving change",
			start: time.Date(2026, time.March, 28, 12, 0, 0, 0, berlin),
			end:   time.Date(2026, time.March, 30, 0, 30, 0, 0, berlin),
			loc:   berlin,
			want:  2,
		},
		{
			name:  "dates are taken in the given location",
			start: time.Date(2026, time.January, 1, 22, 30, 0, 0, time.UTC), // 23:30 in Berlin
			end:   time.Date(2026, time.January, 1, 23, 30, 0, 0, time.UTC), // 00:30 next day in Berlin
			loc:   berlin,
			want:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, calendarDaysBetween(tt.start, tt.end, tt.loc))
		})
	}
}

func TestOverdueBorrowRecords(t *testing.T) {
	now := time.Date(2026, time.June, 1, 9, 0, 0, 0, time.UTC)
	l := &lending{options: Options{
		Policy:   Policy{MaxItemCountInOrder: 1, MaxBorrowedItemCount: 1, MaxDaysBorrowed: 30},
		Location: time.UTC,
	}}

	a := domain.Item{ID: 1, Title: "a"}
	b := domain.Item{ID: 2, Title: "b"}
	c := domain.Item{ID: 3, Title: "c"}
	records := []domain.BorrowRecord{
		{Item: a, Start: now.AddDate(0, 0, -31)},
		{Item: b, Start: now.AddDate(0, 0, -30)},
		{Item: c, Start: now.AddDate(0, 0, -45)},
	}

	require.Equal(t, []domain.OverdueBorrowRecord{
		{Item: a, OverdueDays: 31},
		{Item: c, OverdueDays: 45},
	}, l.overdueBorrowRecords(records, now))
	require.Empty(t, l.overdueBorrowRecords(records[1:2], now))
}
