package lending

import (
	"library/pkg/domain"
	"time"
)

// calendarDaysBetween counts the date boundaries between start and end as
// seen in loc. Time of day does not matter: 23:59 yesterday to 00:01 today is
// one day, while any two instants of the same date are zero days apart.
func calendarDaysBetween(start, end time.Time, loc *time.Location) int {
	sy, sm, sd := start.In(loc).Date()
	ey, em, ed := end.In(loc).Date()

	// UTC midnights avoid DST days that are 23 or 25 hours long.
	from := time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC)
	to := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)

	return int(to.Sub(from).Hours() / 24) //nolint: mnd
}

// overdueBorrowRecords returns the records held for more than MaxDaysBorrowed
// days at now, keeping the input order.
func (l *lending) overdueBorrowRecords(records []domain.BorrowRecord, now time.Time) []domain.OverdueBorrowRecord {
	var overdue []domain.OverdueBorrowRecord
	for _, record := range records {
		days := calendarDaysBetween(record.Start, now, l.options.Location)
		if days > l.options.Policy.MaxDaysBorrowed {
			overdue = append(overdue, domain.OverdueBorrowRecord{
				Item:        record.Item,
				OverdueDays: days,
			})
		}
	}

	return overdue
}
