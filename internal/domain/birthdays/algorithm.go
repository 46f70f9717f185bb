// Package birthdays computes which contacts have birthdays coming up and on
// which weekday they should be congratulated.
package birthdays

import (
	"slices"
	"time"

	"github.com/phrazzld/addressbook/internal/domain"
)

const day = 24 * time.Hour

// dateOf reduces t to its calendar date, expressed as UTC midnight.
//
// The calendar date is read in t's own location, so "today" is whatever the
// caller's clock considers today. Working on UTC midnights afterwards keeps
// day differences exact across DST transitions.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// occurrenceIn projects a birthday onto the given year.
//
// A 29 February birthday in a year without that date is observed on
// 28 February or 1 March depending on the policy. time.Date would silently
// normalize 29.02 to 01.03, so the common-year case is handled explicitly.
func occurrenceIn(b domain.Birthday, year int, policy LeapDayPolicy) time.Time {
	month, dd := b.Month(), b.Day()
	if month == time.February && dd == 29 && !isLeap(year) {
		if policy == LeapDayMar1 {
			return time.Date(year, time.March, 1, 0, 0, 0, 0, time.UTC)
		}
		return time.Date(year, time.February, 28, 0, 0, 0, 0, time.UTC)
	}
	return time.Date(year, month, dd, 0, 0, 0, 0, time.UTC)
}

// nextOccurrence returns the birthday's occurrence in today's year, or in the
// following year if that date is already past. The result is never before today.
func nextOccurrence(b domain.Birthday, today time.Time, policy LeapDayPolicy) time.Time {
	occ := occurrenceIn(b, today.Year(), policy)
	if occ.Before(today) {
		occ = occurrenceIn(b, today.Year()+1, policy)
	}
	return occ
}

// congratulationDate moves a Saturday or Sunday forward to the following Monday.
func congratulationDate(occ time.Time) time.Time {
	switch occ.Weekday() {
	case time.Saturday:
		return occ.AddDate(0, 0, 2)
	case time.Sunday:
		return occ.AddDate(0, 0, 1)
	default:
		return occ
	}
}

// daysBetween returns the whole number of days from a to b. Both must be UTC midnights.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a) / day)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// upcoming scans records for birthdays whose next occurrence is within
// days of today, inclusive on both ends, and returns them ordered by
// congratulation date then by name compared case-insensitively.
//
// The window is measured on the occurrence, not on the shifted date: a
// birthday on the last day of the window that falls on a weekend is reported
// with a congratulation date beyond the window.
func upcoming(records []*domain.Record, today time.Time, days int, params *Params) []Congratulation {
	today = dateOf(today)
	out := make([]Congratulation, 0)

	for _, r := range records {
		b, ok := r.Birthday()
		if !ok {
			continue
		}

		occ := nextOccurrence(b, today, params.LeapDay)
		delta := daysBetween(today, occ)
		if delta < 0 || delta > days {
			continue
		}

		out = append(out, Congratulation{
			Name:     r.Name().String(),
			Date:     congratulationDate(occ),
			Birthday: b,
		})
	}

	slices.SortFunc(out, func(a, b Congratulation) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return domain.CompareNames(a.Name, b.Name)
	})
	return out
}
