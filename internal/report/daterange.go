// Package report builds the aggregated parcel report for a date filter and
// renders it to the table view, a PDF, a spreadsheet, or an HTML email body.
package report

import "time"

// Filter tokens accepted on report endpoints. Anything else means "all".
const (
	FilterToday = "today"
	FilterWeek  = "week"
	FilterMonth = "month"
	FilterYear  = "year"
)

// DateRange is the resolved window for a filter token. Exact matches a
// single calendar date; otherwise Since is an inclusive lower bound with
// "now" as the implicit upper bound. All matches every entry.
type DateRange struct {
	All   bool
	Exact bool
	Since time.Time
}

// ResolveRange maps a filter token to a concrete range anchored at now.
// It must be called per request: "today" and "week" drift with the clock.
//
//	today -> entries dated exactly now's calendar date
//	week  -> rolling 7 days (not calendar-week aligned)
//	month -> same day-of-month one calendar month back
//	year  -> same month/day one calendar year back
//	other -> unbounded
func ResolveRange(token string, now time.Time) DateRange {
	switch token {
	case FilterToday:
		return DateRange{Exact: true, Since: truncateToDay(now)}
	case FilterWeek:
		return DateRange{Since: truncateToDay(now.AddDate(0, 0, -7))}
	case FilterMonth:
		return DateRange{Since: truncateToDay(now.AddDate(0, -1, 0))}
	case FilterYear:
		return DateRange{Since: truncateToDay(now.AddDate(-1, 0, 0))}
	}
	return DateRange{All: true}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
