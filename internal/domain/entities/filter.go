package entities

import "time"

type DateRange string

const (
	DateRangeToday     DateRange = "today"
	DateRangeThisWeek  DateRange = "this_week"
	DateRangeThisMonth DateRange = "this_month"
	DateRangeCustom    DateRange = "custom"
	// DateRangeAll disables the date filter.
	DateRangeAll DateRange = "all"
)

type StatusFilter string

const (
	StatusFilterAll     StatusFilter = "all"
	StatusFilterPaid    StatusFilter = "paid"
	StatusFilterCredit  StatusFilter = "credit"
	StatusFilterPending StatusFilter = "pending"
)

type SortBy string

const (
	SortByDate         SortBy = "date"
	SortByValue        SortBy = "value"
	SortByCustomerName SortBy = "customerName"
)

type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

// FilterSpec selects and orders the orders shown in a view.
// It lives only for the duration of a viewing session.
//
// A custom DateRange needs both StartDate and EndDate; with either bound
// missing the date filter does nothing.
type FilterSpec struct {
	DateRange    DateRange
	StartDate    *time.Time
	EndDate      *time.Time
	Status       StatusFilter
	CustomerName string
	SortBy       SortBy
	SortOrder    SortOrder
}

// DefaultFilterSpec is the dashboard's initial filter: today's orders, newest first.
func DefaultFilterSpec() FilterSpec {
	return FilterSpec{
		DateRange: DateRangeToday,
		Status:    StatusFilterAll,
		SortBy:    SortByDate,
		SortOrder: SortOrderDesc,
	}
}

func (d DateRange) IsValid() bool {
	switch d {
	case DateRangeToday, DateRangeThisWeek, DateRangeThisMonth, DateRangeCustom, DateRangeAll:
		return true
	}
	return false
}

func (s StatusFilter) IsValid() bool {
	switch s {
	case StatusFilterAll, StatusFilterPaid, StatusFilterCredit, StatusFilterPending:
		return true
	}
	return false
}

func (s SortBy) IsValid() bool {
	switch s {
	case SortByDate, SortByValue, SortByCustomerName:
		return true
	}
	return false
}

func (s SortOrder) IsValid() bool {
	return s == SortOrderAsc || s == SortOrderDesc
}
