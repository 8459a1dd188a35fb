package model

import (
	"fmt"
	"time"
)

// DateLayout is the stored calendar date format.
const DateLayout = "2006-01-02"

// Date is a calendar date in YYYY-MM-DD form. Valid dates order correctly
// under plain string comparison.
type Date string

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	return Date(t.Format(DateLayout))
}

// ParseDate validates s as a YYYY-MM-DD date.
func ParseDate(s string) (Date, error) {
	if _, err := time.Parse(DateLayout, s); err != nil {
		return "", fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return Date(s), nil
}

// DateRange is an inclusive range of dates. An empty bound is open.
type DateRange struct {
	From Date `json:"from,omitempty"`
	To   Date `json:"to,omitempty"`
}

// ParseDateRange validates both bounds (empty allowed) and their order.
func ParseDateRange(from, to string) (DateRange, error) {
	var r DateRange
	var err error
	if from != "" {
		if r.From, err = ParseDate(from); err != nil {
			return DateRange{}, err
		}
	}
	if to != "" {
		if r.To, err = ParseDate(to); err != nil {
			return DateRange{}, err
		}
	}
	if r.From != "" && r.To != "" && r.From > r.To {
		return DateRange{}, fmt.Errorf("start date %s is after end date %s", r.From, r.To)
	}
	return r, nil
}

// Contains reports whether d falls inside the range.
func (r DateRange) Contains(d Date) bool {
	if r.From != "" && d < r.From {
		return false
	}
	if r.To != "" && d > r.To {
		return false
	}
	return true
}

// NotAfterEnd reports whether d is on or before the range end.
func (r DateRange) NotAfterEnd(d Date) bool {
	return r.To == "" || d <= r.To
}

// String formats the range the way report headings print it.
func (r DateRange) String() string {
	from, to := string(r.From), string(r.To)
	if from == "" {
		from = "the beginning"
	}
	if to == "" {
		to = "today"
	}
	return "From: " + from + " to " + to
}
