// Package yearsheet lays a year's worth of daily values out on a
// contribution-calendar grid: 7 rows (weekdays) by as many week columns as
// the year needs. Weeks run Sunday through Saturday, so row 0 is Sunday.
//
// The package is pure: no I/O, no randomness. Input validation and placement
// are deterministic given the values and the year.
package yearsheet

import (
	"errors"
	"fmt"
	"time"
)

// DaysPerWeek is the number of rows in a grid.
const DaysPerWeek = 7

// ErrInputLength reports a value sequence that cannot be a year of data.
var ErrInputLength = errors.New("input must contain 365 or 366 values")

// ErrYearMismatch reports a value count that disagrees with the year's
// day count (366 values for a non-leap year, or 365 for a leap year).
var ErrYearMismatch = errors.New("value count does not match days in year")

// Cell is one grid position. Day is the 1-based day-of-year; Day 0 marks a
// padding cell that rounds out a partial leading or trailing week.
type Cell struct {
	Day   int
	Value float64
}

// Defined reports whether the cell holds a day of the year.
func (c Cell) Defined() bool {
	return c.Day > 0
}

// Grid is an immutable calendar layout of one year's values.
// Cells is indexed [row][col] with exactly DaysPerWeek rows and Weeks
// columns per row.
type Grid struct {
	Year  int
	Weeks int
	Cells [][]Cell
}

// IsLeapYear reports whether year has 366 days.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns 365 or 366.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// Validate checks that count values can represent the given year. It returns
// ErrInputLength when the count is not a possible year length at all, and
// ErrYearMismatch when the count and the year disagree about leap day.
func Validate(year, count int) error {
	if count != 365 && count != 366 {
		return fmt.Errorf("%w: got %d", ErrInputLength, count)
	}
	if count != DaysInYear(year) {
		return fmt.Errorf("%w: %d values for year %d (%d days)",
			ErrYearMismatch, count, year, DaysInYear(year))
	}
	return nil
}

// firstWeekday returns the row of January 1st: 0 for Sunday through 6 for
// Saturday.
func firstWeekday(year int) int {
	return int(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// Layout places values onto a calendar grid for year. values[0] is January
// 1st and lands at (row = weekday of Jan 1, col 0); later days fill each
// column top to bottom before moving to the next week. Cells before day 1
// and after the last day stay as padding.
func Layout(values []float64, year int) (*Grid, error) {
	if err := Validate(year, len(values)); err != nil {
		return nil, err
	}

	offset := firstWeekday(year)
	weeks := (offset + len(values) + DaysPerWeek - 1) / DaysPerWeek

	cells := make([][]Cell, DaysPerWeek)
	for row := range cells {
		cells[row] = make([]Cell, weeks)
	}
	for i, v := range values {
		pos := offset + i
		cells[pos%DaysPerWeek][pos/DaysPerWeek] = Cell{Day: i + 1, Value: v}
	}

	return &Grid{Year: year, Weeks: weeks, Cells: cells}, nil
}

// WeeklyAggregate sums the defined cells of each week column, in column
// order. A column with no defined cells contributes 0.
func (g *Grid) WeeklyAggregate() []float64 {
	sums := make([]float64, g.Weeks)
	for _, row := range g.Cells {
		for col, c := range row {
			if c.Defined() {
				sums[col] += c.Value
			}
		}
	}
	return sums
}

// DateOf returns the calendar date of a 1-based day-of-year index.
func (g *Grid) DateOf(day int) time.Time {
	return time.Date(g.Year, time.January, day, 0, 0, 0, 0, time.UTC)
}

// ValueRange returns the minimum and maximum of the defined cell values.
// Both are 0 for a grid with no defined cells.
func (g *Grid) ValueRange() (min, max float64) {
	first := true
	for _, row := range g.Cells {
		for _, c := range row {
			if !c.Defined() {
				continue
			}
			if first {
				min, max = c.Value, c.Value
				first = false
				continue
			}
			if c.Value < min {
				min = c.Value
			}
			if c.Value > max {
				max = c.Value
			}
		}
	}
	return min, max
}
