// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package daytime

import "fmt"

// DayOfWeek is a day of the week using ISO-8601 ordinals, where the week
// starts with Monday=1 and ends with Sunday=7.
//
// Note that this differs from time.Weekday, which starts the week with
// Sunday=0.  Use FromTime to convert from the standard library.
type DayOfWeek int

const (
	Monday DayOfWeek = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayNames = [...]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// DayOfWeekOf returns the DayOfWeek with the given ISO-8601 ordinal.  It
// returns ErrInvalidInput if ordinal is outside 1-7.
func DayOfWeekOf(ordinal int64) (DayOfWeek, error) {
	if ordinal < 1 || ordinal > 7 {
		return 0, fmt.Errorf("%w: day-of-week ordinal %d outside 1-7", ErrInvalidInput, ordinal)
	}
	return DayOfWeek(ordinal), nil
}

// IsValid reports whether d is one of the seven defined days.  The zero
// value is not a valid day.
func (d DayOfWeek) IsValid() bool {
	return Monday <= d && d <= Sunday
}

// Value returns the ISO-8601 ordinal, from 1 (Monday) to 7 (Sunday).
func (d DayOfWeek) Value() int {
	return int(d)
}

// Plus returns the day that is the given number of days after this one,
// wrapping around the week.  The offset may be negative and may span any
// number of weeks.
func (d DayOfWeek) Plus(days int64) DayOfWeek {
	shifted := (int64(d-1) + days%7 + 7) % 7
	return DayOfWeek(shifted + 1)
}

// Compare returns -1, 0 or 1 as d is before, equal to, or after other in
// the Monday-first week order.
func (d DayOfWeek) Compare(other DayOfWeek) int {
	switch {
	case d < other:
		return -1
	case d > other:
		return 1
	default:
		return 0
	}
}

func (d DayOfWeek) String() string {
	if !d.IsValid() {
		return fmt.Sprintf("%%!DayOfWeek(%d)", int(d))
	}
	return dayNames[d-1]
}
