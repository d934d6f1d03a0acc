// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package daytime

import "fmt"

// Nanosecond sizes of the week's subdivisions.
const (
	NanosPerDay  int64 = 24 * 60 * 60 * 1_000_000_000
	NanosPerWeek       = 7 * NanosPerDay
)

const (
	nanosPerMicro   = int64(1_000)
	nanosPerMilli   = nanosPerMicro * 1_000
	nanosPerSecond  = nanosPerMilli * 1_000
	nanosPerMinute  = nanosPerSecond * 60
	nanosPerHour    = nanosPerMinute * 60
	nanosPerHalfDay = nanosPerHour * 12
	nanosPerDay     = NanosPerDay
	nanosPerWeek    = NanosPerWeek

	microsPerDay  = nanosPerDay / nanosPerMicro
	millisPerDay  = nanosPerDay / nanosPerMilli
	secondsPerDay = nanosPerDay / nanosPerSecond
	minutesPerDay = nanosPerDay / nanosPerMinute
	hoursPerDay   = int64(24)
)

// Unit is a unit of time that amounts can be expressed in.
//
// The built-in units are the ChronoUnit constants and are handled directly
// by DayTime.  Any other implementation supplies its own addition and
// measurement behavior, and DayTime delegates to it.
type Unit interface {
	// SupportedBy reports whether the unit can be applied to a.
	SupportedBy(a Accessor) bool

	// AddTo returns a copy of dt moved by the given amount of this unit.
	AddTo(dt DayTime, amount int64) (DayTime, error)

	// Between returns the number of whole units needed to advance from
	// start forward in time until end is reached.
	Between(start, end DayTime) (int64, error)

	String() string
}

// ChronoUnit is the closed set of built-in units.  Nanos through Days are
// supported by DayTime; Weeks, Months and Years are recognized but always
// fail with ErrUnsupported, since a value with no date cannot carry them
// without silent truncation.
type ChronoUnit int

const (
	Nanos ChronoUnit = iota + 1
	Micros
	Millis
	Seconds
	Minutes
	Hours
	HalfDays
	Days
	Weeks
	Months
	Years
)

var unitNames = [...]string{
	Nanos:    "Nanos",
	Micros:   "Micros",
	Millis:   "Millis",
	Seconds:  "Seconds",
	Minutes:  "Minutes",
	Hours:    "Hours",
	HalfDays: "HalfDays",
	Days:     "Days",
	Weeks:    "Weeks",
	Months:   "Months",
	Years:    "Years",
}

// unitConv maps each supported unit to its units-per-day count and its
// size in nanoseconds.  A single table serves both the (days, nanos)
// split in Plus and the divisor in Until.
var unitConv = [...]struct{ perDay, nanos int64 }{
	Nanos:    {nanosPerDay, 1},
	Micros:   {microsPerDay, nanosPerMicro},
	Millis:   {millisPerDay, nanosPerMilli},
	Seconds:  {secondsPerDay, nanosPerSecond},
	Minutes:  {minutesPerDay, nanosPerMinute},
	Hours:    {hoursPerDay, nanosPerHour},
	HalfDays: {2, nanosPerHalfDay},
	Days:     {1, nanosPerDay},
}

// IsSupported reports whether DayTime arithmetic accepts this unit.
func (u ChronoUnit) IsSupported() bool {
	return Nanos <= u && u <= Days
}

// SupportedBy implements Unit.
func (u ChronoUnit) SupportedBy(Accessor) bool {
	return u.IsSupported()
}

// AddTo implements Unit.
func (u ChronoUnit) AddTo(dt DayTime, amount int64) (DayTime, error) {
	return dt.Plus(amount, u)
}

// Between implements Unit.
func (u ChronoUnit) Between(start, end DayTime) (int64, error) {
	return start.Until(end, u)
}

func (u ChronoUnit) String() string {
	if u < Nanos || u > Years {
		return fmt.Sprintf("%%!ChronoUnit(%d)", int(u))
	}
	return unitNames[u]
}
