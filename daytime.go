// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// Package daytime provides an immutable point in a repeating seven-day
// week: a day-of-week combined with a time-of-day, such as Monday at
// 13:45, with no date and no time zone.
//
// Arithmetic wraps around the week, so adding a day to Sunday yields
// Monday, and distances are always measured forward around the cycle.
package daytime

import (
	"fmt"
	"math"
	"time"
)

// DayTime is a day-of-week with a time-of-day on the repeating weekly
// cycle.
//
// DayTime is an immutable comparable value: == and map keys follow
// structural equality on both parts.  Every operation that looks like a
// mutation returns a new value.  The zero value has an invalid day; build
// values with Of, From or FromTime.
type DayTime struct {
	day  DayOfWeek
	time LocalTime
}

// Of returns the DayTime with the given day-of-week and time-of-day.  It
// returns ErrInvalidInput if the day is not one of the seven defined days.
func Of(day DayOfWeek, timeOfDay LocalTime) (DayTime, error) {
	if !day.IsValid() {
		return DayTime{}, fmt.Errorf("%w: day-of-week %d", ErrInvalidInput, int(day))
	}
	return DayTime{day: day, time: timeOfDay}, nil
}

// From extracts a DayTime from an arbitrary temporal source by reading
// its day-of-week and nano-of-day fields.  Failures from the source are
// wrapped in ErrConversion along with the source's type.
func From(a Accessor) (DayTime, error) {
	if a == nil {
		return DayTime{}, fmt.Errorf("%w: nil accessor", ErrInvalidInput)
	}
	if dt, ok := a.(DayTime); ok {
		return dt, nil
	}

	ordinal, err := a.Get(FieldDayOfWeek)
	if err != nil {
		return DayTime{}, fmt.Errorf("%w: unable to obtain day-time from %T: %w", ErrConversion, a, err)
	}
	day, err := DayOfWeekOf(ordinal)
	if err != nil {
		return DayTime{}, fmt.Errorf("%w: unable to obtain day-time from %T: %w", ErrConversion, a, err)
	}

	nanoOfDay, err := a.Get(FieldNanoOfDay)
	if err != nil {
		return DayTime{}, fmt.Errorf("%w: unable to obtain day-time from %T: %w", ErrConversion, a, err)
	}
	timeOfDay, err := TimeOfNano(nanoOfDay)
	if err != nil {
		return DayTime{}, fmt.Errorf("%w: unable to obtain day-time from %T: %w", ErrConversion, a, err)
	}

	return DayTime{day: day, time: timeOfDay}, nil
}

// FromTime returns the DayTime of the given instant in its own location,
// mapping Go's Sunday-first weekday onto the ISO Monday-first ordinals.
func FromTime(t time.Time) DayTime {
	hour, minute, second := t.Clock()
	return DayTime{
		day: DayOfWeek((int(t.Weekday())+6)%7 + 1),
		time: LocalTime{
			nanos: int64(hour)*nanosPerHour +
				int64(minute)*nanosPerMinute +
				int64(second)*nanosPerSecond +
				int64(t.Nanosecond()),
		},
	}
}

// DayOfWeek returns the day-of-week part.
func (dt DayTime) DayOfWeek() DayOfWeek {
	return dt.day
}

// Time returns the time-of-day part.
func (dt DayTime) Time() LocalTime {
	return dt.time
}

// Hour returns the hour of the day, from 0 to 23.
func (dt DayTime) Hour() int {
	return dt.time.Hour()
}

// Minute returns the minute of the hour, from 0 to 59.
func (dt DayTime) Minute() int {
	return dt.time.Minute()
}

// Second returns the second of the minute, from 0 to 59.
func (dt DayTime) Second() int {
	return dt.time.Second()
}

// Nano returns the nanosecond of the second, from 0 to 999,999,999.
func (dt DayTime) Nano() int {
	return dt.time.Nano()
}

// IsSupported reports whether the field can be read from this value.  The
// built-in day-of-week and time-based fields are supported; any other
// field is asked about itself.
func (dt DayTime) IsSupported(f Field) bool {
	if cf, ok := f.(ChronoField); ok {
		return cf == FieldDayOfWeek || cf.IsTimeBased()
	}
	return f != nil && f.SupportedBy(dt)
}

// IsSupportedUnit reports whether Plus, Minus and Until accept the unit.
// Custom units are asked about themselves.
func (dt DayTime) IsSupportedUnit(u Unit) bool {
	if cu, ok := u.(ChronoUnit); ok {
		return cu.IsSupported()
	}
	return u != nil && u.SupportedBy(dt)
}

// Get returns the value of the field: the ISO ordinal for the day-of-week
// field, the time-of-day's value for time-based fields, and whatever a
// custom field extracts from this value otherwise.
func (dt DayTime) Get(f Field) (int64, error) {
	cf, ok := f.(ChronoField)
	if !ok {
		if f == nil {
			return 0, fmt.Errorf("%w: nil field", ErrInvalidInput)
		}
		return f.From(dt)
	}

	if cf == FieldDayOfWeek {
		return int64(dt.day), nil
	}
	return dt.time.Get(cf)
}

// With returns a copy of this value with the given field set to value.
// Setting the day-of-week field replaces the day, setting a time-based
// field replaces the time-of-day, and a custom field adjusts the value
// however it chooses.
func (dt DayTime) With(f Field, value int64) (DayTime, error) {
	cf, ok := f.(ChronoField)
	if !ok {
		if f == nil {
			return DayTime{}, fmt.Errorf("%w: nil field", ErrInvalidInput)
		}
		return f.AdjustInto(dt, value)
	}

	if cf == FieldDayOfWeek {
		day, err := DayOfWeekOf(value)
		if err != nil {
			return DayTime{}, err
		}
		return DayTime{day: day, time: dt.time}, nil
	}

	timeOfDay, err := dt.time.With(cf, value)
	if err != nil {
		return DayTime{}, err
	}
	return DayTime{day: dt.day, time: timeOfDay}, nil
}

// Plus returns a copy of this value with the given amount of the unit
// added, wrapping around day and week boundaries.  The amount may be
// negative.
//
// Units larger than Days fail with ErrUnsupported; they cannot be applied
// to a value with no date without silent truncation.
func (dt DayTime) Plus(amount int64, unit Unit) (DayTime, error) {
	cu, ok := unit.(ChronoUnit)
	if !ok {
		if unit == nil {
			return DayTime{}, fmt.Errorf("%w: nil unit", ErrInvalidInput)
		}
		return unit.AddTo(dt, amount)
	}
	if !cu.IsSupported() {
		return DayTime{}, fmt.Errorf("%w: unit %s", ErrUnsupported, cu)
	}

	// Split the amount into whole days plus a sub-day remainder in
	// nanoseconds.  The remainder is under a day, so rescaling it cannot
	// overflow.
	conv := unitConv[cu]
	daysToAdd := amount / conv.perDay
	nanosToAdd := (amount % conv.perDay) * conv.nanos

	adjusted := dt.time.PlusNanos(nanosToAdd)

	// The time wrapping past midnight carries a day.
	var carry int64
	switch {
	case amount > 0 && adjusted.Before(dt.time):
		carry = 1
	case amount < 0 && adjusted.After(dt.time):
		carry = -1
	}

	days, err := addExact(daysToAdd, carry)
	if err != nil {
		return DayTime{}, err
	}

	return DayTime{day: dt.day.Plus(days), time: adjusted}, nil
}

// Minus returns a copy of this value with the given amount of the unit
// subtracted.  It is equivalent to Plus with the amount negated, except
// that the most negative int64 is decomposed to avoid overflowing on
// negation.
func (dt DayTime) Minus(amount int64, unit Unit) (DayTime, error) {
	if amount == math.MinInt64 {
		shifted, err := dt.Plus(math.MaxInt64, unit)
		if err != nil {
			return DayTime{}, err
		}
		return shifted.Plus(1, unit)
	}
	return dt.Plus(-amount, unit)
}

// Until returns the number of whole units needed to advance from this
// value forward around the weekly cycle until end is reached.  The result
// is never negative and is zero when end equals this value.
func (dt DayTime) Until(end Accessor, unit Unit) (int64, error) {
	endDT, err := From(end)
	if err != nil {
		return 0, err
	}

	cu, ok := unit.(ChronoUnit)
	if !ok {
		if unit == nil {
			return 0, fmt.Errorf("%w: nil unit", ErrInvalidInput)
		}
		return unit.Between(dt, endDT)
	}
	if !cu.IsSupported() {
		return 0, fmt.Errorf("%w: unit %s", ErrUnsupported, cu)
	}

	raw := int64(endDT.day-dt.day)*nanosPerDay +
		endDT.time.NanoOfDay() - dt.time.NanoOfDay()
	forward := ((raw % nanosPerWeek) + nanosPerWeek) % nanosPerWeek

	return forward / unitConv[cu].nanos, nil
}

// Next returns the first instant at or after the given reference whose
// weekday and wall clock, in the reference's location, match this value.
// The result is rebuilt on the reference's calendar rather than shifted by
// an absolute duration, so the wall clock holds across DST transitions.
func (dt DayTime) Next(after time.Time) time.Time {
	days := (int(dt.day) - int(FromTime(after).day) + 7) % 7

	at := time.Date(after.Year(), after.Month(), after.Day()+days,
		dt.Hour(), dt.Minute(), dt.Second(), dt.Nano(), after.Location())
	if at.Before(after) {
		at = time.Date(after.Year(), after.Month(), after.Day()+days+7,
			dt.Hour(), dt.Minute(), dt.Second(), dt.Nano(), after.Location())
	}
	return at
}

// Compare returns -1, 0 or 1 as dt is before, equal to, or after other,
// ordering by day-of-week first and time-of-day second.
func (dt DayTime) Compare(other DayTime) int {
	if c := dt.day.Compare(other.day); c != 0 {
		return c
	}
	return dt.time.Compare(other.time)
}

// Equal reports whether both parts are equal.  It is equivalent to ==.
func (dt DayTime) Equal(other DayTime) bool {
	return dt == other
}

func (dt DayTime) String() string {
	return dt.day.String() + "@" + dt.time.String()
}

func addExact(a, b int64) (int64, error) {
	sum := a + b
	if (a > 0 && b > 0 && sum < 0) || (a < 0 && b < 0 && sum >= 0) {
		return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, a, b)
	}
	return sum, nil
}
