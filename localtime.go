// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package daytime

import "fmt"

// LocalTime is a wall-clock time of day with nanosecond resolution and no
// date or time zone, in the range [00:00:00.000000000, 24:00:00).
//
// The zero value is midnight.  LocalTime values are immutable and safe to
// share; use ==, Compare, Before or After to relate them.
type LocalTime struct {
	nanos int64 // nanosecond of day, always in [0, nanosPerDay)
}

// TimeOf returns the LocalTime with the given clock fields.  It returns
// ErrInvalidInput if any field is out of range.
func TimeOf(hour, minute, second, nano int) (LocalTime, error) {
	switch {
	case hour < 0 || hour > 23:
		return LocalTime{}, fmt.Errorf("%w: hour %d outside 0-23", ErrInvalidInput, hour)
	case minute < 0 || minute > 59:
		return LocalTime{}, fmt.Errorf("%w: minute %d outside 0-59", ErrInvalidInput, minute)
	case second < 0 || second > 59:
		return LocalTime{}, fmt.Errorf("%w: second %d outside 0-59", ErrInvalidInput, second)
	case nano < 0 || nano > 999_999_999:
		return LocalTime{}, fmt.Errorf("%w: nano %d outside 0-999999999", ErrInvalidInput, nano)
	}

	return LocalTime{
		nanos: int64(hour)*nanosPerHour +
			int64(minute)*nanosPerMinute +
			int64(second)*nanosPerSecond +
			int64(nano),
	}, nil
}

// TimeOfNano returns the LocalTime at the given nanosecond of the day.
// It returns ErrInvalidInput if nanoOfDay is outside [0, 24h).
func TimeOfNano(nanoOfDay int64) (LocalTime, error) {
	if nanoOfDay < 0 || nanoOfDay >= nanosPerDay {
		return LocalTime{}, fmt.Errorf("%w: nano-of-day %d outside the day", ErrInvalidInput, nanoOfDay)
	}
	return LocalTime{nanos: nanoOfDay}, nil
}

// Hour returns the hour of the day, from 0 to 23.
func (t LocalTime) Hour() int {
	return int(t.nanos / nanosPerHour)
}

// Minute returns the minute of the hour, from 0 to 59.
func (t LocalTime) Minute() int {
	return int(t.nanos/nanosPerMinute) % 60
}

// Second returns the second of the minute, from 0 to 59.
func (t LocalTime) Second() int {
	return int(t.nanos/nanosPerSecond) % 60
}

// Nano returns the nanosecond of the second, from 0 to 999,999,999.
func (t LocalTime) Nano() int {
	return int(t.nanos % nanosPerSecond)
}

// NanoOfDay returns the time as a nanosecond offset from midnight.
func (t LocalTime) NanoOfDay() int64 {
	return t.nanos
}

// PlusNanos returns the time the given number of nanoseconds later,
// wrapping silently at midnight.  The amount may be negative and may span
// any number of days.
func (t LocalTime) PlusNanos(nanos int64) LocalTime {
	shifted := (t.nanos + nanos%nanosPerDay + nanosPerDay) % nanosPerDay
	return LocalTime{nanos: shifted}
}

// IsSupported reports whether the field is one of the time-based built-in
// fields this type can read and write.
func (t LocalTime) IsSupported(f ChronoField) bool {
	return f.IsTimeBased()
}

// Get returns the value of a time-based field, or ErrUnsupported for any
// other field.
func (t LocalTime) Get(f ChronoField) (int64, error) {
	switch f {
	case FieldNanoOfSecond:
		return int64(t.Nano()), nil
	case FieldNanoOfDay:
		return t.nanos, nil
	case FieldMicroOfSecond:
		return int64(t.Nano()) / 1_000, nil
	case FieldMicroOfDay:
		return t.nanos / nanosPerMicro, nil
	case FieldMilliOfSecond:
		return int64(t.Nano()) / 1_000_000, nil
	case FieldMilliOfDay:
		return t.nanos / nanosPerMilli, nil
	case FieldSecondOfMinute:
		return int64(t.Second()), nil
	case FieldSecondOfDay:
		return t.nanos / nanosPerSecond, nil
	case FieldMinuteOfHour:
		return int64(t.Minute()), nil
	case FieldMinuteOfDay:
		return t.nanos / nanosPerMinute, nil
	case FieldHourOfAmPm:
		return int64(t.Hour() % 12), nil
	case FieldClockHourOfAmPm:
		h := int64(t.Hour() % 12)
		if h == 0 {
			h = 12
		}
		return h, nil
	case FieldHourOfDay:
		return int64(t.Hour()), nil
	case FieldClockHourOfDay:
		h := int64(t.Hour())
		if h == 0 {
			h = 24
		}
		return h, nil
	case FieldAmPmOfDay:
		return int64(t.Hour() / 12), nil
	default:
		return 0, fmt.Errorf("%w: field %s", ErrUnsupported, f)
	}
}

// With returns a copy of this time with the given time-based field set to
// value, leaving finer-grained fields untouched.  It returns
// ErrInvalidInput if value is outside the field's range and ErrUnsupported
// for fields that are not time-based.
func (t LocalTime) With(f ChronoField, value int64) (LocalTime, error) {
	if !f.IsTimeBased() {
		return LocalTime{}, fmt.Errorf("%w: field %s", ErrUnsupported, f)
	}
	if err := f.checkRange(value); err != nil {
		return LocalTime{}, err
	}

	nanos := t.nanos
	switch f {
	case FieldNanoOfSecond:
		nanos += value - int64(t.Nano())
	case FieldNanoOfDay:
		nanos = value
	case FieldMicroOfSecond:
		nanos += value*nanosPerMicro - int64(t.Nano())
	case FieldMicroOfDay:
		nanos = value * nanosPerMicro
	case FieldMilliOfSecond:
		nanos += value*nanosPerMilli - int64(t.Nano())
	case FieldMilliOfDay:
		nanos = value * nanosPerMilli
	case FieldSecondOfMinute:
		nanos += (value - int64(t.Second())) * nanosPerSecond
	case FieldSecondOfDay:
		nanos = value*nanosPerSecond + t.nanos%nanosPerSecond
	case FieldMinuteOfHour:
		nanos += (value - int64(t.Minute())) * nanosPerMinute
	case FieldMinuteOfDay:
		nanos = value*nanosPerMinute + t.nanos%nanosPerMinute
	case FieldHourOfAmPm:
		nanos += (value - int64(t.Hour()%12)) * nanosPerHour
	case FieldClockHourOfAmPm:
		if value == 12 {
			value = 0
		}
		nanos += (value - int64(t.Hour()%12)) * nanosPerHour
	case FieldHourOfDay:
		nanos = value*nanosPerHour + t.nanos%nanosPerHour
	case FieldClockHourOfDay:
		if value == 24 {
			value = 0
		}
		nanos = value*nanosPerHour + t.nanos%nanosPerHour
	case FieldAmPmOfDay:
		nanos += (value - int64(t.Hour()/12)) * nanosPerHalfDay
	}

	return LocalTime{nanos: nanos}, nil
}

// Compare returns -1, 0 or 1 as t is before, equal to, or after other.
func (t LocalTime) Compare(other LocalTime) int {
	switch {
	case t.nanos < other.nanos:
		return -1
	case t.nanos > other.nanos:
		return 1
	default:
		return 0
	}
}

// Before reports whether t is earlier in the day than other.
func (t LocalTime) Before(other LocalTime) bool {
	return t.nanos < other.nanos
}

// After reports whether t is later in the day than other.
func (t LocalTime) After(other LocalTime) bool {
	return t.nanos > other.nanos
}

// String renders the time as HH:MM, appending seconds and the smallest
// nonempty fractional group only when they are nonzero, such as "13:45",
// "13:45:30" or "13:45:30.000000007".
func (t LocalTime) String() string {
	h, m, s, n := t.Hour(), t.Minute(), t.Second(), t.Nano()

	out := fmt.Sprintf("%02d:%02d", h, m)
	if s == 0 && n == 0 {
		return out
	}

	out += fmt.Sprintf(":%02d", s)
	switch {
	case n == 0:
	case n%1_000_000 == 0:
		out += fmt.Sprintf(".%03d", n/1_000_000)
	case n%1_000 == 0:
		out += fmt.Sprintf(".%06d", n/1_000)
	default:
		out += fmt.Sprintf(".%09d", n)
	}
	return out
}
