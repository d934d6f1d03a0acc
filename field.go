// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package daytime

import "fmt"

// Accessor supplies temporal field values on request.  DayTime implements
// Accessor, as may any external temporal source that can provide at least
// the day-of-week and nano-of-day fields.
type Accessor interface {
	// IsSupported reports whether the field can be read from this value.
	IsSupported(f Field) bool

	// Get returns the value of the field.
	Get(f Field) (int64, error)
}

// Field identifies a temporal field, such as hour-of-day or day-of-week.
//
// The built-in fields are the ChronoField constants and are handled
// directly by DayTime.  Any other implementation supplies its own
// extraction and adjustment behavior, and DayTime delegates to it.
type Field interface {
	// SupportedBy reports whether the field can be read from a.
	SupportedBy(a Accessor) bool

	// From extracts the value of the field from a.
	From(a Accessor) (int64, error)

	// AdjustInto returns a copy of dt with this field set to value.
	AdjustInto(dt DayTime, value int64) (DayTime, error)

	String() string
}

// ChronoField is the closed set of built-in fields.  The time-based fields
// and FieldDayOfWeek are supported by DayTime; the date-based fields exist
// so that requests for them fail with ErrUnsupported rather than being
// mistaken for custom fields.
type ChronoField int

const (
	FieldNanoOfSecond ChronoField = iota + 1
	FieldNanoOfDay
	FieldMicroOfSecond
	FieldMicroOfDay
	FieldMilliOfSecond
	FieldMilliOfDay
	FieldSecondOfMinute
	FieldSecondOfDay
	FieldMinuteOfHour
	FieldMinuteOfDay
	FieldHourOfAmPm
	FieldClockHourOfAmPm
	FieldHourOfDay
	FieldClockHourOfDay
	FieldAmPmOfDay
	FieldDayOfWeek
	FieldDayOfMonth
	FieldDayOfYear
	FieldEpochDay
	FieldMonthOfYear
	FieldYear
)

var fieldNames = [...]string{
	FieldNanoOfSecond:    "NanoOfSecond",
	FieldNanoOfDay:       "NanoOfDay",
	FieldMicroOfSecond:   "MicroOfSecond",
	FieldMicroOfDay:      "MicroOfDay",
	FieldMilliOfSecond:   "MilliOfSecond",
	FieldMilliOfDay:      "MilliOfDay",
	FieldSecondOfMinute:  "SecondOfMinute",
	FieldSecondOfDay:     "SecondOfDay",
	FieldMinuteOfHour:    "MinuteOfHour",
	FieldMinuteOfDay:     "MinuteOfDay",
	FieldHourOfAmPm:      "HourOfAmPm",
	FieldClockHourOfAmPm: "ClockHourOfAmPm",
	FieldHourOfDay:       "HourOfDay",
	FieldClockHourOfDay:  "ClockHourOfDay",
	FieldAmPmOfDay:       "AmPmOfDay",
	FieldDayOfWeek:       "DayOfWeek",
	FieldDayOfMonth:      "DayOfMonth",
	FieldDayOfYear:       "DayOfYear",
	FieldEpochDay:        "EpochDay",
	FieldMonthOfYear:     "MonthOfYear",
	FieldYear:            "Year",
}

// fieldRanges holds the valid value range for each time-based field, used
// to validate With.
var fieldRanges = map[ChronoField]struct{ min, max int64 }{
	FieldNanoOfSecond:    {0, 999_999_999},
	FieldNanoOfDay:       {0, nanosPerDay - 1},
	FieldMicroOfSecond:   {0, 999_999},
	FieldMicroOfDay:      {0, microsPerDay - 1},
	FieldMilliOfSecond:   {0, 999},
	FieldMilliOfDay:      {0, millisPerDay - 1},
	FieldSecondOfMinute:  {0, 59},
	FieldSecondOfDay:     {0, secondsPerDay - 1},
	FieldMinuteOfHour:    {0, 59},
	FieldMinuteOfDay:     {0, minutesPerDay - 1},
	FieldHourOfAmPm:      {0, 11},
	FieldClockHourOfAmPm: {1, 12},
	FieldHourOfDay:       {0, 23},
	FieldClockHourOfDay:  {1, 24},
	FieldAmPmOfDay:       {0, 1},
	FieldDayOfWeek:       {1, 7},
}

// IsTimeBased reports whether the field is a projection of the time of
// day.  FieldDayOfWeek and the date-based fields are not time-based.
func (f ChronoField) IsTimeBased() bool {
	return FieldNanoOfSecond <= f && f <= FieldAmPmOfDay
}

// SupportedBy implements Field by asking a directly.
func (f ChronoField) SupportedBy(a Accessor) bool {
	return a != nil && a.IsSupported(f)
}

// From implements Field by reading from a directly.
func (f ChronoField) From(a Accessor) (int64, error) {
	if a == nil {
		return 0, fmt.Errorf("%w: nil accessor", ErrInvalidInput)
	}
	return a.Get(f)
}

// AdjustInto implements Field.
func (f ChronoField) AdjustInto(dt DayTime, value int64) (DayTime, error) {
	return dt.With(f, value)
}

func (f ChronoField) String() string {
	if f < FieldNanoOfSecond || f > FieldYear {
		return fmt.Sprintf("%%!ChronoField(%d)", int(f))
	}
	return fieldNames[f]
}

func (f ChronoField) checkRange(value int64) error {
	r, ok := fieldRanges[f]
	if !ok {
		return fmt.Errorf("%w: field %s", ErrUnsupported, f)
	}
	if value < r.min || value > r.max {
		return fmt.Errorf("%w: %d outside %d-%d for field %s", ErrInvalidInput, value, r.min, r.max, f)
	}
	return nil
}
