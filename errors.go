// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package daytime

import "errors"

var (
	// ErrInvalidInput is returned when a required input is missing or out
	// of range, such as a day-of-week ordinal outside 1-7.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConversion is returned when a temporal source cannot supply both
	// the day-of-week and the time-of-day.
	ErrConversion = errors.New("unable to convert")

	// ErrUnsupported is returned when a built-in field or unit is
	// recognized but not usable with this type, such as Weeks or Months.
	ErrUnsupported = errors.New("unsupported field or unit")

	// ErrOverflow is returned when intermediate arithmetic overflows the
	// int64 range.
	ErrOverflow = errors.New("arithmetic overflow")
)
