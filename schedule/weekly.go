// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/xmidt-org/daytime"
)

type weeklyEntry struct {
	Indexes []int `codec:"indexes" yaml:"indexes"`
	Day     int   `codec:"day" yaml:"day"`
	Seconds int   `codec:"seconds" yaml:"seconds"`

	macs []string        `codec:"-" yaml:"-"`
	at   daytime.DayTime `codec:"-" yaml:"-"`
}

func (entry *weeklyEntry) Finalize(macs []string) error {
	day, err := daytime.DayOfWeekOf(int64(entry.Day))
	if err != nil {
		return fmt.Errorf("%w: 'day' value must be 1 (Monday) through 7 (Sunday)", ErrInvalidInput)
	}
	timeOfDay, err := daytime.TimeOfNano(int64(entry.Seconds) * 1_000_000_000)
	if err != nil {
		return fmt.Errorf("%w: 'seconds' value outside the day", ErrInvalidInput)
	}
	entry.at, err = daytime.Of(day, timeOfDay)
	if err != nil {
		return err
	}

	entry.macs = make([]string, len(entry.Indexes))
	for i, idx := range entry.Indexes {
		if idx < 0 || idx >= len(macs) {
			return fmt.Errorf("%w: 'indexes' value out of bounds", ErrInvalidInput)
		}
		entry.macs[i] = macs[idx]
	}

	return nil
}

type weeklyList []weeklyEntry

func (list weeklyList) Finalize(macs []string) error {
	for i := range list {
		err := list[i].Finalize(macs)
		if err != nil {
			return err
		}
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].at.Compare(list[j].at) < 0
	})

	return nil
}

// findActive returns the index of the entry in effect at now: the last
// entry at or before it, wrapping to the final entry of the prior week
// when now precedes everything.
func (list weeklyList) findActive(now daytime.DayTime) int {
	index := len(list) - 1
	for i, entry := range list {
		if entry.at.Compare(now) <= 0 {
			index = i
		}
	}
	return index
}

func (list weeklyList) Blocked(now daytime.DayTime) []string {
	if len(list) == 0 {
		return nil
	}

	return list[list.findActive(now)].macs
}

func (list weeklyList) Until(when time.Time) time.Time {
	if len(list) == 0 {
		return time.Time{}
	}

	now := daytime.FromTime(when)
	next := list[(list.findActive(now)+1)%len(list)]

	at := next.at.Next(when)
	if !at.After(when) {
		// Every entry coincides with this instant; the next transition
		// is a week out.
		at = at.AddDate(0, 0, 7)
	}
	return at
}
