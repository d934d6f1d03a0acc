// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ugorji/go/codec"
)

func TestDecode(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	in := map[string]interface{}{
		"time_zone":   "UTC",
		"report_rate": 3600,
		"macs": []string{
			"11:22:33:44:55:aa",
			"22:33:44:55:66:bb",
		},
		"weekly": []map[string]interface{}{
			{"day": 1, "seconds": 23, "indexes": []int{0}},
			{"day": 1, "seconds": 30, "indexes": []int{1}},
		},
	}

	var buf []byte
	require.NoError(codec.NewEncoderBytes(&buf, new(codec.MsgpackHandle)).Encode(in))

	s := New()
	require.NoError(s.Decode(buf))

	// 2023-01-02 was a Monday.
	when := time.Date(2023, time.January, 2, 0, 0, 25, 0, time.UTC)
	assert.Equal([]string{"11:22:33:44:55:aa"}, s.Blocked(when))
	assert.Equal(time.Date(2023, time.January, 2, 0, 0, 30, 0, time.UTC), s.Until(when))

	assert.Error(s.Decode([]byte("\xc1not msgpack")))
}

func TestDecodeYAML(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	in := `
time_zone: UTC
report_rate: 3600
macs:
  - "11:22:33:44:55:aa"
  - "22:33:44:55:66:bb"
weekly:
  - day: 1
    seconds: 23
    indexes: [0]
  - day: 1
    seconds: 30
    indexes: [1]
`

	s := New()
	require.NoError(s.DecodeYAML([]byte(in)))

	when := time.Date(2023, time.January, 2, 0, 0, 25, 0, time.UTC)
	assert.Equal([]string{"11:22:33:44:55:aa"}, s.Blocked(when))
	assert.Equal(time.Date(2023, time.January, 2, 0, 0, 30, 0, time.UTC), s.Until(when))

	assert.Error(s.DecodeYAML([]byte("\t not yaml")))
}

func TestWeeklyCycle(t *testing.T) {
	simple := schedule{
		TimeZone:   "UTC",
		ReportRate: 3600,
		MACs: []string{
			"11:22:33:44:55:66",
			"22:33:44:55:66:aa",
			"33:44:55:66:aa:bb",
		},
		Weekly: weeklyList{
			{Day: 1, Seconds: 23, Indexes: []int{0}},
			{Day: 1, Seconds: 30, Indexes: []int{1}},
			{Day: 3, Seconds: 3600, Indexes: []int{}},
		},
	}

	// The schedule's week, anchored on Monday 2023-01-02 UTC:
	//   Mon 00:00:23 -> block mac 0
	//   Mon 00:00:30 -> block mac 1
	//   Wed 01:00:00 -> block nothing
	checks := []struct {
		description string
		when        time.Time
		macs        []string
		next        time.Time
	}{
		{
			description: "before the first entry the prior week still applies",
			when:        time.Date(2023, time.January, 2, 0, 0, 0, 0, time.UTC),
			macs:        []string{},
			next:        time.Date(2023, time.January, 2, 0, 0, 23, 0, time.UTC),
		},
		{
			description: "exactly on the first entry",
			when:        time.Date(2023, time.January, 2, 0, 0, 23, 0, time.UTC),
			macs:        []string{"11:22:33:44:55:66"},
			next:        time.Date(2023, time.January, 2, 0, 0, 30, 0, time.UTC),
		},
		{
			description: "between entries",
			when:        time.Date(2023, time.January, 2, 0, 0, 25, 0, time.UTC),
			macs:        []string{"11:22:33:44:55:66"},
			next:        time.Date(2023, time.January, 2, 0, 0, 30, 0, time.UTC),
		},
		{
			description: "second entry holds for days",
			when:        time.Date(2023, time.January, 3, 12, 0, 0, 0, time.UTC),
			macs:        []string{"22:33:44:55:66:aa"},
			next:        time.Date(2023, time.January, 4, 1, 0, 0, 0, time.UTC),
		},
		{
			description: "last entry wraps to next week's first",
			when:        time.Date(2023, time.January, 4, 1, 0, 0, 0, time.UTC),
			macs:        []string{},
			next:        time.Date(2023, time.January, 9, 0, 0, 23, 0, time.UTC),
		},
		{
			description: "sunday night still reaches monday",
			when:        time.Date(2023, time.January, 8, 23, 59, 59, 0, time.UTC),
			macs:        []string{},
			next:        time.Date(2023, time.January, 9, 0, 0, 23, 0, time.UTC),
		},
	}

	for _, c := range checks {
		t.Run(c.description, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			tmp := simple
			require.NoError(tmp.Finalize())

			s := New()
			s.raw = tmp

			assert.Equal(c.macs, s.Blocked(c.when))
			assert.Equal(c.next, s.Until(c.when))
		})
	}
}

func TestSingleEntry(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	only := schedule{
		TimeZone: "UTC",
		MACs:     []string{"11:22:33:44:55:66"},
		Weekly: weeklyList{
			{Day: 1, Seconds: 0, Indexes: []int{0}},
		},
	}
	require.NoError(only.Finalize())

	s := New()
	s.raw = only

	// Standing on the only transition, the next one is a week out.
	when := time.Date(2023, time.January, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal([]string{"11:22:33:44:55:66"}, s.Blocked(when))
	assert.Equal(when.AddDate(0, 0, 7), s.Until(when))
}

func TestUntilAcrossDST(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	in := schedule{
		TimeZone: "America/New_York",
		MACs: []string{
			"11:22:33:44:55:66",
			"22:33:44:55:66:aa",
		},
		Weekly: weeklyList{
			{Day: 1, Seconds: 43_200, Indexes: []int{0}},
			{Day: 5, Seconds: 43_200, Indexes: []int{1}},
		},
	}
	require.NoError(in.Finalize())

	s := New()
	s.raw = in

	nyc, err := time.LoadLocation("America/New_York")
	require.NoError(err)

	// Saturday 2023-03-11 18:00 EST; clocks spring forward overnight on
	// the 12th.  The next transition is Monday noon on the wall clock,
	// not one absolute duration later.
	when := time.Date(2023, time.March, 11, 18, 0, 0, 0, nyc)
	assert.Equal([]string{"22:33:44:55:66:aa"}, s.Blocked(when))

	next := s.Until(when)
	assert.Equal(time.Date(2023, time.March, 13, 12, 0, 0, 0, nyc), next)
	assert.Equal(12, next.Hour())
	assert.Equal([]string{"11:22:33:44:55:66"}, s.Blocked(next))
}

func TestDuplicateEntries(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	in := schedule{
		TimeZone: "UTC",
		MACs:     []string{"11:22:33:44:55:66"},
		Weekly: weeklyList{
			{Day: 1, Seconds: 0, Indexes: []int{0}},
			{Day: 1, Seconds: 0, Indexes: []int{0}},
			{Day: 3, Seconds: 0, Indexes: []int{}},
		},
	}
	require.NoError(in.Finalize())

	s := New()
	s.raw = in

	// Standing exactly on the duplicated pair, the next transition is
	// the following distinct entry, not a week out.
	when := time.Date(2023, time.January, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal([]string{"11:22:33:44:55:66"}, s.Blocked(when))
	assert.Equal(time.Date(2023, time.January, 4, 0, 0, 0, 0, time.UTC), s.Until(when))
}

func TestEmptySchedule(t *testing.T) {
	assert := assert.New(t)

	s := New()

	when := time.Date(2023, time.January, 2, 0, 0, 0, 0, time.UTC)
	assert.Nil(s.Blocked(when))
	assert.True(s.Until(when).IsZero())
}

func TestFinalizeErrors(t *testing.T) {
	tests := []struct {
		description string
		in          schedule
	}{
		{
			description: "bad time zone",
			in:          schedule{TimeZone: "not/a/zone"},
		},
		{
			description: "negative report rate",
			in:          schedule{TimeZone: "UTC", ReportRate: -1},
		},
		{
			description: "day of zero",
			in:          schedule{TimeZone: "UTC", Weekly: weeklyList{{Day: 0}}},
		},
		{
			description: "day of eight",
			in:          schedule{TimeZone: "UTC", Weekly: weeklyList{{Day: 8}}},
		},
		{
			description: "seconds past the day",
			in:          schedule{TimeZone: "UTC", Weekly: weeklyList{{Day: 1, Seconds: 86_400}}},
		},
		{
			description: "negative seconds",
			in:          schedule{TimeZone: "UTC", Weekly: weeklyList{{Day: 1, Seconds: -1}}},
		},
		{
			description: "index out of bounds",
			in: schedule{
				TimeZone: "UTC",
				MACs:     []string{"11:22:33:44:55:66"},
				Weekly:   weeklyList{{Day: 1, Indexes: []int{1}}},
			},
		},
		{
			description: "negative index",
			in: schedule{
				TimeZone: "UTC",
				MACs:     []string{"11:22:33:44:55:66"},
				Weekly:   weeklyList{{Day: 1, Indexes: []int{-1}}},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			tmp := tc.in
			assert.ErrorIs(t, tmp.Finalize(), ErrInvalidInput)
		})
	}
}

func TestScheduleString(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	in := schedule{
		TimeZone: "UTC",
		MACs:     []string{"11:22:33:44:55:66"},
		Weekly:   weeklyList{{Day: 1, Seconds: 23, Indexes: []int{0}}},
	}
	require.NoError(in.Finalize())

	out := in.String()
	assert.Contains(out, "Monday@00:00:23")
	assert.Contains(out, "11:22:33:44:55:66")

	assert.Contains(schedule{}.String(), "none")
}
