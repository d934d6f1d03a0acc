// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// Package schedule applies weekly recurring device-blocking rules.  A
// schedule is decoded from msgpack or YAML and answers which devices are
// blocked at a given instant and when the next change happens.
package schedule

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ugorji/go/codec"
	"gopkg.in/yaml.v3"

	"github.com/xmidt-org/daytime"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Schedule struct {
	handle codec.Handle
	raw    schedule
	m      sync.Mutex
}

func New() *Schedule {
	return &Schedule{
		handle: new(codec.MsgpackHandle),
	}
}

// Decode replaces the schedule with one decoded from msgpack.
func (s *Schedule) Decode(in []byte) error {
	s.m.Lock()
	defer s.m.Unlock()

	var raw schedule
	err := codec.NewDecoderBytes(in, s.handle).Decode(&raw)
	if err != nil {
		return err
	}

	err = raw.Finalize()
	if err != nil {
		return err
	}
	s.raw = raw

	return nil
}

// DecodeYAML replaces the schedule with one decoded from YAML.
func (s *Schedule) DecodeYAML(in []byte) error {
	s.m.Lock()
	defer s.m.Unlock()

	var raw schedule
	err := yaml.Unmarshal(in, &raw)
	if err != nil {
		return err
	}

	err = raw.Finalize()
	if err != nil {
		return err
	}
	s.raw = raw

	return nil
}

// Blocked returns the MACs blocked at the given instant, evaluated on the
// schedule's weekly cycle in its configured time zone.
func (s *Schedule) Blocked(when time.Time) []string {
	s.m.Lock()
	defer s.m.Unlock()

	if s.raw.tz != nil {
		when = when.In(s.raw.tz)
	}
	return s.raw.Weekly.Blocked(daytime.FromTime(when))
}

// Until returns the instant of the next schedule transition after the
// given instant, or the zero time if the schedule is empty.
func (s *Schedule) Until(when time.Time) time.Time {
	s.m.Lock()
	defer s.m.Unlock()

	if s.raw.tz != nil {
		when = when.In(s.raw.tz)
	}
	return s.raw.Weekly.Until(when)
}

type schedule struct {
	TimeZone   string     `codec:"time_zone" yaml:"time_zone"`
	ReportRate int        `codec:"report_rate" yaml:"report_rate"`
	MACs       []string   `codec:"macs" yaml:"macs"`
	Weekly     weeklyList `codec:"weekly" yaml:"weekly"`

	tz         *time.Location `codec:"-" yaml:"-"`
	reportRate time.Duration  `codec:"-" yaml:"-"`
}

func (s *schedule) Finalize() error {
	tz, err := time.LoadLocation(s.TimeZone)
	if err != nil {
		return fmt.Errorf("%w: 'time_zone' of '%s' invalid: %v", ErrInvalidInput, s.TimeZone, err)
	}
	s.tz = tz

	if s.ReportRate < 0 {
		return fmt.Errorf("%w: 'report_rate' must be 0 or larger", ErrInvalidInput)
	}
	s.reportRate = time.Second * time.Duration(s.ReportRate)

	return s.Weekly.Finalize(s.MACs)
}

func (s schedule) String() string {
	var buf strings.Builder

	fmt.Fprintln(&buf, "schedule {")
	fmt.Fprintln(&buf, "\ttime_zone:")
	fmt.Fprintf(&buf, "\t\trequested: %q\n", s.TimeZone)
	fmt.Fprintf(&buf, "\t\tactual:    %q\n", s.tz)
	fmt.Fprintf(&buf, "\treport_rate: %s\n", s.reportRate)
	fmt.Fprintf(&buf, "\tmac_count:   %d\n", len(s.MACs))
	for i, mac := range s.MACs {
		fmt.Fprintf(&buf, "\t\t[%d]: %q\n", i, mac)
	}

	fmt.Fprintln(&buf, "\tweekly:")
	if len(s.Weekly) == 0 {
		fmt.Fprintln(&buf, "\t\tnone")
	} else {
		for _, entry := range s.Weekly {
			fmt.Fprintf(&buf, "\t\tat: %s, block: [%s]\n", entry.at, strings.Join(entry.macs, ", "))
		}
	}
	fmt.Fprintln(&buf, "}")

	return buf.String()
}
