package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Weekday is a schedule-day tag. Its value matches time.Weekday, so
// Sunday is 0 and Saturday is 6.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// AllWeekdays lists the fixed enumeration in order.
var AllWeekdays = []Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

var weekdayTags = [...]string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// WeekdayOf maps a time.Weekday into the enumeration.
func WeekdayOf(wd time.Weekday) Weekday {
	return Weekday(wd)
}

// ParseWeekday resolves a tag case-insensitively.
func ParseWeekday(tag string) (Weekday, error) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	for i, t := range weekdayTags {
		if t == tag {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", tag)
}

func (w Weekday) Valid() bool {
	return w >= Sunday && w <= Saturday
}

func (w Weekday) String() string {
	if !w.Valid() {
		return fmt.Sprintf("weekday(%d)", int(w))
	}
	return weekdayTags[w]
}

func (w Weekday) MarshalJSON() ([]byte, error) {
	if !w.Valid() {
		return nil, fmt.Errorf("invalid weekday %d", int(w))
	}
	return json.Marshal(w.String())
}

func (w *Weekday) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err != nil {
		return err
	}
	parsed, err := ParseWeekday(tag)
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

// DaySet is a set of weekdays, one bit per day.
type DaySet uint8

// NewDaySet builds a set from the given days. Invalid days are skipped.
func NewDaySet(days ...Weekday) DaySet {
	var s DaySet
	for _, d := range days {
		s = s.Add(d)
	}
	return s
}

// ParseDaySet builds a set from weekday tags. Any unknown tag is an error.
func ParseDaySet(tags []string) (DaySet, error) {
	var s DaySet
	for _, tag := range tags {
		d, err := ParseWeekday(tag)
		if err != nil {
			return 0, err
		}
		s = s.Add(d)
	}
	return s, nil
}

func (s DaySet) Has(d Weekday) bool {
	return d.Valid() && s&(1<<uint(d)) != 0
}

func (s DaySet) Add(d Weekday) DaySet {
	if !d.Valid() {
		return s
	}
	return s | 1<<uint(d)
}

func (s DaySet) Remove(d Weekday) DaySet {
	if !d.Valid() {
		return s
	}
	return s &^ (1 << uint(d))
}

func (s DaySet) Empty() bool {
	return s&0x7f == 0
}

func (s DaySet) Len() int {
	n := 0
	for _, d := range AllWeekdays {
		if s.Has(d) {
			n++
		}
	}
	return n
}

// Days returns the members in enumeration order.
func (s DaySet) Days() []Weekday {
	days := make([]Weekday, 0, 7)
	for _, d := range AllWeekdays {
		if s.Has(d) {
			days = append(days, d)
		}
	}
	return days
}

func (s DaySet) Tags() []string {
	days := s.Days()
	tags := make([]string, len(days))
	for i, d := range days {
		tags[i] = d.String()
	}
	return tags
}

func (s DaySet) String() string {
	return strings.Join(s.Tags(), ",")
}

// MarshalJSON encodes the set as an array of tags.
func (s DaySet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Tags())
}

func (s *DaySet) UnmarshalJSON(data []byte) error {
	var tags []string
	if err := json.Unmarshal(data, &tags); err != nil {
		return err
	}
	parsed, err := ParseDaySet(tags)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
