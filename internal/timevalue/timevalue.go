// Package timevalue converts between free-form time strings and the discrete
// (hour, minute, meridiem) triple that drives the three-column time picker.
package timevalue

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidFormat = errors.New("invalid time format")

type Meridiem string

const (
	AM Meridiem = "AM"
	PM Meridiem = "PM"
)

// TimeValue is a 12-hour clock reading. Hour is always 1-12.
type TimeValue struct {
	Hour     int      `json:"hour"`
	Minute   int      `json:"minute"`
	Meridiem Meridiem `json:"meridiem"`
}

// Default is the picker's starting position when no prior time exists.
func Default() TimeValue {
	return TimeValue{Hour: 12, Minute: 0, Meridiem: PM}
}

// Decode parses either the display form "2:30 PM" or the bare 24-hour form
// "14:30". Out-of-range or malformed input is rejected with ErrInvalidFormat.
func Decode(input string) (TimeValue, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return TimeValue{}, fmt.Errorf("%w: empty input", ErrInvalidFormat)
	}

	if strings.Contains(input, "AM") || strings.Contains(input, "PM") {
		return decodeDisplay(input)
	}
	return decodeClock(input)
}

// decodeDisplay parses "h:mm AM" / "h:mm PM".
func decodeDisplay(input string) (TimeValue, error) {
	clock, period, ok := strings.Cut(input, " ")
	if !ok {
		return TimeValue{}, fmt.Errorf("%w: %q", ErrInvalidFormat, input)
	}
	if period != string(AM) && period != string(PM) {
		return TimeValue{}, fmt.Errorf("%w: bad meridiem %q", ErrInvalidFormat, period)
	}

	hour, minute, err := splitClock(clock)
	if err != nil {
		return TimeValue{}, err
	}
	if hour < 1 || hour > 12 {
		return TimeValue{}, fmt.Errorf("%w: hour %d out of range", ErrInvalidFormat, hour)
	}
	return TimeValue{Hour: hour, Minute: minute, Meridiem: Meridiem(period)}, nil
}

// decodeClock parses the 24-hour form "HH:MM" and folds it onto the 12-hour
// clock: 0 -> 12 AM, 1-11 -> AM, 12 -> 12 PM, 13-23 -> PM.
func decodeClock(input string) (TimeValue, error) {
	hour24, minute, err := splitClock(input)
	if err != nil {
		return TimeValue{}, err
	}
	if hour24 > 23 {
		return TimeValue{}, fmt.Errorf("%w: hour %d out of range", ErrInvalidFormat, hour24)
	}

	v := TimeValue{Minute: minute}
	switch {
	case hour24 == 0:
		v.Hour, v.Meridiem = 12, AM
	case hour24 <= 12:
		v.Hour = hour24
		if hour24 == 12 {
			v.Meridiem = PM
		} else {
			v.Meridiem = AM
		}
	default:
		v.Hour, v.Meridiem = hour24-12, PM
	}
	return v, nil
}

func splitClock(clock string) (hour, minute int, err error) {
	h, m, ok := strings.Cut(clock, ":")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q missing separator", ErrInvalidFormat, clock)
	}
	hour, err = strconv.Atoi(h)
	if err != nil || hour < 0 {
		return 0, 0, fmt.Errorf("%w: bad hour %q", ErrInvalidFormat, h)
	}
	minute, err = strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: bad minute %q", ErrInvalidFormat, m)
	}
	return hour, minute, nil
}

// String renders the display form "2:30 PM". Whatever format was decoded,
// the re-encoded string is always 12-hour with meridiem.
func (v TimeValue) String() string {
	return fmt.Sprintf("%d:%02d %s", v.Hour, v.Minute, v.Meridiem)
}

// Hour24 returns the value on the 24-hour clock.
func (v TimeValue) Hour24() int {
	switch {
	case v.Hour == 12 && v.Meridiem == AM:
		return 0
	case v.Hour != 12 && v.Meridiem == PM:
		return v.Hour + 12
	default:
		return v.Hour
	}
}
