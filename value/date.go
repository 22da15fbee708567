package value

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// NaiveDateTime is an OBO "date" value: a day/month/year/hour/minute
// tuple with no timezone.
type NaiveDateTime struct {
	Day    int // 1-31
	Month  int // 1-12
	Year   int // 0-9999
	Hour   int // 0-23
	Minute int // 0-59
}

// NewNaiveDateTime constructs a NaiveDateTime, matching the field order of the
// grammar's "DD:MM:YYYY HH:MM".
func NewNaiveDateTime(day, month, year, hour, minute int) NaiveDateTime {
	return NaiveDateTime{Day: day, Month: month, Year: year, Hour: hour, Minute: minute}
}

type dateError string

func (e dateError) Error() string { return string(e) }

// ParseNaiveDateTime parses "DD:MM:YYYY HH:MM".
func ParseNaiveDateTime(text string) (NaiveDateTime, error) {
	parts := strings.SplitN(text, " ", 2)
	if len(parts) != 2 {
		return NaiveDateTime{}, dateError("date must have a date and a time part separated by a space")
	}
	dateParts := strings.Split(parts[0], ":")
	timeParts := strings.Split(parts[1], ":")
	if len(dateParts) != 3 || len(timeParts) != 2 {
		return NaiveDateTime{}, dateError("date must be DD:MM:YYYY HH:MM")
	}
	fields := append(append([]string{}, dateParts...), timeParts...)
	nums := make([]int, 5)
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return NaiveDateTime{}, dateError("non-numeric date field: " + f)
		}
		nums[i] = n
	}
	dt := NaiveDateTime{Day: nums[0], Month: nums[1], Year: nums[2], Hour: nums[3], Minute: nums[4]}
	if err := dt.validate(); err != nil {
		return NaiveDateTime{}, err
	}
	return dt, nil
}

func (d NaiveDateTime) validate() error {
	if d.Day < 1 || d.Day > 31 {
		return dateError("day out of range")
	}
	if d.Month < 1 || d.Month > 12 {
		return dateError("month out of range")
	}
	if d.Year < 0 || d.Year > 9999 {
		return dateError("year out of range")
	}
	if d.Hour < 0 || d.Hour > 23 {
		return dateError("hour out of range")
	}
	if d.Minute < 0 || d.Minute > 59 {
		return dateError("minute out of range")
	}
	return nil
}

func (d NaiveDateTime) String() string {
	return fmt.Sprintf("%02d:%02d:%04d %02d:%02d", d.Day, d.Month, d.Year, d.Hour, d.Minute)
}

// IsoDateTime is an ISO-8601 date-time, used in "creation_date" clauses.
type IsoDateTime struct {
	Time time.Time
}

// ParseIsoDateTime parses an RFC 3339 (ISO-8601 profile) date-time.
func ParseIsoDateTime(text string) (IsoDateTime, error) {
	t, err := time.Parse(time.RFC3339, text)
	if err != nil {
		// ISO-8601 allows a bare date with no time component.
		if t2, err2 := time.Parse("2006-01-02", text); err2 == nil {
			return IsoDateTime{Time: t2}, nil
		}
		return IsoDateTime{}, err
	}
	return IsoDateTime{Time: t}, nil
}

func (d IsoDateTime) String() string {
	return d.Time.Format(time.RFC3339)
}
