/*
 * EliasDB
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package graph

import (
	"fmt"
	"strconv"
	"strings"
)

/*
Date is a calendar date with partial precision. Month and Day are 0 if
they are not known.
*/
type Date struct {
	Year  int
	Month int
	Day   int
}

/*
ParseDate parses a date of the form YYYY, YYYY-MM or YYYY-MM-DD. An empty
string produces a nil date.
*/
func ParseDate(s string) (*Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, "-")
	if len(parts) > 3 {
		return nil, fmt.Errorf("Invalid date: %v", s)
	}

	var vals [3]int

	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("Invalid date: %v", s)
		}
		vals[i] = v
	}

	if vals[1] > 12 || vals[2] > 31 || (len(parts) == 3 && vals[1] == 0) {
		return nil, fmt.Errorf("Invalid date: %v", s)
	}

	return &Date{vals[0], vals[1], vals[2]}, nil
}

/*
String returns a string representation of this date.
*/
func (d *Date) String() string {
	if d == nil {
		return ""
	}
	if d.Month == 0 {
		return fmt.Sprintf("%04d", d.Year)
	} else if d.Day == 0 {
		return fmt.Sprintf("%04d-%02d", d.Year, d.Month)
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

/*
CompareDates compares two dates. Unknown (nil) dates sort after known ones
and unknown date parts sort before known ones.
*/
func CompareDates(d1 *Date, d2 *Date) int {
	if d1 == nil || d2 == nil {
		switch {
		case d1 == nil && d2 == nil:
			return 0
		case d1 == nil:
			return 1
		}
		return -1
	}

	if c := compareInts(d1.Year, d2.Year); c != 0 {
		return c
	}
	if c := compareInts(d1.Month, d2.Month); c != 0 {
		return c
	}
	return compareInts(d1.Day, d2.Day)
}

/*
compareInts compares two integers.
*/
func compareInts(i1 int, i2 int) int {
	if i1 < i2 {
		return -1
	} else if i1 > i2 {
		return 1
	}
	return 0
}
