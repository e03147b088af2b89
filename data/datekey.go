// Copyright 2026
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package data

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrBadDateKey indicates a date_key column value that does not encode a
	// valid YYYYMMDD calendar date. The fact tables are loaded by an external
	// process, so this always means corrupt upstream data.
	ErrBadDateKey = errors.New("date key is not a valid YYYYMMDD date")
)

// ParseDateKey converts a YYYYMMDD-encoded integer into a calendar date at
// midnight UTC.
func ParseDateKey(dateKey int64) (time.Time, error) {
	if dateKey < 10000101 || dateKey > 99991231 {
		return time.Time{}, fmt.Errorf("%w: %d", ErrBadDateKey, dateKey)
	}

	year := int(dateKey / 10000)
	month := int(dateKey / 100 % 100)
	day := int(dateKey % 100)

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)

	// time.Date normalizes out-of-range components (e.g. month 13 becomes
	// January of the following year); reject anything that moved.
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %d", ErrBadDateKey, dateKey)
	}

	return t, nil
}

// FormatDateKey encodes a calendar date as a YYYYMMDD integer.
func FormatDateKey(t time.Time) int64 {
	return int64(t.Year())*10000 + int64(t.Month())*100 + int64(t.Day())
}
