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
package server

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/stockdw/dwserve/warehouse"
)

// paramError is a validation failure on a single query parameter. It is
// rejected with a 400 before any storage access happens.
type paramError struct {
	Field  string
	Reason string
}

func (e *paramError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// requiredString returns a trimmed, non-empty query parameter.
func requiredString(q url.Values, field string) (string, error) {
	value := strings.TrimSpace(q.Get(field))
	if value == "" {
		return "", &paramError{Field: field, Reason: "parameter is required"}
	}
	return value, nil
}

// parseLimit returns the validated limit parameter. Bounds are fixed per
// endpoint; anything outside [1, ceiling] is rejected, not clamped.
func parseLimit(q url.Values, def, ceiling int) (int, error) {
	raw := q.Get("limit")
	if raw == "" {
		return def, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &paramError{Field: "limit", Reason: "must be an integer"}
	}
	if limit < 1 || limit > ceiling {
		return 0, &paramError{Field: "limit", Reason: fmt.Sprintf("must be between 1 and %d", ceiling)}
	}

	return limit, nil
}

func parseOffset(q url.Values) (int, error) {
	raw := q.Get("offset")
	if raw == "" {
		return 0, nil
	}

	offset, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &paramError{Field: "offset", Reason: "must be an integer"}
	}
	if offset < 0 {
		return 0, &paramError{Field: "offset", Reason: "must not be negative"}
	}

	return offset, nil
}

// parseDateRange reads the optional inclusive start_date/end_date bounds.
// Values are YYYYMMDD integers; a missing bound leaves that side open.
func parseDateRange(q url.Values) (warehouse.DateRange, error) {
	rng := warehouse.DateRange{}

	for _, field := range []string{"start_date", "end_date"} {
		raw := q.Get(field)
		if raw == "" {
			continue
		}

		value, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return warehouse.DateRange{}, &paramError{Field: field, Reason: "must be a YYYYMMDD integer"}
		}

		if field == "start_date" {
			rng.Start = &value
		} else {
			rng.End = &value
		}
	}

	return rng, nil
}
