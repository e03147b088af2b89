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
package warehouse

import (
	"fmt"
	"strings"

	"github.com/stockdw/dwserve/data"
)

// DateRange holds optional inclusive YYYYMMDD date-key bounds. A nil bound
// leaves that side of the range open.
type DateRange struct {
	Start *int64
	End   *int64
}

// Order fixes the date-key sort direction of a fact query. Bar endpoints
// return oldest-first, statement endpoints return most-recent-first; the
// direction is per-endpoint policy, never user-selectable.
type Order bool

const (
	Ascending  Order = false
	Descending Order = true
)

// factQuery builds a filtered, ordered, limited SELECT over a fact entity.
// Filters are exact equality on stock_key (and source_key when non-nil)
// plus the inclusive date-key bounds. The limit is assumed to have been
// validated by the caller.
func factQuery(entity *data.Entity, stockKey int64, sourceKey *int64, rng DateRange, order Order, limit int) (string, []any) {
	var sb strings.Builder
	args := make([]any, 0, 5)

	args = append(args, stockKey)
	fmt.Fprintf(&sb, "SELECT %s FROM %s WHERE stock_key = $1", entity.SelectList(), entity.Table)

	if sourceKey != nil {
		args = append(args, *sourceKey)
		fmt.Fprintf(&sb, " AND source_key = $%d", len(args))
	}

	if rng.Start != nil {
		args = append(args, *rng.Start)
		fmt.Fprintf(&sb, " AND date_key >= $%d", len(args))
	}

	if rng.End != nil {
		args = append(args, *rng.End)
		fmt.Fprintf(&sb, " AND date_key <= $%d", len(args))
	}

	sb.WriteString(" ORDER BY date_key")
	if order == Descending {
		sb.WriteString(" DESC")
	}

	args = append(args, limit)
	fmt.Fprintf(&sb, " LIMIT $%d", len(args))

	return sb.String(), args
}
